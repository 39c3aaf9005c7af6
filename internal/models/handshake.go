package models

// SovereigntyBackend is the sentinel value the backend reports when all
// monetary calculations happen server-side.
const SovereigntyBackend = "backend"

// HandshakeStatus is the backend's integrity attestation from /system/handshake.
// Formula descriptors are opaque strings; the dashboard never evaluates them.
type HandshakeStatus struct {
	Status           string            `json:"status"`
	Sovereignty      string            `json:"sovereignty"`
	FrontendReadOnly bool              `json:"frontend_read_only"`
	Formulas         map[string]string `json:"formulas,omitempty"`
	SessionActive    bool              `json:"session_active"`
	ActionsLogged    int               `json:"actions_logged"`
	Version          string            `json:"version"`
	Timestamp        string            `json:"timestamp"`
}

// Verified reports whether the attestation holds: the backend owns numeric
// computation and this frontend is read-only. Anything else renders as
// compromised.
func (h *HandshakeStatus) Verified() bool {
	return h.Sovereignty == SovereigntyBackend && h.FrontendReadOnly
}
