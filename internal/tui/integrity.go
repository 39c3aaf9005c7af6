package tui

import (
	"fmt"

	"github.com/bidscope-io/bidscope/internal/models"
)

// integrityState is the tri-state display of the integrity banner.
type integrityState int

const (
	integrityLoading integrityState = iota
	integrityVerified
	integrityCompromised
)

// IntegrityBanner renders the system-integrity attestation line. Every poll
// re-evaluates the state from scratch; nothing is sticky across polls except
// a user dismissal, which suppresses the banner until the program restarts.
type IntegrityBanner struct {
	state     integrityState
	status    *models.HandshakeStatus
	dismissed bool
}

// NewIntegrityBanner creates a banner in the loading state.
func NewIntegrityBanner() *IntegrityBanner {
	return &IntegrityBanner{}
}

// SetResult re-evaluates the banner from a settled poll. A fetch error, a
// missing payload, and a failed attestation invariant all collapse into the
// compromised state: the user sees one warning either way.
func (b *IntegrityBanner) SetResult(status *models.HandshakeStatus, err error) {
	b.status = status
	if err != nil || status == nil || !status.Verified() {
		b.state = integrityCompromised
		return
	}
	b.state = integrityVerified
}

// Dismiss hides the banner. There is no un-dismiss.
func (b *IntegrityBanner) Dismiss() {
	b.dismissed = true
}

// Dismissed reports whether the banner has been dismissed.
func (b *IntegrityBanner) Dismissed() bool {
	return b.dismissed
}

// Verified reports whether the last poll settled verified.
func (b *IntegrityBanner) Verified() bool {
	return b.state == integrityVerified
}

// Loading reports whether no poll has settled yet.
func (b *IntegrityBanner) Loading() bool {
	return b.state == integrityLoading
}

// View renders the banner line, or nothing when dismissed.
func (b *IntegrityBanner) View(width int) string {
	if b.dismissed {
		return ""
	}

	switch b.state {
	case integrityLoading:
		return bannerLoadingStyle.Width(width).Render("Verifying system integrity...")
	case integrityVerified:
		msg := "✓ SYSTEM INTEGRITY VERIFIED — all bid math computed backend-side"
		if b.status != nil {
			msg = fmt.Sprintf("%s · %s · %d actions logged",
				msg, b.status.Version, b.status.ActionsLogged)
		}
		return bannerVerifiedStyle.Width(width).Render(msg)
	default:
		return bannerCompromisedStyle.Width(width).Render(
			"⚠ INTEGRITY WARNING — backend attestation failed or unreachable · press d to dismiss")
	}
}
