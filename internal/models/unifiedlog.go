package models

import "encoding/json"

// LogType discriminates the unified log stream variants.
type LogType string

const (
	LogThought   LogType = "THOUGHT"
	LogHandshake LogType = "HANDSHAKE"
	LogBid       LogType = "BID"
)

// ThoughtPayload is an agent reasoning trace.
type ThoughtPayload struct {
	Agent     string `json:"agent"`
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	LatencyMS int    `json:"latency_ms"`
}

// HandshakePayload is an inter-component handshake message.
type HandshakePayload struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
	Payload  string `json:"payload,omitempty"`
}

// BidPayload is a bid computation record.
type BidPayload struct {
	Keyword    string  `json:"keyword"`
	OptimalBid float64 `json:"optimal_bid"`
	CurrentBid float64 `json:"current_bid"`
	State      string  `json:"state"`
	Reasoning  string  `json:"reasoning"`
}

// UnifiedLogEntry is one record of the combined log stream. The payload is a
// tagged union: at most one of Thought, Handshake, Bid is non-nil, selected
// by Type. Entries with an unknown tag keep all three nil and still render
// generically.
type UnifiedLogEntry struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Type      LogType `json:"type"`

	Thought   *ThoughtPayload   `json:"-"`
	Handshake *HandshakePayload `json:"-"`
	Bid       *BidPayload       `json:"-"`
}

// UnmarshalJSON decodes the type tag first, then the payload into the
// matching variant.
func (e *UnifiedLogEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string          `json:"id"`
		Timestamp string          `json:"timestamp"`
		Type      LogType         `json:"type"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.ID = raw.ID
	e.Timestamp = raw.Timestamp
	e.Type = raw.Type
	e.Thought, e.Handshake, e.Bid = nil, nil, nil

	if len(raw.Payload) == 0 {
		return nil
	}

	switch raw.Type {
	case LogThought:
		var p ThoughtPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		e.Thought = &p
	case LogHandshake:
		var p HandshakePayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		e.Handshake = &p
	case LogBid:
		var p BidPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		e.Bid = &p
	}
	return nil
}

// UnifiedLogResponse is the wire shape of /shadow/logs/unified.
type UnifiedLogResponse struct {
	Count int               `json:"count"`
	Logs  []UnifiedLogEntry `json:"logs"`
}

// PartitionLogs splits a flat unified log list into the three typed
// sub-streams, preserving backend order within each partition. Entries with
// an unknown tag are dropped from all three.
func PartitionLogs(entries []UnifiedLogEntry) (thoughts, handshakes, bids []UnifiedLogEntry) {
	for _, e := range entries {
		switch e.Type {
		case LogThought:
			thoughts = append(thoughts, e)
		case LogHandshake:
			handshakes = append(handshakes, e)
		case LogBid:
			bids = append(bids, e)
		}
	}
	return thoughts, handshakes, bids
}
