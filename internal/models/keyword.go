package models

// Keyword match types as reported by the backend.
const (
	MatchBroad  = "broad"
	MatchExact  = "exact"
	MatchPhrase = "phrase"
)

// Keyword is a single bidding keyword record. Owned by the backend;
// read-only to the dashboard.
type Keyword struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	MatchType  string  `json:"match_type"`
	CurrentBid float64 `json:"current_bid"`
}

// KeywordList is the wire shape of the keyword listing endpoint.
type KeywordList struct {
	Keywords []Keyword `json:"keywords"`
}
