// Package insights derives ranked recommendation cards from raw keyword
// records. Derivation is pure and deterministic: the backend owns all real
// bid math, and the metrics here are display-grade signals computed from a
// positional seed, not a statistical model.
package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/bidscope-io/bidscope/internal/models"
)

// InsightType categorizes a derived recommendation.
type InsightType string

const (
	TypeLeakyBucket InsightType = "leaky-bucket"
	TypeHiddenGem   InsightType = "hidden-gem"
	TypeSoftAuction InsightType = "soft-auction"
	TypeHotAuction  InsightType = "hot-auction"
)

// Severity orders insights for display.
type Severity string

const (
	SeverityCritical    Severity = "critical"
	SeverityOpportunity Severity = "opportunity"
	SeverityWarning     Severity = "warning"
)

// Weight returns the ranking weight for stable severity sorting.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityOpportunity:
		return 2
	case SeverityWarning:
		return 1
	}
	return 0
}

// MaxInsights bounds the ranked list.
const MaxInsights = 6

// Insight is a derived, ephemeral recommendation card. Key is a stable
// identifier (keyword ID + type) so approval and expansion state survives
// re-derivation and refiltering, unlike the array positions a list render
// would otherwise hand out.
type Insight struct {
	Type      InsightType
	Key       string
	Title     string
	Keyword   string
	Metric    string
	SubMetric string
	Delta     int // dollars; negative = waste, positive = opportunity, zero = neutral
	Action    string
	Severity  Severity
}

// Approvable reports whether approve/revoke is offered for this insight.
// Only spend-oriented cards carry a pre-authorizable action.
func (in Insight) Approvable() bool {
	return in.Type == TypeLeakyBucket || in.Type == TypeHiddenGem
}

func stableKey(keywordID string, t InsightType) string {
	return keywordID + "/" + string(t)
}

// Derive computes the ranked insight list for a keyword snapshot. The rules
// are independent: a single keyword may emit zero, one, two, or three
// insights. Output is stable-sorted by descending severity weight and
// truncated to MaxInsights; ties keep their relative input order.
func Derive(keywords []models.Keyword) []Insight {
	var out []Insight

	for i, kw := range keywords {
		seed := len(kw.ID) + i
		isConverting := seed%2 == 0

		if kw.MatchType == models.MatchBroad && kw.CurrentBid > 0.80 && !isConverting {
			waste := int(math.Floor(kw.CurrentBid * float64(100+seed*5)))
			out = append(out, Insight{
				Type:      TypeLeakyBucket,
				Key:       stableKey(kw.ID, TypeLeakyBucket),
				Title:     "Leaky Bucket",
				Keyword:   kw.Text,
				Metric:    fmt.Sprintf("$%d/mo spend without conversion", waste),
				SubMetric: fmt.Sprintf("broad match at $%.2f CPC", kw.CurrentBid),
				Delta:     -waste,
				Action:    "reduce bid by 65%",
				Severity:  SeverityCritical,
			})
		}

		if kw.CurrentBid < 1.20 && isConverting {
			potential := int(math.Floor(float64(1000 + seed*20)))
			out = append(out, Insight{
				Type:      TypeHiddenGem,
				Key:       stableKey(kw.ID, TypeHiddenGem),
				Title:     "Hidden Gem",
				Keyword:   kw.Text,
				Metric:    fmt.Sprintf("$%d untapped potential", potential),
				SubMetric: fmt.Sprintf("%d%% conversion probability", 8+seed%15),
				Delta:     potential,
				Action:    "scale bid 2x",
				Severity:  SeverityOpportunity,
			})
		}

		if kw.CurrentBid > 3.0 {
			out = append(out, Insight{
				Type:      TypeHotAuction,
				Key:       stableKey(kw.ID, TypeHotAuction),
				Title:     "Hot Auction",
				Keyword:   kw.Text,
				Metric:    fmt.Sprintf("$%.2f CPC", kw.CurrentBid),
				SubMetric: "auction pressure rising",
				Delta:     0,
				Action:    "reduce aggression",
				Severity:  SeverityWarning,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Weight() > out[j].Severity.Weight()
	})

	if len(out) > MaxInsights {
		out = out[:MaxInsights]
	}
	return out
}

// Totals are the aggregate figures shown under the insight list. Recomputed
// from the current list on every call, never cached.
type Totals struct {
	Waste       int
	Opportunity int
	Net         int
}

// Aggregate sums waste over leaky-bucket insights and opportunity over
// hidden-gem insights; Net is opportunity minus waste.
func Aggregate(list []Insight) Totals {
	var t Totals
	for _, in := range list {
		switch in.Type {
		case TypeLeakyBucket:
			if in.Delta < 0 {
				t.Waste += -in.Delta
			} else {
				t.Waste += in.Delta
			}
		case TypeHiddenGem:
			t.Opportunity += in.Delta
		}
	}
	t.Net = t.Opportunity - t.Waste
	return t
}
