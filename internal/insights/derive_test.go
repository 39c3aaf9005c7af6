package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidscope-io/bidscope/internal/models"
)

func TestDeriveRules(t *testing.T) {
	keywords := []models.Keyword{
		// seed 5 (odd, not converting): broad + high bid -> leaky bucket
		{ID: "abcde", Text: "running shoes", MatchType: models.MatchBroad, CurrentBid: 1.00},
		// seed 3 (odd): exact match, bid over 3.0 -> hot auction only
		{ID: "ab", Text: "trail shoes", MatchType: models.MatchExact, CurrentBid: 3.50},
		// seed 6 (even, converting): cheap bid -> hidden gem
		{ID: "abcd", Text: "waterproof boots", MatchType: models.MatchExact, CurrentBid: 1.00},
	}

	out := Derive(keywords)
	require.Len(t, out, 3)

	// Stable sort by severity weight: critical, opportunity, warning.
	leaky, gem, hot := out[0], out[1], out[2]

	assert.Equal(t, TypeLeakyBucket, leaky.Type)
	assert.Equal(t, "abcde/leaky-bucket", leaky.Key)
	assert.Equal(t, "running shoes", leaky.Keyword)
	assert.Equal(t, -125, leaky.Delta) // floor(1.00 * (100 + 5*5))
	assert.Equal(t, "$125/mo spend without conversion", leaky.Metric)
	assert.Equal(t, "reduce bid by 65%", leaky.Action)
	assert.Equal(t, SeverityCritical, leaky.Severity)
	assert.True(t, leaky.Approvable())

	assert.Equal(t, TypeHiddenGem, gem.Type)
	assert.Equal(t, "abcd/hidden-gem", gem.Key)
	assert.Equal(t, 1120, gem.Delta) // 1000 + 6*20
	assert.Equal(t, "14% conversion probability", gem.SubMetric) // 8 + 6%15
	assert.Equal(t, "scale bid 2x", gem.Action)
	assert.Equal(t, SeverityOpportunity, gem.Severity)
	assert.True(t, gem.Approvable())

	assert.Equal(t, TypeHotAuction, hot.Type)
	assert.Equal(t, 0, hot.Delta)
	assert.Equal(t, "reduce aggression", hot.Action)
	assert.Equal(t, SeverityWarning, hot.Severity)
	assert.False(t, hot.Approvable())
}

func TestDeriveMultipleInsightsPerKeyword(t *testing.T) {
	// seed 1 (odd): broad match at $3.50 trips both the leaky-bucket and
	// hot-auction rules.
	out := Derive([]models.Keyword{
		{ID: "a", Text: "shoes", MatchType: models.MatchBroad, CurrentBid: 3.50},
	})

	require.Len(t, out, 2)
	assert.Equal(t, TypeLeakyBucket, out[0].Type)
	assert.Equal(t, -367, out[0].Delta) // floor(3.50 * (100 + 1*5))
	assert.Equal(t, TypeHotAuction, out[1].Type)
}

func TestDeriveNoSignal(t *testing.T) {
	// seed 4 (even, converting): converting keywords never leak, and the bid
	// is neither cheap nor hot.
	out := Derive([]models.Keyword{
		{ID: "abcd", Text: "shoes", MatchType: models.MatchBroad, CurrentBid: 2.00},
	})
	assert.Empty(t, out)
}

func TestDeriveTruncatesToMax(t *testing.T) {
	var keywords []models.Keyword
	for i := 0; i < 10; i++ {
		keywords = append(keywords, models.Keyword{
			ID: "kw", Text: "hot", MatchType: models.MatchExact, CurrentBid: 3.50,
		})
	}

	out := Derive(keywords)
	assert.Len(t, out, MaxInsights)
}

func TestDeriveStableTieOrder(t *testing.T) {
	// Two leaky buckets with equal severity keep their input order.
	keywords := []models.Keyword{
		{ID: "a", Text: "first", MatchType: models.MatchBroad, CurrentBid: 1.00},  // seed 1
		{ID: "ab", Text: "second", MatchType: models.MatchBroad, CurrentBid: 1.00}, // seed 3
	}

	out := Derive(keywords)
	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Keyword)
	assert.Equal(t, "second", out[1].Keyword)
}

func TestDeriveDeterministic(t *testing.T) {
	keywords := []models.Keyword{
		{ID: "abcde", Text: "running shoes", MatchType: models.MatchBroad, CurrentBid: 1.00},
		{ID: "abcd", Text: "waterproof boots", MatchType: models.MatchExact, CurrentBid: 1.00},
	}

	assert.Equal(t, Derive(keywords), Derive(keywords))
}

func TestAggregate(t *testing.T) {
	list := []Insight{
		{Type: TypeLeakyBucket, Delta: -125},
		{Type: TypeHiddenGem, Delta: 1120},
		{Type: TypeHotAuction, Delta: 0},
	}

	totals := Aggregate(list)
	assert.Equal(t, 125, totals.Waste)
	assert.Equal(t, 1120, totals.Opportunity)
	assert.Equal(t, 995, totals.Net)
}
