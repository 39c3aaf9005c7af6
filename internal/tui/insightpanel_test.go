package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidscope-io/bidscope/internal/insights"
)

func sampleInsights() []insights.Insight {
	return []insights.Insight{
		{
			Type: insights.TypeLeakyBucket, Key: "kw-1/leaky-bucket",
			Title: "Leaky Bucket", Keyword: "running shoes",
			Delta: -125, Severity: insights.SeverityCritical,
		},
		{
			Type: insights.TypeHiddenGem, Key: "kw-2/hidden-gem",
			Title: "Hidden Gem", Keyword: "trail boots",
			Delta: 1120, Severity: insights.SeverityOpportunity,
		},
		{
			Type: insights.TypeHotAuction, Key: "kw-3/hot-auction",
			Title: "Hot Auction", Keyword: "winter gear",
			Delta: 0, Severity: insights.SeverityWarning,
		},
	}
}

func TestInsightPanelApprovalSurvivesRefilter(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	// Approve the leaky bucket at cursor 0.
	p.ToggleApprove()
	assert.True(t, p.Approved("kw-1/leaky-bucket"))

	// Narrowing to gems and back must not remap the approval onto a
	// different card.
	p.SetFilter(insights.FilterGem)
	require.Len(t, p.Visible(), 1)
	p.SetFilter(insights.FilterAll)
	assert.True(t, p.Approved("kw-1/leaky-bucket"))
	assert.False(t, p.Approved("kw-2/hidden-gem"))
	assert.Equal(t, 1, p.ApprovedCount())
	assert.Equal(t, 1, p.PendingCount())
}

func TestInsightPanelApprovalSurvivesRederivation(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())
	p.ToggleApprove()

	// A fresh poll reorders the list; the approval follows the key.
	reordered := []insights.Insight{
		sampleInsights()[1],
		sampleInsights()[0],
	}
	p.SetInsights(reordered)

	assert.True(t, p.Approved("kw-1/leaky-bucket"))
	assert.Equal(t, 1, p.ApprovedCount())
}

func TestInsightPanelApproveOnlyApprovable(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	// Move to the hot auction; approving is a no-op there.
	p.MoveDown()
	p.MoveDown()
	require.Equal(t, insights.TypeHotAuction, p.Selected().Type)
	p.ToggleApprove()
	assert.Equal(t, 0, p.ApprovedCount())
}

func TestInsightPanelApproveDoesNotToggleExpansion(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	p.ToggleExpand()
	p.ToggleApprove()
	p.ToggleApprove()
	assert.Equal(t, "kw-1/leaky-bucket", p.expandedKey)
}

func TestInsightPanelSingleExpansion(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	p.ToggleExpand()
	assert.Equal(t, "kw-1/leaky-bucket", p.expandedKey)

	// Expanding another card collapses the first.
	p.MoveDown()
	p.ToggleExpand()
	assert.Equal(t, "kw-2/hidden-gem", p.expandedKey)

	// Toggling the same card collapses it.
	p.ToggleExpand()
	assert.Empty(t, p.expandedKey)
}

func TestInsightPanelFilterClampsCursor(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	p.MoveDown()
	p.MoveDown()
	require.Equal(t, 2, p.cursor)

	p.SetFilter(insights.FilterGem)
	assert.Equal(t, 0, p.cursor)
	require.NotNil(t, p.Selected())
	assert.Equal(t, insights.TypeHiddenGem, p.Selected().Type)
}

func TestInsightPanelCycleFilter(t *testing.T) {
	p := NewInsightPanel()
	assert.Equal(t, insights.FilterAll, p.Filter())

	p.CycleFilter()
	assert.Equal(t, insights.FilterLeaky, p.Filter())
	p.CycleFilter()
	p.CycleFilter()
	p.CycleFilter()
	assert.Equal(t, insights.FilterAll, p.Filter())
}

func TestInsightPanelErrorKeepsPreviousList(t *testing.T) {
	p := NewInsightPanel()
	p.SetInsights(sampleInsights())

	p.SetError(errors.New("backend down"))
	assert.Len(t, p.Visible(), 3)

	view := p.View(60)
	assert.Contains(t, view, "fetch failed")
	assert.Contains(t, view, "Leaky Bucket")
}
