package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bidscope-io/bidscope/internal/insights"
)

// InsightPanel shows the ranked insight cards for the left panel. The insight
// list is replaced wholesale on every successful keyword poll; filter,
// expansion, and approval state are local and ephemeral. Approval and
// expansion are keyed by each insight's stable key, so a re-derivation or a
// filter change never remaps them onto different records.
type InsightPanel struct {
	all    []insights.Insight
	filter insights.Filter

	cursor      int
	expandedKey string
	approved    map[string]bool

	loaded bool
	err    error
}

// NewInsightPanel creates an empty insight panel.
func NewInsightPanel() *InsightPanel {
	return &InsightPanel{
		filter:   insights.FilterAll,
		approved: make(map[string]bool),
	}
}

// SetInsights replaces the derived insight list. Approval flags for keys no
// longer present are kept in the map but contribute nothing to counts or
// rendering.
func (p *InsightPanel) SetInsights(list []insights.Insight) {
	p.all = list
	p.loaded = true
	p.err = nil
	p.clampCursor()
}

// SetError records a failed keyword poll. The previous list stays visible;
// the error shows in the panel header until the next successful poll.
func (p *InsightPanel) SetError(err error) {
	p.err = err
	p.loaded = true
}

// Visible returns the insights passing the active filter, in ranked order.
func (p *InsightPanel) Visible() []insights.Insight {
	return p.filter.Apply(p.all)
}

// Selected returns the insight under the cursor, or nil.
func (p *InsightPanel) Selected() *insights.Insight {
	visible := p.Visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		return nil
	}
	return &visible[p.cursor]
}

// MoveUp moves the cursor up.
func (p *InsightPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down.
func (p *InsightPanel) MoveDown() {
	if p.cursor < len(p.Visible())-1 {
		p.cursor++
	}
}

// ToggleExpand expands the selected card, collapsing any other. At most one
// card is expanded at a time.
func (p *InsightPanel) ToggleExpand() {
	sel := p.Selected()
	if sel == nil {
		return
	}
	if p.expandedKey == sel.Key {
		p.expandedKey = ""
		return
	}
	p.expandedKey = sel.Key
}

// ToggleApprove flips the approval flag on the selected card. Only
// leaky-bucket and hidden-gem insights are approvable; toggling never
// changes the expansion state.
func (p *InsightPanel) ToggleApprove() {
	sel := p.Selected()
	if sel == nil || !sel.Approvable() {
		return
	}
	if p.approved[sel.Key] {
		delete(p.approved, sel.Key)
		return
	}
	p.approved[sel.Key] = true
}

// Approved reports whether the insight with the given key is approved.
func (p *InsightPanel) Approved(key string) bool {
	return p.approved[key]
}

// SetFilter switches the active filter and clamps the cursor into the new
// visible list.
func (p *InsightPanel) SetFilter(f insights.Filter) {
	p.filter = f
	p.clampCursor()
}

// CycleFilter advances to the next filter in order.
func (p *InsightPanel) CycleFilter() {
	for i, f := range insights.Filters {
		if f == p.filter {
			p.SetFilter(insights.Filters[(i+1)%len(insights.Filters)])
			return
		}
	}
	p.SetFilter(insights.FilterAll)
}

// Filter returns the active filter.
func (p *InsightPanel) Filter() insights.Filter {
	return p.filter
}

// ApprovedCount counts approved insights in the current full list.
func (p *InsightPanel) ApprovedCount() int {
	n := 0
	for _, in := range p.all {
		if in.Approvable() && p.approved[in.Key] {
			n++
		}
	}
	return n
}

// PendingCount counts approvable insights not yet approved.
func (p *InsightPanel) PendingCount() int {
	n := 0
	for _, in := range p.all {
		if in.Approvable() && !p.approved[in.Key] {
			n++
		}
	}
	return n
}

func (p *InsightPanel) clampCursor() {
	visible := p.Visible()
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func severityBadge(s insights.Severity) string {
	switch s {
	case insights.SeverityCritical:
		return severityCriticalStyle.Render("●")
	case insights.SeverityOpportunity:
		return severityOpportunityStyle.Render("●")
	default:
		return severityWarningStyle.Render("●")
	}
}

// View renders the insight panel content.
func (p *InsightPanel) View(width int) string {
	var lines []string

	header := sectionHeaderStyle.Render("Tactical Insights") + "  " +
		hintStyle.Render(fmt.Sprintf("[%s]", p.filter))
	lines = append(lines, header)

	if p.err != nil {
		lines = append(lines, logErrorStyle.Render("fetch failed: "+p.err.Error()))
	}

	if !p.loaded {
		lines = append(lines, "", bannerLoadingStyle.Render("Loading keywords..."))
		return strings.Join(lines, "\n")
	}

	visible := p.Visible()
	if len(visible) == 0 {
		lines = append(lines, "", hintStyle.Render("No insights for this filter."))
	}

	for i, in := range visible {
		lines = append(lines, p.renderCard(i, in, width)...)
	}

	lines = append(lines, "", p.renderTotals())
	return strings.Join(lines, "\n")
}

func (p *InsightPanel) renderCard(i int, in insights.Insight, width int) []string {
	title := fmt.Sprintf("%s %s %s",
		severityBadge(in.Severity),
		insightTitleStyle.Render(in.Title),
		insightKeywordStyle.Render(in.Keyword))

	if in.Approvable() {
		if p.approved[in.Key] {
			title += " " + insightApprovedStyle.Render("[approved]")
		} else {
			title += " " + hintStyle.Render("[pending]")
		}
	}

	maxWidth := width - 2
	if maxWidth > 0 {
		title = ansi.Truncate(title, maxWidth, "…")
	}
	if i == p.cursor {
		title = selectedItemStyle.Width(width).Render(title)
	} else {
		title = "  " + title
	}

	lines := []string{title}
	if p.expandedKey != in.Key {
		return lines
	}

	delta := fmt.Sprintf("$%+d", in.Delta)
	deltaStyle := hintStyle
	if in.Delta < 0 {
		deltaStyle = aggregateWasteStyle
	} else if in.Delta > 0 {
		deltaStyle = aggregateOpportunityStyle
	}

	detail := []string{
		"    " + insightMetricStyle.Render(in.Metric),
		"    " + hintStyle.Render(in.SubMetric),
		"    " + hintStyle.Render("delta ") + deltaStyle.Render(delta),
		"    " + insightActionStyle.Render("→ "+in.Action),
	}
	return append(lines, detail...)
}

func (p *InsightPanel) renderTotals() string {
	t := insights.Aggregate(p.all)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		hintStyle.Render("waste "),
		aggregateWasteStyle.Render(fmt.Sprintf("$%d", t.Waste)),
		hintStyle.Render("  opportunity "),
		aggregateOpportunityStyle.Render(fmt.Sprintf("$%d", t.Opportunity)),
		hintStyle.Render("  net alpha "),
		insightMetricStyle.Render(fmt.Sprintf("$%+d", t.Net)),
		hintStyle.Render(fmt.Sprintf("  %d approved / %d pending",
			p.ApprovedCount(), p.PendingCount())),
	)
}
