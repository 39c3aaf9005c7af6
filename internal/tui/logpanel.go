package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bidscope-io/bidscope/internal/models"
)

// Column indices within the log panel.
const (
	colThoughts = iota
	colHandshakes
	colBids
	colCount
)

var columnTitles = [colCount]string{"THOUGHTS", "HANDSHAKES", "BIDS"}

// LogPanel shows the unified log stream partitioned into three columns.
// Each poll replaces the whole list; partitions preserve backend order and
// scroll independently. A fetch error replaces the panel body with a single
// error message until the next successful poll.
type LogPanel struct {
	live   bool
	loaded bool
	err    error
	count  int

	columns    [colCount][]models.UnifiedLogEntry
	offsets    [colCount]int
	focusedCol int

	width  int
	height int
}

// NewLogPanel creates a log panel with live polling enabled.
func NewLogPanel() *LogPanel {
	return &LogPanel{live: true}
}

// SetSize updates dimensions.
func (p *LogPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetEntries replaces the log list with a fresh snapshot.
func (p *LogPanel) SetEntries(count int, entries []models.UnifiedLogEntry) {
	thoughts, handshakes, bids := models.PartitionLogs(entries)
	p.columns = [colCount][]models.UnifiedLogEntry{thoughts, handshakes, bids}
	p.count = count
	p.loaded = true
	p.err = nil
	for i := range p.offsets {
		p.clampOffset(i)
	}
}

// SetError records a failed poll. The whole panel degrades to one error
// line; there is no partial-column fallback.
func (p *LogPanel) SetError(err error) {
	p.err = err
	p.loaded = true
}

// ToggleLive flips the live flag and returns the new value. Pausing stops
// requests entirely; it has no backend effect.
func (p *LogPanel) ToggleLive() bool {
	p.live = !p.live
	return p.live
}

// Live reports whether auto-refresh is on.
func (p *LogPanel) Live() bool {
	return p.live
}

// Column returns the entries in the given column.
func (p *LogPanel) Column(col int) []models.UnifiedLogEntry {
	if col < 0 || col >= colCount {
		return nil
	}
	return p.columns[col]
}

// FocusNextColumn moves column focus right, wrapping.
func (p *LogPanel) FocusNextColumn() {
	p.focusedCol = (p.focusedCol + 1) % colCount
}

// FocusPrevColumn moves column focus left, wrapping.
func (p *LogPanel) FocusPrevColumn() {
	p.focusedCol = (p.focusedCol + colCount - 1) % colCount
}

// ScrollUp scrolls the focused column up by n entries.
func (p *LogPanel) ScrollUp(n int) {
	p.offsets[p.focusedCol] -= n
	p.clampOffset(p.focusedCol)
}

// ScrollDown scrolls the focused column down by n entries.
func (p *LogPanel) ScrollDown(n int) {
	p.offsets[p.focusedCol] += n
	p.clampOffset(p.focusedCol)
}

func (p *LogPanel) clampOffset(col int) {
	max := len(p.columns[col]) - p.rowsPerColumn()
	if max < 0 {
		max = 0
	}
	if p.offsets[col] > max {
		p.offsets[col] = max
	}
	if p.offsets[col] < 0 {
		p.offsets[col] = 0
	}
}

// rowsPerColumn returns how many entries fit in a column; each entry renders
// as two lines, and one line is reserved for the column title.
func (p *LogPanel) rowsPerColumn() int {
	rows := (p.height - 1) / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the three-column log panel.
func (p *LogPanel) View(width, height int) string {
	p.width = width
	p.height = height

	if p.err != nil {
		return logErrorStyle.Render("log stream unavailable: " + p.err.Error())
	}
	if !p.loaded {
		return bannerLoadingStyle.Render("Loading unified logs...")
	}

	colWidth := (width - 2) / colCount
	if colWidth < 10 {
		colWidth = 10
	}

	cols := make([]string, 0, colCount)
	for c := 0; c < colCount; c++ {
		cols = append(cols, p.renderColumn(c, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols[0], " ", cols[1], " ", cols[2])
}

func (p *LogPanel) renderColumn(col, width int) string {
	entries := p.columns[col]

	title := fmt.Sprintf("%s (%d)", columnTitles[col], len(entries))
	if col == p.focusedCol {
		title = logColumnTitleStyle.Render(title)
	} else {
		title = hintStyle.Render(title)
	}
	lines := []string{title}

	rows := p.rowsPerColumn()
	end := p.offsets[col] + rows
	if end > len(entries) {
		end = len(entries)
	}

	for i := p.offsets[col]; i < end; i++ {
		e := entries[i]
		ts := logTimestampStyle.Render(formatLogTimestamp(e.Timestamp))
		body := summarizeEntry(e)
		if width > 0 {
			body = ansi.Truncate(body, width, "…")
		}
		lines = append(lines, ts, body)
	}

	if len(entries) == 0 {
		lines = append(lines, hintStyle.Render("(empty)"))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// summarizeEntry renders the one-line body for a log entry. Entries whose
// payload failed to match their tag fall back to the raw type.
func summarizeEntry(e models.UnifiedLogEntry) string {
	switch {
	case e.Thought != nil:
		return logThoughtStyle.Render(fmt.Sprintf("%s·%s %dms %s",
			e.Thought.Agent, e.Thought.Model, e.Thought.LatencyMS, e.Thought.Response))
	case e.Handshake != nil:
		return logHandshakeStyle.Render(fmt.Sprintf("%s→%s %s",
			e.Handshake.Sender, e.Handshake.Receiver, e.Handshake.Message))
	case e.Bid != nil:
		return logBidStyle.Render(fmt.Sprintf("%s $%.2f→$%.2f %s",
			e.Bid.Keyword, e.Bid.CurrentBid, e.Bid.OptimalBid, e.Bid.State))
	default:
		return hintStyle.Render(string(e.Type))
	}
}
