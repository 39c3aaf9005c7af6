package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	hints := getKeyHints(m)
	left := " " + hints

	right := fmt.Sprintf("%d approved · %d pending ",
		m.insightPanel.ApprovedCount(), m.insightPanel.PendingCount())
	right = hintStyle.Render(right)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("Tab", "switch")

	if !m.banner.Dismissed() && !m.banner.Verified() && !m.banner.Loading() {
		base += "  " + keyHint("d", "dismiss warning")
	}

	if m.focusedPanel == panelInsights {
		return base + "  " + keyHint("j/k", "navigate") + "  " + keyHint("Enter", "expand") + "  " +
			keyHint("a", "approve") + "  " + keyHint("f", "filter") + "  " + keyHint("1-4", "filter direct")
	}
	return base + "  " + keyHint("Space", "live/pause") + "  " + keyHint("h/l", "column") + "  " +
		keyHint("j/k", "scroll")
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
