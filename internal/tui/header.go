package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(baseURL string, focusedPanel int, banner *IntegrityBanner, live bool, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Bidscope")
	backend := hintStyle.Render(baseURL)

	tabs := renderTabs([]string{"Insights", "Logs"}, focusedPanel)

	left := fmt.Sprintf(" %s %s %s  %s", dot, name, backend, tabs)
	right := fmt.Sprintf("%s  %s ", renderIntegrityBadge(banner), renderLiveBadge(live))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, sectionHeaderStyle.Render(tab))
		} else {
			parts = append(parts, hintStyle.Render(tab))
		}
	}
	return strings.Join(parts, hintStyle.Render(" | "))
}

// renderIntegrityBadge is the compact header echo of the banner state; it
// stays visible after the banner itself is dismissed.
func renderIntegrityBadge(banner *IntegrityBanner) string {
	switch {
	case banner.Loading():
		return hintStyle.Render("● verifying")
	case banner.Verified():
		return liveBadgeOnStyle.Render("● verified")
	default:
		return logErrorStyle.Render("⚠ compromised")
	}
}

func renderLiveBadge(live bool) string {
	if live {
		return liveBadgeOnStyle.Render("● LIVE")
	}
	return liveBadgeOffStyle.Render("◌ PAUSED")
}
