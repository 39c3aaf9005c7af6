package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Integrity banner styles.
var (
	bannerVerifiedStyle = lipgloss.NewStyle().
				Background(colorGreen).
				Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
				Bold(true).
				Padding(0, 1)

	bannerCompromisedStyle = lipgloss.NewStyle().
				Background(colorRed).
				Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "15"}).
				Bold(true).
				Padding(0, 1)

	bannerLoadingStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)
)

// Insight card styles.
var (
	severityCriticalStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	severityOpportunityStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	severityWarningStyle     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)

	insightTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	insightKeywordStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	insightMetricStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	insightActionStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	insightApprovedStyle = lipgloss.NewStyle().Foreground(colorGreen)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	aggregateWasteStyle       = lipgloss.NewStyle().Foreground(colorRed)
	aggregateOpportunityStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// Log column styles.
var (
	logColumnTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	logTimestampStyle   = lipgloss.NewStyle().Foreground(colorDim)
	logThoughtStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	logHandshakeStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	logBidStyle         = lipgloss.NewStyle().Foreground(colorGreen)
	logErrorStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	liveBadgeOnStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	liveBadgeOffStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
