package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bidscope-io/bidscope/internal/api"
	"github.com/bidscope-io/bidscope/internal/insights"
	"github.com/bidscope-io/bidscope/internal/models"
)

// Focusable panels.
const (
	panelInsights = 0
	panelLogs     = 1
)

// Model is the root Bubbletea model for the dashboard. The three panels own
// independent poll chains and never share data; the model only routes
// messages and keystrokes.
type Model struct {
	settings *models.Settings
	client   *api.Client
	logger   *zap.Logger

	banner       *IntegrityBanner
	insightPanel *InsightPanel
	logPanel     *LogPanel

	focusedPanel int
	width        int
	height       int
	showHelp     bool

	// logPolling marks an armed logs tick chain, so toggling live off and on
	// never stacks a second chain.
	logPolling bool
}

// NewModel creates the initial dashboard model.
func NewModel(settings *models.Settings, client *api.Client, logger *zap.Logger) Model {
	return Model{
		settings:     settings,
		client:       client,
		logger:       logger,
		banner:       NewIntegrityBanner(),
		insightPanel: NewInsightPanel(),
		logPanel:     NewLogPanel(),
		logPolling:   true,
	}
}

// Init fires the first poll for each panel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchHandshakeCmd(m.client),
		fetchKeywordsCmd(m.client, m.settings.Limits.KeywordLimit()),
		fetchLogsCmd(m.client, m.settings.Limits.LogLimit()),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// ── Integrity poll chain ───────────────────────────────────────
	case HandshakeResultMsg:
		m.banner.SetResult(msg.Status, msg.Err)
		if msg.Err != nil {
			m.logger.Debug("handshake poll failed", zap.Error(msg.Err))
		}
		return m, handshakeTick(m.settings.Polling.HandshakeEvery())

	case handshakeTickMsg:
		return m, fetchHandshakeCmd(m.client)

	// ── Keyword poll chain ─────────────────────────────────────────
	case KeywordsResultMsg:
		if msg.Err != nil {
			m.logger.Debug("keyword poll failed", zap.Error(msg.Err))
			m.insightPanel.SetError(msg.Err)
		} else {
			m.insightPanel.SetInsights(insights.Derive(msg.Keywords))
		}
		return m, keywordsTick(m.settings.Polling.KeywordsEvery())

	case keywordsTickMsg:
		return m, fetchKeywordsCmd(m.client, m.settings.Limits.KeywordLimit())

	// ── Unified log poll chain ─────────────────────────────────────
	case LogsResultMsg:
		if msg.Err != nil {
			m.logger.Debug("log poll failed", zap.Error(msg.Err))
			m.logPanel.SetError(msg.Err)
		} else {
			m.logPanel.SetEntries(msg.Count, msg.Entries)
		}
		if m.logPanel.Live() {
			return m, logsTick(m.settings.Polling.LogsEvery())
		}
		m.logPolling = false
		return m, nil

	case logsTickMsg:
		if !m.logPanel.Live() {
			m.logPolling = false
			return m, nil
		}
		return m, fetchLogsCmd(m.client, m.settings.Limits.LogLimit())

	// ── Settings hot reload ────────────────────────────────────────
	case SettingsReloadedMsg:
		m.settings = msg.Settings
		m.client = api.NewClient(
			msg.Settings.Backend.BaseURL,
			api.WithAuthToken(msg.Settings.Backend.AuthToken),
		)
		m.logger.Debug("settings reloaded",
			zap.String("base_url", msg.Settings.Backend.BaseURL))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit), msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, globalKeys.Tab):
		m.focusedPanel = 1 - m.focusedPanel
		return m, nil

	case key.Matches(msg, globalKeys.Dismiss):
		m.banner.Dismiss()
		return m, nil
	}

	if m.focusedPanel == panelInsights {
		m.handleInsightKey(msg)
		return m, nil
	}
	return m.handleLogKey(msg)
}

func (m *Model) handleInsightKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, insightKeys.Up):
		m.insightPanel.MoveUp()
	case key.Matches(msg, insightKeys.Down):
		m.insightPanel.MoveDown()
	case key.Matches(msg, insightKeys.Expand):
		m.insightPanel.ToggleExpand()
	case key.Matches(msg, insightKeys.Approve):
		m.insightPanel.ToggleApprove()
	case key.Matches(msg, insightKeys.CycleFilter):
		m.insightPanel.CycleFilter()
	case key.Matches(msg, insightKeys.FilterAll):
		m.insightPanel.SetFilter(insights.FilterAll)
	case key.Matches(msg, insightKeys.FilterLeaky):
		m.insightPanel.SetFilter(insights.FilterLeaky)
	case key.Matches(msg, insightKeys.FilterGem):
		m.insightPanel.SetFilter(insights.FilterGem)
	case key.Matches(msg, insightKeys.FilterAuct):
		m.insightPanel.SetFilter(insights.FilterAuction)
	}
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, logKeys.Live):
		live := m.logPanel.ToggleLive()
		// Resuming schedules the next tick; it does not fetch immediately.
		if live && !m.logPolling {
			m.logPolling = true
			return m, logsTick(m.settings.Polling.LogsEvery())
		}
		return m, nil

	case key.Matches(msg, logKeys.Up):
		m.logPanel.ScrollUp(1)
	case key.Matches(msg, logKeys.Down):
		m.logPanel.ScrollDown(1)
	case key.Matches(msg, logKeys.PrevCol):
		m.logPanel.FocusPrevColumn()
	case key.Matches(msg, logKeys.NextCol):
		m.logPanel.FocusNextColumn()
	case key.Matches(msg, logKeys.PageUp):
		m.logPanel.ScrollUp(m.logPanel.rowsPerColumn())
	case key.Matches(msg, logKeys.PageDown):
		m.logPanel.ScrollDown(m.logPanel.rowsPerColumn())
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width < 80 || m.height < 24 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render("Terminal too small (need 80x24)")
	}

	header := renderHeader(m.settings.Backend.BaseURL, m.focusedPanel, m.banner, m.logPanel.Live(), m.width)
	banner := m.banner.View(m.width)

	layout := computeLayout(m.width, m.height, bannerLines(banner))

	leftInner := layout.leftWidth - 2
	rightInner := layout.rightWidth - 2
	innerHeight := layout.contentHeight - 2
	m.logPanel.SetSize(rightInner, innerHeight)

	panels := renderPanels(
		m.insightPanel.View(leftInner),
		m.logPanel.View(rightInner, innerHeight),
		layout,
		m.focusedPanel,
	)

	statusBar := renderStatusBar(&m, m.width)

	parts := []string{header}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, panels, statusBar)
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.showHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}
	return view
}

func bannerLines(banner string) int {
	if banner == "" {
		return 0
	}
	return lipgloss.Height(banner)
}
