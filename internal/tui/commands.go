package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidscope-io/bidscope/internal/api"
)

// Fetch timeouts. The handshake budget covers the client's internal retries.
const (
	handshakeTimeout = 15 * time.Second
	fetchTimeout     = 5 * time.Second
)

func fetchHandshakeCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), handshakeTimeout)
		defer cancel()

		status, err := client.Handshake(ctx)
		return HandshakeResultMsg{Status: status, Err: err}
	}
}

func fetchKeywordsCmd(client *api.Client, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		keywords, err := client.Keywords(ctx, limit)
		return KeywordsResultMsg{Keywords: keywords, Err: err}
	}
}

func fetchLogsCmd(client *api.Client, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		count, entries, err := client.UnifiedLogs(ctx, limit)
		return LogsResultMsg{Count: count, Entries: entries, Err: err}
	}
}

func handshakeTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return handshakeTickMsg{}
	})
}

func keywordsTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return keywordsTickMsg{}
	})
}

func logsTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return logsTickMsg{}
	})
}
