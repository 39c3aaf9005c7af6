// Package tui implements the interactive dashboard for Bidscope.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bidscope-io/bidscope/internal/api"
	"github.com/bidscope-io/bidscope/internal/config"
	"github.com/bidscope-io/bidscope/internal/models"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the dashboard with the given settings. It blocks until the
// user quits.
func Run(settings *models.Settings, logger *zap.Logger) error {
	client := api.NewClient(
		settings.Backend.BaseURL,
		api.WithAuthToken(settings.Backend.AuthToken),
	)

	model := NewModel(settings, client, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	ref := &programRef{}
	ref.Set(p)

	// Settings edits on disk reach the running dashboard without a restart.
	watcher, err := config.WatchSettings(func(s *models.Settings) {
		ref.Send(SettingsReloadedMsg{Settings: s})
	})
	if err != nil {
		logger.Debug("settings watch unavailable", zap.Error(err))
	} else {
		defer watcher.Stop()
	}
	defer ref.Clear()

	_, err = p.Run()
	return err
}
