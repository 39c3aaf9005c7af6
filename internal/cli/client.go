package cli

import (
	"fmt"

	"github.com/bidscope-io/bidscope/internal/api"
	"github.com/bidscope-io/bidscope/internal/config"
	"github.com/bidscope-io/bidscope/internal/models"
)

// loadBackend returns the persisted settings and a client pointed at the
// configured backend.
func loadBackend() (*models.Settings, *api.Client, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	client := api.NewClient(
		settings.Backend.BaseURL,
		api.WithAuthToken(settings.Backend.AuthToken),
	)
	return settings, client, nil
}
