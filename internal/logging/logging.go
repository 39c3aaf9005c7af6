// Package logging configures the debug logger. The TUI owns stdout, so debug
// output goes to a file under ~/.bidscope/ instead.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bidscope-io/bidscope/internal/config"
)

// New returns a file-backed debug logger when debug is true, or a no-op
// logger otherwise. Callers should defer Sync.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := config.EnsureGlobalDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare log directory: %w", err)
	}
	path, err := config.DebugLogFile()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
