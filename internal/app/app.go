package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/odmoptions/internal/unit"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *unit.Registry
	loader   *unit.Loader
}

// NewApp is the constructor for the main application. The result goes to outW
// and logs to logW. Each App owns an isolated logger and unit registry.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := unit.NewRegistry()
	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   unit.NewLoader(reg),
	}
}

// Registry returns the application's unit registry. This is primarily for testing.
func (a *App) Registry() *unit.Registry {
	return a.registry
}
