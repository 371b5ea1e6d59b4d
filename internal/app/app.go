package app

import (
	"io"
	"log/slog"

	"anarchyauth/internal/logging"
)

// App is a configured process: its settings, logger and dependency graph.
type App struct {
	Config Config
	Log    *slog.Logger
	*Wire
}

// New builds the logger described by cfg, writing to logOut, and wires the
// services.
func New(cfg Config, logOut io.Writer) (*App, error) {
	log, err := logging.New(logOut, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Log: log, Wire: w}, nil
}
