package app

import (
	"context"
	"log/slog"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/iris"
	"anarchyauth/internal/metrics"
	"anarchyauth/internal/server"
	exportsvc "anarchyauth/internal/services/export"
	identitysvc "anarchyauth/internal/services/identity"
	signingsvc "anarchyauth/internal/services/signing"
	"anarchyauth/internal/store"
)

// Wire bundles the store, services and transport for the CLI.
type Wire struct {
	Sessions *store.SessionMemoryStore
	Iris     *iris.Client // nil in fallback mode
	Identity *identitysvc.Service
	Signing  *signingsvc.Service
	Export   *exportsvc.Service
	Metrics  *metrics.Metrics // nil when disabled
	Server   *server.Server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if log == nil {
		log = slog.Default()
	}

	sessions := store.NewSessionMemoryStore(store.Options{
		TTL:         cfg.Sessions.TTL,
		MaxSessions: cfg.Sessions.Max,
		Logger:      log.With("component", "store"),
	})

	w := &Wire{Sessions: sessions}

	// Only assign the extractor when configured so a nil client never hides
	// behind a non-nil interface.
	var extractor domain.TemplateExtractor
	var probe func(context.Context) bool
	if cfg.Extractor.URL != "" {
		w.Iris = iris.NewClient(cfg.Extractor.URL, cfg.Extractor.Timeout, log.With("component", "iris"))
		extractor = w.Iris
		probe = w.Iris.Healthy
	}

	w.Identity = identitysvc.New(sessions, extractor, log.With("component", "identity"))
	w.Signing = signingsvc.New(sessions, log.With("component", "signing"))
	w.Export = exportsvc.New(sessions, nil, log.With("component", "export"))

	if cfg.Metrics.Enabled {
		w.Metrics = metrics.New(sessions.Len)
	}

	srv, err := server.New(server.Config{
		ListenAddr:     cfg.ListenAddr,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		SweepInterval:  cfg.Sessions.SweepInterval,
		RateLimit: server.RateLimit{
			Enabled:        cfg.RateLimit.Enabled,
			RPS:            cfg.RateLimit.RPS,
			Burst:          cfg.RateLimit.Burst,
			TrustedProxies: cfg.RateLimit.TrustedProxies,
		},
		Metrics: cfg.Metrics.Enabled,
	}, server.Deps{
		Identity: w.Identity,
		Signing:  w.Signing,
		Export:   w.Export,
		Sessions: sessions,
		Sweeper:  sessions,
		Iris:     probe,
		Metrics:  w.Metrics,
		Log:      log.With("component", "http"),
	})
	if err != nil {
		return nil, err
	}
	w.Server = srv
	return w, nil
}
