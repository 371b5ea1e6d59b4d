package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// Sweeper evicts expired sessions until ctx is done.
type Sweeper interface {
	Run(ctx context.Context, interval time.Duration)
}

// RateLimit configures the per-client limiter. Clients are keyed by socket
// address unless the peer is listed in TrustedProxies.
type RateLimit struct {
	Enabled        bool
	RPS            float64
	Burst          int
	TrustedProxies []string
}

// Config holds transport settings.
type Config struct {
	ListenAddr     string
	MaxUploadBytes int64
	SweepInterval  time.Duration
	RateLimit      RateLimit
	Metrics        bool
}

func (c *Config) setDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 10 << 20
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = time.Minute
	}
}

// Deps are the services a Server dispatches to.
type Deps struct {
	Identity domain.IdentityService
	Signing  domain.SigningService
	Export   domain.ExportService
	Sessions domain.SessionStore
	Sweeper  Sweeper                        // optional
	Iris     func(ctx context.Context) bool // optional health probe
	Metrics  *metrics.Metrics               // optional
	Log      *slog.Logger
}

// Server is an http.Handler serving the key API.
type Server struct {
	cfg Config
	mux *http.ServeMux

	identity domain.IdentityService
	signing  domain.SigningService
	export   domain.ExportService
	sessions domain.SessionStore
	sweeper  Sweeper
	iris     func(ctx context.Context) bool
	metrics  *metrics.Metrics
	limiter  *clientLimiter
	proxies  trustedProxies
	log      *slog.Logger
}

// New builds a Server and registers its routes.
func New(cfg Config, d Deps) (*Server, error) {
	if d.Identity == nil || d.Signing == nil || d.Export == nil || d.Sessions == nil {
		return nil, errors.New("server: identity, signing, export and session dependencies required")
	}
	cfg.setDefaults()
	proxies, err := parseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		identity: d.Identity,
		signing:  d.Signing,
		export:   d.Export,
		sessions: d.Sessions,
		sweeper:  d.Sweeper,
		iris:     d.Iris,
		metrics:  d.Metrics,
		proxies:  proxies,
		log:      d.Log,
	}
	if cfg.RateLimit.Enabled {
		s.limiter = newClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
	}
	s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	client := s.proxies.clientIP(r)
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	defer func() {
		if v := recover(); v != nil {
			s.log.Error("panic", "path", r.URL.Path, "panic", fmt.Sprint(v))
			if !rec.wrote {
				writeFailure(rec, http.StatusInternalServerError, "internal error", domain.KindInternal)
			}
		}
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(route, rec.status, elapsed)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_ip", client,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", elapsed,
		)
	}()

	if s.limiter != nil && !exemptFromLimit(r.URL.Path) && !s.limiter.allow(client, start) {
		s.metrics.RateLimited()
		rec.Header().Set("Retry-After", "1")
		writeFailure(rec, http.StatusTooManyRequests, "too many requests", kindRateLimited)
		return
	}
	s.mux.ServeHTTP(rec, r)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln and drives the session sweeper. Both stop
// when ctx is cancelled; in-flight requests get shutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.sweeper != nil {
		go s.sweeper.Run(ctx, s.cfg.SweepInterval)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wrote {
		return
	}
	r.status = code
	r.wrote = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
