// Package server exposes the benchmark over HTTP: the workload endpoint,
// the mode-switch control surface, and the metrics report.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zoobzio/clockz"

	"github.com/modebench/modebench/internal/bench"
	"github.com/modebench/modebench/internal/config"
	"github.com/modebench/modebench/internal/metrics"
	"github.com/modebench/modebench/internal/strategy"
)

// Server is the benchmark HTTP server.
type Server struct {
	cfg       *config.Config
	runner    *bench.Runner
	registry  *strategy.Registry
	collector *metrics.Collector
	logger    *slog.Logger
	clock     clockz.Clock

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger overrides the structured logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock overrides the time source used by the sleep workload.
func WithClock(clock clockz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// New creates a server over the given components.
func New(cfg *config.Config, runner *bench.Runner, registry *strategy.Registry, collector *metrics.Collector, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		runner:    runner,
		registry:  registry,
		collector: collector,
		logger:    slog.Default(),
		clock:     clockz.RealClock,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:    cfg.Listen,
		Handler: s.withRequestLog(s.routes()),
		// The sleep endpoint holds connections open for the full blocking
		// duration, so the write timeout must comfortably exceed it.
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10*time.Second + time.Duration(cfg.Sleep),
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return s
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sleep", s.handleSleep)
	mux.HandleFunc("GET /mode", s.handleGetMode)
	mux.HandleFunc("GET /mode/{m}", s.handleSetMode)
	mux.HandleFunc("GET /metrics", s.handleMetrics)
	mux.HandleFunc("GET /metrics/json", s.handleMetricsJSON)
	mux.HandleFunc("GET /reset", s.handleReset)
	mux.HandleFunc("GET /threadinfo", s.handleThreadInfo)
	mux.HandleFunc("GET /health", s.handleHealth)

	registry := prometheus.NewRegistry()
	registry.MustRegister(newPromBridge(s.collector))
	mux.Handle("GET /metrics/prometheus", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return mux
}

// Handler returns the fully assembled HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server and blocks until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("benchmark server listening",
		"addr", s.cfg.Listen,
		"mode", string(s.registry.Active()),
		"sleep", time.Duration(s.cfg.Sleep).String())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server and the worker pools.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.registry.Stop()
	return err
}
