package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"lexora-hq/themis/pkg/config"
	"lexora-hq/themis/pkg/ledger"
	"lexora-hq/themis/pkg/telemetry/metrics"
)

// Server is the HTTP server for the cost accounting service.
type Server struct {
	config      *config.Config
	ledger      *ledger.Ledger
	metrics     *metrics.CostMetrics
	answers     AnswerService
	transcriber Transcriber
	logger      *slog.Logger

	httpServer   *http.Server
	shutdownOnce sync.Once

	mu        sync.Mutex
	isRunning bool
}

// Option configures a Server.
type Option func(*Server)

// WithAnswerService attaches the question-answering collaborator. Without
// it, POST /v1/ask responds 503.
func WithAnswerService(a AnswerService) Option {
	return func(s *Server) { s.answers = a }
}

// WithTranscriber attaches the audio transcription collaborator. Without
// it, POST /v1/transcribe responds 503.
func WithTranscriber(tr Transcriber) Option {
	return func(s *Server) { s.transcriber = tr }
}

// WithLogger sets the logger used for request summaries and server events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New creates a server over the given ledger and metrics.
func New(cfg *config.Config, l *ledger.Ledger, m *metrics.CostMetrics, opts ...Option) *Server {
	s := &Server{
		config:  cfg,
		ledger:  l,
		metrics: m,
		logger:  slog.Default().With("component", "server"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the fully routed HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	if s.metrics != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle("GET "+s.config.Telemetry.Metrics.Path, s.metrics.Handler())
	}

	mux.HandleFunc("GET /admin/costs/today", s.handleCostsToday)
	mux.HandleFunc("GET /admin/costs/recent", s.handleCostsRecent)
	mux.HandleFunc("GET /admin/costs/requests/{id}", s.handleCostsRequest)

	mux.HandleFunc("POST /v1/ask", s.handleAsk)
	mux.HandleFunc("POST /v1/transcribe", s.handleTranscribe)

	return mux
}

// Start starts the HTTP server and blocks until the context is cancelled or
// the listener fails. Shutdown is graceful, bounded by the configured
// shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true

	s.httpServer = &http.Server{
		Addr:         s.config.Server.ListenAddress,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", s.config.Server.ListenAddress)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server, draining in-flight requests.
// Safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		server := s.httpServer
		s.isRunning = false
		s.mu.Unlock()

		if server == nil {
			return
		}

		s.logger.Info("shutting down server",
			"timeout", s.config.Server.ShutdownTimeout,
		)

		ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()

		if shutdownErr := server.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
		}
	})
	return err
}
