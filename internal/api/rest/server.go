package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/priit2000/out-of-android/internal/infrastructure/config"
)

// Server is the HTTP boundary of the screening service
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer wires the handler into routes and middleware and builds the
// listener
func NewServer(cfg *config.ServerConfig, handler *Handler, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/screen", chain(
		http.HandlerFunc(handler.handleScreen),
		rateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
	))
	mux.HandleFunc("GET /api/v1/settings", handler.handleGetSettings)
	mux.HandleFunc("PUT /api/v1/settings", handler.handleUpdateSettings)
	mux.HandleFunc("POST /api/v1/settings/whitelist", handler.handleAddWhitelistNumber)
	mux.HandleFunc("DELETE /api/v1/settings/whitelist/{number}", handler.handleRemoveWhitelistNumber)
	mux.HandleFunc("GET /api/v1/status", handler.handleStatus)
	mux.HandleFunc("GET /api/v1/decisions", handler.handleListDecisions)
	mux.HandleFunc("GET /api/v1/decisions/{call_id}", handler.handleGetDecision)
	mux.HandleFunc("GET /healthz", handler.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	root := chain(mux,
		recoveryMiddleware(logger),
		requestIDMiddleware,
		securityHeadersMiddleware,
		metricsMiddleware,
		loggingMiddleware(logger),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      root,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Start blocks serving requests until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
