// Package api serves the dosecalc calculators as a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
)

// NewRouter registers every route on a new ServeMux wrapped in the logging
// and recovery middleware.
func NewRouter(h *Handler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /v1/beverages", h.Beverages)
	mux.HandleFunc("POST /v1/drinks", h.Drinks)
	mux.HandleFunc("POST /v1/nicotine", h.Nicotine)
	mux.HandleFunc("GET /v1/reference/drinks", h.DrinkReference)
	mux.HandleFunc("GET /v1/reference/nicotine", h.NicotineReference)

	return WithLogging(logger, WithRecover(mux))
}

// Server runs the API until its context is cancelled.
type Server struct {
	cfg    config.ServerConfig
	logger zerolog.Logger
	http   *http.Server
}

// NewServer builds a Server from the server config and calculator presets.
func NewServer(
	cfg config.ServerConfig,
	drinkPreset consumption.DrinkRequest,
	nicotinePreset consumption.NicotineInput,
	logger zerolog.Logger,
) *Server {
	handler := NewRouter(NewHandler(drinkPreset, nicotinePreset), logger)
	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
	}
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("server listening")
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down server")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
