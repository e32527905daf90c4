// Package server exposes the estimation pipeline over HTTP. The survey form
// itself lives in external frontends; this API is the contract they talk to.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/engine"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 10 * time.Second

// Server serves the estimation API.
type Server struct {
	engine *engine.Engine
	cfg    config.ServerConfig
	logger zerolog.Logger
}

// New creates a Server. The logger seeds the per-request loggers attached by
// the middleware.
func New(eng *engine.Engine, cfg config.ServerConfig, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{engine: eng, cfg: cfg, logger: logger}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().
			Str("component", "server").
			Str("addr", s.cfg.Addr).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info().
			Str("component", "server").
			Dur("timeout", s.cfg.ShutdownTimeout).
			Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
