package cli

import (
	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/model"
	"github.com/carboncentrik/footprint/internal/server"
)

// newServeCmd creates the serve command: run the HTTP API until interrupted.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimation HTTP API",
		Long: `Serve the estimation pipeline over HTTP. Endpoints live under /api/v1:
estimate, save, dashboard, history, and recommendations, plus /healthz for
liveness probes. The server shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  # Serve on the configured address
  footprint serve

  # Override the listen address
  footprint serve --addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides the configured one)")

	return cmd
}

func executeServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()
	cfg := cliConfig(cmd)
	if addr != "" {
		cfg.Server.Addr = addr
	}

	store := history.NewStore(cfg.DataDir)

	// A missing model keeps rule-only endpoints working; estimate and save
	// report no_model until artifacts appear and the server restarts.
	var est engine.Estimator
	if loaded, err := model.Load(cfg.Model.ScalerPath, cfg.Model.ModelPath); err != nil {
		logger.Warn().Ctx(ctx).Err(err).Msg("model artifacts unavailable, estimation endpoints disabled")
	} else {
		est = loaded
	}

	eng := engine.New(est, store)
	srv := server.New(eng, cfg.Server, logger)

	logger.Info().Ctx(ctx).Str("addr", cfg.Server.Addr).Msg("starting server")
	return srv.Run(ctx)
}
