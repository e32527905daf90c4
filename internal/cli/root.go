// Package cli implements the footprint command tree: estimating footprints
// from survey answers, browsing saved history, and serving the HTTP API.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// configKey carries the resolved configuration through the command context.
type configKey struct{}

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It wires up configuration loading, logging, tracing, and subcommands
// (estimate, dashboard, history, recommend, serve, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "footprint",
		Short:   "Personal carbon footprint estimation",
		Long:    "Footprint: estimate yearly CO2 emissions from lifestyle survey answers, track them over time, and get reduction tips",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(cmd)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default ~/.footprint/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newEstimateCmd(),
		newDashboardCmd(),
		newHistoryCmd(),
		newRecommendCmd(),
		newServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate a footprint from an answers file
  footprint estimate --answers answers.json

  # Estimate and save it under a user's history
  footprint estimate --answers answers.json --save --user alice

  # Show the dashboard for saved history
  footprint dashboard --user alice

  # Browse the dashboard interactively
  footprint dashboard --user alice --interactive

  # List saved records as NDJSON
  footprint history --user alice --output ndjson

  # Serve the HTTP API
  footprint serve

  # Initialize configuration
  footprint config init`

// loadConfig resolves the configuration, honoring an explicit --config flag
// over FOOTPRINT_CONFIG and the default location.
func loadConfig(cmd *cobra.Command) *config.Config {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return config.NewFromPath(path)
	}
	return config.New()
}

// cliConfig returns the configuration stashed by the root PersistentPreRunE.
func cliConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.New()
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}
