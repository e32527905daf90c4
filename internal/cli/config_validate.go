package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/config"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration for values the pipeline cannot run with:
empty data or model paths, an empty listen address, a negative shutdown
timeout, or an unknown logging format. YAML syntax errors that the lenient
loader normally degrades past are reported here explicitly.`,
		Example: `  # Validate current configuration
  footprint config validate

  # Validate and show the effective configuration
  footprint config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := cliConfig(cmd)

	// Re-run the file overlay without the lenient degradation so syntax
	// errors surface instead of silently yielding defaults.
	if _, err := os.Stat(cfg.ConfigPath()); err == nil {
		if mergeErr := config.ShallowMergeYAML(config.Default(), cfg.ConfigPath()); mergeErr != nil {
			return fmt.Errorf("configuration validation failed: %w", mergeErr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints the effective configuration.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Data directory: %s\n", cfg.DataDir)
	cmd.Printf("  Scaler artifact: %s\n", cfg.Model.ScalerPath)
	cmd.Printf("  Model artifact: %s\n", cfg.Model.ModelPath)
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)
	cmd.Printf("  Allowed origins: %v\n", cfg.Server.AllowedOrigins)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
