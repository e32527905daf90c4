package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newConfigInitCmd creates the config init command for initializing
// configuration.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
~/.footprint/config.yaml, or at the path given by --config or
FOOTPRINT_CONFIG.`,
		Example: `  # Create the configuration file
  footprint config init

  # Create configuration, overwriting existing
  footprint config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// runConfigInit writes the effective configuration to its resolved path.
func runConfigInit(cmd *cobra.Command, force bool) error {
	cfg := cliConfig(cmd)

	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
