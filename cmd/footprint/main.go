// Command footprint estimates personal carbon footprints from lifestyle
// survey answers and serves the estimation API.
package main

import (
	"os"

	"github.com/carboncentrik/footprint/internal/cli"
	"github.com/carboncentrik/footprint/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and converts the outcome to an exit code.
// Cobra prints the error itself, so run only maps it.
func run() int {
	rootCmd := cli.NewRootCmd(version.GetVersion())
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
