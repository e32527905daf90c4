package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/tui"
)

// newDashboardCmd creates the dashboard command: a summary of a user's
// latest record with deltas against the previous one, the footprint trend,
// the category breakdown, and recommendations.
func newDashboardCmd() *cobra.Command {
	var (
		user        string
		interactive bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the footprint dashboard for a user's saved history",
		Example: `  # Static dashboard
  footprint dashboard --user alice

  # Navigable terminal dashboard
  footprint dashboard --user alice --interactive

  # Machine-readable output
  footprint dashboard --user alice --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeDashboard(cmd, user, interactive, output)
		},
	}

	cmd.Flags().StringVar(&user, "user", engine.DefaultUserID, "user id to show the dashboard for")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "browse the dashboard in a terminal UI")
	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or json")

	return cmd
}

func executeDashboard(cmd *cobra.Command, user string, interactive bool, output string) error {
	ctx := cmd.Context()

	eng, err := buildEngine(cliConfig(cmd), false)
	if err != nil {
		return err
	}

	dashboard, err := eng.Dashboard(ctx, user)
	if errors.Is(err, history.ErrNotFound) {
		cmd.Printf("No history for user %s. Run 'footprint estimate --save' first.\n", user)
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}

	if interactive {
		if !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		userHistory, err := eng.History(ctx, user)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		return tui.RunDashboard(dashboard, userHistory)
	}

	switch output {
	case outputJSON:
		return writeJSON(cmd, dashboard)
	case outputTable:
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDashboard(dashboard))
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}
