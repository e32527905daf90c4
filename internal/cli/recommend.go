package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/survey"
	"github.com/carboncentrik/footprint/internal/tui"
)

// newRecommendCmd creates the recommend command: rule-based reduction tips
// for an answers file or for a user's latest saved record. No trained model
// is needed.
func newRecommendCmd() *cobra.Command {
	var (
		answersPath string
		user        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show reduction recommendations",
		Long: `Show rule-based reduction recommendations, either for a survey answers
file or for the latest record in a user's saved history.`,
		Example: `  # Recommendations for an answers file
  footprint recommend --answers answers.json

  # Recommendations for a user's latest saved record
  footprint recommend --user alice`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRecommend(cmd, answersPath, user, output)
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", `survey answers file (JSON, "-" for stdin)`)
	cmd.Flags().StringVar(&user, "user", engine.DefaultUserID, "user id whose latest record is used")
	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or json")
	cmd.MarkFlagsMutuallyExclusive("answers", "user")

	return cmd
}

func executeRecommend(cmd *cobra.Command, answersPath, user, output string) error {
	ctx := cmd.Context()

	eng, err := buildEngine(cliConfig(cmd), false)
	if err != nil {
		return err
	}

	var answers survey.Answers
	if answersPath != "" {
		answers, err = readAnswers(cmd, answersPath)
		if err != nil {
			return err
		}
	} else {
		userHistory, err := eng.History(ctx, user)
		if errors.Is(err, history.ErrNotFound) {
			cmd.Printf("No history for user %s. Run 'footprint estimate --save' first.\n", user)
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		latest, ok := userHistory.Latest()
		if !ok {
			cmd.Printf("No history for user %s. Run 'footprint estimate --save' first.\n", user)
			return nil
		}
		answers = latest.InputData
	}

	recommendations, err := eng.RecommendFor(ctx, answers)
	if err != nil {
		return fmt.Errorf("building recommendations: %w", err)
	}

	switch output {
	case outputJSON:
		return writeJSON(cmd, map[string][]string{"recommendations": recommendations})
	case outputTable:
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRecommendations(recommendations))
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}
