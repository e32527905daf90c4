package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/impact"
	"github.com/carboncentrik/footprint/internal/logging"
	"github.com/carboncentrik/footprint/internal/tui"
)

// newEstimateCmd creates the estimate command: run the model over a survey
// answers file and optionally append the outcome to a user's history.
func newEstimateCmd() *cobra.Command {
	var (
		answersPath string
		save        bool
		user        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a yearly carbon footprint from survey answers",
		Long: `Estimate the yearly carbon footprint in kg CO2 for one set of survey
answers, along with the trees needed to offset it, a per-category breakdown,
and reduction recommendations. With --save the outcome is appended to the
user's history.`,
		Example: `  # Estimate from an answers file
  footprint estimate --answers answers.json

  # Estimate from stdin and save it for a user
  cat answers.json | footprint estimate --answers - --save --user alice

  # Machine-readable output
  footprint estimate --answers answers.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, answersPath, save, user, output)
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", `survey answers file (JSON, "-" for stdin)`)
	cmd.Flags().BoolVar(&save, "save", false, "append the result to the user's history")
	cmd.Flags().StringVar(&user, "user", engine.DefaultUserID, "user id the record is saved under")
	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or json")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

// estimateOutput is the JSON shape of the estimate command. Record is only
// present when the result was saved.
type estimateOutput struct {
	Result *engine.Result  `json:"result"`
	Record *history.Record `json:"record,omitempty"`
}

func executeEstimate(cmd *cobra.Command, answersPath string, save bool, user, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	answers, err := readAnswers(cmd, answersPath)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cliConfig(cmd), true)
	if err != nil {
		return err
	}

	var (
		result *engine.Result
		record history.Record
	)
	if save {
		result, record, err = eng.Save(ctx, user, answers)
	} else {
		result, err = eng.Estimate(ctx, answers)
	}
	if err != nil {
		return fmt.Errorf("estimating footprint: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "estimate").
		Bool("saved", save).
		Msg("estimate complete")

	switch output {
	case outputJSON:
		out := estimateOutput{Result: result}
		if save {
			out.Record = &record
		}
		return writeJSON(cmd, out)
	case outputTable:
		renderEstimate(cmd.OutOrStdout(), result)
		if save {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved for user %s on %s.\n", user, record.Date)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

// renderEstimate prints the human-readable estimate summary.
func renderEstimate(w io.Writer, result *engine.Result) {
	fmt.Fprintf(w, "Estimated footprint: %s per year\n", impact.FormatKg(result.CarbonFootprint))
	fmt.Fprintf(w, "Plant %s trees per year to offset it\n\n", impact.FormatNumber(int64(result.TreesOwed)))
	fmt.Fprintln(w, tui.RenderBreakdown(result.Breakdown.Shares()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.RenderRecommendations(result.Recommendations))
}
