package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/impact"
	"github.com/carboncentrik/footprint/internal/pagination"
)

// newHistoryCmd creates the history command: list a user's saved footprint
// records, windowed by the shared pagination flags.
func newHistoryCmd() *cobra.Command {
	var (
		user   string
		output string
	)
	params := pagination.NewParams()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved footprint records for a user",
		Example: `  # List records as a table
  footprint history --user alice

  # Page through a long history
  footprint history --user alice --page 2 --page-size 10

  # Stream records as NDJSON
  footprint history --user alice --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeHistory(cmd, user, output, *params)
		},
	}

	cmd.Flags().StringVar(&user, "user", engine.DefaultUserID, "user id to list records for")
	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table, json, or ndjson")
	cmd.Flags().IntVar(&params.Limit, "limit", pagination.DefaultLimit,
		"Maximum number of records to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0,
		"Number of records to skip for offset-based pagination")
	cmd.Flags().IntVar(&params.Page, "page", 0,
		"Page number for page-based pagination (1-indexed, 0 = disabled)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0,
		"Number of records per page (requires --page)")

	return cmd
}

// historyOutput is the JSON shape of the history command.
type historyOutput struct {
	UserID     string           `json:"user_id"`
	Records    []history.Record `json:"records"`
	Pagination pagination.Meta  `json:"pagination"`
}

func executeHistory(cmd *cobra.Command, user, output string, params pagination.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	eng, err := buildEngine(cliConfig(cmd), false)
	if err != nil {
		return err
	}

	userHistory, err := eng.History(cmd.Context(), user)
	if errors.Is(err, history.ErrNotFound) {
		cmd.Printf("No history for user %s.\n", user)
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	records := userHistory.History
	start, end := params.Window(len(records))

	switch output {
	case outputJSON:
		return writeJSON(cmd, historyOutput{
			UserID:     user,
			Records:    records[start:end],
			Pagination: pagination.NewMeta(params, len(records)),
		})
	case outputNDJSON:
		return renderHistoryNDJSON(cmd.OutOrStdout(), records[start:end])
	case outputTable:
		renderHistoryTable(cmd.OutOrStdout(), records, start, end)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

// renderHistoryNDJSON streams one record per line.
func renderHistoryNDJSON(out io.Writer, records []history.Record) error {
	encoder := json.NewEncoder(out)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("encoding NDJSON output: %w", err)
		}
	}
	return nil
}

// renderHistoryTable prints the selected window of records. The change column
// compares each record against its predecessor in the full history, so the
// first row of a later page still shows its delta.
func renderHistoryTable(out io.Writer, records []history.Record, start, end int) {
	if start == end {
		fmt.Fprintf(out, "No records in the selected window (%d total).\n", len(records))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "DATE\tFOOTPRINT (KG)\tTREES\tCHANGE")

	for i := start; i < end; i++ {
		record := records[i]
		change := "-"
		if i > 0 {
			change = formatTableChange(record.CarbonFootprint - records[i-1].CarbonFootprint)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			record.Date,
			impact.FormatNumber(int64(record.CarbonFootprint)),
			record.TreesOwed,
			change,
		)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nShowing %d-%d of %d records\n", start+1, end, len(records))
}

// formatTableChange renders a signed footprint delta for the table.
func formatTableChange(delta int) string {
	switch {
	case delta > 0:
		return "+" + impact.FormatNumber(int64(delta))
	case delta < 0:
		return "-" + impact.FormatNumber(int64(-delta))
	default:
		return "0"
	}
}
