package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/model"
	"github.com/carboncentrik/footprint/internal/survey"
)

// Output format names accepted by --output flags.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// tabPadding is the cell padding used by tabwriter tables.
const tabPadding = 2

// buildEngine constructs the estimation engine over the configured history
// store. When needModel is true the trained artifacts must load; otherwise
// the engine runs rule-only and Estimate reports engine.ErrNoModel.
func buildEngine(cfg *config.Config, needModel bool) (*engine.Engine, error) {
	store := history.NewStore(cfg.DataDir)

	if !needModel {
		return engine.New(nil, store), nil
	}

	est, err := model.Load(cfg.Model.ScalerPath, cfg.Model.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model artifacts: %w", err)
	}
	return engine.New(est, store), nil
}

// readAnswers loads a survey form from path ("-" reads stdin) and normalizes
// it into validated answers.
func readAnswers(cmd *cobra.Command, path string) (survey.Answers, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return survey.Answers{}, fmt.Errorf("reading answers: %w", err)
	}

	var form survey.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return survey.Answers{}, fmt.Errorf("parsing answers: %w", err)
	}

	return form.ToAnswers()
}

// writeJSON pretty-prints v to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
