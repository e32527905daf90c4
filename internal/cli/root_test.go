package cli_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carboncentrik/footprint/internal/cli"
	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/schema"
	"github.com/carboncentrik/footprint/internal/survey"
)

// setupCLITest isolates configuration, data, model artifacts, and logging in
// temp dirs and returns the data directory records land in.
func setupCLITest(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	missing := t.TempDir()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvScalerPath, filepath.Join(missing, "scale.json"))
	t.Setenv(config.EnvModelPath, filepath.Join(missing, "model.json"))
	t.Setenv(config.EnvLogLevel, "error")
	return dataDir
}

// runCommand executes the root command with args and returns its combined
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommandWithInput(t, "", args...)
}

// runCommandWithInput is runCommand with stdin content.
func runCommandWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeJSONFile marshals v into a JSON file under dir and returns its path.
func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// writeModelArtifacts writes scaler and regressor fixtures whose network
// always outputs log(kg), and points the model env vars at them.
func writeModelArtifacts(t *testing.T, kg float64) {
	t.Helper()
	dir := t.TempDir()
	cols := schema.Columns()

	mean := make([]float64, len(cols))
	scale := make([]float64, len(cols))
	weights := make([][]float64, len(cols))
	for i := range cols {
		scale[i] = 1
		weights[i] = []float64{0}
	}

	scalerPath := writeJSONFile(t, dir, "scale.json", map[string]any{
		"schema_version": "1.0.0",
		"type":           "standard",
		"columns":        cols,
		"mean":           mean,
		"scale":          scale,
	})
	modelPath := writeJSONFile(t, dir, "model.json", map[string]any{
		"schema_version":    "1.0.0",
		"type":              "mlp",
		"columns":           cols,
		"hidden_activation": "relu",
		"output_activation": "identity",
		"layers": []map[string]any{
			{"weights": weights, "biases": []float64{math.Log(kg)}},
		},
	})

	t.Setenv(config.EnvScalerPath, scalerPath)
	t.Setenv(config.EnvModelPath, modelPath)
}

func testForm() survey.Form {
	return survey.Form{
		HeightCm:         170,
		WeightKg:         65,
		Sex:              "female",
		Diet:             "omnivore",
		ShowerFrequency:  "daily",
		HeatingSource:    "electricity",
		Transport:        "public",
		SocialActivity:   "sometimes",
		AirTravel:        "rarely",
		GroceryBill:      180,
		VehicleKm:        0,
		WasteBagSize:     "medium",
		WasteBagCount:    2,
		TVPCHours:        4,
		NewClothes:       3,
		InternetHours:    5,
		EnergyEfficiency: "Yes",
		Cooking:          []string{"stove"},
		Recycles:         []string{"Paper", "Glass"},
	}
}

// writeAnswersFile writes a survey form as JSON and returns its path.
func writeAnswersFile(t *testing.T, form survey.Form) string {
	t.Helper()
	return writeJSONFile(t, t.TempDir(), "answers.json", form)
}

// seedHistory appends one record for userID directly through the store.
func seedHistory(t *testing.T, dataDir, userID, date string, kg, trees int) {
	t.Helper()
	answers, err := testForm().ToAnswers()
	require.NoError(t, err)

	store := history.NewStore(dataDir)
	_, err = store.Append(userID, history.Record{
		Date:            date,
		CarbonFootprint: kg,
		TreesOwed:       trees,
		InputData:       answers,
	})
	require.NoError(t, err)
}

func TestRootHelpListsSubcommands(t *testing.T) {
	setupCLITest(t)

	output, err := runCommand(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"estimate", "dashboard", "history", "recommend", "serve", "config"} {
		assert.Contains(t, output, name)
	}
}

func TestRootVersion(t *testing.T) {
	setupCLITest(t)

	output, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "footprint version test")
}

func TestRootUnknownCommand(t *testing.T) {
	setupCLITest(t)

	_, err := runCommand(t, "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
