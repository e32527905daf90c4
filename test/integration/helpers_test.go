package integration

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carboncentrik/footprint/internal/cli"
	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/schema"
	"github.com/carboncentrik/footprint/internal/survey"
)

// isolateEnv points every FOOTPRINT_* variable at temp locations so tests
// never touch the real home directory. It returns the data directory.
func isolateEnv(t *testing.T) string {
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

// runRoot executes the footprint root command with args.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("integration-test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeArtifacts writes a scaler and a constant-output regressor predicting
// log(kg) over the full training schema, returning both paths.
func writeArtifacts(t *testing.T, dir string, kg float64) (string, string) {
	t.Helper()
	cols := schema.Columns()

	mean := make([]float64, len(cols))
	scale := make([]float64, len(cols))
	weights := make([][]float64, len(cols))
	for i := range cols {
		scale[i] = 1
		weights[i] = []float64{0}
	}

	scalerPath := writeJSON(t, dir, "scale.json", map[string]any{
		"schema_version": "1.0.0",
		"type":           "standard",
		"columns":        cols,
		"mean":           mean,
		"scale":          scale,
	})
	modelPath := writeJSON(t, dir, "model.json", map[string]any{
		"schema_version":    "1.0.0",
		"type":              "mlp",
		"columns":           cols,
		"hidden_activation": "relu",
		"output_activation": "identity",
		"layers": []map[string]any{
			{"weights": weights, "biases": []float64{math.Log(kg)}},
		},
	})
	return scalerPath, modelPath
}

// pointEnvAtArtifacts writes artifacts for kg and selects them via env.
func pointEnvAtArtifacts(t *testing.T, kg float64) {
	t.Helper()
	scalerPath, modelPath := writeArtifacts(t, t.TempDir(), kg)
	t.Setenv(config.EnvScalerPath, scalerPath)
	t.Setenv(config.EnvModelPath, modelPath)
}

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func surveyForm() survey.Form {
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

// writeFormFile writes the standard survey form fixture to a JSON file.
func writeFormFile(t *testing.T) string {
	t.Helper()
	return writeJSON(t, t.TempDir(), "answers.json", surveyForm())
}
