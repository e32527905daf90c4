package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// SupportedSchemaMajor is the artifact schema major version this build can
// read. Artifacts exported for a different major are rejected at load.
const SupportedSchemaMajor = 1

// Artifact type identifiers.
const (
	ScalerTypeStandard = "standard"
	RegressorTypeMLP   = "mlp"
)

// scalerFile is the JSON export of a fitted standard scaler.
type scalerFile struct {
	SchemaVersion string    `json:"schema_version"`
	Type          string    `json:"type"`
	Columns       []string  `json:"columns"`
	Mean          []float64 `json:"mean"`
	Scale         []float64 `json:"scale"`
}

// layerFile is one dense layer in a regressor export. Weights are row-major
// by input: weights[j][k] connects input j to unit k.
type layerFile struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

// regressorFile is the JSON export of a trained feed-forward regressor.
type regressorFile struct {
	SchemaVersion    string      `json:"schema_version"`
	Type             string      `json:"type"`
	Columns          []string    `json:"columns"`
	HiddenActivation string      `json:"hidden_activation"`
	OutputActivation string      `json:"output_activation"`
	Layers           []layerFile `json:"layers"`
}

// LoadScaler reads a scaler artifact from a JSON file and validates its
// schema version, type, and dimensions.
func LoadScaler(path string) (Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scaler artifact: %w", err)
	}

	var f scalerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidArtifact, path, err)
	}
	if err := checkSchemaVersion(path, f.SchemaVersion); err != nil {
		return nil, err
	}
	if f.Type != ScalerTypeStandard {
		return nil, fmt.Errorf("%w: %s: unknown scaler type %q", ErrInvalidArtifact, path, f.Type)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("%w: %s: no columns listed", ErrInvalidArtifact, path)
	}
	if len(f.Mean) != len(f.Columns) || len(f.Scale) != len(f.Columns) {
		return nil, fmt.Errorf("%w: %s: %d columns but %d means and %d scales",
			ErrInvalidArtifact, path, len(f.Columns), len(f.Mean), len(f.Scale))
	}
	for i, s := range f.Scale {
		if s == 0 {
			return nil, fmt.Errorf("%w: %s: zero scale for column %q",
				ErrInvalidArtifact, path, f.Columns[i])
		}
	}

	return &standardScaler{columns: f.Columns, mean: f.Mean, scale: f.Scale}, nil
}

// LoadRegressor reads a regressor artifact from a JSON file and validates
// its schema version, type, activations, and layer dimensions. The layers
// must chain (each layer's input width equals the previous layer's output
// width) and end in a single output unit.
func LoadRegressor(path string) (Regressor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regressor artifact: %w", err)
	}

	var f regressorFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidArtifact, path, err)
	}
	if err := checkSchemaVersion(path, f.SchemaVersion); err != nil {
		return nil, err
	}
	if f.Type != RegressorTypeMLP {
		return nil, fmt.Errorf("%w: %s: unknown regressor type %q", ErrInvalidArtifact, path, f.Type)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("%w: %s: no columns listed", ErrInvalidArtifact, path)
	}
	if len(f.Layers) == 0 {
		return nil, fmt.Errorf("%w: %s: no layers", ErrInvalidArtifact, path)
	}

	hidden, err := activationFunc(f.HiddenActivation)
	if err != nil {
		return nil, fmt.Errorf("%s hidden activation: %w", path, err)
	}
	output, err := activationFunc(f.OutputActivation)
	if err != nil {
		return nil, fmt.Errorf("%s output activation: %w", path, err)
	}

	layers := make([]layer, len(f.Layers))
	width := len(f.Columns)
	for i, lf := range f.Layers {
		if len(lf.Weights) != width {
			return nil, fmt.Errorf("%w: %s: layer %d expects %d inputs, has %d weight rows",
				ErrInvalidArtifact, path, i, width, len(lf.Weights))
		}
		for j, row := range lf.Weights {
			if len(row) != len(lf.Biases) {
				return nil, fmt.Errorf("%w: %s: layer %d row %d has %d weights for %d biases",
					ErrInvalidArtifact, path, i, j, len(row), len(lf.Biases))
			}
		}
		if len(lf.Biases) == 0 {
			return nil, fmt.Errorf("%w: %s: layer %d has no units", ErrInvalidArtifact, path, i)
		}
		layers[i] = layer{weights: lf.Weights, biases: lf.Biases}
		width = len(lf.Biases)
	}
	if width != 1 {
		return nil, fmt.Errorf("%w: %s: final layer has %d outputs, regression needs 1",
			ErrInvalidArtifact, path, width)
	}

	return &mlpRegressor{
		columns:   f.Columns,
		hiddenAct: hidden,
		outputAct: output,
		layers:    layers,
	}, nil
}

func checkSchemaVersion(path, version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %s: schema_version %q: %w", ErrInvalidArtifact, path, version, err)
	}
	if v.Major() != SupportedSchemaMajor {
		return fmt.Errorf("%w: %s: schema_version %s (supported major: %d)",
			ErrUnsupportedVersion, path, version, SupportedSchemaMajor)
	}
	return nil
}
