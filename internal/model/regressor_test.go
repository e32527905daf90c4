package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLPPredict_SingleLayer(t *testing.T) {
	t.Parallel()

	f := regressorFile{
		SchemaVersion:    "1.0.0",
		Type:             RegressorTypeMLP,
		Columns:          []string{"a", "b"},
		HiddenActivation: ActivationReLU,
		OutputActivation: ActivationIdentity,
		Layers: []layerFile{
			{Weights: [][]float64{{2}, {3}}, Biases: []float64{0.5}},
		},
	}
	path := writeArtifact(t, t.TempDir(), "model.json", f)

	r, err := LoadRegressor(path)
	require.NoError(t, err)

	out, err := r.Predict([]float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 8.5, out, 1e-12)
}

// Two relu-hidden units computing max(0,x) and max(0,-x) sum to |x|.
func TestMLPPredict_HiddenReLU(t *testing.T) {
	t.Parallel()

	f := regressorFile{
		SchemaVersion:    "1.0.0",
		Type:             RegressorTypeMLP,
		Columns:          []string{"x"},
		HiddenActivation: ActivationReLU,
		OutputActivation: ActivationIdentity,
		Layers: []layerFile{
			{Weights: [][]float64{{1, -1}}, Biases: []float64{0, 0}},
			{Weights: [][]float64{{1}, {1}}, Biases: []float64{0}},
		},
	}
	path := writeArtifact(t, t.TempDir(), "model.json", f)

	r, err := LoadRegressor(path)
	require.NoError(t, err)

	for _, x := range []float64{3, -2, 0} {
		out, err := r.Predict([]float64{x})
		require.NoError(t, err)
		assert.InDelta(t, math.Abs(x), out, 1e-12, "input %v", x)
	}
}

func TestMLPPredict_TanhAndLogistic(t *testing.T) {
	t.Parallel()

	f := regressorFile{
		SchemaVersion:    "1.0.0",
		Type:             RegressorTypeMLP,
		Columns:          []string{"x"},
		HiddenActivation: ActivationTanh,
		OutputActivation: ActivationLogistic,
		Layers: []layerFile{
			{Weights: [][]float64{{1}}, Biases: []float64{0}},
			{Weights: [][]float64{{2}}, Biases: []float64{1}},
		},
	}
	path := writeArtifact(t, t.TempDir(), "model.json", f)

	r, err := LoadRegressor(path)
	require.NoError(t, err)

	// tanh(0.5) through the hidden layer, then logistic(2*tanh(0.5)+1).
	want := 1 / (1 + math.Exp(-(2*math.Tanh(0.5) + 1)))
	out, err := r.Predict([]float64{0.5})
	require.NoError(t, err)
	assert.InDelta(t, want, out, 1e-12)
}

func TestMLPPredict_WidthMismatch(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, t.TempDir(), "model.json", constRegressorFile([]string{"a", "b"}, 1))
	r, err := LoadRegressor(path)
	require.NoError(t, err)

	_, err = r.Predict([]float64{1})
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestMLPPredict_Overflow(t *testing.T) {
	t.Parallel()

	f := constRegressorFile([]string{"x"}, 0)
	f.Layers[0].Weights = [][]float64{{math.MaxFloat64}}
	path := writeArtifact(t, t.TempDir(), "model.json", f)

	r, err := LoadRegressor(path)
	require.NoError(t, err)

	_, err = r.Predict([]float64{10})
	require.ErrorIs(t, err, ErrNotFinite)
}
