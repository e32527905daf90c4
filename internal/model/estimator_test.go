package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carboncentrik/footprint/internal/schema"
	"github.com/carboncentrik/footprint/internal/survey"
)

func estimatorAnswers() survey.Answers {
	return survey.Answers{
		BodyType:         survey.BodyNormal,
		Sex:              survey.SexFemale,
		Diet:             survey.DietVegan,
		Shower:           survey.ShowerDaily,
		HeatingSource:    survey.HeatingElectricity,
		Transport:        survey.TransportPublic,
		SocialActivity:   survey.SocialSometimes,
		AirTravel:        survey.AirTravelNever,
		WasteBagSize:     survey.WasteBagSmall,
		VehicleType:      survey.VehicleNone,
		EnergyEfficiency: survey.EfficiencyYes,
	}
}

// loadFixedEstimator builds an estimator over the full training schema whose
// network always outputs log(kg), so Estimate returns kg for any input.
func loadFixedEstimator(t *testing.T, kg float64) *Estimator {
	t.Helper()
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, "scale.json", validScalerFile(schema.Columns()))
	modelPath := writeArtifact(t, dir, "model.json", constRegressorFile(schema.Columns(), math.Log(kg)))

	e, err := Load(scalerPath, modelPath)
	require.NoError(t, err)
	return e
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	e := loadFixedEstimator(t, 2500)

	v, err := schema.Encode(estimatorAnswers())
	require.NoError(t, err)

	got, err := e.Estimate(v)
	require.NoError(t, err)
	assert.Equal(t, 2500, got)
}

func TestEstimate_RoundsToWholeKilograms(t *testing.T) {
	t.Parallel()

	// exp(log(1234.6)) = 1234.6, which rounds half away from zero to 1235.
	e := loadFixedEstimator(t, 1234.6)

	v, err := schema.Encode(estimatorAnswers())
	require.NoError(t, err)

	got, err := e.Estimate(v)
	require.NoError(t, err)
	assert.Equal(t, 1235, got)
}

// Scaling must happen before prediction. The scaler maps the grocery bill
// column to (x-100)/50 and the network reads only that column, so the
// estimate moves with the standardized value, not the raw one.
func TestEstimate_AppliesScalerBeforePredict(t *testing.T) {
	t.Parallel()

	columns := schema.Columns()
	sf := validScalerFile(columns)
	groceryIdx := -1
	for i, c := range columns {
		if c == survey.FieldGroceryBill {
			groceryIdx = i
		}
	}
	require.GreaterOrEqual(t, groceryIdx, 0)
	sf.Mean[groceryIdx] = 100
	sf.Scale[groceryIdx] = 50

	rf := constRegressorFile(columns, 0)
	rf.Layers[0].Weights[groceryIdx] = []float64{1}
	rf.Layers[0].Biases = []float64{math.Log(1000)}

	dir := t.TempDir()
	e, err := Load(
		writeArtifact(t, dir, "scale.json", sf),
		writeArtifact(t, dir, "model.json", rf),
	)
	require.NoError(t, err)

	a := estimatorAnswers()
	a.GroceryBill = 200 // standardized to (200-100)/50 = 2

	v, err := schema.Encode(a)
	require.NoError(t, err)

	got, err := e.Estimate(v)
	require.NoError(t, err)
	assert.Equal(t, int(math.Round(1000*math.Exp(2))), got)
}

func TestEstimate_SchemaMismatch(t *testing.T) {
	t.Parallel()

	// Self-consistent artifacts trained on a narrower schema load fine but
	// reject the canonical vector.
	dir := t.TempDir()
	e, err := Load(
		writeArtifact(t, dir, "scale.json", validScalerFile([]string{"a", "b"})),
		writeArtifact(t, dir, "model.json", constRegressorFile([]string{"a", "b"}, 1)),
	)
	require.NoError(t, err)

	v, err := schema.Encode(estimatorAnswers())
	require.NoError(t, err)

	_, err = e.Estimate(v)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestNew_ArtifactColumnDisagreement(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := LoadScaler(writeArtifact(t, dir, "scale.json", validScalerFile([]string{"a", "b"})))
	require.NoError(t, err)
	r, err := LoadRegressor(writeArtifact(t, dir, "model.json", constRegressorFile([]string{"b", "a"}, 1)))
	require.NoError(t, err)

	_, err = New(s, r)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestEstimate_OverflowingExp(t *testing.T) {
	t.Parallel()

	// 1000 is finite for the network but exp(1000) overflows float64.
	e := loadFixedEstimator(t, 1)
	eOver, err := New(
		&standardScaler{
			columns: schema.Columns(),
			mean:    make([]float64, schema.Width),
			scale:   ones(schema.Width),
		},
		&mlpRegressor{
			columns:   schema.Columns(),
			hiddenAct: func(x float64) float64 { return x },
			outputAct: func(x float64) float64 { return 1000 },
			layers:    []layer{{weights: zeroWeights(schema.Width), biases: []float64{0}}},
		},
	)
	require.NoError(t, err)

	v, encErr := schema.Encode(estimatorAnswers())
	require.NoError(t, encErr)

	if _, err := e.Estimate(v); err != nil {
		t.Fatalf("baseline estimator failed: %v", err)
	}
	_, err = eOver.Estimate(v)
	require.ErrorIs(t, err, ErrNotFinite)
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func zeroWeights(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = []float64{0}
	}
	return out
}
