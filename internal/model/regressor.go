package model

import (
	"fmt"
	"math"
)

// Regressor predicts the log-footprint from a scaled row.
type Regressor interface {
	// Predict returns the single model output for one row.
	Predict(values []float64) (float64, error)
	// Columns returns the training columns the regressor was fitted on.
	Columns() []string
}

// Activation names accepted in regressor artifacts.
const (
	ActivationIdentity = "identity"
	ActivationReLU     = "relu"
	ActivationTanh     = "tanh"
	ActivationLogistic = "logistic"
)

// layer holds one dense layer. weights[j][k] connects input j to output k.
type layer struct {
	weights [][]float64
	biases  []float64
}

// mlpRegressor is a feed-forward network with a shared hidden activation and
// a single output unit.
type mlpRegressor struct {
	columns   []string
	hiddenAct func(float64) float64
	outputAct func(float64) float64
	layers    []layer
}

func (m *mlpRegressor) Columns() []string {
	return m.columns
}

func (m *mlpRegressor) Predict(values []float64) (float64, error) {
	if len(values) != len(m.columns) {
		return 0, fmt.Errorf("%w: regressor fitted on %d columns, got %d values",
			ErrSchemaMismatch, len(m.columns), len(values))
	}

	current := values
	for i, l := range m.layers {
		next := make([]float64, len(l.biases))
		for k := range next {
			sum := l.biases[k]
			for j, x := range current {
				sum += x * l.weights[j][k]
			}
			next[k] = sum
		}
		act := m.hiddenAct
		if i == len(m.layers)-1 {
			act = m.outputAct
		}
		for k, v := range next {
			next[k] = act(v)
			if math.IsNaN(next[k]) || math.IsInf(next[k], 0) {
				return 0, fmt.Errorf("%w: layer %d unit %d", ErrNotFinite, i, k)
			}
		}
		current = next
	}
	return current[0], nil
}

func activationFunc(name string) (func(float64) float64, error) {
	switch name {
	case ActivationIdentity:
		return func(x float64) float64 { return x }, nil
	case ActivationReLU:
		return func(x float64) float64 { return math.Max(0, x) }, nil
	case ActivationTanh:
		return math.Tanh, nil
	case ActivationLogistic:
		return func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown activation %q", ErrInvalidArtifact, name)
	}
}
