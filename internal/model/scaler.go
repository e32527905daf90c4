// Package model loads the trained artifacts (feature scaler and regression
// network) from their JSON exports and runs the inference chain that turns an
// encoded survey row into a footprint estimate in kilograms CO2e.
package model

import "fmt"

// Scaler rescales an encoded row into the distribution the regressor was
// trained on. Implementations are fitted offline; this package only applies
// them.
type Scaler interface {
	// Transform returns a rescaled copy of values.
	Transform(values []float64) ([]float64, error)
	// Columns returns the training columns the scaler was fitted on.
	Columns() []string
}

// standardScaler applies the per-column affine transform (x - mean) / scale.
type standardScaler struct {
	columns []string
	mean    []float64
	scale   []float64
}

func (s *standardScaler) Columns() []string {
	return s.columns
}

func (s *standardScaler) Transform(values []float64) ([]float64, error) {
	if len(values) != len(s.mean) {
		return nil, fmt.Errorf("%w: scaler fitted on %d columns, got %d values",
			ErrSchemaMismatch, len(s.mean), len(values))
	}
	out := make([]float64, len(values))
	for i, x := range values {
		out[i] = (x - s.mean[i]) / s.scale[i]
	}
	return out, nil
}
