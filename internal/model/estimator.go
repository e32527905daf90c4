package model

import (
	"fmt"
	"math"

	"github.com/carboncentrik/footprint/internal/schema"
)

// Estimator runs the full inference chain: exact schema check, scale,
// predict, then invert the log transform the model was trained with.
type Estimator struct {
	scaler    Scaler
	regressor Regressor
}

// New builds an Estimator after verifying the two artifacts agree on their
// training columns.
func New(s Scaler, r Regressor) (*Estimator, error) {
	if err := sameColumns(r.Columns(), s.Columns()); err != nil {
		return nil, fmt.Errorf("scaler and regressor artifacts disagree: %w", err)
	}
	return &Estimator{scaler: s, regressor: r}, nil
}

// Load reads both artifact files and builds an Estimator from them.
func Load(scalerPath, regressorPath string) (*Estimator, error) {
	s, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	r, err := LoadRegressor(regressorPath)
	if err != nil {
		return nil, err
	}
	return New(s, r)
}

// Columns returns the training columns the artifacts expect.
func (e *Estimator) Columns() []string {
	return e.scaler.Columns()
}

// Estimate produces the footprint estimate in whole kilograms CO2e. The
// vector's columns must match the artifact columns exactly; any difference
// is an ErrSchemaMismatch, never a truncation or reorder. The raw model
// output is a log-footprint, so the result is round(exp(output)).
func (e *Estimator) Estimate(v schema.Vector) (int, error) {
	if err := sameColumns(v.Columns(), e.scaler.Columns()); err != nil {
		return 0, err
	}

	scaled, err := e.scaler.Transform(v.Values())
	if err != nil {
		return 0, err
	}
	logKg, err := e.regressor.Predict(scaled)
	if err != nil {
		return 0, err
	}

	kg := math.Exp(logKg)
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, fmt.Errorf("%w: exp(%g)", ErrNotFinite, logKg)
	}
	return int(math.Round(kg)), nil
}

func sameColumns(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %d columns where %d expected", ErrSchemaMismatch, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrSchemaMismatch, i, got[i], want[i])
		}
	}
	return nil
}
