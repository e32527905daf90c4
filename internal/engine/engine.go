// Package engine orchestrates the estimation pipeline: survey answers are
// encoded, scored by the model, enriched with impact metrics and
// recommendations, and optionally persisted to per-user history.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/impact"
	"github.com/carboncentrik/footprint/internal/logging"
	"github.com/carboncentrik/footprint/internal/recommend"
	"github.com/carboncentrik/footprint/internal/schema"
	"github.com/carboncentrik/footprint/internal/survey"
)

// DefaultUserID identifies submissions that carry no explicit user id.
const DefaultUserID = "default_user"

// ErrNoModel is returned by Estimate and Save when the engine was built
// without model artifacts. Rule-only operations keep working.
var ErrNoModel = errors.New("no model loaded")

// Estimator scores an encoded survey vector in kg CO2 per year.
type Estimator interface {
	Estimate(v schema.Vector) (int, error)
}

// Engine wires the estimator, the history store, and a clock.
type Engine struct {
	estimator Estimator
	store     *history.Store
	// now is a function that returns the current time (injectable for testing).
	now func() time.Time
}

// New creates an Engine. A nil estimator is allowed: rule-only operations
// (BreakdownFor, RecommendFor, Dashboard, History) still work, while
// Estimate and Save return ErrNoModel.
func New(estimator Estimator, store *history.Store) *Engine {
	return &Engine{
		estimator: estimator,
		store:     store,
		now:       time.Now,
	}
}

// NewWithTime creates an Engine with a custom time function.
// This is useful for testing scenarios where time needs to be controlled.
func NewWithTime(estimator Estimator, store *history.Store, nowFunc func() time.Time) *Engine {
	return &Engine{
		estimator: estimator,
		store:     store,
		now:       nowFunc,
	}
}

// Result is the outcome of one estimation: the model's footprint, the trees
// needed to offset it, and the rule-based impact metrics.
type Result struct {
	CarbonFootprint int              `json:"carbon_footprint"`
	TreesOwed       int              `json:"trees_owed"`
	Breakdown       impact.Breakdown `json:"breakdown"`
	Recommendations []string         `json:"recommendations"`
}

// Estimate runs the full pipeline for one set of answers without persisting
// anything. Answers are validated during encoding; unseen categories fail
// here rather than being silently dropped.
func (e *Engine) Estimate(ctx context.Context, answers survey.Answers) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if e.estimator == nil {
		return nil, ErrNoModel
	}

	vec, err := schema.Encode(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	kg, err := e.estimator.Estimate(vec)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "estimate").
			Err(err).
			Msg("model inference failed")
		return nil, fmt.Errorf("estimate footprint: %w", err)
	}

	result := &Result{
		CarbonFootprint: kg,
		TreesOwed:       impact.TreesOwed(float64(kg)),
		Breakdown:       impact.Compute(answers),
		Recommendations: recommend.For(answers),
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate").
		Int("carbon_kg", result.CarbonFootprint).
		Int("trees_owed", result.TreesOwed).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("footprint estimated")

	return result, nil
}

// Save estimates the answers and appends the outcome to the user's history.
// The record date comes from the engine clock. The updated history is
// returned alongside the result and the record just written.
func (e *Engine) Save(
	ctx context.Context,
	userID string,
	answers survey.Answers,
) (*Result, history.Record, error) {
	log := logging.FromContext(ctx)

	result, err := e.Estimate(ctx, answers)
	if err != nil {
		return nil, history.Record{}, err
	}

	record := history.Record{
		Date:            e.now().Format(history.DateFormat),
		CarbonFootprint: result.CarbonFootprint,
		TreesOwed:       result.TreesOwed,
		InputData:       answers,
	}

	updated, err := e.store.Append(userID, record)
	if err != nil {
		return nil, history.Record{}, fmt.Errorf("save record: %w", err)
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "save").
		Str("user_id", userID).
		Str("date", record.Date).
		Int("carbon_kg", record.CarbonFootprint).
		Int("record_count", updated.Len()).
		Msg("record saved")

	return result, record, nil
}

// History loads the user's stored records in insertion order.
// history.ErrNotFound means the user has never saved anything.
func (e *Engine) History(ctx context.Context, userID string) (history.UserHistory, error) {
	log := logging.FromContext(ctx)

	h, err := e.store.Load(userID)
	if err != nil {
		return history.UserHistory{}, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "history").
		Str("user_id", userID).
		Int("record_count", h.Len()).
		Msg("history loaded")

	return h, nil
}

// BreakdownFor computes the rule-based category scores for one set of
// answers. It validates the answers but needs no model artifacts.
func (e *Engine) BreakdownFor(ctx context.Context, answers survey.Answers) (impact.Breakdown, error) {
	if err := answers.Validate(); err != nil {
		return impact.Breakdown{}, fmt.Errorf("validate answers: %w", err)
	}
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "breakdown").
		Msg("breakdown computed")
	return impact.Compute(answers), nil
}

// RecommendFor returns the triggered recommendations for one set of answers.
// It validates the answers but needs no model artifacts.
func (e *Engine) RecommendFor(ctx context.Context, answers survey.Answers) ([]string, error) {
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("validate answers: %w", err)
	}
	recs := recommend.For(answers)
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "recommend").
		Int("rule_count", len(recs)).
		Msg("recommendations computed")
	return recs, nil
}
