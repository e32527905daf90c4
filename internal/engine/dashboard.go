package engine

import (
	"context"
	"fmt"

	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/impact"
	"github.com/carboncentrik/footprint/internal/logging"
	"github.com/carboncentrik/footprint/internal/recommend"
)

// TrendPoint is one step of the footprint-over-time series.
type TrendPoint struct {
	Date            string `json:"date"`
	CarbonFootprint int    `json:"carbon_footprint"`
}

// Dashboard aggregates everything the dashboard surfaces need for one user:
// the latest record, deltas against the previous one, the footprint trend,
// and impact metrics recomputed from the latest stored answers.
type Dashboard struct {
	UserID          string           `json:"user_id"`
	Latest          history.Record   `json:"latest"`
	FootprintDelta  *int             `json:"footprint_delta,omitempty"`
	TreesDelta      *int             `json:"trees_delta,omitempty"`
	Trend           []TrendPoint     `json:"trend"`
	Breakdown       impact.Breakdown `json:"breakdown"`
	Shares          []impact.Share   `json:"shares"`
	Recommendations []string         `json:"recommendations"`
}

// Dashboard builds the dashboard view for one user. Breakdown and
// recommendations are recomputed from the latest raw answers, so they track
// the current rules rather than the rules at save time. A user with no
// stored records yields history.ErrNotFound; deltas are nil until a second
// record exists.
func (e *Engine) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	log := logging.FromContext(ctx)

	h, err := e.store.Load(userID)
	if err != nil {
		return nil, err
	}

	latest, ok := h.Latest()
	if !ok {
		return nil, fmt.Errorf("%w: history is empty", history.ErrNotFound)
	}

	breakdown := impact.Compute(latest.InputData)
	d := &Dashboard{
		UserID:          userID,
		Latest:          latest,
		Trend:           trendSeries(h),
		Breakdown:       breakdown,
		Shares:          breakdown.Shares(),
		Recommendations: recommend.For(latest.InputData),
	}
	if delta, ok := h.FootprintDelta(); ok {
		d.FootprintDelta = &delta
	}
	if delta, ok := h.TreesDelta(); ok {
		d.TreesDelta = &delta
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "dashboard").
		Str("user_id", userID).
		Int("record_count", h.Len()).
		Bool("has_delta", d.FootprintDelta != nil).
		Msg("dashboard built")

	return d, nil
}

// trendSeries flattens the history into date/footprint pairs in insertion
// order.
func trendSeries(h history.UserHistory) []TrendPoint {
	points := make([]TrendPoint, 0, h.Len())
	for _, r := range h.History {
		points = append(points, TrendPoint{Date: r.Date, CarbonFootprint: r.CarbonFootprint})
	}
	return points
}
