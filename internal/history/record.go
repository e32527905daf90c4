// Package history persists the per-user estimate ledger: one JSON file per
// user identifier holding an append-only record sequence.
package history

import "github.com/carboncentrik/footprint/internal/survey"

// DateFormat is the calendar-day layout used in record dates.
const DateFormat = "2006-01-02"

// Record is one saved estimate. The input_data snapshot stores the raw
// answers, so breakdowns and recommendations can be recomputed from any
// stored record. Records are immutable once written.
type Record struct {
	Date            string         `json:"date"`
	CarbonFootprint int            `json:"carbon_footprint"`
	TreesOwed       int            `json:"trees_owed"`
	InputData       survey.Answers `json:"input_data"`
}

// UserHistory is one user's record sequence. Order is insertion order,
// which equals chronological order since writes are sequential; the latest
// record is last. Records are addressed by position only.
type UserHistory struct {
	History []Record `json:"history"`
}

// Len returns the number of records.
func (h UserHistory) Len() int {
	return len(h.History)
}

// Latest returns the most recent record, if any.
func (h UserHistory) Latest() (Record, bool) {
	if len(h.History) == 0 {
		return Record{}, false
	}
	return h.History[len(h.History)-1], true
}

// Previous returns the record before the latest, if any.
func (h UserHistory) Previous() (Record, bool) {
	if len(h.History) < 2 {
		return Record{}, false
	}
	return h.History[len(h.History)-2], true
}

// FootprintDelta returns the footprint change between the two most recent
// records. It reports false with fewer than two records; deltas are a
// read-side computation, never stored.
func (h UserHistory) FootprintDelta() (int, bool) {
	latest, ok := h.Latest()
	if !ok {
		return 0, false
	}
	previous, ok := h.Previous()
	if !ok {
		return 0, false
	}
	return latest.CarbonFootprint - previous.CarbonFootprint, true
}

// TreesDelta returns the trees-owed change between the two most recent
// records. It reports false with fewer than two records.
func (h UserHistory) TreesDelta() (int, bool) {
	latest, ok := h.Latest()
	if !ok {
		return 0, false
	}
	previous, ok := h.Previous()
	if !ok {
		return 0, false
	}
	return latest.TreesOwed - previous.TreesOwed, true
}
