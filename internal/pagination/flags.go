package pagination

import (
	"errors"
)

// Pagination defaults and bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// Params holds the pagination inputs of a list request, bound from CLI flags
// or query parameters. Two modes are supported:
//   - Offset-based: limit and offset
//   - Page-based: page and page-size
//
// The modes are mutually exclusive.
type Params struct {
	// Limit is the maximum number of results to return (offset-based mode).
	Limit int

	// Offset is the number of results to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode).
	Page int

	// PageSize is the number of results per page (page-based mode).
	PageSize int
}

// NewParams creates Params with default values. Page and PageSize stay zero;
// a zero Page means page-based mode is not active.
func NewParams() *Params {
	return &Params{
		Limit:  DefaultLimit,
		Offset: 0,
	}
}

// Validate checks that the pagination parameters are consistent.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 {
		return errors.New("page-size cannot be negative")
	}
	if p.Limit > MaxLimit {
		return errors.New("limit exceeds the maximum of 1000")
	}
	if p.PageSize > MaxLimit {
		return errors.New("page-size exceeds the maximum of 1000")
	}

	if p.Page > 0 && p.Offset > 0 {
		return errors.New("page and offset parameters are mutually exclusive")
	}

	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("page must be specified when using page-size")
	}
	if p.PageSize == 0 && p.Page > 0 {
		return errors.New("page-size must be specified when using page")
	}

	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// EffectiveLimit returns the window size regardless of mode.
func (p Params) EffectiveLimit() int {
	if p.IsPageBased() {
		return p.PageSize
	}
	return p.Limit
}

// EffectiveOffset returns the number of skipped records regardless of mode.
func (p Params) EffectiveOffset() int {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize
	}
	return p.Offset
}

// Window clamps the effective window against total and returns the half-open
// range [start, end) to slice. A page beyond the last snaps back to the last
// page; an offset beyond the end yields an empty window.
func (p Params) Window(total int) (int, int) {
	if total == 0 {
		return 0, 0
	}

	start := p.EffectiveOffset()
	limit := p.EffectiveLimit()

	if p.IsPageBased() && start >= total {
		start = ((total - 1) / p.PageSize) * p.PageSize
	}
	if start > total {
		start = total
	}

	end := start + limit
	if limit == 0 || end > total {
		end = total
	}
	return start, end
}

// Apply returns the slice window selected by the parameters.
func Apply[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}
