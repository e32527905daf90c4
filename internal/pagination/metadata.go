package pagination

import (
	"math"
)

// Meta describes a page of results for JSON output.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta creates pagination metadata from parameters and a total count.
func NewMeta(params Params, totalCount int) Meta {
	pageSize := params.PageSize
	if pageSize == 0 && params.Limit > 0 {
		pageSize = params.Limit
	}
	if pageSize == 0 {
		// No window at all, treat the whole result set as one page.
		pageSize = totalCount
	}

	currentPage := params.Page
	if currentPage == 0 && params.Offset > 0 && pageSize > 0 {
		currentPage = (params.Offset / pageSize) + 1
	}
	if currentPage == 0 {
		currentPage = 1
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
