package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/impact"
)

// Column widths for the history table.
const (
	histColWidthDate      = 12
	histColWidthFootprint = 16
	histColWidthTrees     = 8
	histColWidthChange    = 12

	historyTableHeight = 10
)

// NewHistoryTable creates a table of saved records in insertion order, with
// a per-row footprint change against the preceding record.
func NewHistoryTable(h history.UserHistory, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: histColWidthDate},
		{Title: "Footprint (kg)", Width: histColWidthFootprint},
		{Title: "Trees", Width: histColWidthTrees},
		{Title: "Change", Width: histColWidthChange},
	}

	rows := make([]table.Row, h.Len())
	for i, r := range h.History {
		change := "-"
		if i > 0 {
			change = formatChange(r.CarbonFootprint - h.History[i-1].CarbonFootprint)
		}
		rows[i] = table.Row{
			r.Date,
			impact.FormatNumber(int64(r.CarbonFootprint)),
			impact.FormatNumber(int64(r.TreesOwed)),
			change,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// formatChange renders a signed delta as plain text for table cells.
func formatChange(delta int) string {
	switch {
	case delta > 0:
		return "+" + impact.FormatNumber(int64(delta))
	case delta < 0:
		return "-" + impact.FormatNumber(int64(-delta))
	default:
		return "0"
	}
}
