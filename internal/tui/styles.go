// Package tui renders the terminal dashboard: summary cards, the footprint
// trend, category breakdown bars, recommendations, and the history table.
// The static renderers are shared with the CLI's non-interactive output.
package tui

import "github.com/charmbracelet/lipgloss"

// Default dimensions used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Colors for the shared styles.
//
//nolint:gochecknoglobals // Shared palette for all views.
var (
	ColorWarning   = lipgloss.Color("214")
	ColorOK        = lipgloss.Color("42")
	ColorMuted     = lipgloss.Color("241")
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorBorder    = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("205")
	ColorSpinner   = lipgloss.Color("205")
)

// Directional icons for delta rendering.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)
