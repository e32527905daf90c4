package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/carboncentrik/footprint/internal/impact"
)

// RenderDelta renders a styled change against the previous record with sign
// and directional arrow.
//
// Returns a styled string with:
//   - "+" prefix and ↑ arrow for increases (warning color)
//   - ↓ arrow for decreases (OK color)
//   - → arrow for no change (muted color)
func RenderDelta(delta int, unit string) string {
	var icon, sign string
	var color lipgloss.Color

	switch {
	case delta > 0:
		icon = IconArrowUp
		sign = "+"
		color = ColorWarning
	case delta < 0:
		icon = IconArrowDown
		sign = ""
		color = ColorOK
	default:
		icon = IconArrowRight
		sign = ""
		color = ColorMuted
	}

	formatted := impact.FormatNumber(int64(absInt(delta)))
	if unit != "" {
		formatted += " " + unit
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s %s", sign, formatted, icon))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
