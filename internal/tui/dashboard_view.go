package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/impact"
)

// Layout constants.
const (
	summaryCardWidth     = 34
	trendDateWidth       = 12
	trendBarMaxWidth     = 40
	breakdownLabelWidth  = 14
	breakdownBarMaxWidth = 30
)

// RenderTitle renders the dashboard banner with the user id and the date of
// the latest record.
func RenderTitle(d *engine.Dashboard) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Carbon Footprint Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("User: "))
	sb.WriteString(ValueStyle.Render(d.UserID))
	sb.WriteString(LabelStyle.Render("   Last updated: "))
	sb.WriteString(ValueStyle.Render(d.Latest.Date))
	return sb.String()
}

// RenderSummaryCards renders the latest footprint and trees-owed cards,
// each with a delta arrow when a previous record exists.
func RenderSummaryCards(d *engine.Dashboard) string {
	footprint := ValueStyle.Render(impact.FormatKg(d.Latest.CarbonFootprint) + "/year")
	if d.FootprintDelta != nil {
		footprint += "  " + RenderDelta(*d.FootprintDelta, "kg")
	}
	footprintCard := BoxStyle.Width(summaryCardWidth).Render(
		HeaderStyle.Render("CARBON FOOTPRINT") + "\n" + footprint)

	trees := ValueStyle.Render(impact.FormatNumber(int64(d.Latest.TreesOwed)) + " trees/year")
	if d.TreesDelta != nil {
		trees += "  " + RenderDelta(*d.TreesDelta, "")
	}
	treesCard := BoxStyle.Width(summaryCardWidth).Render(
		HeaderStyle.Render("TREES TO PLANT") + "\n" + trees)

	return lipgloss.JoinHorizontal(lipgloss.Top, footprintCard, "  ", treesCard)
}

// RenderTrend renders the footprint-over-time series as horizontal bars
// scaled to the largest footprint.
func RenderTrend(points []engine.TrendPoint) string {
	if len(points) == 0 {
		return InfoStyle.Render("No history yet.")
	}

	maxKg := 0
	for _, p := range points {
		if p.CarbonFootprint > maxKg {
			maxKg = p.CarbonFootprint
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorHeader)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("FOOTPRINT OVER TIME"))
	sb.WriteString("\n")
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%-*s ", trendDateWidth, p.Date))
		sb.WriteString(barStyle.Render(strings.Repeat("█", barWidth(p.CarbonFootprint, maxKg, trendBarMaxWidth))))
		sb.WriteString(" ")
		sb.WriteString(SubtleStyle.Render(impact.FormatNumber(int64(p.CarbonFootprint)) + " kg"))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderBreakdown renders the category scores as bars with percentage
// shares, scaled to the largest share.
func RenderBreakdown(shares []impact.Share) string {
	if len(shares) == 0 {
		return InfoStyle.Render("No breakdown available.")
	}

	maxPct := 0.0
	for _, s := range shares {
		if s.Percent > maxPct {
			maxPct = s.Percent
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorHighlight)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("IMPACT BY CATEGORY"))
	sb.WriteString("\n")
	for _, s := range shares {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s ", breakdownLabelWidth, string(s.Category))))
		sb.WriteString(barStyle.Render(strings.Repeat("█", barWidth(int(s.Percent*100), int(maxPct*100), breakdownBarMaxWidth))))
		sb.WriteString(" ")
		sb.WriteString(ValueStyle.Render(impact.FormatPercent(s.Percent)))
		sb.WriteString(SubtleStyle.Render(" (" + impact.FormatScore(s.Score) + ")"))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderRecommendations renders the triggered recommendations as a list.
func RenderRecommendations(recs []string) string {
	if len(recs) == 0 {
		return InfoStyle.Render("No recommendations for your latest answers.")
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("RECOMMENDATIONS"))
	sb.WriteString("\n")
	for _, r := range recs {
		sb.WriteString(SubtleStyle.Render("  " + IconArrowRight + " "))
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderDashboard renders the complete dashboard as static text for
// non-interactive output.
func RenderDashboard(d *engine.Dashboard) string {
	sections := []string{
		RenderTitle(d),
		RenderSummaryCards(d),
		RenderTrend(d.Trend),
		RenderBreakdown(d.Shares),
		RenderRecommendations(d.Recommendations),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// barWidth scales value against max into [0, maxWidth] columns, keeping at
// least one column for non-zero values.
func barWidth(value, maxValue, maxWidth int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	w := value * maxWidth / maxValue
	if w == 0 {
		w = 1
	}
	return w
}
