package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carboncentrik/footprint/internal/history"
)

func testHistory() history.UserHistory {
	return history.UserHistory{History: []history.Record{
		{Date: "2026-07-01", CarbonFootprint: 2800, TreesOwed: 7},
		{Date: "2026-08-01", CarbonFootprint: 2400, TreesOwed: 6},
	}}
}

func TestNewDashboardModel(t *testing.T) {
	m := NewDashboardModel(testDashboard(), testHistory())

	assert.Equal(t, SectionSummary, m.section)
	assert.Equal(t, defaultWidth, m.width)
	assert.False(t, m.quitting)
	assert.Nil(t, m.Init())
}

func TestDashboardModelNavigation(t *testing.T) {
	t.Run("tab cycles forward and wraps", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())

		order := []DashboardSection{
			SectionTrend,
			SectionBreakdown,
			SectionRecommendations,
			SectionHistory,
			SectionSummary,
		}
		for _, want := range order {
			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
			m = updated.(DashboardModel)
			assert.Equal(t, want, m.section)
		}
	})

	t.Run("shift+tab cycles backward from the first section", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		m = updated.(DashboardModel)
		assert.Equal(t, SectionHistory, m.section)
	})

	t.Run("q quits", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = updated.(DashboardModel)

		assert.True(t, m.quitting)
		require.NotNil(t, cmd)
		assert.Empty(t, m.View())
	})

	t.Run("window size updates dimensions", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())

		updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
		m = updated.(DashboardModel)

		assert.Equal(t, 120, m.width)
		assert.Equal(t, 40, m.height)
	})
}

func TestDashboardModelView(t *testing.T) {
	t.Run("summary section by default", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())

		view := m.View()
		assert.Contains(t, view, "Carbon Footprint Dashboard")
		assert.Contains(t, view, "CARBON FOOTPRINT")
		assert.Contains(t, view, "q: quit")
	})

	t.Run("history section shows the table", func(t *testing.T) {
		m := NewDashboardModel(testDashboard(), testHistory())
		m.section = SectionHistory

		view := m.View()
		assert.Contains(t, view, "2026-07-01")
		assert.Contains(t, view, "Change")
	})
}

func TestDashboardSectionString(t *testing.T) {
	assert.Equal(t, "Summary", SectionSummary.String())
	assert.Equal(t, "History", SectionHistory.String())
	assert.Equal(t, "Unknown", DashboardSection(99).String())
}
