package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
)

// DashboardSection identifies one tab of the interactive dashboard.
type DashboardSection int

// Dashboard sections in tab order.
const (
	SectionSummary DashboardSection = iota
	SectionTrend
	SectionBreakdown
	SectionRecommendations
	SectionHistory

	numSections = 5
)

//nolint:gochecknoglobals // Tab labels in display order.
var sectionTitles = [numSections]string{
	"Summary",
	"Trend",
	"Breakdown",
	"Recommendations",
	"History",
}

func (s DashboardSection) String() string {
	if s < 0 || int(s) >= numSections {
		return "Unknown"
	}
	return sectionTitles[s]
}

// DashboardModel is the Bubble Tea model for the interactive dashboard. All
// data is loaded before the program starts; the model only navigates it.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	dashboard *engine.Dashboard
	histTable table.Model

	section  DashboardSection
	width    int
	height   int
	quitting bool
}

// NewDashboardModel creates the interactive dashboard over a loaded view and
// the full record history.
func NewDashboardModel(d *engine.Dashboard, h history.UserHistory) DashboardModel {
	return DashboardModel{
		dashboard: d,
		histTable: NewHistoryTable(h, historyTableHeight),
		section:   SectionSummary,
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init initializes the model (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "right", "l":
			m.section = (m.section + 1) % numSections
			return m, nil
		case "shift+tab", "left", "h":
			m.section = (m.section + numSections - 1) % numSections
			return m, nil
		}

		// Remaining keys scroll the history table when it has focus.
		if m.section == SectionHistory {
			var cmd tea.Cmd
			m.histTable, cmd = m.histTable.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderTitle(m.dashboard))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderSection())
	sb.WriteString("\n\n")
	sb.WriteString(SubtleStyle.Render("tab/←/→: switch section | ↑/↓: scroll history | q: quit"))
	return sb.String()
}

func (m DashboardModel) renderTabs() string {
	tabs := make([]string, 0, numSections)
	for i, title := range sectionTitles {
		if DashboardSection(i) == m.section {
			tabs = append(tabs, HeaderStyle.Underline(true).Render(title))
		} else {
			tabs = append(tabs, SubtleStyle.Render(title))
		}
	}
	return strings.Join(tabs, SubtleStyle.Render("  |  "))
}

func (m DashboardModel) renderSection() string {
	switch m.section {
	case SectionSummary:
		return RenderSummaryCards(m.dashboard)
	case SectionTrend:
		return RenderTrend(m.dashboard.Trend)
	case SectionBreakdown:
		return RenderBreakdown(m.dashboard.Shares)
	case SectionRecommendations:
		return RenderRecommendations(m.dashboard.Recommendations)
	case SectionHistory:
		return m.histTable.View()
	default:
		return ""
	}
}

// RunDashboard runs the interactive dashboard until the user quits.
func RunDashboard(d *engine.Dashboard, h history.UserHistory) error {
	p := tea.NewProgram(NewDashboardModel(d, h), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
