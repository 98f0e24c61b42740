package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/joblit/internal/planner"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	themeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	Day    *planner.DailyView
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Day == nil {
		return "No schedule loaded."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetView(view planner.DailyView) {
	m.Day = &view
	m.render()
}

func (m *Model) render() {
	if m.Day == nil {
		m.viewport.SetContent("No schedule loaded.")
		return
	}

	var b strings.Builder
	header := m.Day.Date
	if m.Day.Theme != "" {
		header += "  " + themeStyle.Render(m.Day.Theme)
	}
	b.WriteString(header + "\n\n")

	if len(m.Day.Blocks) == 0 {
		b.WriteString("No schedule preview available\n")
	}
	for _, block := range m.Day.Blocks {
		timeStr := block.Display
		if !block.Timed {
			timeStr = ""
		}
		line := fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(timeStr),
			titleStyle.Render(block.Title),
			descStyle.Render(block.Description),
		)
		b.WriteString(line)
	}
	m.viewport.SetContent(b.String())
}
