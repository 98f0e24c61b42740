package reminderlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/joblit/internal/planner"
)

var (
	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dueTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	upcomingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	viewport  viewport.Model
	Reminders []planner.Reminder
	// Labels maps application ids to display names.
	Labels map[string]string
	Today  string
	width  int
	height int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		Labels:   make(map[string]string),
	}
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
	if len(m.Reminders) == 0 {
		return "\n  No outstanding reminders."
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

func (m *Model) SetReminders(reminders []planner.Reminder, labels map[string]string, today string) {
	m.Reminders = reminders
	m.Labels = labels
	m.Today = today
	m.render()
}

func kindLabel(kind planner.ReminderKind) string {
	switch kind {
	case planner.ReminderFollowUp:
		return "follow up"
	case planner.ReminderThankYou:
		return "send thank-you note"
	default:
		return string(kind)
	}
}

func (m *Model) render() {
	var b strings.Builder

	overdue := 0
	for _, r := range m.Reminders {
		if r.Overdue {
			overdue++
		}
	}
	if overdue > 0 {
		b.WriteString(overdueStyle.Render(fmt.Sprintf("%d overdue", overdue)) + "\n\n")
	}

	for _, r := range m.Reminders {
		label := m.Labels[r.ApplicationID]
		if label == "" {
			label = r.ApplicationID
		}

		line := fmt.Sprintf("%s  %-22s %s", r.DueDate, kindLabel(r.Kind), labelStyle.Render(label))
		switch {
		case r.Overdue:
			line = overdueStyle.Render("! ") + line
		case r.DueDate == m.Today:
			line = dueTodayStyle.Render("* ") + line
		default:
			line = "  " + upcomingStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	m.viewport.SetContent(b.String())
}
