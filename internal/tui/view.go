package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.scheduleModel.View())
	case StateReminders:
		content = docStyle.Render(m.reminderModel.View())
	case StateApplications:
		content = docStyle.Render(m.appList.View())
	case StateSettings:
		content = docStyle.Render(m.viewSettings())
	case StateEditSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Reminders", "Applications", "Settings"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Day start:        %s\n", m.settings.DayStart))
	b.WriteString(fmt.Sprintf("Day end:          %s\n", m.settings.DayEnd))
	b.WriteString(fmt.Sprintf("Block order:      %s\n", strings.Join(m.settings.BlockOrder, ", ")))
	b.WriteString(fmt.Sprintf("Timezone:         %s\n", m.settings.Timezone))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Follow up after applying:   %d days\n", m.settings.DaysAfterApplication))
	b.WriteString(fmt.Sprintf("Follow up after interview:  %d days\n", m.settings.DaysAfterInterview))
	b.WriteString(fmt.Sprintf("Between follow-ups:         %d days\n", m.settings.DaysBetweenFollowUps))
	b.WriteString(fmt.Sprintf("Thank-you after interview:  %d days\n", m.settings.DaysAfterInterviewThankYou))
	b.WriteString(fmt.Sprintf("Home reminder count:        %d\n", m.settings.HomeReminderCount))
	b.WriteString("\nPress 'e' to edit.")
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this application?"),
			"Its events keep their history and it can be restored later.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
