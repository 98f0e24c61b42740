package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/tui/components/applist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 5
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.scheduleModel.SetSize(msg.Width-4, contentHeight)
		m.reminderModel.SetSize(msg.Width-4, contentHeight)
		m.appList.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case applist.DeleteApplicationMsg:
		m.appToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case applist.RestoreApplicationMsg:
		if err := m.store.RestoreApplication(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case applist.FollowUpMsg:
		if app, err := m.store.GetApplication(msg.ID); err == nil {
			app.LastFollowUpDate = m.today
			app.UpdatedAt = time.Now().Format(time.RFC3339)
			if err := m.store.UpdateApplication(app); err == nil {
				m.refresh()
			}
		}
		return m, nil

	case applist.CycleStatusMsg:
		if app, err := m.store.GetApplication(msg.ID); err == nil {
			app.Status = nextStatus(app.Status)
			app.UpdatedAt = time.Now().Format(time.RFC3339)
			if err := m.store.UpdateApplication(app); err == nil {
				m.refresh()
			}
		}
		return m, nil
	}

	switch m.state {
	case StateEditSettings:
		return m.updateSettingsForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.Refresh):
			if m.state == StateToday || m.state == StateReminders {
				m.refresh()
				return m, nil
			}
		case key.Matches(keyMsg, m.keys.Edit):
			if m.state == StateSettings {
				m.settingsForm = settingsFormFrom(m.settings)
				m.form = NewSettingsForm(m.settingsForm)
				m.state = StateEditSettings
				return m, m.form.Init()
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.scheduleModel, cmd = m.scheduleModel.Update(msg)
	case StateReminders:
		m.reminderModel, cmd = m.reminderModel.Update(msg)
	case StateApplications:
		m.appList, cmd = m.appList.Update(msg)
	}

	return m, cmd
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		updated := applySettingsForm(m.settingsForm, m.settings)
		if err := m.store.SaveSettings(updated); err == nil {
			m.settings = updated
		}
		m.state = StateSettings
		m.form = nil
		m.settingsForm = nil
		m.refresh()
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = StateSettings
		m.form = nil
		m.settingsForm = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if err := m.store.DeleteApplication(m.appToDeleteID); err == nil {
				m.refresh()
			}
			m.appToDeleteID = ""
			m.state = m.previousState
		case "n", "N", "esc":
			m.appToDeleteID = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

func nextStatus(s models.ApplicationStatus) models.ApplicationStatus {
	switch s {
	case models.StatusApplied:
		return models.StatusInterview
	case models.StatusInterview:
		return models.StatusRejected
	case models.StatusRejected:
		return models.StatusNoResponse
	default:
		return models.StatusApplied
	}
}
