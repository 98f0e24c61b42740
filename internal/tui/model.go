package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/storage"
	"github.com/julianstephens/joblit/internal/tui/components/applist"
	"github.com/julianstephens/joblit/internal/tui/components/reminderlist"
	"github.com/julianstephens/joblit/internal/tui/components/schedule"
	"github.com/julianstephens/joblit/internal/utils"
	"github.com/julianstephens/joblit/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateReminders
	StateApplications
	StateSettings
	StateEditSettings
	StateConfirmDelete
)

// tabCount covers the cyclable tabs; modal states sit past it.
const tabCount = 4

type SettingsFormModel struct {
	DayStart                   string
	DayEnd                     string
	Timezone                   string
	DaysAfterApplication       string
	DaysAfterInterview         string
	DaysBetweenFollowUps       string
	DaysAfterInterviewThankYou string
	HomeReminderCount          string
}

type Model struct {
	store   storage.Provider
	planner *planner.Planner

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	scheduleModel schedule.Model
	reminderModel reminderlist.Model
	appList       applist.Model

	form         *huh.Form
	settingsForm *SettingsFormModel

	settings models.Settings
	today    string

	appToDeleteID     string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider, p *planner.Planner) Model {
	m := Model{
		store:         store,
		planner:       p,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		scheduleModel: schedule.New(0, 0),
		reminderModel: reminderlist.New(0, 0),
		appList:       applist.New(nil, 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads everything from the store and re-renders the components.
func (m *Model) refresh() {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.validationWarning = "⚠ Settings unavailable"
		return
	}
	m.settings = settings

	today, err := utils.GetTodayInTimezone(settings.Timezone)
	if err != nil {
		today = time.Now().Format("2006-01-02")
	}
	m.today = today

	apps, appErr := m.store.GetAllApplications()
	if appErr != nil {
		apps = []models.Application{}
	}
	events, evErr := m.store.GetAllEvents()
	if evErr != nil {
		events = []models.Event{}
	}

	offsets := planner.OffsetsFromSettings(settings)
	config, cfgErr := planner.ConfigFromSettings(settings)
	view := m.planner.BuildDailyView(today, config, apps, events, offsets)
	if cfgErr != nil {
		view.Blocks = []planner.Block{}
	}
	m.scheduleModel.SetView(view)

	labels := make(map[string]string, len(apps))
	for _, app := range apps {
		labels[app.ID] = fmt.Sprintf("%s - %s", app.Company, app.Role)
	}
	reminders := m.planner.ComputeReminders(apps, events, offsets, today)
	m.reminderModel.SetReminders(reminders, labels, today)

	// The list shows soft-deleted applications too so they can be restored.
	all, err := m.store.GetAllApplicationsIncludingDeleted()
	if err != nil {
		all = apps
	}
	m.appList.SetApplications(all)

	m.updateValidationStatus(settings, apps, events)
}

func (m *Model) updateValidationStatus(settings models.Settings, apps []models.Application, events []models.Event) {
	validator := validation.New()
	result := validator.ValidateSettings(settings)
	records := validator.ValidateRecords(apps, events)
	conflicts := append(result.Conflicts, records.Conflicts...)

	if len(conflicts) > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday, StateReminders:
		keys = append(keys, m.keys.Refresh)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday, StateReminders:
		actions = []key.Binding{m.keys.Refresh}
	case StateSettings:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
