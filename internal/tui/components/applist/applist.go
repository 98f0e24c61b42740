package applist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/joblit/internal/models"
)

type DeleteApplicationMsg struct {
	ID string
}

type RestoreApplicationMsg struct {
	ID string
}

// FollowUpMsg records that the user followed up on an application today.
type FollowUpMsg struct {
	ID string
}

type CycleStatusMsg struct {
	ID string
}

type Item struct {
	App models.Application
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s - %s", i.App.Company, i.App.Role)
	if i.App.DeletedAt != nil {
		return "👻 " + title + " (deleted)"
	}
	return title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | applied %s", i.App.Status, i.App.AppliedDate)
	if i.App.LastFollowUpDate != "" {
		desc += " | followed up " + i.App.LastFollowUpDate
	}
	if i.App.DeletedAt != nil {
		desc += " | can restore with 'r'"
	}
	return desc
}

func (i Item) FilterValue() string { return i.App.Company + " " + i.App.Role }

type KeyMap struct {
	Delete   key.Binding
	Restore  key.Binding
	FollowUp key.Binding
	Status   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		FollowUp: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "followed up"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(apps []models.Application, width, height int) Model {
	items := make([]list.Item, len(apps))
	for i, a := range apps {
		items[i] = Item{App: a}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Applications"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.FollowUp, keys.Status, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.FollowUp, keys.Status, keys.Delete, keys.Restore}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetApplications(apps []models.Application) {
	items := make([]list.Item, len(apps))
	for i, a := range apps {
		items[i] = Item{App: a}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteApplicationMsg{ID: i.App.ID} }
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.App.DeletedAt != nil {
					return m, func() tea.Msg { return RestoreApplicationMsg{ID: i.App.ID} }
				}
			}
		case key.Matches(msg, m.keys.FollowUp):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return FollowUpMsg{ID: i.App.ID} }
			}
		case key.Matches(msg, m.keys.Status):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return CycleStatusMsg{ID: i.App.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No applications yet.\n  Add one with 'joblit app add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
