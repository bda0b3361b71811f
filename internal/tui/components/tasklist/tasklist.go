package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
)

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

// OpenDateMsg asks for the day view of Date.
type OpenDateMsg struct {
	Date string
}

type Item struct {
	Task models.Task
	tr   *i18n.Translator
}

func (i Item) Title() string {
	if i.Task.Completed {
		return "✓ " + i.Task.Title
	}
	return i.Task.Title
}

func (i Item) Description() string {
	periods := make([]string, len(i.Task.Periods))
	for j, p := range i.Task.Periods {
		periods[j] = i.tr.Period(p)
	}
	desc := fmt.Sprintf("%s | %s | %s", i.Task.DueDate, strings.Join(periods, ", "), i.Task.Weight)
	if i.Task.Recurrence != "" && i.Task.Recurrence != models.RecurrenceNone {
		desc += " | " + i.tr.Recurrence(i.Task.Recurrence)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Toggle key.Binding
	Delete key.Binding
	Open   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open day"),
		),
	}
}

// Model lists tasks due after today.
type Model struct {
	list list.Model
	keys KeyMap
	tr   *i18n.Translator
}

func New(tasks []models.Task, tr *i18n.Translator, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = tr.T(i18n.UpcomingTasks)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Open}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{list: l, keys: keys, tr: tr}
	m.SetTasks(tasks, tr)
	return m
}

func (m *Model) SetTasks(tasks []models.Task, tr *i18n.Translator) {
	m.tr = tr
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t, tr: tr}
	}
	m.list.SetItems(items)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if i, ok := m.list.SelectedItem().(Item); ok {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, func() tea.Msg { return ToggleTaskMsg{ID: i.Task.ID} }
			case key.Matches(msg, m.keys.Delete):
				return m, func() tea.Msg { return DeleteTaskMsg{ID: i.Task.ID} }
			case key.Matches(msg, m.keys.Open):
				return m, func() tea.Msg { return OpenDateMsg{Date: i.Task.DueDate} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  " + m.tr.T(i18n.NoUpcoming)
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
