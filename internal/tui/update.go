package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayflow/internal/constants"
	apperrors "github.com/julianstephens/dayflow/internal/errors"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
	"github.com/julianstephens/dayflow/internal/tui/components/tasklist"
	"github.com/julianstephens/dayflow/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.upcoming.SetSize(msg.Width-2, max(1, msg.Height-8))
		return m, nil

	case tickMsg:
		m.onTick(m.mgr.Tick(m.mgr.Clock().Now()))
		return m, tick()

	case suggestionMsg:
		sg := optimizer.Suggestion(msg)
		if m.state == constants.StateAdding && m.form == nil && m.suggester.Fresh(sg) {
			m.suggested = sg.Weight
		}
		return m, waitForSuggestion(m.suggester)

	case tasklist.ToggleTaskMsg:
		m.dispatch(session.ToggleComplete{ID: msg.ID})
		return m, nil
	case tasklist.DeleteTaskMsg:
		m.dispatch(session.Delete{ID: msg.ID})
		return m, nil
	case tasklist.OpenDateMsg:
		m.date = msg.Date
		m.view = viewDay
		m.cursor = 0
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case constants.StateAlarmPlaying:
		return m.updateAlarm(msg)
	case constants.StateAdding:
		return m.updateAdding(msg)
	case constants.StateRanking:
		return m.updateRanking(msg)
	case constants.StateSettings:
		return m.updateSettings(msg)
	case constants.StateEditSettings:
		return m.updateEditSettings(msg)
	}
	return m.updateDay(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.suggester.Stop()
	if m.mgr.AlarmPlaying() {
		if err := m.mgr.StopAlarm(); err != nil {
			logger.Warn("Failed to stop alarm", "error", err)
		}
	}
	return m, tea.Quit
}

// onTick advances the clock. The day view follows midnight only when it was
// showing today.
func (m *Model) onTick(res session.TickResult) {
	wasToday := m.date == m.today()
	m.now = res.Now
	m.status = res.Status

	if wasToday && m.date != m.today() {
		m.date = m.today()
		m.refresh()
	}
	if res.PeriodChanged && m.date == m.today() {
		m.focus = m.activeIndex()
		m.cursor = 0
	}
	if res.AlarmFired && m.state != constants.StateAlarmPlaying {
		m.previousState = m.state
		m.state = constants.StateAlarmPlaying
	} else if res.AlarmExpired && m.state == constants.StateAlarmPlaying {
		m.state = m.previousState
	}
}

func (m *Model) userError(err error) string {
	return apperrors.UserMessage(err, m.session.Settings.Language)
}

func (m Model) updateDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.view == viewUpcoming {
		if m.upcoming.Filtering() || !(key.Matches(k, m.keys.Quit) || key.Matches(k, m.keys.View) || key.Matches(k, m.keys.Help)) {
			var cmd tea.Cmd
			m.upcoming, cmd = m.upcoming.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m.quit()
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(k, m.keys.View):
		m.view = (m.view + 1) % viewModes
	case key.Matches(k, m.keys.Settings):
		m.state = constants.StateSettings
	}
	if m.view != viewDay {
		return m, nil
	}

	task, hasTask := m.selectedTask()
	switch {
	case key.Matches(k, m.keys.Left):
		m.focus = (m.focus + len(m.blocks()) - 1) % len(m.blocks())
		m.cursor = 0
	case key.Matches(k, m.keys.Right):
		m.focus = (m.focus + 1) % len(m.blocks())
		m.cursor = 0
	case key.Matches(k, m.keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(k, m.keys.Down):
		m.cursor = min(max(0, len(m.focusedBlock().Tasks)-1), m.cursor+1)
	case key.Matches(k, m.keys.PrevDay):
		m.shiftDate(-1)
	case key.Matches(k, m.keys.NextDay):
		m.shiftDate(1)
	case key.Matches(k, m.keys.Today):
		m.date = m.today()
		m.focus = m.activeIndex()
		m.cursor = 0
	case key.Matches(k, m.keys.Add):
		return m.startAdding()
	case key.Matches(k, m.keys.Rank):
		if m.focusedBlock().Block.ID != models.PeriodNight {
			m.state = constants.StateRanking
		}
	case hasTask && key.Matches(k, m.keys.Toggle):
		m.dispatch(session.ToggleComplete{ID: task.ID})
	case hasTask && key.Matches(k, m.keys.Delete):
		m.dispatch(session.Delete{ID: task.ID})
	case hasTask && key.Matches(k, m.keys.Move):
		m.dispatch(session.MovePeriod{ID: task.ID, Period: nextPeriod(m.focusedBlock().Block.ID)})
	case hasTask && key.Matches(k, m.keys.Weight):
		m.dispatch(session.SetWeight{ID: task.ID, Weight: cycle(weights, task.Weight)})
	case hasTask && key.Matches(k, m.keys.Priority):
		m.dispatch(session.SetPriority{ID: task.ID, Priority: cycle(priorities, task.Priority)})
	case hasTask && key.Matches(k, m.keys.Repeat):
		m.dispatch(session.Repeat{ID: task.ID})
	}
	return m, nil
}

var (
	weights    = []models.TaskWeight{models.WeightQuick, models.WeightFocused, models.WeightDeep}
	priorities = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
)

func cycle[T comparable](values []T, cur T) T {
	i := slices.Index(values, cur)
	return values[(i+1)%len(values)]
}

// nextPeriod returns the waking period after p, wrapping to MORNING.
func nextPeriod(p models.TimePeriod) models.TimePeriod {
	i := slices.Index(models.WakingPeriods, p)
	return models.WakingPeriods[(i+1)%len(models.WakingPeriods)]
}

func (m *Model) shiftDate(days int) {
	d, err := utils.ParseDateInLocation(m.date, m.now.Location())
	if err != nil {
		m.date = m.today()
		return
	}
	m.date = utils.FormatDate(d.AddDate(0, 0, days))
	m.cursor = 0
}

func (m Model) startAdding() (tea.Model, tea.Cmd) {
	m.state = constants.StateAdding
	m.form = nil
	m.suggested = ""
	m.message = ""
	m.titleInput.Reset()
	m.titleInput.Placeholder = m.tr.T(i18n.Placeholder)
	return m, m.titleInput.Focus()
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.state = constants.StateDay
		m.form = nil
		m.titleInput.Blur()
		m.suggester.Update("")
		return m, nil
	}

	if m.form == nil {
		return m.updateTitle(msg)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitTask()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = constants.StateDay
		return m, nil
	}
	return m, cmd
}

// submitTask adds the task described by the completed form to the shown date.
func (m *Model) submitTask() {
	fm := m.taskForm
	m.dispatch(session.AddTask{Input: planner.NewTaskInput{
		Title:      fm.Title,
		Periods:    fm.Periods,
		Weight:     fm.Weight,
		Priority:   fm.Priority,
		Recurrence: fm.Recurrence,
		Notes:      fm.Notes,
		DueDate:    m.date,
	}})
	if m.message == "" {
		if c := planner.CapacityFor(m.session.Tasks, m.date, firstOr(fm.Periods, m.status.Period)); c.OverCapacity {
			m.message = m.tr.T(i18n.OverCapacity, c.Used, c.Ceiling)
		}
	}
	m.form = nil
	m.state = constants.StateDay
}

func firstOr(ps []models.TimePeriod, fallback models.TimePeriod) models.TimePeriod {
	if len(ps) > 0 {
		return ps[0]
	}
	return fallback
}

func (m Model) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Enter) {
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			return m, nil
		}
		m.titleInput.Blur()
		m.suggester.Update("")

		weight := m.suggested
		if weight == "" {
			weight = optimizer.SuggestWeight(title)
		}
		period := m.focusedBlock().Block.ID
		if period == models.PeriodNight {
			period = models.PeriodMorning
		}
		m.taskForm = &TaskFormModel{
			Title:      title,
			Periods:    []models.TimePeriod{period},
			Weight:     weight,
			Priority:   models.PriorityMedium,
			Recurrence: models.RecurrenceNone,
		}
		m.form = newTaskForm(m.taskForm, m.tr)
		return m, m.form.Init()
	}

	prev := m.titleInput.Value()
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	if v := m.titleInput.Value(); v != prev {
		// A suggestion only holds for the title it was computed from.
		m.suggested = ""
		m.suggester.Update(v)
	}
	return m, cmd
}

// rankedIDs orders the open tasks of the focused block.
func (m Model) rankedIDs() []string {
	tasks := planner.Pending(m.focusedBlock().Tasks)
	if m.eisenhower {
		return optimizer.PrioritizeEisenhower(tasks)
	}
	return optimizer.Optimize(tasks, optimizer.Options{
		CurrentPeriod: m.focusedBlock().Block.ID,
		Strategy:      m.strategy(),
		Now:           m.now,
	})
}

func (m Model) updateRanking(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Back), key.Matches(k, m.keys.Quit):
		m.state = constants.StateDay
	case key.Matches(k, m.keys.Right), key.Matches(k, m.keys.View):
		m.eisenhower = false
		m.strategyIdx = (m.strategyIdx + 1) % len(optimizer.Strategies)
	case key.Matches(k, m.keys.Left):
		m.eisenhower = false
		m.strategyIdx = (m.strategyIdx + len(optimizer.Strategies) - 1) % len(optimizer.Strategies)
	case k.String() == "e":
		m.eisenhower = !m.eisenhower
	case key.Matches(k, m.keys.Enter):
		if ids := m.rankedIDs(); len(ids) > 0 {
			m.dispatch(session.Reorder{IDs: ids})
		}
		m.cursor = 0
		m.state = constants.StateDay
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Back), key.Matches(k, m.keys.Settings):
		m.state = constants.StateDay
	case key.Matches(k, m.keys.Quit):
		return m.quit()
	case key.Matches(k, m.keys.Enter), k.String() == "e":
		m.settings = settingsFormFrom(m.session.Settings)
		m.form = newSettingsForm(m.settings, m.tr)
		m.state = constants.StateEditSettings
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.form = nil
		m.state = constants.StateSettings
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.submitSettings()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = constants.StateSettings
		return m, nil
	}
	return m, cmd
}

// submitSettings saves the completed settings form. Rejected settings leave
// the stored ones untouched and show the reason.
func (m *Model) submitSettings() {
	m.dispatch(session.SaveSettings{Settings: m.settings.apply(m.session.Settings)})
	if m.message == "" {
		m.status = m.session.Status(m.now)
		m.focus = m.activeIndex()
	}
	m.form = nil
	m.state = constants.StateSettings
}

func (m Model) updateAlarm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Snooze):
		if _, err := m.mgr.SnoozeAlarm(); err != nil {
			m.message = m.userError(err)
		}
		m.refresh()
	case key.Matches(k, m.keys.Enter), key.Matches(k, m.keys.Back):
		if err := m.mgr.StopAlarm(); err != nil {
			m.message = m.userError(err)
		}
	default:
		return m, nil
	}
	m.state = m.previousState
	if m.state == constants.StateAlarmPlaying {
		m.state = constants.StateDay
	}
	return m, nil
}
