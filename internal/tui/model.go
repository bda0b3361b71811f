package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/scheduler"
	"github.com/julianstephens/dayflow/internal/session"
	"github.com/julianstephens/dayflow/internal/tui/components/tasklist"
	"github.com/julianstephens/dayflow/internal/utils"
)

type viewMode int

const (
	viewDay viewMode = iota
	viewUpcoming
	viewWeek
	viewMonth
)

const viewModes = 4

type Model struct {
	mgr       *session.Manager
	suggester *optimizer.Suggester
	session   session.Session
	tr        *i18n.Translator

	state         constants.SessionState
	previousState constants.SessionState
	view          viewMode
	keys          KeyMap
	help          help.Model

	now    time.Time
	status scheduler.Status
	date   string // date shown in the day view
	focus  int    // index of the focused block
	cursor int    // index of the selected task within the focused block

	titleInput textinput.Model
	suggested  models.TaskWeight
	taskForm   *TaskFormModel
	settings   *SettingsFormModel
	form       *huh.Form
	upcoming   tasklist.Model

	strategyIdx int
	eisenhower  bool

	message  string
	quitting bool
	width    int
	height   int
}

func NewModel(mgr *session.Manager) Model {
	now := mgr.Clock().Now()
	s := mgr.Session()
	tr := i18n.New(s.Settings.Language)

	ti := textinput.New()
	ti.Placeholder = tr.T(i18n.Placeholder)
	ti.CharLimit = 120

	m := Model{
		mgr:        mgr,
		suggester:  optimizer.NewSuggester(nil, constants.SuggestDebounce),
		session:    s,
		tr:         tr,
		state:      constants.StateDay,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		now:        now,
		status:     s.Status(now),
		date:       utils.FormatDate(now),
		titleInput: ti,
		upcoming:   tasklist.New(planner.Upcoming(s.Tasks, utils.FormatDate(now)), tr, 0, 0),
	}
	m.focus = m.activeIndex()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitForSuggestion(m.suggester))
}

func (m Model) today() string {
	return utils.FormatDate(m.now)
}

func (m Model) blocks() []planner.BlockView {
	return planner.DayView(m.session.Tasks, m.session.Blocks(), m.date, m.today(), m.status.Period)
}

func (m Model) activeIndex() int {
	for i, b := range m.session.Blocks() {
		if b.ID == m.status.Period {
			return i
		}
	}
	return 0
}

func (m Model) focusedBlock() planner.BlockView {
	blocks := m.blocks()
	return blocks[min(m.focus, len(blocks)-1)]
}

// selectedTask returns the task under the cursor in the focused block.
func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.focusedBlock().Tasks
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.cursor], true
}

// refresh picks up the manager's current session after a change.
func (m *Model) refresh() {
	m.session = m.mgr.Session()
	m.tr = i18n.New(m.session.Settings.Language)
	m.upcoming.SetTasks(planner.Upcoming(m.session.Tasks, m.today()), m.tr)
	if n := len(m.focusedBlock().Tasks); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m *Model) dispatch(ev session.Event) {
	if _, err := m.mgr.Dispatch(ev); err != nil {
		m.message = m.userError(err)
		return
	}
	m.message = ""
	m.refresh()
}

func (m *Model) strategy() optimizer.Strategy {
	return optimizer.Strategies[m.strategyIdx%len(optimizer.Strategies)]
}
