package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/scheduler"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/utils"
)

// TickResult is what one tick of the session loop observed.
type TickResult struct {
	Now           time.Time
	Status        scheduler.Status
	PeriodChanged bool
	AlarmFired    bool
	// AlarmExpired is set when an unanswered alarm stopped itself.
	AlarmExpired bool
}

// Manager loads a Session from storage, persists every change and runs the
// per-second tick. It is safe for concurrent use.
type Manager struct {
	store storage.Provider
	alarm *alarm.Alarm
	clock utils.Clock

	mu         sync.Mutex
	current     Session
	lastPeriod  models.TimePeriod
	lastRefresh time.Time
}

func NewManager(store storage.Provider, player alarm.Player, clock utils.Clock) *Manager {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Manager{store: store, alarm: alarm.New(player), clock: clock}
}

// Load reads tasks, settings and profile. Unreadable data falls back to
// defaults, so Load never fails.
func (m *Manager) Load() Session {
	s := Session{
		Tasks:    storage.LoadTasks(m.store),
		Settings: storage.LoadSettings(m.store),
	}
	if u, ok := storage.LoadUser(m.store); ok {
		s.User = &u
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	logger.Debug("Session loaded", "tasks", len(s.Tasks), "language", s.Settings.Language)
	return s
}

// Session returns the current snapshot.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) Clock() utils.Clock { return m.clock }

// Dispatch applies ev at the clock's current time and saves what changed.
// When saving fails the in-memory session still moves forward.
func (m *Manager) Dispatch(ev Event) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, scope, err := m.current.step(ev, m.clock.Now())
	if err != nil {
		return m.current, err
	}
	m.current = next
	if err := m.persist(next, scope); err != nil {
		return next, err
	}
	return next, nil
}

func (m *Manager) persist(s Session, scope Scope) error {
	if scope.Has(ScopeTasks) {
		if err := storage.SaveTasks(m.store, s.Tasks); err != nil {
			return fmt.Errorf("failed to save tasks: %w", err)
		}
	}
	if scope.Has(ScopeSettings) {
		if err := storage.SaveSettings(m.store, s.Settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	if scope.Has(ScopeUser) {
		var err error
		if s.User == nil {
			err = storage.ClearUser(m.store)
		} else {
			err = storage.SaveUser(m.store, *s.User)
		}
		if err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
	}
	return nil
}

// refreshSettings re-reads settings from the store once per minute, so
// edits made by another process reach a running session. Callers hold m.mu.
func (m *Manager) refreshSettings(now time.Time) {
	minute := now.Truncate(time.Minute)
	if minute.Equal(m.lastRefresh) {
		return
	}
	m.lastRefresh = minute
	if err := m.store.Load(); err != nil {
		logger.Warn("Settings refresh failed", "error", err)
		return
	}
	next := m.current
	next.Settings = storage.LoadSettings(m.store)
	m.current = next
}

// Tick re-classifies now and checks the alarm. It is idempotent within a
// minute: the alarm fires at most once per matched minute.
func (m *Manager) Tick(now time.Time) TickResult {
	m.mu.Lock()
	m.refreshSettings(now)
	s := m.current
	st := s.Status(now)
	changed := m.lastPeriod != "" && m.lastPeriod != st.Period
	m.lastPeriod = st.Period
	m.mu.Unlock()

	if changed {
		logger.Info("Period changed", "period", st.Period, "minute", utils.MinuteOfDay(now))
	}

	expired, err := m.alarm.Expire(now)
	if err != nil {
		logger.Warn("Alarm stop failed", "error", err)
	}
	fired, err := m.alarm.Check(now, s.Settings.Alarm)
	if err != nil {
		logger.Warn("Alarm playback failed", "error", err)
	}
	return TickResult{Now: now, Status: st, PeriodChanged: changed, AlarmFired: fired, AlarmExpired: expired}
}

func (m *Manager) AlarmPlaying() bool {
	return m.alarm.Playing()
}

// StopAlarm dismisses a ringing alarm.
func (m *Manager) StopAlarm() error {
	return m.alarm.Stop()
}

// SnoozeAlarm stops the alarm and moves it five minutes past now.
func (m *Manager) SnoozeAlarm() (Session, error) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.alarm.Snooze(now, m.current.Settings.Alarm)
	if err != nil {
		return m.current, err
	}
	next := m.current
	next.Settings = cloneSettings(next.Settings)
	next.Settings.Alarm = cfg
	m.current = next
	logger.Info("Alarm snoozed", "until", cfg.Time)
	return next, m.persist(next, ScopeSettings)
}
