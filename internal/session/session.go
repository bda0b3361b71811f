// Package session owns the user's task list, settings and profile. State
// changes are expressed as events applied to an immutable Session value.
package session

import (
	"slices"
	"time"

	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/scheduler"
)

// Session is one snapshot of user state. Treat it as read-only; Apply
// returns a new value.
type Session struct {
	Tasks    []models.Task
	Settings models.Settings
	User     *models.UserProfile
}

// Scope tells which stored keys an event touched.
type Scope uint8

const (
	ScopeTasks Scope = 1 << iota
	ScopeSettings
	ScopeUser
)

func (s Scope) Has(o Scope) bool { return s&o != 0 }

// Event is a single user action.
type Event interface {
	apply(s Session, now time.Time) (Session, Scope, error)
}

// Apply returns the session that results from ev at now. On error s is
// returned unchanged.
func (s Session) Apply(ev Event, now time.Time) (Session, error) {
	next, _, err := s.step(ev, now)
	return next, err
}

func (s Session) step(ev Event, now time.Time) (Session, Scope, error) {
	next, scope, err := ev.apply(s, now)
	if err != nil {
		return s, 0, err
	}
	return next, scope, nil
}

// Status classifies now against the session's schedule. A schedule that
// cannot be parsed is treated as the default one.
func (s Session) Status(now time.Time) scheduler.Status {
	sc := scheduler.New()
	st, err := sc.Classify(now, s.Settings.Schedule)
	if err != nil {
		st, _ = sc.Classify(now, models.DefaultSettings().Schedule)
	}
	return st
}

// Blocks derives today's blocks from the session's schedule.
func (s Session) Blocks() []models.TimeBlock {
	sc := scheduler.New()
	blocks, err := sc.Blocks(s.Settings.Schedule)
	if err != nil {
		blocks, _ = sc.Blocks(models.DefaultSettings().Schedule)
	}
	return blocks
}

func cloneSettings(s models.Settings) models.Settings {
	s.RecoveryDays = slices.Clone(s.RecoveryDays)
	s.WorkHistory = slices.Clone(s.WorkHistory)
	return s
}
