package session

import (
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/validation"
)

type AddTask struct {
	Input planner.NewTaskInput
}

func (e AddTask) apply(s Session, now time.Time) (Session, Scope, error) {
	task, ok := planner.NewTask(e.Input, s.Status(now).Period, now)
	if !ok {
		return s, 0, nil
	}
	s.Tasks = planner.Add(s.Tasks, task)
	return s, ScopeTasks, nil
}

// ToggleComplete flips a task's completed flag. Completing a task records its
// due date in the work history.
type ToggleComplete struct {
	ID string
}

func (e ToggleComplete) apply(s Session, _ time.Time) (Session, Scope, error) {
	tasks, done, err := planner.ToggleComplete(s.Tasks, e.ID)
	if err != nil {
		return s, 0, err
	}
	s.Tasks = tasks
	if !done {
		return s, ScopeTasks, nil
	}
	task, _ := planner.Find(tasks, e.ID)
	s.Settings = cloneSettings(s.Settings)
	s.Settings.RecordWorkDay(task.DueDate)
	return s, ScopeTasks | ScopeSettings, nil
}

type TogglePeriod struct {
	ID     string
	Period models.TimePeriod
}

func (e TogglePeriod) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.TogglePeriod(tasks, e.ID, e.Period)
	})
}

type MovePeriod struct {
	ID     string
	Period models.TimePeriod
}

func (e MovePeriod) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.MovePeriod(tasks, e.ID, e.Period)
	})
}

type Rename struct {
	ID    string
	Title string
}

func (e Rename) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.Rename(tasks, e.ID, e.Title)
	})
}

type SetWeight struct {
	ID     string
	Weight models.TaskWeight
}

func (e SetWeight) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.SetWeight(tasks, e.ID, e.Weight)
	})
}

type SetPriority struct {
	ID       string
	Priority models.Priority
}

func (e SetPriority) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.SetPriority(tasks, e.ID, e.Priority)
	})
}

type SetNotes struct {
	ID    string
	Notes string
}

func (e SetNotes) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.SetNotes(tasks, e.ID, e.Notes)
	})
}

type SetDueDate struct {
	ID   string
	Date string
}

func (e SetDueDate) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.SetDueDate(tasks, e.ID, e.Date)
	})
}

type Delete struct {
	ID string
}

func (e Delete) apply(s Session, _ time.Time) (Session, Scope, error) {
	return tasksOp(s, func(tasks []models.Task) ([]models.Task, error) {
		return planner.Delete(tasks, e.ID)
	})
}

// Repeat copies a recurring task onto its next due date.
type Repeat struct {
	ID string
}

func (e Repeat) apply(s Session, now time.Time) (Session, Scope, error) {
	tasks, _, err := planner.Repeat(s.Tasks, e.ID, now)
	if err != nil {
		return s, 0, err
	}
	s.Tasks = tasks
	return s, ScopeTasks, nil
}

// Reorder arranges the task list in the order of IDs, as produced by the
// optimizer. Tasks not named keep their relative order at the end.
type Reorder struct {
	IDs []string
}

func (e Reorder) apply(s Session, _ time.Time) (Session, Scope, error) {
	s.Tasks = optimizer.Reorder(s.Tasks, e.IDs)
	return s, ScopeTasks, nil
}

// SaveSettings replaces schedule, language and alarm after validation. The
// work history is kept from the current settings.
type SaveSettings struct {
	Settings models.Settings
}

func (e SaveSettings) apply(s Session, _ time.Time) (Session, Scope, error) {
	next, err := validation.ValidateSettings(e.Settings, alarm.SoundIDs())
	if err != nil {
		return s, 0, err
	}
	next = cloneSettings(next)
	next.WorkHistory = append([]string(nil), s.Settings.WorkHistory...)
	s.Settings = next
	return s, ScopeSettings, nil
}

type SetUser struct {
	User models.UserProfile
}

func (e SetUser) apply(s Session, _ time.Time) (Session, Scope, error) {
	u := e.User
	s.User = &u
	return s, ScopeUser, nil
}

type ClearUser struct{}

func (ClearUser) apply(s Session, _ time.Time) (Session, Scope, error) {
	if s.User == nil {
		return s, 0, nil
	}
	s.User = nil
	return s, ScopeUser, nil
}

func tasksOp(s Session, fn func([]models.Task) ([]models.Task, error)) (Session, Scope, error) {
	tasks, err := fn(s.Tasks)
	if err != nil {
		return s, 0, err
	}
	s.Tasks = tasks
	return s, ScopeTasks, nil
}
