// Package planner holds the task scheduling model: creating tasks against
// flow blocks, editing their membership, and the capacity and calendar
// queries built on top of a task list. Every function is pure; callers own
// the task slice and persist the result.
package planner

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

var ErrTaskNotFound = errors.New("task not found")

// NewTaskInput is what a user submits when adding a task.
type NewTaskInput struct {
	Title      string
	Periods    []models.TimePeriod
	Weight     models.TaskWeight
	Priority   models.Priority
	Recurrence models.Recurrence
	Notes      string
	DueDate    string // defaults to the date of now
}

// NewTask builds a task from user input. It returns false when the trimmed
// title is empty, in which case nothing should be added.
//
// The all-blocks recurrence schedules the task in every waking period and
// overrides the selected periods. NIGHT and unknown periods are dropped from
// the selection; when nothing is left the task goes into the active period,
// or MORNING if the active period is NIGHT.
func NewTask(in NewTaskInput, active models.TimePeriod, now time.Time) (models.Task, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, false
	}

	recurrence := in.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceNone
	}

	var periods []models.TimePeriod
	if recurrence == models.RecurrenceAllBlocks {
		periods = slices.Clone(models.WakingPeriods)
	} else {
		periods = wakingOnly(in.Periods)
		if len(periods) == 0 {
			periods = []models.TimePeriod{fallbackPeriod(active)}
		}
	}

	weight := in.Weight
	if !weight.Valid() {
		weight = models.WeightFocused
	}
	priority := in.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}
	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = utils.FormatDate(now)
	}

	return models.Task{
		ID:             uuid.New().String(),
		Title:          title,
		Periods:        periods,
		Weight:         weight,
		Priority:       priority,
		CreatedAt:      now,
		DueDate:        dueDate,
		Recurrence:     recurrence,
		Notes:          strings.TrimSpace(in.Notes),
		OriginalPeriod: periods[0],
	}, true
}

func wakingOnly(in []models.TimePeriod) []models.TimePeriod {
	var out []models.TimePeriod
	for _, p := range in {
		if p.Waking() && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	// keep day order regardless of selection order
	slices.SortFunc(out, func(a, b models.TimePeriod) int { return a.Index() - b.Index() })
	return out
}

func fallbackPeriod(active models.TimePeriod) models.TimePeriod {
	if active.Waking() {
		return active
	}
	return models.PeriodMorning
}

// Add appends task to a copy of tasks.
func Add(tasks []models.Task, task models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, task)
}

// Find returns the task with the given id.
func Find(tasks []models.Task, id string) (models.Task, error) {
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrTaskNotFound
}

// FindByPrefix resolves an id or a unique id prefix, as shown by list output.
func FindByPrefix(tasks []models.Task, prefix string) (models.Task, error) {
	var match *models.Task
	for i := range tasks {
		if tasks[i].ID == prefix {
			return tasks[i], nil
		}
		if strings.HasPrefix(tasks[i].ID, prefix) {
			if match != nil {
				return models.Task{}, errors.New("ambiguous task id prefix: " + prefix)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return models.Task{}, ErrTaskNotFound
	}
	return *match, nil
}

// update applies fn to a copy of the task with id. When fn reports no change
// the original slice is returned untouched.
func update(tasks []models.Task, id string, fn func(*models.Task) bool) ([]models.Task, error) {
	idx := slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return tasks, ErrTaskNotFound
	}
	task := tasks[idx].Clone()
	if !fn(&task) {
		return tasks, nil
	}
	out := slices.Clone(tasks)
	out[idx] = task
	return out, nil
}

// TogglePeriod adds or removes p from the task's periods. Removing the last
// period and adding NIGHT are both no-ops.
func TogglePeriod(tasks []models.Task, id string, p models.TimePeriod) ([]models.Task, error) {
	return update(tasks, id, func(t *models.Task) bool {
		if i := slices.Index(t.Periods, p); i >= 0 {
			if len(t.Periods) == 1 {
				return false
			}
			t.Periods = slices.Delete(t.Periods, i, i+1)
			return true
		}
		if !p.Waking() {
			return false
		}
		t.Periods = wakingOnly(append(t.Periods, p))
		return true
	})
}

// ToggleComplete flips the completed flag. The returned bool is the new state.
func ToggleComplete(tasks []models.Task, id string) ([]models.Task, bool, error) {
	var completed bool
	out, err := update(tasks, id, func(t *models.Task) bool {
		t.Completed = !t.Completed
		completed = t.Completed
		return true
	})
	return out, completed, err
}

// Rename replaces the title. An empty title is ignored.
func Rename(tasks []models.Task, id, title string) ([]models.Task, error) {
	title = strings.TrimSpace(title)
	return update(tasks, id, func(t *models.Task) bool {
		if title == "" || title == t.Title {
			return false
		}
		t.Title = title
		return true
	})
}

func SetWeight(tasks []models.Task, id string, w models.TaskWeight) ([]models.Task, error) {
	return update(tasks, id, func(t *models.Task) bool {
		if !w.Valid() || t.Weight == w {
			return false
		}
		t.Weight = w
		return true
	})
}

func SetPriority(tasks []models.Task, id string, p models.Priority) ([]models.Task, error) {
	return update(tasks, id, func(t *models.Task) bool {
		if !p.Valid() || t.Priority == p {
			return false
		}
		t.Priority = p
		return true
	})
}

// MovePeriod reschedules the task into the single waking period p.
func MovePeriod(tasks []models.Task, id string, p models.TimePeriod) ([]models.Task, error) {
	return update(tasks, id, func(t *models.Task) bool {
		if !p.Waking() {
			return false
		}
		t.Periods = []models.TimePeriod{p}
		return true
	})
}

func SetNotes(tasks []models.Task, id, notes string) ([]models.Task, error) {
	notes = strings.TrimSpace(notes)
	return update(tasks, id, func(t *models.Task) bool {
		if t.Notes == notes {
			return false
		}
		t.Notes = notes
		return true
	})
}

// SetDueDate moves the task to another day. Invalid dates are ignored.
func SetDueDate(tasks []models.Task, id, date string) ([]models.Task, error) {
	return update(tasks, id, func(t *models.Task) bool {
		if !utils.ValidateDateFormat(date) || t.DueDate == date {
			return false
		}
		t.DueDate = date
		return true
	})
}

func Delete(tasks []models.Task, id string) ([]models.Task, error) {
	idx := slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return tasks, ErrTaskNotFound
	}
	out := slices.Clone(tasks)
	return slices.Delete(out, idx, idx+1), nil
}

// ForDate returns the tasks due on date, in list order.
func ForDate(tasks []models.Task, date string) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.DueDate == date {
			out = append(out, t)
		}
	}
	return out
}

// InBlock returns the tasks due on date that are scheduled in p.
func InBlock(tasks []models.Task, date string, p models.TimePeriod) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.DueDate == date && t.InPeriod(p) {
			out = append(out, t)
		}
	}
	return out
}

// Pending drops completed tasks.
func Pending(tasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns the tasks due after today, ordered by due date. Tasks on
// the same date keep list order.
func Upcoming(tasks []models.Task, today string) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.DueDate > today {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Task) int {
		return strings.Compare(a.DueDate, b.DueDate)
	})
	return out
}
