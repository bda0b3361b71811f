package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

var ErrNotRecurring = errors.New("task does not repeat on other days")

// NextOccurrence returns the first date after the task's due date, and not
// before today, that its recurrence lands on. Monthly recurrence keeps the
// day of month, clamped to the last day of shorter months. Tasks tagged
// none or all-blocks have no next occurrence.
func NextOccurrence(task models.Task, today time.Time) (string, bool) {
	due, err := time.Parse(constants.DateFormat, task.DueDate)
	if err != nil {
		return "", false
	}
	floor := utils.FormatDate(today)

	next := due
	for i := 1; ; i++ {
		switch task.Recurrence {
		case models.RecurrenceDaily:
			next = due.AddDate(0, 0, i)
		case models.RecurrenceWeekly:
			next = due.AddDate(0, 0, 7*i)
		case models.RecurrenceMonthly:
			next = addMonthsClamped(due, i)
		default:
			return "", false
		}
		if d := next.Format(constants.DateFormat); d >= floor {
			return d, true
		}
	}
}

func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := min(t.Day(), daysIn(first.Year(), first.Month(), t.Location()))
	return first.AddDate(0, 0, day-1)
}

// Repeat copies a recurring task onto its next occurrence as a fresh,
// incomplete task, whether or not the original is completed. The original
// is left as is.
func Repeat(tasks []models.Task, id string, now time.Time) ([]models.Task, models.Task, error) {
	orig, err := Find(tasks, id)
	if err != nil {
		return tasks, models.Task{}, err
	}
	next, ok := NextOccurrence(orig, now)
	if !ok {
		return tasks, models.Task{}, ErrNotRecurring
	}

	task := orig.Clone()
	task.ID = uuid.New().String()
	task.Completed = false
	task.CreatedAt = now
	task.DueDate = next
	return Add(tasks, task), task, nil
}
