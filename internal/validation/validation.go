package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOvercommitted   ConflictType = "overcommitted"
	ConflictMissingPeriod   ConflictType = "missing_period"
	ConflictNightAssignment ConflictType = "night_assignment"
	ConflictEmptyTitle      ConflictType = "empty_title"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictDuplicateTitle  ConflictType = "duplicate_title"
)

// Conflict represents a detected problem in the task list
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string            // YYYY-MM-DD format (if applicable)
	Period      models.TimePeriod // block involved (if applicable)
	Items       []string          // Task titles involved
	TaskIDs     []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks task lists for data problems and overloaded blocks
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateTasks checks every task, and capacity for every date that has tasks.
func (v *Validator) ValidateTasks(tasks []models.Task) ValidationResult {
	return v.ValidateTasksForDate(tasks, "")
}

// ValidateTasksForDate checks tasks due on date. An empty date checks all tasks.
func (v *Validator) ValidateTasksForDate(tasks []models.Task, date string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	var scoped []models.Task
	for _, t := range tasks {
		if date == "" || t.DueDate == date {
			scoped = append(scoped, t)
		}
	}

	titles := make(map[string][]models.Task)
	for _, t := range scoped {
		if strings.TrimSpace(t.Title) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyTitle,
				Description: fmt.Sprintf("Task %s has an empty title", t.ID),
				Date:        t.DueDate,
				TaskIDs:     []string{t.ID},
			})
		} else {
			key := t.DueDate + "\x00" + strings.ToLower(strings.TrimSpace(t.Title))
			titles[key] = append(titles[key], t)
		}

		if !utils.ValidateDateFormat(t.DueDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Task \"%s\" has invalid due date: %q", t.Title, t.DueDate),
				Items:       []string{t.Title},
				TaskIDs:     []string{t.ID},
			})
		}

		if len(t.Periods) == 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingPeriod,
				Description: fmt.Sprintf("Task \"%s\" is not scheduled in any block", t.Title),
				Date:        t.DueDate,
				Items:       []string{t.Title},
				TaskIDs:     []string{t.ID},
			})
		}
		if t.InPeriod(models.PeriodNight) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNightAssignment,
				Description: fmt.Sprintf("Task \"%s\" is scheduled during the night", t.Title),
				Date:        t.DueDate,
				Period:      models.PeriodNight,
				Items:       []string{t.Title},
				TaskIDs:     []string{t.ID},
			})
		}
	}

	keys := make([]string, 0, len(titles))
	for k := range titles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dupes := titles[k]
		if len(dupes) < 2 {
			continue
		}
		ids := make([]string, len(dupes))
		for i, t := range dupes {
			ids[i] = t.ID
		}
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateTitle,
			Description: fmt.Sprintf("Duplicate task title on %s: \"%s\" (IDs: %v)", dupes[0].DueDate, dupes[0].Title, ids),
			Date:        dupes[0].DueDate,
			Items:       []string{dupes[0].Title},
			TaskIDs:     ids,
		})
	}

	result.Conflicts = append(result.Conflicts, v.checkCapacity(scoped)...)
	return result
}

func (v *Validator) checkCapacity(tasks []models.Task) []Conflict {
	dates := make(map[string]bool)
	for _, t := range tasks {
		if utils.ValidateDateFormat(t.DueDate) {
			dates[t.DueDate] = true
		}
	}
	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var conflicts []Conflict
	for _, d := range sorted {
		for _, p := range models.WakingPeriods {
			c := planner.CapacityFor(tasks, d, p)
			if !c.OverCapacity {
				continue
			}
			var ids, items []string
			for _, t := range planner.InBlock(tasks, d, p) {
				ids = append(ids, t.ID)
				items = append(items, t.Title)
			}
			conflicts = append(conflicts, Conflict{
				Type: ConflictOvercommitted,
				Description: fmt.Sprintf("%s %s is overcommitted: %d of %d points",
					d, p, c.Used, c.Ceiling),
				Date:    d,
				Period:  p,
				Items:   items,
				TaskIDs: ids,
			})
		}
	}
	return conflicts
}
