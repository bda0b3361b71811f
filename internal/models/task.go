package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type TaskWeight string

const (
	WeightQuick   TaskWeight = "quick"
	WeightFocused TaskWeight = "focused"
	WeightDeep    TaskWeight = "deep"
)

// Points returns the capacity cost of a weight: quick=1, focused=3, deep=6.
func (w TaskWeight) Points() int {
	switch w {
	case WeightQuick:
		return 1
	case WeightFocused:
		return 3
	case WeightDeep:
		return 6
	default:
		return 0
	}
}

func (w TaskWeight) Valid() bool {
	return w.Points() > 0
}

func ParseWeight(s string) (TaskWeight, error) {
	w := TaskWeight(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("invalid weight: %q (expected quick|focused|deep)", s)
	}
	return w, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight returns the ranking multiplier of a priority: high=3, medium=2, low=1.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) Valid() bool {
	return p.Weight() > 0
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority: %q (expected low|medium|high)", s)
	}
	return p, nil
}

type Recurrence string

const (
	RecurrenceNone      Recurrence = "none"
	RecurrenceDaily     Recurrence = "daily"
	RecurrenceWeekly    Recurrence = "weekly"
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceAllBlocks Recurrence = "all-blocks"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceAllBlocks:
		return true
	}
	return false
}

func ParseRecurrence(s string) (Recurrence, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "once" {
		return RecurrenceNone, nil
	}
	if s == "all_blocks" || s == "3x" {
		return RecurrenceAllBlocks, nil
	}
	r := Recurrence(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid recurrence: %q (expected none|daily|weekly|monthly|all-blocks)", s)
	}
	return r, nil
}

type Task struct {
	ID             string       `json:"id" yaml:"id"`
	Title          string       `json:"title" yaml:"title"`
	Periods        []TimePeriod `json:"periods" yaml:"periods"`
	Weight         TaskWeight   `json:"weight" yaml:"weight"`
	Priority       Priority     `json:"priority" yaml:"priority"`
	Completed      bool         `json:"completed" yaml:"completed"`
	CreatedAt      time.Time    `json:"created_at" yaml:"created_at"`
	DueDate        string       `json:"due_date" yaml:"due_date"` // YYYY-MM-DD
	Recurrence     Recurrence   `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
	Notes          string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	OriginalPeriod TimePeriod   `json:"original_period,omitempty" yaml:"original_period,omitempty"`
}

// InPeriod reports whether the task is scheduled in p.
func (t Task) InPeriod(p TimePeriod) bool {
	return slices.Contains(t.Periods, p)
}

// Clone returns a copy of t that shares no slices with it.
func (t Task) Clone() Task {
	t.Periods = slices.Clone(t.Periods)
	return t
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if len(t.Periods) == 0 {
		return fmt.Errorf("task must be scheduled in at least one period")
	}
	for _, p := range t.Periods {
		if !p.Valid() {
			return fmt.Errorf("invalid period %q", p)
		}
	}
	if !t.Weight.Valid() {
		return fmt.Errorf("invalid weight %q", t.Weight)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	if t.Recurrence != "" && !t.Recurrence.Valid() {
		return fmt.Errorf("invalid recurrence %q", t.Recurrence)
	}
	if _, err := time.Parse("2006-01-02", t.DueDate); err != nil {
		return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %w", err)
	}
	return nil
}
