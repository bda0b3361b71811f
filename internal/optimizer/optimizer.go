// Package optimizer orders and classifies tasks. Ranking is deterministic:
// the same tasks, strategy, period and clock always give the same order.
package optimizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
)

// Strategy selects how task scores are computed.
type Strategy string

const (
	StrategyBalanced      Strategy = "balanced"
	StrategyQuickWins     Strategy = "quick-wins"
	StrategyPriorityFirst Strategy = "priority-first"
)

var Strategies = []Strategy{StrategyBalanced, StrategyQuickWins, StrategyPriorityFirst}

func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyBalanced, nil
	}
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid strategy: %q (expected balanced|quick-wins|priority-first)", s)
}

// periodBonus rewards matching task weight to the energy of each period.
var periodBonus = map[models.TimePeriod]map[models.TaskWeight]int{
	models.PeriodMorning:   {models.WeightDeep: 3, models.WeightFocused: 2, models.WeightQuick: 1},
	models.PeriodAfternoon: {models.WeightFocused: 3, models.WeightDeep: 2, models.WeightQuick: 1},
	models.PeriodEvening:   {models.WeightQuick: 3, models.WeightFocused: 2, models.WeightDeep: 1},
	models.PeriodNight:     {models.WeightQuick: 3, models.WeightFocused: 1, models.WeightDeep: 0},
}

// Options configure a ranking run. Zero values mean MORNING, balanced, and
// the current wall clock.
type Options struct {
	CurrentPeriod models.TimePeriod
	Strategy      Strategy
	Now           time.Time
}

func (o Options) withDefaults() Options {
	if o.CurrentPeriod == "" {
		o.CurrentPeriod = models.PeriodMorning
	}
	if o.Strategy == "" {
		o.Strategy = StrategyBalanced
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Score computes the ranking score of one task.
func Score(task models.Task, opts Options) float64 {
	opts = opts.withDefaults()
	score := float64(task.Priority.Weight() * 10)

	switch opts.Strategy {
	case StrategyQuickWins:
		score += float64((7 - task.Weight.Points()) * 5)
	case StrategyPriorityFirst:
		score += float64(task.Priority.Weight() * 5)
	default:
		score += float64(periodBonus[opts.CurrentPeriod][task.Weight] * 3)
	}

	return score + ageBonus(task.CreatedAt, opts.Now)
}

// ageBonus grows by one point per day of age and stops at MaxAgeBonus.
// Tasks created in the future get nothing.
func ageBonus(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	ageHours := now.Sub(createdAt).Hours()
	return max(0, min(ageHours/24, constants.MaxAgeBonus))
}

// Ranked is a task with its score.
type Ranked struct {
	Task  models.Task
	Score float64
}

// Rank scores tasks and sorts them by descending score. Ties keep their
// input order.
func Rank(tasks []models.Task, opts Options) []Ranked {
	opts = opts.withDefaults()
	out := make([]Ranked, len(tasks))
	for i, t := range tasks {
		out[i] = Ranked{Task: t, Score: Score(t, opts)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Optimize returns task ids ordered by Rank.
func Optimize(tasks []models.Task, opts Options) []string {
	if len(tasks) == 0 {
		return []string{}
	}
	ranked := Rank(tasks, opts)
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Task.ID
	}
	return ids
}

// Reorder returns tasks arranged in the order of ids. Tasks missing from ids
// keep their relative order at the end.
func Reorder(tasks []models.Task, ids []string) []models.Task {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		pi, okI := pos[out[i].ID]
		pj, okJ := pos[out[j].ID]
		switch {
		case okI && okJ:
			return pi < pj
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}
