package planner

import (
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
)

// Capacity is the load of one block on one date.
type Capacity struct {
	Period       models.TimePeriod
	Used         int
	Ceiling      int // 0 when the block has no ceiling
	Percent      int // Used relative to Ceiling, clamped to [0, 100]
	OverCapacity bool
}

// Limited reports whether the block has a capacity ceiling. Only the waking
// blocks do.
func (c Capacity) Limited() bool {
	return c.Ceiling > 0
}

// Remaining returns how many points still fit before the ceiling.
func (c Capacity) Remaining() int {
	if !c.Limited() || c.Used >= c.Ceiling {
		return 0
	}
	return c.Ceiling - c.Used
}

// CapacityFor sums weight points of the tasks due on date in period p.
// Completed tasks still count: they occupied the block.
func CapacityFor(tasks []models.Task, date string, p models.TimePeriod) Capacity {
	used := 0
	for _, t := range tasks {
		if t.DueDate == date && t.InPeriod(p) {
			used += t.Weight.Points()
		}
	}

	c := Capacity{Period: p, Used: used}
	if !p.Waking() {
		return c
	}
	c.Ceiling = constants.BlockCapacity
	c.OverCapacity = used > c.Ceiling
	c.Percent = min(max(used*100/c.Ceiling, 0), 100)
	return c
}

// DayCapacity returns the capacity of every block on date, in block order.
func DayCapacity(tasks []models.Task, date string) []Capacity {
	out := make([]Capacity, 0, len(models.AllPeriods))
	for _, p := range models.AllPeriods {
		out = append(out, CapacityFor(tasks, date, p))
	}
	return out
}

// Fits reports whether adding a task of weight w to p on date would stay
// within the ceiling. Blocks without a ceiling always fit.
func Fits(tasks []models.Task, date string, p models.TimePeriod, w models.TaskWeight) bool {
	c := CapacityFor(tasks, date, p)
	if !c.Limited() {
		return true
	}
	return c.Used+w.Points() <= c.Ceiling
}
