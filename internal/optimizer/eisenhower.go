package optimizer

import "github.com/julianstephens/dayflow/internal/models"

type Quadrant string

const (
	QuadrantDoFirst   Quadrant = "do-first"
	QuadrantSchedule  Quadrant = "schedule"
	QuadrantDelegate  Quadrant = "delegate"
	QuadrantEliminate Quadrant = "eliminate"
)

// Quadrants lists the quadrants in the order PrioritizeEisenhower emits them.
var Quadrants = []Quadrant{QuadrantDoFirst, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate}

// Classify places a task in its Eisenhower quadrant: high priority marks it
// important, a quick weight marks it urgent.
func Classify(t models.Task) Quadrant {
	important := t.Priority == models.PriorityHigh
	urgent := t.Weight == models.WeightQuick
	switch {
	case important && urgent:
		return QuadrantDoFirst
	case important:
		return QuadrantSchedule
	case urgent:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

// Buckets groups tasks by quadrant, preserving input order within each.
func Buckets(tasks []models.Task) map[Quadrant][]models.Task {
	out := make(map[Quadrant][]models.Task, len(Quadrants))
	for _, t := range tasks {
		q := Classify(t)
		out[q] = append(out[q], t)
	}
	return out
}

// PrioritizeEisenhower returns task ids grouped by quadrant. It is a stable
// partition: tasks are never re-sorted within a quadrant.
func PrioritizeEisenhower(tasks []models.Task) []string {
	buckets := Buckets(tasks)
	ids := make([]string, 0, len(tasks))
	for _, q := range Quadrants {
		for _, t := range buckets[q] {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
