package optimizer

import (
	"slices"
	"testing"

	"github.com/julianstephens/dayflow/internal/models"
)

func TestPrioritizeEisenhower(t *testing.T) {
	tasks := []models.Task{
		task("low-deep", models.PriorityLow, models.WeightDeep, 0),
		task("high-deep", models.PriorityHigh, models.WeightDeep, 0),
		task("med-quick", models.PriorityMedium, models.WeightQuick, 0),
		task("high-quick-1", models.PriorityHigh, models.WeightQuick, 0),
		task("low-focused", models.PriorityLow, models.WeightFocused, 0),
		task("high-quick-2", models.PriorityHigh, models.WeightQuick, 0),
	}

	got := PrioritizeEisenhower(tasks)
	want := []string{
		"high-quick-1", "high-quick-2",
		"high-deep",
		"med-quick",
		"low-deep", "low-focused",
	}
	if !slices.Equal(got, want) {
		t.Errorf("PrioritizeEisenhower() = %v, want %v", got, want)
	}
}

func TestClassifyQuadrant(t *testing.T) {
	tests := []struct {
		p    models.Priority
		w    models.TaskWeight
		want Quadrant
	}{
		{models.PriorityHigh, models.WeightQuick, QuadrantDoFirst},
		{models.PriorityHigh, models.WeightFocused, QuadrantSchedule},
		{models.PriorityMedium, models.WeightQuick, QuadrantDelegate},
		{models.PriorityLow, models.WeightDeep, QuadrantEliminate},
	}
	for _, tt := range tests {
		if got := Classify(task("x", tt.p, tt.w, 0)); got != tt.want {
			t.Errorf("Classify(%s, %s) = %s, want %s", tt.p, tt.w, got, tt.want)
		}
	}
}
