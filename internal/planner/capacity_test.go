package planner

import (
	"testing"

	"github.com/julianstephens/dayflow/internal/models"
)

func weighted(id string, w models.TaskWeight, p models.TimePeriod) models.Task {
	t := sampleTask(id, p)
	t.Weight = w
	return t
}

func TestCapacityFor_Scenario(t *testing.T) {
	date := "2024-03-06"
	tasks := []models.Task{
		weighted("a", models.WeightDeep, models.PeriodMorning),
		weighted("b", models.WeightFocused, models.PeriodMorning),
		weighted("c", models.WeightQuick, models.PeriodMorning),
	}

	c := CapacityFor(tasks, date, models.PeriodMorning)
	if c.Used != 10 || c.Percent != 83 || c.OverCapacity {
		t.Fatalf("10 points: got %+v", c)
	}

	tasks = append(tasks, weighted("d", models.WeightQuick, models.PeriodMorning))
	c = CapacityFor(tasks, date, models.PeriodMorning)
	if c.Used != 11 || c.OverCapacity {
		t.Fatalf("11 points: got %+v", c)
	}

	tasks = append(tasks, weighted("e", models.WeightFocused, models.PeriodMorning))
	c = CapacityFor(tasks, date, models.PeriodMorning)
	if c.Used != 14 || !c.OverCapacity || c.Percent != 100 {
		t.Fatalf("14 points: got %+v", c)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestCapacityFor_ExactCeilingIsNotOver(t *testing.T) {
	tasks := []models.Task{
		weighted("a", models.WeightDeep, models.PeriodAfternoon),
		weighted("b", models.WeightDeep, models.PeriodAfternoon),
	}
	c := CapacityFor(tasks, "2024-03-06", models.PeriodAfternoon)
	if c.Used != 12 || c.OverCapacity || c.Percent != 100 {
		t.Errorf("got %+v", c)
	}
}

func TestCapacityFor_FiltersByDateAndPeriod(t *testing.T) {
	tomorrow := weighted("b", models.WeightDeep, models.PeriodMorning)
	tomorrow.DueDate = "2024-03-07"
	tasks := []models.Task{
		weighted("a", models.WeightDeep, models.PeriodEvening),
		tomorrow,
	}
	if c := CapacityFor(tasks, "2024-03-06", models.PeriodMorning); c.Used != 0 || c.Percent != 0 {
		t.Errorf("got %+v, want empty", c)
	}
}

func TestCapacityFor_NightHasNoCeiling(t *testing.T) {
	tasks := []models.Task{
		weighted("a", models.WeightDeep, models.PeriodNight),
		weighted("b", models.WeightDeep, models.PeriodNight),
		weighted("c", models.WeightDeep, models.PeriodNight),
	}
	c := CapacityFor(tasks, "2024-03-06", models.PeriodNight)
	if c.Used != 18 || c.Limited() || c.OverCapacity || c.Percent != 0 {
		t.Errorf("got %+v", c)
	}
	if !Fits(tasks, "2024-03-06", models.PeriodNight, models.WeightDeep) {
		t.Error("night should always fit")
	}
}

func TestCapacityMonotonic(t *testing.T) {
	var tasks []models.Task
	prev := 0
	for i, w := range []models.TaskWeight{models.WeightQuick, models.WeightFocused, models.WeightDeep, models.WeightQuick} {
		tasks = append(tasks, weighted(string(rune('a'+i)), w, models.PeriodEvening))
		c := CapacityFor(tasks, "2024-03-06", models.PeriodEvening)
		if c.Used <= prev {
			t.Fatalf("capacity did not increase: %d -> %d", prev, c.Used)
		}
		prev = c.Used
	}
}

func TestFitsAndDayCapacity(t *testing.T) {
	tasks := []models.Task{
		weighted("a", models.WeightDeep, models.PeriodMorning),
		weighted("b", models.WeightFocused, models.PeriodMorning),
	}
	if !Fits(tasks, "2024-03-06", models.PeriodMorning, models.WeightFocused) {
		t.Error("9 + 3 should fit")
	}
	if Fits(tasks, "2024-03-06", models.PeriodMorning, models.WeightDeep) {
		t.Error("9 + 6 should not fit")
	}

	day := DayCapacity(tasks, "2024-03-06")
	if len(day) != 4 || day[0].Used != 9 || day[3].Period != models.PeriodNight {
		t.Errorf("unexpected day capacity: %+v", day)
	}
}
