package planner

import (
	"slices"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/scheduler"
)

// BlockView is one block of a day as the user sees it.
type BlockView struct {
	Block    models.TimeBlock
	Tasks    []models.Task
	Capacity Capacity
	Active   bool
	Past     bool
}

// DayView lays out the tasks due on date across the derived blocks. active
// is the current period; it only affects the Active and Past flags when date
// is today.
func DayView(tasks []models.Task, blocks []models.TimeBlock, date, today string, active models.TimePeriod) []BlockView {
	out := make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, BlockView{
			Block:    b,
			Tasks:    InBlock(tasks, date, b.ID),
			Capacity: CapacityFor(tasks, date, b.ID),
			Active:   scheduler.IsActive(b.ID, active, date, today),
			Past:     scheduler.IsPast(b.ID, active, date, today),
		})
	}
	return out
}

// DaySummary counts a day's tasks per waking period.
type DaySummary struct {
	Date      string
	Counts    map[models.TimePeriod]int
	Total     int
	Completed int
}

func summarize(tasks []models.Task, date string) DaySummary {
	s := DaySummary{Date: date, Counts: make(map[models.TimePeriod]int)}
	for _, t := range tasks {
		if t.DueDate != date {
			continue
		}
		s.Total++
		if t.Completed {
			s.Completed++
		}
		for _, p := range t.Periods {
			s.Counts[p]++
		}
	}
	return s
}

// WeekDays returns the seven dates of the Sunday-start week containing day.
func WeekDays(day time.Time) []string {
	start := day.AddDate(0, 0, -int(day.Weekday()))
	days := make([]string, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i).Format(constants.DateFormat)
	}
	return days
}

// WeekView summarises the Sunday-start week containing day.
func WeekView(tasks []models.Task, day time.Time) []DaySummary {
	dates := WeekDays(day)
	out := make([]DaySummary, 0, len(dates))
	for _, d := range dates {
		out = append(out, summarize(tasks, d))
	}
	return out
}

// MonthView summarises every day of the month containing day.
func MonthView(tasks []models.Task, day time.Time) []DaySummary {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	n := daysIn(day.Year(), day.Month(), day.Location())
	out := make([]DaySummary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, summarize(tasks, first.AddDate(0, 0, i).Format(constants.DateFormat)))
	}
	return out
}

// MonthSummary lists which days of a month have tasks.
type MonthSummary struct {
	Month         time.Month
	DaysWithTasks []int
	Total         int
}

// YearView summarises the twelve months of year.
func YearView(tasks []models.Task, year int) []MonthSummary {
	out := make([]MonthSummary, 12)
	for i := range out {
		out[i].Month = time.Month(i + 1)
	}
	seen := make(map[string]bool)
	for _, t := range tasks {
		d, err := time.Parse(constants.DateFormat, t.DueDate)
		if err != nil || d.Year() != year {
			continue
		}
		m := &out[d.Month()-1]
		m.Total++
		if !seen[t.DueDate] {
			seen[t.DueDate] = true
			m.DaysWithTasks = append(m.DaysWithTasks, d.Day())
		}
	}
	for i := range out {
		slices.Sort(out[i].DaysWithTasks)
	}
	return out
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Greeting picks the salutation period for the hour of now. It is based on
// the clock alone, not on the user's schedule.
func Greeting(now time.Time) models.TimePeriod {
	switch h := now.Hour(); {
	case h < 12:
		return models.PeriodMorning
	case h < 17:
		return models.PeriodAfternoon
	case h < 21:
		return models.PeriodEvening
	default:
		return models.PeriodNight
	}
}
