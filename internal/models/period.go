package models

import "fmt"

type TimePeriod string

const (
	PeriodMorning   TimePeriod = "morning"
	PeriodAfternoon TimePeriod = "afternoon"
	PeriodEvening   TimePeriod = "evening"
	PeriodNight     TimePeriod = "night"
)

// AllPeriods lists the four periods in their fixed day order. Callers compare
// positions in this slice to decide whether a block is before or after another.
var AllPeriods = []TimePeriod{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// WakingPeriods are the periods a user may assign tasks to.
var WakingPeriods = []TimePeriod{PeriodMorning, PeriodAfternoon, PeriodEvening}

// Index returns the position of p in AllPeriods, or -1 if p is unknown.
func (p TimePeriod) Index() int {
	for i, q := range AllPeriods {
		if q == p {
			return i
		}
	}
	return -1
}

func (p TimePeriod) Valid() bool {
	return p.Index() >= 0
}

// Waking reports whether p is one of the three user-assignable periods.
func (p TimePeriod) Waking() bool {
	return p.Valid() && p != PeriodNight
}

// ParsePeriod accepts a period name in any case, or its first letter.
func ParsePeriod(s string) (TimePeriod, error) {
	switch s {
	case "morning", "MORNING", "Morning", "m":
		return PeriodMorning, nil
	case "afternoon", "AFTERNOON", "Afternoon", "a":
		return PeriodAfternoon, nil
	case "evening", "EVENING", "Evening", "e":
		return PeriodEvening, nil
	case "night", "NIGHT", "Night", "n":
		return PeriodNight, nil
	}
	return "", fmt.Errorf("invalid period: %q", s)
}

// TimeBlock is one derived segment of the day. StartMinute and EndMinute are
// minute-of-day values in [0, 1440); EndMinute < StartMinute means the block
// runs past midnight.
type TimeBlock struct {
	ID          TimePeriod `json:"id"`
	StartMinute int        `json:"start_minute"`
	EndMinute   int        `json:"end_minute"`
	Start       string     `json:"start"` // HH:MM
	End         string     `json:"end"`   // HH:MM
}
