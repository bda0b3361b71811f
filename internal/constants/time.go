package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	MinutesPerDay  = 24 * 60
	MinutesPerHour = 60

	// MinActiveSpanMin is the shortest allowed wake->rest span, and the shortest
	// allowed rest->wake sleep gap.
	MinActiveSpanMin = 7 * MinutesPerHour

	// WindDownMin is the length of the window immediately before rest time.
	WindDownMin = 90

	// BlockCapacity is the weight-point ceiling for each waking block.
	BlockCapacity = 12
	// CapacityWarnPercent is the fill level at which a block is shown as nearly full.
	CapacityWarnPercent = 75

	// MaxAgeBonus caps the ranking bonus earned by older tasks.
	MaxAgeBonus = 5.0

	AlarmFadeDuration = 15 * time.Second
	AlarmFadeSteps    = 100
	SnoozeDuration    = 5 * time.Minute

	// AlarmRingTimeout is how long an undismissed alarm rings before it stops itself.
	AlarmRingTimeout = 10 * time.Minute
)
