package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayflow/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*constants.MinutesPerHour + t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// MinuteOfDay returns the wall-clock minutes since midnight of t, in [0, 1440).
func MinuteOfDay(t time.Time) int {
	return t.Hour()*constants.MinutesPerHour + t.Minute()
}

// NormalizeMinutes reduces any minute value (including negative ones) into [0, 1440).
func NormalizeMinutes(m int) int {
	m %= constants.MinutesPerDay
	if m < 0 {
		m += constants.MinutesPerDay
	}
	return m
}

// FormatMinutes renders a minute value as HH:MM after reducing it modulo one day.
func FormatMinutes(m int) string {
	m = NormalizeMinutes(m)
	return fmt.Sprintf("%02d:%02d", m/constants.MinutesPerHour, m%constants.MinutesPerHour)
}

// InInterval reports whether minute m lies in the half-open interval [start, end).
// When end < start the interval wraps past midnight. An interval whose start
// equals its end is empty.
func InInterval(m, start, end int) bool {
	m = NormalizeMinutes(m)
	start = NormalizeMinutes(start)
	end = NormalizeMinutes(end)
	if start <= end {
		return m >= start && m < end
	}
	return m >= start || m < end
}

// SpanMinutes returns the forward distance from start to end, wrapping past
// midnight when end <= start.
func SpanMinutes(start, end int) int {
	start = NormalizeMinutes(start)
	end = NormalizeMinutes(end)
	if end <= start {
		end += constants.MinutesPerDay
	}
	return end - start
}

// FormatDate formats a time as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified location.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date string by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	d, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %w", err)
	}
	return d.AddDate(0, 0, n).Format(constants.DateFormat), nil
}
