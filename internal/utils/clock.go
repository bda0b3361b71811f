package utils

import "time"

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. It is used by tests and by
// commands that evaluate a schedule "as of" a given time.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
