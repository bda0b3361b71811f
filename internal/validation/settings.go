package validation

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/utils"
)

var (
	ErrSleepTooShort      = errors.New("sleep gap must be at least 7 hours")
	ErrActiveSpanTooShort = errors.New("active day must be at least 7 hours")
	ErrInvalidTime        = errors.New("time must be in HH:MM format")
	ErrInvalidWeekday     = errors.New("recovery days must be weekday numbers 0-6")
	ErrUnsupportedLang    = errors.New("unsupported language")
)

// SupportedLanguages are the interface languages the app ships strings for.
var SupportedLanguages = []language.Tag{language.English, language.Russian, language.Spanish}

// ValidateSchedule checks a schedule before it is saved. Both the sleep gap
// (rest to wake) and the active span (wake to rest) must be at least
// MinActiveSpanMin minutes.
func ValidateSchedule(s models.Schedule) error {
	wake, err := utils.ParseTimeToMinutes(s.WakeTime)
	if err != nil {
		return fmt.Errorf("wake time %q: %w", s.WakeTime, ErrInvalidTime)
	}
	rest, err := utils.ParseTimeToMinutes(s.RestTime)
	if err != nil {
		return fmt.Errorf("rest time %q: %w", s.RestTime, ErrInvalidTime)
	}

	if SleepGap(wake, rest) < constants.MinActiveSpanMin {
		return ErrSleepTooShort
	}
	if utils.SpanMinutes(wake, rest) < constants.MinActiveSpanMin {
		return ErrActiveSpanTooShort
	}

	for _, d := range s.RecoveryDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%d: %w", d, ErrInvalidWeekday)
		}
	}
	return nil
}

// SleepGap returns the minutes from rest to the next wake.
func SleepGap(wake, rest int) int {
	return ((wake+constants.MinutesPerDay-rest)%constants.MinutesPerDay + constants.MinutesPerDay) % constants.MinutesPerDay
}

// ValidateLanguage parses a BCP 47 tag and returns the base language code if
// it is one of SupportedLanguages.
func ValidateLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%q: %w", lang, ErrUnsupportedLang)
	}
	base, _ := tag.Base()
	for _, t := range SupportedLanguages {
		if b, _ := t.Base(); b == base {
			return base.String(), nil
		}
	}
	return "", fmt.Errorf("%q: %w", lang, ErrUnsupportedLang)
}

// ValidateSettings runs every settings check and returns the settings with
// the language normalised.
func ValidateSettings(s models.Settings, sounds []string) (models.Settings, error) {
	if err := ValidateSchedule(s.Schedule); err != nil {
		return s, err
	}
	lang, err := ValidateLanguage(s.Language)
	if err != nil {
		return s, err
	}
	s.Language = lang

	if !utils.ValidateTimeFormat(s.Alarm.Time) {
		return s, fmt.Errorf("alarm time %q: %w", s.Alarm.Time, ErrInvalidTime)
	}
	if len(sounds) > 0 && !slices.Contains(sounds, s.Alarm.Sound) {
		return s, fmt.Errorf("unknown alarm sound %q", s.Alarm.Sound)
	}
	return s, nil
}
