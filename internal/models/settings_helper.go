package models

import (
	"slices"

	"github.com/julianstephens/dayflow/internal/constants"
)

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{
		Schedule: Schedule{
			WakeTime:     constants.DefaultWakeTime,
			RestTime:     constants.DefaultRestTime,
			RecoveryDays: slices.Clone(constants.DefaultRecoveryDays),
		},
		Language: constants.DefaultLanguage,
		Alarm: AlarmConfig{
			Enabled: false,
			Time:    constants.DefaultAlarmTime,
			Sound:   constants.DefaultAlarmSound,
		},
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WakeTime == "" {
		settings.WakeTime = constants.DefaultWakeTime
	}
	if settings.RestTime == "" {
		settings.RestTime = constants.DefaultRestTime
	}
	if settings.RecoveryDays == nil {
		settings.RecoveryDays = slices.Clone(constants.DefaultRecoveryDays)
	}
	if settings.Language == "" {
		settings.Language = constants.DefaultLanguage
	}
	if settings.Alarm.Time == "" {
		settings.Alarm.Time = constants.DefaultAlarmTime
	}
	if settings.Alarm.Sound == "" {
		settings.Alarm.Sound = constants.DefaultAlarmSound
	}
}

// RecordWorkDay adds date to the work history if it is not already present.
func (s *Settings) RecordWorkDay(date string) {
	if slices.Contains(s.WorkHistory, date) {
		return
	}
	s.WorkHistory = append(s.WorkHistory, date)
}
