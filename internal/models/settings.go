package models

// Schedule is the user's daily rhythm. WakeTime and RestTime are HH:MM
// strings; RecoveryDays holds weekday indices where 0 is Sunday.
type Schedule struct {
	WakeTime     string `json:"wake_up_time" yaml:"wake_up_time"`
	RestTime     string `json:"rest_time" yaml:"rest_time"`
	RecoveryDays []int  `json:"recovery_days" yaml:"recovery_days"`
}

// AlarmConfig describes the wake-up alarm.
type AlarmConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Time    string `json:"time" yaml:"time"`   // HH:MM
	Sound   string `json:"sound" yaml:"sound"` // sound id
}

// Settings represents the persisted user settings
type Settings struct {
	Schedule    `yaml:",inline"`
	Language    string      `json:"language" yaml:"language"`
	Alarm       AlarmConfig `json:"alarm" yaml:"alarm"`
	WorkHistory []string    `json:"work_history,omitempty" yaml:"work_history,omitempty"` // YYYY-MM-DD days with completed tasks
}

// IsRecoveryDay reports whether the weekday index is one of the recovery days.
func (s Schedule) IsRecoveryDay(weekday int) bool {
	for _, d := range s.RecoveryDays {
		if d == weekday {
			return true
		}
	}
	return false
}
