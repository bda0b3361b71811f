package constants

const (
	// Default Settings Values
	DefaultWakeTime   = "07:00"
	DefaultRestTime   = "23:00"
	DefaultLanguage   = "en"
	DefaultAlarmTime  = "07:00"
	DefaultAlarmSound = "forest"
)

// DefaultRecoveryDays are the weekday indices (0=Sunday) used when no
// recovery days have been configured.
var DefaultRecoveryDays = []int{0, 6}
