package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "dayflow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dayflow/dayflow.db"
	EnvDBConnection    = "DAYFLOW_DB_CONNECTION"
	Version            = "v0.1.0"

	// Storage keys
	KeyTasks    = "tasks"
	KeySettings = "settings"
	KeyUser     = "user"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dayflow-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "dayflow-tray.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.dayflow"
	TrayProcessName        = "dayflow-tray"
	TraySecretHeader       = "X-Dayflow-Secret"
	NotifyTimeout          = 3 * time.Second

	// Session loop
	TickInterval     = time.Second
	SuggestDebounce  = time.Second
	SuggestMinLength = 4
)

// Session States
const (
	StateDay SessionState = iota
	StateAdding
	StateRanking
	StateSettings
	StateEditSettings
	StateAlarmPlaying
)
