package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/cli/backups"
	"github.com/julianstephens/dayflow/internal/cli/optimize"
	"github.com/julianstephens/dayflow/internal/cli/settings"
	"github.com/julianstephens/dayflow/internal/cli/system"
	"github.com/julianstephens/dayflow/internal/cli/tasks"
	"github.com/julianstephens/dayflow/internal/cli/users"
	"github.com/julianstephens/dayflow/internal/cli/views"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/errors"
	"github.com/julianstephens/dayflow/internal/keyring"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/notifier"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/storage/postgres"
	"github.com/julianstephens/dayflow/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, JSON file path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use DAYFLOW_DB_CONNECTION, .pgpass or the OS keyring." type:"string" default:"${config}"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd  `cmd:"" help:"Initialize dayflow storage."`
	Tui      system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Now      cli.NowCmd      `cmd:"" help:"Show the current block and status."`
	Blocks   cli.BlocksCmd   `cmd:"" help:"Show the day's blocks."`
	Capacity cli.CapacityCmd `cmd:"" help:"Show block capacity for a day."`
	Task     struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks." default:"1"`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Move   tasks.TaskMoveCmd   `cmd:"" help:"Move a task to another block."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Repeat tasks.TaskRepeatCmd `cmd:"" help:"Schedule the next occurrence of a recurring task."`
	} `cmd:"" help:"Manage tasks."`
	Rank     optimize.RankCmd     `cmd:"" help:"Rank a block's open tasks."`
	Suggest  optimize.SuggestCmd  `cmd:"" help:"Suggest a weight for a task title."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change the daily schedule."`
	Alarm    settings.AlarmCmd    `cmd:"" help:"Configure the wake-up alarm."`
	User     users.UserCmd        `cmd:"" help:"Manage the local profile."`
	View     views.ViewCmd        `cmd:"" help:"Week, month and year overviews."`
	Export   views.ExportCmd      `cmd:"" help:"Export tasks, settings and profile."`
	Validate system.ValidateCmd   `cmd:"" help:"Validate tasks for conflicts."`
	Watch    system.WatchCmd      `cmd:"" help:"Follow the schedule and ring the alarm."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily planner built around morning, afternoon and evening blocks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version, "config": constants.DefaultConfigPath},
	)

	target, fromFlag := resolveTarget(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(target)}); err != nil {
		errors.Fatal(err)
	}

	store, err := openStore(target, fromFlag)
	if err != nil {
		errors.Fatal(err)
	}

	player := &alarm.FallbackPlayer{
		Primary:   alarm.NewTrayPlayer(notifier.New(), "Good Morning"),
		Secondary: alarm.NewBellPlayer(os.Stdout),
	}
	appCtx := cli.NewContext(store, player, nil)

	// init handles its own loading
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close store", "error", cerr)
	}
	errors.Fatal(err)
}

// resolveTarget picks the storage target: DAYFLOW_DB_CONNECTION, then a
// connection string saved in the keyring when --config was left at its
// default, then --config itself. fromFlag reports the last case.
func resolveTarget(config string) (target string, fromFlag bool) {
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		return env, false
	}
	if config == constants.DefaultConfigPath {
		if conn, err := keyring.GetConnectionString(); err == nil && conn != "" {
			return conn, false
		}
	}
	return expandHome(config), true
}

// openStore selects the backend from the target's shape. Connection strings
// given on the command line must not carry a password.
func openStore(target string, fromFlag bool) (storage.Provider, error) {
	switch {
	case postgres.IsConnString(target):
		if fromFlag {
			if err := postgres.ValidateConnString(target); err != nil {
				return nil, err
			}
		}
		return postgres.New(target), nil
	case strings.HasSuffix(target, ".json"):
		return storage.NewJSONStore(target), nil
	default:
		return sqlite.NewStore(target), nil
	}
}

func logDir(target string) string {
	if postgres.IsConnString(target) {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(target)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
