package system

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/backup"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/keyring"
	"github.com/julianstephens/dayflow/internal/notifier"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/validation"
)

var ErrHealthCheck = errors.New("one or more health checks failed")

type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type check struct {
	name    string
	needsDB bool
	gatesDB bool
	warning bool
	run     func(*cli.Context) error
}

var checks = []check{
	{name: "Database reachable", gatesDB: true, run: checkDBReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Backups present", warning: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClock(time.Now()) }},
	{name: "Tray notifier", warning: true, run: func(*cli.Context) error { return checkTray() }},
	{name: "OS keyring", warning: true, run: func(*cli.Context) error { return checkKeyring() }},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			if c.gatesDB {
				dbReachable = false
			}
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return ErrHealthCheck
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return nil
	}
	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	_, err := validation.ValidateSettings(storage.LoadSettings(ctx.Store), alarm.SoundIDs())
	return err
}

func checkValidation(ctx *cli.Context) error {
	result := validation.New().ValidateTasks(storage.LoadTasks(ctx.Store))
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts found, run 'dayflow validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if !strings.HasSuffix(path, constants.BackupFileSuffix) {
		return nil
	}
	backups, err := backup.NewManager(path).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'dayflow backup create'")
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkTray() error {
	if !notifier.Available() {
		return errors.New("tray app not running; alarms fall back to the terminal bell")
	}
	return nil
}

func checkKeyring() error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
