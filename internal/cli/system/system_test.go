package system

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/storage/sqlite"
	"github.com/julianstephens/dayflow/internal/utils"
)

var testNow = time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

func newContext(store storage.Provider) *cli.Context {
	return cli.NewContext(store, alarm.NewBellPlayer(io.Discard), utils.FixedClock{T: testNow})
}

func setupTestDB(t *testing.T) (*cli.Context, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return newContext(store), path
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dayflow.db")
	store := sqlite.NewStore(path)
	t.Cleanup(func() { _ = store.Close() })

	if err := (&InitCmd{}).Run(newContext(store)); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database not created: %v", err)
	}
}

func TestInitCmd_ForceResets(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := storage.SaveTasks(ctx.Store, []models.Task{{ID: "a", Title: "old", DueDate: "2024-03-06"}}); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if tasks := storage.LoadTasks(ctx.Store); len(tasks) != 0 {
		t.Errorf("expected empty store after reset, got %d tasks", len(tasks))
	}
}

func TestInitCmd_Source(t *testing.T) {
	src := storage.NewJSONStore(filepath.Join(t.TempDir(), "old.json"))
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}
	if err := storage.SaveTasks(src, []models.Task{{ID: "a", Title: "carry", DueDate: "2024-03-06"}}); err != nil {
		t.Fatal(err)
	}
	settings := models.DefaultSettings()
	settings.WakeTime = "06:30"
	if err := storage.SaveSettings(src, settings); err != nil {
		t.Fatal(err)
	}

	ctx, path := setupTestDB(t)
	if err := (&InitCmd{Source: src.GetConfigPath()}).Run(ctx); err != nil {
		t.Fatalf("init --source failed: %v", err)
	}

	tasks := storage.LoadTasks(ctx.Store)
	if len(tasks) != 1 || tasks[0].Title != "carry" {
		t.Errorf("tasks = %+v", tasks)
	}
	if got := storage.LoadSettings(ctx.Store).WakeTime; got != "06:30" {
		t.Errorf("wake time = %s, want 06:30", got)
	}

	if err := (&InitCmd{Force: true, Source: path}).Run(ctx); err == nil {
		t.Error("expected error when source and destination are the same")
	}
}

func TestValidateCmd(t *testing.T) {
	ctx, _ := setupTestDB(t)
	tasks := []models.Task{
		{ID: "a", Title: "Late", Periods: []models.TimePeriod{models.PeriodNight}, Weight: models.WeightQuick, DueDate: "2024-03-06"},
		{ID: "b", Title: "Fine", Periods: []models.TimePeriod{models.PeriodMorning}, Weight: models.WeightQuick, DueDate: "2024-03-07"},
	}
	if err := storage.SaveTasks(ctx.Store, tasks); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cmd     ValidateCmd
		wantErr bool
	}{
		{"all tasks", ValidateCmd{}, false},
		{"strict with conflicts", ValidateCmd{Strict: true}, true},
		{"strict clean date", ValidateCmd{Date: "tomorrow", Strict: true}, false},
		{"strict today", ValidateCmd{Date: "today", Strict: true}, true},
		{"bad date", ValidateCmd{Date: "someday"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDoctorCmd(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor on a fresh database failed: %v", err)
	}

	bad := models.DefaultSettings()
	bad.RestTime = "02:00"
	if err := storage.SaveSettings(ctx.Store, bad); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); !errors.Is(err, ErrHealthCheck) {
		t.Errorf("expected ErrHealthCheck for invalid settings, got %v", err)
	}
}

func TestDoctorCmd_Unreachable(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := (&DoctorCmd{}).Run(newContext(store)); !errors.Is(err, ErrHealthCheck) {
		t.Errorf("expected ErrHealthCheck, got %v", err)
	}
}

func TestCheckClock(t *testing.T) {
	if err := checkClock(testNow); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkClock(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("expected error for a clock in 1999")
	}
}

func TestDebugCommands(t *testing.T) {
	ctx, _ := setupTestDB(t)
	ctx.Load()
	if err := storage.SaveSettings(ctx.Store, models.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	if err := (&DebugDBPathCmd{}).Run(ctx); err != nil {
		t.Errorf("db-path failed: %v", err)
	}
	if err := (&DebugKeysCmd{}).Run(ctx); err != nil {
		t.Errorf("keys failed: %v", err)
	}
	if err := (&DebugDumpKeyCmd{Key: "settings"}).Run(ctx); err != nil {
		t.Errorf("dump-key failed: %v", err)
	}
	if err := (&DebugDumpKeyCmd{Key: "nope"}).Run(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := (&DebugLogPathCmd{}).Run(ctx); err == nil {
		t.Error("expected log-path to fail before logging is initialized")
	}
}
