package settings

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/storage/sqlite"
	"github.com/julianstephens/dayflow/internal/utils"
	"github.com/julianstephens/dayflow/internal/validation"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	now := time.Date(2024, 3, 6, 6, 58, 20, 0, time.UTC)
	return cli.NewContext(store, alarm.NewBellPlayer(io.Discard), utils.FixedClock{T: now})
}

func ptr(s string) *string { return &s }

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &SettingsCmd{Wake: ptr("06:00"), Rest: ptr("22:30"), Recovery: ptr("fri,sat"), Lang: ptr("es-MX")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got := storage.LoadSettings(ctx.Store)
	if got.WakeTime != "06:00" || got.RestTime != "22:30" || got.Language != "es" {
		t.Errorf("unexpected settings: %+v", got)
	}
	if len(got.RecoveryDays) != 2 || got.RecoveryDays[0] != 5 || got.RecoveryDays[1] != 6 {
		t.Errorf("recovery days = %v", got.RecoveryDays)
	}
}

func TestSettingsCmd_ClearRecoveryDays(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&SettingsCmd{Recovery: ptr("")}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := storage.LoadSettings(ctx.Store); len(got.RecoveryDays) != 0 {
		t.Errorf("recovery days = %v, want none", got.RecoveryDays)
	}
}

func TestSettingsCmd_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsCmd
		wantErr error
	}{
		{"sleep too short", SettingsCmd{Wake: ptr("07:00"), Rest: ptr("02:00")}, validation.ErrSleepTooShort},
		{"day too short", SettingsCmd{Wake: ptr("07:00"), Rest: ptr("12:00")}, validation.ErrActiveSpanTooShort},
		{"bad time", SettingsCmd{Wake: ptr("7am")}, validation.ErrInvalidTime},
		{"bad language", SettingsCmd{Lang: ptr("de")}, validation.ErrUnsupportedLang},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t)
			err := tt.cmd.Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got := storage.LoadSettings(ctx.Store); got.WakeTime != "07:00" || got.RestTime != "23:00" {
				t.Errorf("rejected settings were saved: %+v", got.Schedule)
			}
		})
	}
}

func TestSettingsCmd_TranslatedError(t *testing.T) {
	ctx := setupTestDB(t)
	err := (&SettingsCmd{Rest: ptr("03:00")}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "Sleep must last at least 7 hours.") {
		t.Errorf("err = %v", err)
	}
}

func TestAlarmCmd(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&AlarmCmd{On: true, Time: ptr("06:45"), Sound: ptr("rain")}).Run(ctx); err != nil {
		t.Fatalf("alarm update failed: %v", err)
	}
	got := storage.LoadSettings(ctx.Store).Alarm
	if !got.Enabled || got.Time != "06:45" || got.Sound != "rain" {
		t.Errorf("alarm = %+v", got)
	}

	if err := (&AlarmCmd{Snooze: true}).Run(ctx); err != nil {
		t.Fatalf("snooze failed: %v", err)
	}
	if got := storage.LoadSettings(ctx.Store).Alarm.Time; got != "07:03" {
		t.Errorf("snoozed time = %s, want 07:03", got)
	}

	if err := (&AlarmCmd{Off: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if storage.LoadSettings(ctx.Store).Alarm.Enabled {
		t.Error("alarm still enabled")
	}
}

func TestAlarmCmd_Invalid(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&AlarmCmd{Sound: ptr("bagpipes")}).Run(ctx); !errors.Is(err, alarm.ErrUnknownSound) {
		t.Errorf("expected ErrUnknownSound, got %v", err)
	}
	if err := (&AlarmCmd{Time: ptr("25:00")}).Run(ctx); !errors.Is(err, validation.ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
	if err := (&AlarmCmd{Sounds: true}).Run(ctx); err != nil {
		t.Errorf("sound list failed: %v", err)
	}
}
