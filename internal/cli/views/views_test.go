package views

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayflow/internal/alarm"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
	"github.com/julianstephens/dayflow/internal/storage/sqlite"
	"github.com/julianstephens/dayflow/internal/utils"
)

var testNow = time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return cli.NewContext(store, alarm.NewBellPlayer(io.Discard), utils.FixedClock{T: testNow})
}

func seed(t *testing.T, ctx *cli.Context, title, date string) {
	t.Helper()
	ctx.Load()
	_, err := ctx.Dispatch(session.AddTask{Input: planner.NewTaskInput{
		Title:   title,
		Periods: []models.TimePeriod{models.PeriodMorning},
		Weight:  models.WeightFocused,
		DueDate: date,
	}})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
}

func TestViewCommands(t *testing.T) {
	ctx := setupTestDB(t)
	seed(t, ctx, "Standup", "2024-03-06")
	seed(t, ctx, "Review", "2024-03-09")
	seed(t, ctx, "Taxes", "2024-04-15")

	tests := []struct {
		name    string
		cmd     interface{ Run(*cli.Context) error }
		wantErr bool
	}{
		{"week", &ViewWeekCmd{Date: "today"}, false},
		{"month", &ViewMonthCmd{Date: "2024-03-01"}, false},
		{"year", &ViewYearCmd{Date: "2024-12-31"}, false},
		{"invalid date", &ViewWeekCmd{Date: "next week"}, true},
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

func TestExportJSON(t *testing.T) {
	ctx := setupTestDB(t)
	seed(t, ctx, "Standup", "2024-03-06")

	var buf bytes.Buffer
	if err := Export(&buf, ctx.Load(), "json"); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if len(snap.Tasks) != 1 || snap.Tasks[0].Title != "Standup" {
		t.Errorf("tasks = %+v", snap.Tasks)
	}
	if snap.Settings.WakeTime != "07:00" || snap.User != nil {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestExportYAMLToFile(t *testing.T) {
	ctx := setupTestDB(t)
	seed(t, ctx, "Review", "2024-03-09")

	out := filepath.Join(t.TempDir(), "export.yaml")
	if err := (&ExportCmd{Format: "yaml", Output: out}).Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		t.Fatalf("export is not valid yaml: %v", err)
	}
	if len(snap.Tasks) != 1 || snap.Tasks[0].DueDate != "2024-03-09" {
		t.Errorf("tasks = %+v", snap.Tasks)
	}
	if snap.Settings.WakeTime != "07:00" || snap.Settings.Alarm.Sound != "forest" {
		t.Errorf("settings missing from export:\n%s", data)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, session.Session{}, "xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
