package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayflow/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	s := NewJSONStore(filepath.Join(t.TempDir(), "dayflow.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestJSONStore(t *testing.T) {
	s := setupJSONStore(t)

	if _, err := s.Get("tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set("tasks", []byte("not json")); err == nil {
		t.Error("expected invalid JSON to be rejected")
	}
	if err := s.Set("tasks", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reloaded := NewJSONStore(s.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reloaded.Get("tasks")
	if err != nil || string(got) != `[{"id":"a"}]` {
		t.Errorf("Get after reload = %s, %v", got, err)
	}

	if err := reloaded.Delete("tasks"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	keys, _ := reloaded.Keys()
	if len(keys) != 0 {
		t.Errorf("Keys after delete = %v", keys)
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := s.Get("tasks"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestJSONStore_InitKeepsData(t *testing.T) {
	s := setupJSONStore(t)
	if err := s.Set("user", []byte(`{"id":"guest"}`)); err != nil {
		t.Fatal(err)
	}
	again := NewJSONStore(s.GetConfigPath())
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if _, err := again.Get("user"); err != nil {
		t.Errorf("data lost on re-init: %v", err)
	}
}

func TestLoadTasks_FallsBackToEmpty(t *testing.T) {
	s := setupJSONStore(t)

	if tasks := LoadTasks(s); tasks == nil || len(tasks) != 0 {
		t.Errorf("missing key: got %#v", tasks)
	}

	if err := s.Set("tasks", []byte(`{"not":"a list"}`)); err != nil {
		t.Fatal(err)
	}
	if tasks := LoadTasks(s); len(tasks) != 0 {
		t.Errorf("corrupt key: got %#v", tasks)
	}
}

func TestTasksRoundTrip(t *testing.T) {
	s := setupJSONStore(t)
	created := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	in := []models.Task{{
		ID:        "a",
		Title:     "Write",
		Periods:   []models.TimePeriod{models.PeriodMorning, models.PeriodEvening},
		Weight:    models.WeightDeep,
		Priority:  models.PriorityHigh,
		CreatedAt: created,
		DueDate:   "2024-03-06",
	}}
	if err := SaveTasks(s, in); err != nil {
		t.Fatalf("SaveTasks failed: %v", err)
	}
	out := LoadTasks(s)
	if len(out) != 1 || out[0].Title != "Write" || !out[0].CreatedAt.Equal(created) || len(out[0].Periods) != 2 {
		t.Errorf("unexpected tasks: %+v", out)
	}
}

func TestLoadSettings(t *testing.T) {
	s := setupJSONStore(t)

	if got := LoadSettings(s); got.WakeTime != "07:00" || got.RestTime != "23:00" {
		t.Errorf("missing key: got %+v", got)
	}

	if err := s.Set("settings", []byte(`{"wake_up_time":"06:00","language":"ru"}`)); err != nil {
		t.Fatal(err)
	}
	got := LoadSettings(s)
	if got.WakeTime != "06:00" || got.RestTime != "23:00" || got.Language != "ru" || got.Alarm.Sound != "forest" {
		t.Errorf("partial settings not completed with defaults: %+v", got)
	}

	if err := s.Set("settings", []byte(`"garbage"`)); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(s); got.WakeTime != "07:00" {
		t.Errorf("corrupt settings: got %+v", got)
	}
}

func TestUserLifecycle(t *testing.T) {
	s := setupJSONStore(t)

	if _, ok := LoadUser(s); ok {
		t.Fatal("expected no user")
	}
	if err := SaveUser(s, models.GuestProfile()); err != nil {
		t.Fatal(err)
	}
	u, ok := LoadUser(s)
	if !ok || u.ID != "guest" {
		t.Errorf("LoadUser = %+v, %v", u, ok)
	}
	if err := ClearUser(s); err != nil {
		t.Fatal(err)
	}
	if _, ok := LoadUser(s); ok {
		t.Error("user still present after clear")
	}
}

func TestJSONStoreFilePermissions(t *testing.T) {
	s := setupJSONStore(t)
	info, err := os.Stat(s.GetConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}
