package sqlite

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/julianstephens/dayflow/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreGetSetDelete(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Get("tasks"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set("tasks", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("tasks", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err := s.Get("tasks")
	if err != nil || string(got) != `[{"id":"a"}]` {
		t.Fatalf("Get = %s, %v", got, err)
	}

	if err := s.Set("user", []byte(`{}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	keys, err := s.Keys()
	if err != nil || !slices.Equal(keys, []string{"tasks", "user"}) {
		t.Errorf("Keys = %v, %v", keys, err)
	}

	if err := s.Delete("user"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("user"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	missing := NewStore(path)
	if err := missing.Load(); err == nil {
		t.Fatal("expected error loading an uninitialised store")
	}

	s := NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Set("settings", []byte(`{"language":"ru"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get("settings")
	if err != nil || string(got) != `{"language":"ru"}` {
		t.Errorf("Get after reopen = %s, %v", got, err)
	}
}

func TestStoreNotLoaded(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if _, err := s.Get("tasks"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s := NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := s.Set("tasks", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()
	if _, err := again.Get("tasks"); err != nil {
		t.Errorf("data lost on re-init: %v", err)
	}
}
