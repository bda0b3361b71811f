package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayflow/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApply(t *testing.T) {
	db := setupTestDB(t)
	files := fstest.MapFS{
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"README.md":      {Data: []byte("ignored")},
	}
	r := NewRunner(db, files, SQLite)

	version, err := r.CurrentVersion()
	if err != nil || version != 0 {
		t.Fatalf("fresh database: version=%d err=%v", version, err)
	}

	var logged int
	n, err := r.Apply(func(string, ...any) { logged++ })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if n != 2 {
		t.Errorf("applied %d migrations, want 2", n)
	}
	if logged == 0 {
		t.Error("expected progress to be logged")
	}
	if version, _ := r.CurrentVersion(); version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Second run is a no-op.
	n, err = r.Apply(nil)
	if err != nil || n != 0 {
		t.Errorf("second Apply: n=%d err=%v", n, err)
	}
}

func TestApply_FailedMigrationRollsBack(t *testing.T) {
	db := setupTestDB(t)
	files := fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}
	r := NewRunner(db, files, SQLite)

	n, err := r.Apply(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if n != 1 {
		t.Errorf("applied %d migrations, want 1", n)
	}
	if version, _ := r.CurrentVersion(); version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestMigrations_InvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{"no underscore", fstest.MapFS{"001.sql": {Data: []byte("")}}},
		{"not a number", fstest.MapFS{"abc_init.sql": {Data: []byte("")}}},
		{"zero version", fstest.MapFS{"000_init.sql": {Data: []byte("")}}},
		{"duplicate", fstest.MapFS{
			"001_a.sql": {Data: []byte("")},
			"01_b.sql":  {Data: []byte("")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(setupTestDB(t), tt.files, SQLite)
			if _, err := r.Migrations(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate_SchemaTooNew(t *testing.T) {
	db := setupTestDB(t)
	r := NewRunner(db, fstest.MapFS{"001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")}}, SQLite)
	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 9"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := r.Validate(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ErrSchemaTooNew, got %v", err)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(setupTestDB(t), sub, SQLite)
	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("embedded migrations failed: %v", err)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestDialectBind(t *testing.T) {
	if SQLite.bind(1) != "?" || Postgres.bind(2) != "$2" {
		t.Errorf("unexpected bind vars: %s %s", SQLite.bind(1), Postgres.bind(2))
	}
}
