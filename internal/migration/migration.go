// Package migration applies the numbered SQL files from an fs.FS to a
// database and tracks the applied version in a schema_version table.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Dialect selects the bind parameter syntax of the target database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) bind(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Runner manages database schema migrations
type Runner struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
}

func NewRunner(db *sql.DB, migrationFS fs.FS, dialect Dialect) *Runner {
	return &Runner{
		db:      db,
		fs:      migrationFS,
		dialect: dialect,
	}
}

// ErrSchemaTooNew is returned when the database was migrated by a newer build.
var ErrSchemaTooNew = errors.New("database schema is newer than this version of dayflow supports")

func (r *Runner) ensureSchemaVersionTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	return err
}

// CurrentVersion returns the applied schema version, or 0 for a fresh database.
func (r *Runner) CurrentVersion() (int, error) {
	if err := r.ensureSchemaVersionTable(); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// Migrations reads NNN_name.sql files from the runner's filesystem, sorted
// by version. Duplicate or malformed versions are an error.
func (r *Runner) Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		prefix, name, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("invalid migration filename format: %s (expected NNN_name.sql)", e.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil || version < 1 {
			return nil, fmt.Errorf("invalid version number in filename %s", e.Name())
		}
		content, err := fs.ReadFile(r.fs, e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", e.Name(), err)
		}
		out = append(out, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", out[i].Version)
		}
	}
	return out, nil
}

// LatestVersion returns the highest available migration version.
func (r *Runner) LatestVersion() (int, error) {
	ms, err := r.Migrations()
	if err != nil || len(ms) == 0 {
		return 0, err
	}
	return ms[len(ms)-1].Version, nil
}

// Apply runs every pending migration, each in its own transaction together
// with the version bump. It returns how many were applied.
func (r *Runner) Apply(logFn func(msg string, keyvals ...any)) (int, error) {
	if logFn == nil {
		logFn = func(string, ...any) {}
	}

	current, err := r.CurrentVersion()
	if err != nil {
		return 0, err
	}
	ms, err := r.Migrations()
	if err != nil {
		return 0, err
	}
	if len(ms) == 0 {
		return 0, nil
	}
	latest := ms[len(ms)-1].Version
	if current > latest {
		return 0, fmt.Errorf("%w (database %d, supported %d)", ErrSchemaTooNew, current, latest)
	}

	start := time.Now()
	applied := 0
	for _, m := range ms {
		if m.Version <= current {
			continue
		}
		if err := r.applyOne(m); err != nil {
			return applied, err
		}
		applied++
		logFn("applied migration", "version", m.Version, "name", m.Name)
	}
	if applied > 0 {
		logFn("schema migrated", "from", current, "to", latest, "took", time.Since(start))
	}
	return applied, nil
}

func (r *Runner) applyOne(m Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
	}
	if _, err := tx.Exec(m.SQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear version in migration %d: %w", m.Version, err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES ("+r.dialect.bind(1)+")", m.Version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to set version in migration %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// Validate fails if the database schema is newer than the embedded migrations.
func (r *Runner) Validate() error {
	current, err := r.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := r.LatestVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("%w (database %d, supported %d)", ErrSchemaTooNew, current, latest)
	}
	return nil
}
