package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/migration"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) Set(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// GetDB exposes the connection for backups.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite), nil
}

func (s *Store) runMigrations() error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	_, err = r.Apply(logger.Debug)
	return err
}

func (s *Store) validateSchemaVersion() error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	return r.Validate()
}

// SchemaVersion reports the applied and the newest embedded schema version.
func (s *Store) SchemaVersion() (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, storage.ErrNotLoaded
	}
	r, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = r.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	latest, err = r.LatestVersion()
	return current, latest, err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
