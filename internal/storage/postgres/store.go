package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
	"github.com/julianstephens/dayflow/internal/migration"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

// IsConnString reports whether s looks like a PostgreSQL URL or DSN rather
// than a file path.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://") ||
		strings.Contains(s, "host=") || strings.Contains(s, "dbname=")
}

// withSearchPath pins the session to the application schema unless the
// caller already chose one.
func withSearchPath(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}
	if dsnParam(connStr, "search_path") {
		return connStr
	}
	return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
}

// dsnParam reports whether a key=value DSN contains key, case-insensitively.
func dsnParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		k, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for k := range u.Query() {
			if strings.EqualFold(k, "sslmode") {
				return true
			}
		}
	}
	return dsnParam(connStr, "sslmode")
}

// ValidateConnString checks that connStr parses as a PostgreSQL URI or DSN
// and carries no password. Credentials belong in the OS keyring.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if _, set := u.User.Password(); set {
			return ErrEmbeddedCredentials
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}
	if dsnParam(connStr, "password") {
		return ErrEmbeddedCredentials
	}
	return nil
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	r, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := r.Apply(logger.Debug); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	r, err := s.runner()
	if err != nil {
		return err
	}
	return r.Validate()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres), nil
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

func (s *Store) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value), time.Now().UTC(),
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
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = $1", key); err != nil {
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

func (s *Store) GetConfigPath() string {
	// never expose the connection string
	return "postgresql"
}
