// Package backup snapshots the SQLite store into <configDir>/backups and
// restores from those snapshots.
package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
)

const timestampFormat = "20060102-150405"

var ErrNoDatabase = errors.New("database does not exist")

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

type Manager struct {
	dbPath    string
	backupDir string
	now       func() time.Time
	keep      int
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		now:       time.Now,
		keep:      constants.MaxBackups,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the database and prunes backups beyond the newest
// MaxBackups.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.dbPath); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoDatabase, m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := snapshot(m.dbPath, path); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Info("Backup created", "path", path)
	return path, nil
}

// nextPath returns an unused file name for the current second, adding a
// counter when several backups land in the same second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if i > 100 {
			return "", errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, i, constants.BackupFileSuffix))
	}
}

// snapshot writes a consistent copy of src to dst with VACUUM INTO.
func snapshot(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verifyDB(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dst, err)
	}
	return nil
}

// List returns backups newest first. Files that do not look like backups
// are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if errors.Is(err, os.ErrNotExist) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ts, ok := parseName(e.Name())
		if !ok {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, e.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	slices.SortStableFunc(backups, func(a, b Info) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(b.Path, a.Path)
	})
	return backups, nil
}

// parseName extracts the timestamp from dayflow-YYYYMMDD-HHMMSS[-N].db.
func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if len(stamp) > len(timestampFormat) {
		counter := stamp[len(timestampFormat):]
		if !strings.HasPrefix(counter, "-") {
			return time.Time{}, false
		}
		if _, err := strconv.Atoi(counter[1:]); err != nil {
			return time.Time{}, false
		}
		stamp = stamp[:len(timestampFormat)]
	}
	ts, err := time.ParseInLocation(timestampFormat, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) <= m.keep {
		return nil
	}
	for _, b := range backups[m.keep:] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", b.Path, err)
		}
		logger.Debug("Removed old backup", "path", b.Path)
	}
	return nil
}

// Restore replaces the database with the backup at path. The current
// database, if any, is snapshotted first; that snapshot's path is returned.
func (m *Manager) Restore(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := verifyFile(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.dbPath); err == nil {
		previous, err = m.create()
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return previous, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tmp, "error", rmErr)
		}
		return previous, fmt.Errorf("failed to restore database: %w", err)
	}
	logger.Info("Database restored", "from", path)
	return previous, nil
}

func verifyFile(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verifyDB(db)
}

// verifyDB checks that db is readable and holds the key/value table.
func verifyDB(db *sql.DB) error {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv'").Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no kv table")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
