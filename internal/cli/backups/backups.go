package backups

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/dayflow/internal/backup"
	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/logger"
)

var ErrNotSQLite = errors.New("backups are only supported for SQLite databases")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup now."`
	List    BackupListCmd    `cmd:"" default:"1" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

func manager(ctx *cli.Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if !strings.HasSuffix(path, constants.BackupFileSuffix) {
		return nil, ErrNotSQLite
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path := c.BackupFile
	if !filepath.IsAbs(path) {
		if candidate := filepath.Join(mgr.Dir(), path); fileExists(candidate) {
			path = candidate
		}
	}
	if !fileExists(path) {
		return fmt.Errorf("backup file not found: %s", path)
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current database with the backup.")
		fmt.Println("A snapshot of your current database will be taken first.")
		fmt.Printf("\nRestore from: %s\n", filepath.Base(path))
		fmt.Print("Continue? [y/N]: ")

		response, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close database before restore", "error", err)
	}

	previous, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully!")
	if previous != "" {
		fmt.Printf("Previous database saved as %s\n", filepath.Base(previous))
	}
	fmt.Println("Restart any running dayflow processes to use the restored database.")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
