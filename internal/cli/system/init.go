package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/storage"
	"github.com/julianstephens/dayflow/internal/storage/postgres"
	"github.com/julianstephens/dayflow/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized dayflow storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		src, err := openSource(c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		defer src.Close()

		n, err := CopyKeys(src, ctx.Store)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Printf("Migration completed successfully! Copied %d keys.\n", n)
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if postgres.IsConnString(path) {
		return errors.New("--force is not supported for PostgreSQL; drop the schema manually")
	}
	if c.Source != "" {
		absPath, _ := filepath.Abs(path)
		absSource, _ := filepath.Abs(c.Source)
		if absPath == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(path string) (storage.Provider, error) {
	var src storage.Provider
	switch {
	case postgres.IsConnString(path):
		if err := postgres.ValidateConnString(path); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		src = postgres.New(path)
	case filepath.Ext(path) == ".json":
		src = storage.NewJSONStore(path)
	default:
		src = sqlite.NewStore(path)
	}
	if err := src.Load(); err != nil {
		return nil, fmt.Errorf("failed to load source database: %w", err)
	}
	return src, nil
}

// CopyKeys copies every key of src into dst and returns how many were copied.
func CopyKeys(src, dst storage.Provider) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source keys: %w", err)
	}
	for _, k := range keys {
		v, err := src.Get(k)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", k, err)
		}
		if err := dst.Set(k, v); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", k, err)
		}
		fmt.Printf("  Migrated %s\n", k)
	}
	return len(keys), nil
}
