package views

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/session"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Snapshot is the exported form of a session.
type Snapshot struct {
	Tasks    []models.Task       `json:"tasks" yaml:"tasks"`
	Settings models.Settings     `json:"settings" yaml:"settings"`
	User     *models.UserProfile `json:"user,omitempty" yaml:"user,omitempty"`
}

type ExportCmd struct {
	Format string `short:"f" help:"Output format (json|yaml)." default:"json" enum:"json,yaml"`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	if c.Output == "" {
		return Export(os.Stdout, s, c.Format)
	}

	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Export(f, s, c.Format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Exported %d tasks to %s\n", len(s.Tasks), c.Output)
	return nil
}

// Export writes s to w as json or yaml.
func Export(w io.Writer, s session.Session, format string) error {
	snap := Snapshot{Tasks: s.Tasks, Settings: s.Settings, User: s.User}
	if snap.Tasks == nil {
		snap.Tasks = []models.Task{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
