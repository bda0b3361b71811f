package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.Load()

	// Snapshot before the session can change anything.
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Manager), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
