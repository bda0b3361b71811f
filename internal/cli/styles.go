package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/planner"
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	ActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	DangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	DoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
)

const barWidth = 12

// CapacityBar renders used/ceiling as a fixed-width bar.
func CapacityBar(c planner.Capacity) string {
	if !c.Limited() {
		return MutedStyle.Render(fmt.Sprintf("%d pts", c.Used))
	}
	filled := c.Percent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	label := fmt.Sprintf("%s %d/%d", bar, c.Used, c.Ceiling)
	switch {
	case c.OverCapacity:
		return DangerStyle.Render(label)
	case c.Percent >= constants.CapacityWarnPercent:
		return WarnStyle.Render(label)
	}
	return ActiveStyle.Render(label)
}
