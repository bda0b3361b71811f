package block

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	focusedCardStyle = cardStyle.BorderForeground(lipgloss.Color("205"))
	activeCardStyle  = cardStyle.BorderForeground(lipgloss.Color("42"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	taskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	nearStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	healthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const barWidth = 12

// Model renders one time block as a card.
type Model struct {
	View    planner.BlockView
	Focused bool
	Cursor  int
	width   int
}

func New(v planner.BlockView) Model {
	return Model{View: v, Cursor: -1}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) Render(tr *i18n.Translator) string {
	b := m.View.Block

	var body strings.Builder
	header := titleStyle.Render(tr.Period(b.ID)) + " " + timeStyle.Render(fmt.Sprintf("%s-%s", b.Start, b.End))
	body.WriteString(header)
	body.WriteString("\n")
	if m.View.Capacity.Limited() {
		body.WriteString(Bar(m.View.Capacity))
		body.WriteString("\n")
	}

	if len(m.View.Tasks) == 0 {
		if b.ID == models.PeriodNight {
			body.WriteString(mutedStyle.Render(tr.T(i18n.Weightless)))
		} else {
			body.WriteString(mutedStyle.Render(tr.T(i18n.Placeholder)))
		}
	}
	for i, t := range m.View.Tasks {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(m.taskLine(t, i == m.Cursor))
	}

	style := cardStyle
	switch {
	case m.Focused:
		style = focusedCardStyle
	case m.View.Active:
		style = activeCardStyle
	}
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.View.Past && !m.Focused {
		style = style.Faint(true)
	}
	return style.Render(body.String())
}

func (m Model) taskLine(t models.Task, selected bool) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	text := fmt.Sprintf("%s %s", box, t.Title)
	meta := mutedStyle.Render(fmt.Sprintf(" %s·%d", t.Weight, t.Weight.Points()))
	if t.Recurrence != "" && t.Recurrence != models.RecurrenceNone {
		meta += mutedStyle.Render(" ↻")
	}

	switch {
	case selected:
		return cursorStyle.Render("> "+text) + meta
	case t.Completed:
		return "  " + doneStyle.Render(text) + meta
	default:
		return "  " + taskStyle.Render(text) + meta
	}
}

// Bar draws a capacity gauge coloured by how full the block is.
func Bar(c planner.Capacity) string {
	filled := c.Percent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	label := fmt.Sprintf(" %d/%d", c.Used, c.Ceiling)

	style := healthyStyle
	switch {
	case c.OverCapacity:
		style = overStyle
	case c.Percent >= constants.CapacityWarnPercent:
		style = nearStyle
	}
	return style.Render(bar + label)
}
