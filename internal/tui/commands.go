package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/optimizer"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type suggestionMsg optimizer.Suggestion

// waitForSuggestion blocks until the suggester delivers a weight.
func waitForSuggestion(s *optimizer.Suggester) tea.Cmd {
	return func() tea.Msg {
		return suggestionMsg(<-s.Results())
	}
}
