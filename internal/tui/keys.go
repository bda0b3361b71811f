package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Help     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Delete   key.Binding
	Move     key.Binding
	Weight   key.Binding
	Priority key.Binding
	Repeat   key.Binding
	Rank     key.Binding
	Settings key.Binding
	View     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	Snooze   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.View, k.Settings, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PrevDay, k.NextDay, k.Today},
		{k.Add, k.Toggle, k.Delete, k.Move, k.Weight, k.Priority, k.Repeat},
		{k.Rank, k.View, k.Settings, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev block"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next block"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "toggle done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to next block"),
		),
		Weight: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "cycle weight"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "repeat task"),
		),
		Rank: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rank block"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		View: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "next view"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "snooze"),
		),
	}
}
