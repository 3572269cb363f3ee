package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the session keymap in its default mode. It implements
// help.KeyMap.
type keyMap struct {
	PrevDay    key.Binding
	NextDay    key.Binding
	Today      key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Create     key.Binding
	Edit       key.Binding
	Delete     key.Binding
	SaveQuit   key.Binding
	QuitNoSave key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p/[", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n/]", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		Create: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "create"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		SaveQuit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "save & quit"),
		),
		QuitNoSave: key.NewBinding(
			key.WithKeys("Q", "ctrl+c"),
			key.WithHelp("Q", "quit, no save"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Create, k.SaveQuit, k.QuitNoSave}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.Create, k.Edit, k.Delete},
		{k.SaveQuit, k.QuitNoSave},
	}
}
