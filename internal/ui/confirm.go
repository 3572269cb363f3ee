package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is the inline form of the confirmation popup, used by
// commands that run outside the session.
type confirmModel struct {
	state     confirmPopupState
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if km.Type == tea.KeyCtrlC {
		m.done = true
		return m, tea.Quit
	}
	if accepted, done := m.state.HandleKey(km); done {
		m.confirmed = accepted
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	button := func(label string, focused bool) string {
		if focused {
			return lipgloss.NewStyle().
				Bold(true).
				Foreground(m.theme.Background).
				Background(m.theme.Accent).
				Render(label)
		}
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(label)
	}
	return m.theme.DangerStyle().Bold(true).Render(m.state.prompt) + "  " +
		button(confirmCancel, m.state.focus == focusLeftButton) + " " +
		button(confirmAccept, m.state.focus == focusRightButton) + " "
}

// Confirm asks prompt inline and reports whether the user chose to continue.
// Cancel is focused first, so Enter alone declines.
func Confirm(prompt string, theme Theme) (bool, error) {
	m := confirmModel{state: newConfirmPopup(prompt), theme: theme}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
