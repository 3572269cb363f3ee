package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dleamy/daila/internal/storage"
)

// RunTUI loads the activity state from store and runs the interactive
// session in the alternate screen. State is written back only when the user
// saves and quits; a failed save is returned.
func RunTUI(store storage.Store, cfg TUIConfig) error {
	reg, log, err := store.Load()
	if err != nil {
		return err
	}

	m := newSessionModel(store, reg, log, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := result.(sessionModel); ok && sm.err != nil {
		return sm.err
	}
	return nil
}
