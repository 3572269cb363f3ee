package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dleamy/daila/internal/canvas"
)

type confirmFocus int

const (
	focusLeftButton confirmFocus = iota
	focusRightButton
)

// confirmPopupState asks the user to accept or decline a destructive action.
// The left button cancels, the right one continues.
type confirmPopupState struct {
	prompt string
	focus  confirmFocus
}

func newConfirmPopup(prompt string) confirmPopupState {
	return confirmPopupState{prompt: prompt, focus: focusLeftButton}
}

// HandleKey returns (accepted, true) once the user has decided.
func (p *confirmPopupState) HandleKey(msg tea.KeyMsg) (bool, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		p.focus = focusLeftButton
	case tea.KeyRight:
		p.focus = focusRightButton
	case tea.KeyTab:
		p.focus = 1 - p.focus
	case tea.KeyEnter:
		return p.focus == focusRightButton, true
	case tea.KeyEsc:
		return false, true
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "y", "Y":
			return true, true
		case "n", "N":
			return false, true
		}
	}
	return false, false
}

const (
	confirmTitle  = " Confirmation "
	confirmCancel = " cancel "
	confirmAccept = " continue "
)

func (p confirmPopupState) render(buf *canvas.Buffer, area canvas.Rect, theme Theme) {
	buf.Fill(area, theme.base())
	inner := buf.DrawBox(area, lipgloss.RoundedBorder(), theme.border(), confirmTitle, theme.title())
	if inner.Height < 2 {
		return
	}

	promptRow := inner.Y + (inner.Height-1)/2
	if promptRow == inner.Bottom()-1 {
		promptRow--
	}
	centerText(buf, inner, promptRow, p.prompt, theme.danger())

	row := inner.Bottom() - 1
	left, right := theme.text(), theme.text()
	if p.focus == focusLeftButton {
		left = theme.focused()
	} else {
		right = theme.focused()
	}
	buf.SetStringN(inner.X+1, row, confirmCancel, inner.Width-1, left)
	x := inner.Right() - 1 - canvas.StringWidth(confirmAccept)
	buf.SetStringN(x, row, confirmAccept, inner.Right()-x, right)
}
