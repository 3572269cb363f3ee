package ui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/canvas"
)

type editorMode int

const (
	editorCreate editorMode = iota
	editorEdit
)

type editorFocus int

const (
	focusTextInput editorFocus = iota
	focusPrimaryButton
	focusCancelButton
)

type editorActionKind int

const (
	editorCreateAction editorActionKind = iota
	editorEditAction
	editorExitAction
)

// editorAction is what the editor popup asks its host to do.
type editorAction struct {
	kind editorActionKind
	id   activity.ID
	name string
}

// activityPopupState is the activity creator/editor. lastButton is the button
// most recently focused, or focusTextInput when none has been.
type activityPopupState struct {
	mode       editorMode
	id         activity.ID
	text       []rune
	focus      editorFocus
	lastButton editorFocus
}

func newCreatePopup() activityPopupState {
	return activityPopupState{mode: editorCreate}
}

func newEditPopup(t activity.Type) activityPopupState {
	return activityPopupState{mode: editorEdit, id: t.ID, text: []rune(t.Name)}
}

// Text returns the current contents of the text box.
func (p activityPopupState) Text() string { return string(p.text) }

func (p *activityPopupState) focusOn(f editorFocus) {
	p.focus = f
	if f != focusTextInput {
		p.lastButton = f
	}
}

// HandleKey applies msg. It returns an action when the popup is done.
func (p *activityPopupState) HandleKey(msg tea.KeyMsg) (editorAction, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return editorAction{kind: editorExitAction}, true
	case tea.KeyEnter:
		return p.activate()
	case tea.KeyDown:
		if p.focus == focusTextInput {
			if p.lastButton != focusTextInput {
				p.focusOn(p.lastButton)
			} else {
				p.focusOn(focusCancelButton)
			}
		}
	case tea.KeyUp:
		if p.focus != focusTextInput {
			p.focusOn(focusTextInput)
		}
	case tea.KeyLeft:
		if p.focus == focusPrimaryButton {
			p.focusOn(focusCancelButton)
		}
	case tea.KeyRight:
		if p.focus == focusCancelButton {
			p.focusOn(focusPrimaryButton)
		}
	case tea.KeyBackspace:
		if p.focus == focusTextInput && len(p.text) > 0 {
			p.text = dropLastCluster(p.text)
		}
	case tea.KeyRunes, tea.KeySpace:
		if p.focus == focusTextInput {
			p.text = append(p.text, msg.Runes...)
		}
	}
	return editorAction{}, false
}

func (p *activityPopupState) activate() (editorAction, bool) {
	switch p.focus {
	case focusPrimaryButton:
		if p.mode == editorEdit {
			return editorAction{kind: editorEditAction, id: p.id, name: p.Text()}, true
		}
		return editorAction{kind: editorCreateAction, name: p.Text()}, true
	case focusCancelButton:
		return editorAction{kind: editorExitAction}, true
	}
	return editorAction{}, false
}

func (p activityPopupState) primaryLabel() string {
	if p.mode == editorEdit {
		return "save"
	}
	return "create"
}

const (
	editorTitle       = " Activity Editor "
	editorPlaceholder = "Enter activity name"
	editorCaption     = "(activity name)"
	editorCaret       = "|"
	buttonWidth       = 10
)

// render draws the popup into area. The layout needs an inner height of 9.
func (p activityPopupState) render(buf *canvas.Buffer, area canvas.Rect, theme Theme) {
	buf.Fill(area, theme.base())
	inner := buf.DrawBox(area, lipgloss.RoundedBorder(), theme.border(), editorTitle, theme.title())
	if inner.Width < 2*buttonWidth+2 || inner.Height < 9 {
		return
	}

	box := canvas.Rect{X: inner.X + 2, Y: inner.Y + 1, Width: inner.Width - 4, Height: 3}
	p.renderTextBox(buf, box, theme)
	centerText(buf, inner, box.Bottom(), editorCaption, theme.muted())

	buttons := canvas.Rect{X: box.X, Y: inner.Y + 6, Width: box.Width, Height: 3}
	cancel := canvas.Rect{X: buttons.X, Y: buttons.Y, Width: buttonWidth, Height: 3}
	primary := canvas.Rect{X: buttons.Right() - buttonWidth, Y: buttons.Y, Width: buttonWidth, Height: 3}
	renderButton(buf, cancel, "cancel", p.focus == focusCancelButton, theme)
	renderButton(buf, primary, p.primaryLabel(), p.focus == focusPrimaryButton, theme)
}

func (p activityPopupState) renderTextBox(buf *canvas.Buffer, box canvas.Rect, theme Theme) {
	focused := p.focus == focusTextInput
	content := box.Inset(1)
	textStyle := theme.text()
	if focused {
		buf.Fill(content, canvas.Style{BG: theme.Secondary})
		buf.DrawBorder(box, lipgloss.RoundedBorder(), theme.accent())
	} else {
		buf.DrawBorder(box, lipgloss.RoundedBorder(), theme.border())
	}

	if len(p.text) == 0 {
		buf.SetStringN(content.X+1, content.Y, editorPlaceholder, content.Width-1, theme.muted())
		return
	}
	text := p.Text()
	if focused {
		text += editorCaret
	}
	buf.SetStringN(content.X+1, content.Y, tail(text, content.Width-1), content.Width-1, textStyle)
}

func renderButton(buf *canvas.Buffer, r canvas.Rect, label string, focused bool, theme Theme) {
	if focused {
		buf.Fill(r.Inset(1), theme.focused())
		buf.DrawBorder(r, lipgloss.RoundedBorder(), theme.accent())
		centerText(buf, r.Inset(1), r.Y+1, label, theme.focused())
		return
	}
	buf.DrawBorder(r, lipgloss.RoundedBorder(), theme.border())
	centerText(buf, r.Inset(1), r.Y+1, label, theme.text())
}

// tail drops leading runes from s until it fits in width cells.
func tail(s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && canvas.StringWidth(string(runes)) > width {
		runes = runes[1:]
	}
	return string(runes)
}

// dropLastCluster removes the last user-perceived character, which may span
// several runes (flags, skin tones, ZWJ sequences).
func dropLastCluster(text []rune) []rune {
	s := string(text)
	last := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		last = utf8.RuneCountInString(cluster)
	}
	return text[:len(text)-last]
}
