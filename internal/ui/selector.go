package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/canvas"
)

const (
	selectorColumns    = 3
	selectorItemHeight = 5
	selectorTitle      = "Activity Selector"
	completedMark      = "✅ "
	pendingMark        = "―  "
)

// SelectorState is the cursor over the activity grid. selected is -1 exactly
// when count is 0.
type SelectorState struct {
	count    int
	selected int
}

// NewSelectorState selects the first of n items, or nothing when n is 0.
func NewSelectorState(n int) SelectorState {
	if n <= 0 {
		return SelectorState{selected: -1}
	}
	return SelectorState{count: n, selected: 0}
}

// Count returns the number of items.
func (s SelectorState) Count() int { return s.count }

// Selected returns the selected index.
func (s SelectorState) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// Right moves to the next item, wrapping past the end.
func (s SelectorState) Right() SelectorState {
	if s.count > 0 {
		s.selected = (s.selected + 1) % s.count
	}
	return s
}

// Left moves to the previous item, wrapping past the start.
func (s SelectorState) Left() SelectorState {
	if s.count > 0 {
		s.selected = (s.selected - 1 + s.count) % s.count
	}
	return s
}

// Down moves one row down if that item exists.
func (s SelectorState) Down() SelectorState {
	return s.jump(selectorColumns)
}

// Up moves one row up if that item exists.
func (s SelectorState) Up() SelectorState {
	return s.jump(-selectorColumns)
}

func (s SelectorState) jump(delta int) SelectorState {
	if s.count == 0 {
		return s
	}
	if next := s.selected + delta; next >= 0 && next < s.count {
		s.selected = next
	}
	return s
}

// selectorRows is the number of item rows needed for n items; an empty
// selector still reserves one row for its hint.
func selectorRows(n int) int {
	return max(1, (n+selectorColumns-1)/selectorColumns)
}

// selectorHeight is the panel height that shows every row.
func selectorHeight(n int) int {
	return selectorRows(n)*selectorItemHeight + 2
}

// minSelectorHeight is the panel height showing a single row.
const minSelectorHeight = selectorItemHeight + 2

// renderSelector draws the titled panel into area. When area is shorter than
// needed, the rows scroll so the selected row stays visible.
func renderSelector(buf *canvas.Buffer, area canvas.Rect, options []activity.Option, state SelectorState, theme Theme, createKey string) {
	inner := buf.DrawBox(area, lipgloss.RoundedBorder(), theme.border(), " "+selectorTitle+" ", theme.title())
	if inner.Empty() {
		return
	}

	if len(options) == 0 {
		hint := "No activities yet. Press " + createKey + " to create one."
		y := inner.Y + inner.Height/2
		x := inner.X + max(0, (inner.Width-canvas.StringWidth(hint))/2)
		buf.SetStringN(x, y, hint, inner.Right()-x, theme.muted())
		return
	}

	visible := max(1, inner.Height/selectorItemHeight)
	first := 0
	if sel, ok := state.Selected(); ok {
		first = max(0, sel/selectorColumns-visible+1)
	}

	cellWidth := inner.Width / selectorColumns
	for i, opt := range options {
		row := i/selectorColumns - first
		if row < 0 || row >= visible {
			continue
		}
		cell := canvas.Rect{
			X:      inner.X + (i%selectorColumns)*cellWidth,
			Y:      inner.Y + row*selectorItemHeight,
			Width:  cellWidth,
			Height: selectorItemHeight,
		}
		sel, _ := state.Selected()
		renderSelectorItem(buf, cell, opt, i == sel, theme)
	}
}

func renderSelectorItem(buf *canvas.Buffer, cell canvas.Rect, opt activity.Option, selected bool, theme Theme) {
	if selected {
		buf.DrawBorder(cell, lipgloss.RoundedBorder(), theme.accent())
	}
	label, style := pendingMark+opt.Type.Name, theme.text()
	if opt.Completed {
		label, style = completedMark+opt.Type.Name, theme.success()
	}
	x := cell.X + 2
	buf.SetStringN(x, cell.Y+cell.Height/2, label, cell.Width-4, style)
}
