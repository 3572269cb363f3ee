package ui

import (
	"strings"
	"testing"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/canvas"
	"github.com/dleamy/daila/internal/config"
)

func selectorAt(count, idx int) SelectorState {
	s := NewSelectorState(count)
	s.selected = idx
	return s
}

func TestSelectorMotion(t *testing.T) {
	tests := []struct {
		name string
		from int
		move func(SelectorState) SelectorState
		want int
	}{
		{"right wraps", 6, SelectorState.Right, 0},
		{"left wraps", 0, SelectorState.Left, 6},
		{"right", 2, SelectorState.Right, 3},
		{"down from 0", 0, SelectorState.Down, 3},
		{"down from 3", 3, SelectorState.Down, 6},
		{"down bounded", 6, SelectorState.Down, 6},
		{"down bounded partial row", 4, SelectorState.Down, 4},
		{"up from 6", 6, SelectorState.Up, 3},
		{"up bounded", 2, SelectorState.Up, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.move(selectorAt(7, tt.from)).Selected()
			if !ok || got != tt.want {
				t.Errorf("got %d (%v), want %d", got, ok, tt.want)
			}
		})
	}
}

func TestSelectorEmpty(t *testing.T) {
	s := NewSelectorState(0)
	moves := []func(SelectorState) SelectorState{
		SelectorState.Right, SelectorState.Left, SelectorState.Up, SelectorState.Down,
	}
	for _, move := range moves {
		s = move(s)
		if _, ok := s.Selected(); ok {
			t.Fatal("empty selector must have no selection")
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d", s.Count())
	}
}

func TestSelectorSelectionInRange(t *testing.T) {
	moves := []func(SelectorState) SelectorState{
		SelectorState.Right, SelectorState.Down, SelectorState.Left,
		SelectorState.Up, SelectorState.Down, SelectorState.Right,
	}
	for n := 1; n <= 10; n++ {
		s := NewSelectorState(n)
		for i := 0; i < 50; i++ {
			s = moves[i%len(moves)](s)
			idx, ok := s.Selected()
			if !ok || idx < 0 || idx >= n {
				t.Fatalf("n=%d step %d: selection %d (%v) out of range", n, i, idx, ok)
			}
		}
	}
}

func TestSelectorHeight(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 7},
		{1, 7},
		{3, 7},
		{4, 12},
		{7, 17},
	}
	for _, tt := range tests {
		if got := selectorHeight(tt.n); got != tt.want {
			t.Errorf("selectorHeight(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func bufferText(buf *canvas.Buffer) string {
	return stripANSI(buf.Render())
}

func TestRenderSelector(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	options := []activity.Option{
		{Type: activity.Type{ID: 0, Name: "Read"}, Completed: true},
		{Type: activity.Type{ID: 1, Name: "Run"}},
	}
	buf := canvas.NewBuffer(60, 7, theme.base())
	renderSelector(buf, buf.Bounds(), options, NewSelectorState(2), theme, "c")

	out := bufferText(buf)
	for _, want := range []string{selectorTitle, "✅ Read", "―  Run"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	// The selected item is boxed: its top-left corner sits at the cell origin.
	if got := buf.Cell(1, 1).Content; got != "╭" {
		t.Errorf("expected selection border at (1,1), got %q", got)
	}
}

func TestRenderSelectorEmptyHint(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	buf := canvas.NewBuffer(60, 7, theme.base())
	renderSelector(buf, buf.Bounds(), nil, NewSelectorState(0), theme, "c")

	if out := bufferText(buf); !strings.Contains(out, "Press c to create one") {
		t.Errorf("expected create hint, got:\n%s", out)
	}
}

func TestRenderSelectorScrollsToSelection(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	var options []activity.Option
	for i, name := range []string{"A1", "A2", "A3", "B1", "B2", "B3", "C1"} {
		options = append(options, activity.Option{Type: activity.Type{ID: activity.ID(i), Name: name}})
	}
	buf := canvas.NewBuffer(60, minSelectorHeight, theme.base())
	renderSelector(buf, buf.Bounds(), options, selectorAt(7, 6), theme, "c")

	out := bufferText(buf)
	if !strings.Contains(out, "C1") {
		t.Errorf("expected selected row visible, got:\n%s", out)
	}
	if strings.Contains(out, "A1") {
		t.Errorf("expected first row scrolled out, got:\n%s", out)
	}
}
