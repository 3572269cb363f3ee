// Package heatmap draws a calendar heat-map: one cell per day, laid out in
// columns of Rows consecutive days, with month labels above and separators
// between months.
package heatmap

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/canvas"
)

// ErrAreaTooSmall is returned by Render when the target area cannot hold the
// whole date range.
var ErrAreaTooSmall = errors.New("heat-map area too small")

const (
	// DefaultRows is one row per weekday slot.
	DefaultRows = 7

	// Glyph is drawn in every day cell; its foreground carries the heat colour.
	Glyph = "▄"

	separator    = "│"
	separatorTop = "╷"
	monthLayout  = "Jan"
)

// Value contributes heat to one date.
type Value interface {
	HeatMapDate() calendar.Date
	HeatMapValue() float32
}

// Model describes what to draw. Positions are derived from the date range on
// every call; no per-cell state is kept.
type Model struct {
	Start, End calendar.Date
	MinHeat    float32
	MaxHeat    float32
	LowColor   lipgloss.Color
	HighColor  lipgloss.Color
	Rows       int

	// Gradient blends between LowColor and HighColor in Lab space when both
	// are hex colours. Otherwise any positive heat maps to HighColor.
	Gradient bool

	// Active is highlighted with ActiveColor as background. Zero means none.
	Active      calendar.Date
	ActiveColor lipgloss.Color

	SeparatorColor lipgloss.Color
	LabelColor     lipgloss.Color

	Values map[calendar.Date]float32
}

// New returns a model covering the current year.
func New() Model {
	return ForYear(calendar.Today().Year)
}

// ForYear returns a model covering Jan 1 to Dec 31 of year.
func ForYear(year int) Model {
	start, end := calendar.YearRange(year)
	return Model{
		Start:          start,
		End:            end,
		MinHeat:        0,
		MaxHeat:        1,
		LowColor:       lipgloss.Color("0"),
		HighColor:      lipgloss.Color("2"),
		Rows:           DefaultRows,
		SeparatorColor: lipgloss.Color("8"),
	}
}

// Index maps each value's date to its heat. A later value for the same date
// replaces an earlier one.
func Index[T Value](values []T) map[calendar.Date]float32 {
	out := make(map[calendar.Date]float32, len(values))
	for _, v := range values {
		out[v.HeatMapDate()] = v.HeatMapValue()
	}
	return out
}

func (m Model) rows() int {
	if m.Rows <= 0 {
		return DefaultRows
	}
	return m.Rows
}

// Days returns the signed number of days from Start to End.
func (m Model) Days() int {
	return m.End.Sub(m.Start)
}

// Width is the number of columns Render needs: two per day column.
func (m Model) Width() int {
	r := m.rows()
	return 2 * ((m.Days() + 1 + r - 1) / r)
}

// Height is the number of rows Render needs, including the label row.
func (m Model) Height() int {
	return m.rows() + 1
}

// Contains reports whether d lies in [Start, End].
func (m Model) Contains(d calendar.Date) bool {
	return !d.Before(m.Start) && !d.After(m.End)
}

// DateToPosition returns the screen cell of d inside area.
func (m Model) DateToPosition(d calendar.Date, area canvas.Rect) (x, y int) {
	k := d.Sub(m.Start)
	r := m.rows()
	return area.X + 2*(k/r), area.Y + 1 + k%r
}

// PositionToDate is the inverse of DateToPosition. The separator column of a
// cell maps to the same date as its content column.
func (m Model) PositionToDate(x, y int, area canvas.Rect) calendar.Date {
	k := (x-area.X)/2*m.rows() + (y - area.Y - 1)
	return m.Start.AddDays(k)
}

// HeatAt returns the heat of d, zero when absent.
func (m Model) HeatAt(d calendar.Date) float32 {
	return m.Values[d]
}

// ColorFor maps a heat value to a colour.
func (m Model) ColorFor(heat float32) lipgloss.Color {
	if m.Gradient {
		if c, ok := m.blend(heat); ok {
			return c
		}
	}
	if heat == 0 {
		return m.LowColor
	}
	return m.HighColor
}

func (m Model) blend(heat float32) (lipgloss.Color, bool) {
	low, err := colorful.Hex(string(m.LowColor))
	if err != nil {
		return "", false
	}
	high, err := colorful.Hex(string(m.HighColor))
	if err != nil {
		return "", false
	}
	span := m.MaxHeat - m.MinHeat
	if span <= 0 {
		return "", false
	}
	t := float64((heat - m.MinHeat) / span)
	switch {
	case t <= 0:
		return m.LowColor, true
	case t >= 1:
		return m.HighColor, true
	}
	return lipgloss.Color(low.BlendLab(high, t).Clamped().Hex()), true
}

// Render draws the heat-map into buf with its top-left corner at area's.
func (m Model) Render(buf *canvas.Buffer, area canvas.Rect) error {
	if m.End.Before(m.Start) {
		return fmt.Errorf("heat-map range ends (%s) before it starts (%s)", m.End, m.Start)
	}
	if area.Width < m.Width() || area.Height < m.Height() {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrAreaTooSmall, m.Width(), m.Height(), area.Width, area.Height)
	}

	for d := m.Start; !d.After(m.End); d = d.Next() {
		m.drawDate(buf, d, area)
		m.drawSeparator(buf, d, area)
	}
	m.drawMonthLabels(buf, area)
	return nil
}

func (m Model) drawDate(buf *canvas.Buffer, d calendar.Date, area canvas.Rect) {
	x, y := m.DateToPosition(d, area)
	st := canvas.Style{FG: m.ColorFor(m.HeatAt(d))}
	if !m.Active.IsZero() && d == m.Active {
		st.BG = m.ActiveColor
		if st.BG == "" {
			st.Reverse = true
		}
	}
	buf.Set(x, y, Glyph, st)
}

// drawSeparator marks the column gap to the right of d when the day one
// column over falls in another month and is still in range.
func (m Model) drawSeparator(buf *canvas.Buffer, d calendar.Date, area canvas.Rect) {
	x, y := m.DateToPosition(d, area)
	next := m.PositionToDate(x+2, y, area)
	if sameMonth(next, d) || next.After(m.End) {
		return
	}
	glyph := separator
	if y == area.Y+1 {
		glyph = separatorTop
	}
	buf.Set(x+1, y, glyph, canvas.Style{FG: m.SeparatorColor})
}

func (m Model) drawMonthLabels(buf *canvas.Buffer, area canvas.Rect) {
	lastMonth := -1
	for d := m.Start; !d.After(m.End); d = d.AddDays(m.rows()) {
		if d.Year*12+int(d.Month) == lastMonth {
			continue
		}
		x, _ := m.DateToPosition(d, area)
		buf.SetStringN(x, area.Y, d.Format(monthLayout), area.Right()-x, canvas.Style{FG: m.LabelColor})
		lastMonth = d.Year*12 + int(d.Month)
	}
}

func sameMonth(a, b calendar.Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}
