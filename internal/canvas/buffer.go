// Package canvas is an offscreen grid of styled terminal cells built on
// cellbuf. A frame is drawn cell by cell, then flattened into one string.
package canvas

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// Style is the visual attribute set of a cell. An empty colour means "keep
// whatever the cell already has".
type Style struct {
	FG      lipgloss.Color
	BG      lipgloss.Color
	Bold    bool
	Reverse bool
}

// cell converts s to a cellbuf style degraded to profile p.
func (s Style) cell(p colorprofile.Profile) cellbuf.Style {
	var cs cellbuf.Style
	cs.Foreground(termColor(s.FG)).
		Background(termColor(s.BG)).
		Bold(s.Bold).
		Reverse(s.Reverse)
	return cellbuf.ConvertStyle(cs, p)
}

// termColor maps a lipgloss colour ("#rrggbb", "#rgb" or an ANSI index) to
// its terminal colour. Anything else is treated as no colour.
func termColor(c lipgloss.Color) ansi.Color {
	s := string(c)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return nil
		}
		r, g, b := col.RGB255()
		return ansi.RGBColor{R: r, G: g, B: b}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return nil
	}
	if n < 16 {
		return ansi.BasicColor(n)
	}
	return ansi.IndexedColor(n)
}

// profile follows the colour profile lipgloss detected for the output.
func profile() colorprofile.Profile {
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return colorprofile.TrueColor
	case termenv.ANSI256:
		return colorprofile.ANSI256
	case termenv.ANSI:
		return colorprofile.ANSI
	default:
		return colorprofile.Ascii
	}
}

// Cell is a read-only view of one grid position. The second half of a
// double-width cluster has empty Content.
type Cell struct {
	Content string
	Style   Style
}

// Buffer is a fixed-size cell grid. Content, wide-cluster bookkeeping and
// rendering live in the cellbuf buffer; styles keeps the lipgloss colours each
// cell was drawn with so partial styles can be merged.
type Buffer struct {
	width, height int
	base          Style
	profile       colorprofile.Profile
	cells         *cellbuf.Buffer
	styles        []Style
}

// NewBuffer returns a width x height buffer filled with blanks in base style.
func NewBuffer(width, height int, base Style) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		width:   width,
		height:  height,
		base:    base,
		profile: profile(),
		cells:   cellbuf.NewBuffer(width, height),
		styles:  make([]Style, width*height),
	}
	b.Clear(b.Bounds())
	return b
}

// Bounds returns the whole buffer area.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Cell returns the cell at (x, y). Out-of-range coordinates yield a blank.
func (b *Buffer) Cell(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{Content: " "}
	}
	c := b.cells.Cell(x, y)
	if c == nil {
		return Cell{Content: " ", Style: b.styles[i]}
	}
	return Cell{Content: c.String(), Style: b.styles[i]}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Bounds().Contains(x, y) {
		return 0, false
	}
	return y*b.width + x, true
}

func (b *Buffer) newCell(content string, width int, st Style) *cellbuf.Cell {
	c := cellbuf.NewGraphemeCell(content)
	c.Width = width
	c.Style = st.cell(b.profile)
	return c
}

func (b *Buffer) put(x, y int, content string, width int, st Style) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	merged := b.styles[i]
	if st.FG != "" {
		merged.FG = st.FG
	}
	if st.BG != "" {
		merged.BG = st.BG
	}
	merged.Bold = st.Bold
	merged.Reverse = st.Reverse

	// A wide cluster starting under our second half would be left headless.
	if width == 2 {
		if next := b.cells.Cell(x+1, y); next != nil && next.Width > 1 {
			b.cells.SetCell(x+1, y, next.Clone().Blank())
		}
	}
	b.cells.SetCell(x, y, b.newCell(content, width, merged))
	b.styles[i] = merged
	if j, ok := b.index(x+1, y); ok && width == 2 {
		b.styles[j] = merged
	}
}

// Set writes a single-width glyph at (x, y).
func (b *Buffer) Set(x, y int, glyph string, st Style) {
	b.put(x, y, glyph, 1, st)
}

// SetStyle changes the style of the cells in r without touching their
// content.
func (b *Buffer) SetStyle(r Rect, st Style) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			i := y*b.width + x
			s := b.styles[i]
			if st.FG != "" {
				s.FG = st.FG
			}
			if st.BG != "" {
				s.BG = st.BG
			}
			s.Bold = s.Bold || st.Bold
			s.Reverse = s.Reverse || st.Reverse
			b.styles[i] = s

			c := b.cells.Cell(x, y)
			if c == nil || c.Width == 0 {
				continue
			}
			restyled := c.Clone()
			restyled.Style = s.cell(b.profile)
			b.cells.SetCell(x, y, restyled)
		}
	}
}

// SetString writes s starting at (x, y), clipped at the right edge of the
// buffer, and returns the column after the last cell written.
func (b *Buffer) SetString(x, y int, s string, st Style) int {
	return b.SetStringN(x, y, s, b.width-x, st)
}

// SetStringN is SetString limited to maxWidth cells.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, st Style) int {
	limit := min(x+maxWidth, b.width)
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.put(x, y, cluster, min(w, 2), st)
		x += w
	}
	return x
}

// Fill paints every cell of r with a blank in st.
func (b *Buffer) Fill(r Rect, st Style) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.put(x, y, " ", 1, st)
		}
	}
}

// Clear resets r to blanks in the buffer's base style. Wide clusters cut by
// either edge are blanked by cellbuf.
func (b *Buffer) Clear(r Rect) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.cells.SetCell(x, y, b.newCell(" ", 1, b.base))
			b.styles[y*b.width+x] = b.base
		}
	}
}

// DrawBorder draws the outline of r with the glyphs of border.
func (b *Buffer) DrawBorder(r Rect, border lipgloss.Border, st Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, border.Top, st)
		b.Set(x, bottom, border.Bottom, st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, border.Left, st)
		b.Set(right, y, border.Right, st)
	}
	b.Set(r.X, r.Y, border.TopLeft, st)
	b.Set(right, r.Y, border.TopRight, st)
	b.Set(r.X, bottom, border.BottomLeft, st)
	b.Set(right, bottom, border.BottomRight, st)
}

// DrawBox draws a border with an optional title on its top edge and returns
// the inner area.
func (b *Buffer) DrawBox(r Rect, border lipgloss.Border, st Style, title string, titleStyle Style) Rect {
	b.DrawBorder(r, border, st)
	if title != "" && r.Width > 4 {
		b.SetStringN(r.X+2, r.Y, title, r.Width-4, titleStyle)
	}
	return r.Inset(1)
}

// Render flattens the buffer into newline-separated lines, each padded to
// the full buffer width.
func (b *Buffer) Render() string {
	lines := make([]string, b.height)
	for y := range lines {
		w, line := cellbuf.RenderLine(b.cells, y)
		if pad := b.width - w; pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
