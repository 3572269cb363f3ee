package canvas

// Rect is an axis-aligned area of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// SplitRows cuts r into consecutive horizontal bands of the given heights.
// The last band is clipped to r.
func (r Rect) SplitRows(heights ...int) []Rect {
	out := make([]Rect, len(heights))
	y := r.Y
	for i, h := range heights {
		h = max(0, min(h, r.Bottom()-y))
		out[i] = Rect{X: r.X, Y: y, Width: r.Width, Height: h}
		y += h
	}
	return out
}

// CenterWidth returns a rectangle of the given width horizontally centred in
// r, clipped to r.
func (r Rect) CenterWidth(w int) Rect {
	w = min(w, r.Width)
	return Rect{X: r.X + (r.Width-w)/2, Y: r.Y, Width: w, Height: r.Height}
}

// Centered returns the area at percentX by percentY of r, centred inside it.
// It is built from a vertical then a horizontal three-way proportional split,
// taking the middle piece each time.
func Centered(r Rect, percentX, percentY int) Rect {
	_, middle, _ := splitVertical(r, percentY)
	_, center, _ := splitHorizontal(middle, percentX)
	return center
}

func splitVertical(r Rect, percent int) (Rect, Rect, Rect) {
	before, mid := proportions(r.Height, percent)
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: before},
		Rect{X: r.X, Y: r.Y + before, Width: r.Width, Height: mid},
		Rect{X: r.X, Y: r.Y + before + mid, Width: r.Width, Height: r.Height - before - mid}
}

func splitHorizontal(r Rect, percent int) (Rect, Rect, Rect) {
	before, mid := proportions(r.Width, percent)
	return Rect{X: r.X, Y: r.Y, Width: before, Height: r.Height},
		Rect{X: r.X + before, Y: r.Y, Width: mid, Height: r.Height},
		Rect{X: r.X + before + mid, Y: r.Y, Width: r.Width - before - mid, Height: r.Height}
}

// proportions splits total into (100-p)/2, p, (100-p)/2 percent and returns
// the first two sizes. The remainder goes to the last piece.
func proportions(total, percent int) (before, mid int) {
	percent = max(0, min(percent, 100))
	mid = total * percent / 100
	before = (total - mid) / 2
	return before, mid
}
