package ui

import (
	"github.com/dleamy/daila/internal/canvas"
)

// Popup sizes as percentages of the frame.
const (
	editorPopupWidth   = 60
	editorPopupHeight  = 50
	confirmPopupWidth  = 50
	confirmPopupHeight = 30
)

// drawPopup clears the centred popup area of frame and hands it to draw.
func drawPopup(buf *canvas.Buffer, frame canvas.Rect, percentX, percentY int, draw func(area canvas.Rect)) {
	area := canvas.Centered(frame, percentX, percentY)
	buf.Clear(area)
	draw(area)
}

// centerText writes s horizontally centred in area on row y, clipped to area.
func centerText(buf *canvas.Buffer, area canvas.Rect, y int, s string, st canvas.Style) {
	w := canvas.StringWidth(s)
	x := area.X + max(0, (area.Width-w)/2)
	buf.SetStringN(x, y, s, area.Right()-x, st)
}
