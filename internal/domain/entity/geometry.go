// Package entity defines domain entities for the browser shell.
package entity

// Rect is a window-relative rectangle in logical pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// InsetTop returns the area below a band of the given height, anchored at the
// origin of the content area. Negative sizes collapse to zero.
func (r Rect) InsetTop(band int) Rect {
	h := r.Height - band
	if h < 0 {
		h = 0
	}
	w := r.Width
	if w < 0 {
		w = 0
	}
	return Rect{X: 0, Y: band, Width: w, Height: h}
}

// AnchorTopRight returns the origin of a child placed offsetRight pixels left of
// r's right edge and offsetTop pixels below its top edge.
func (r Rect) AnchorTopRight(offsetRight, offsetTop int) (x, y int) {
	return r.X + r.Width - offsetRight, r.Y + offsetTop
}
