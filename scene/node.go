package scene

// Node is an element of the tree.
type Node interface {
	// ContentSize returns the unscaled size of the node.
	ContentSize() (w, h float64)

	Position() (x, y float64)
	SetPosition(x, y float64)

	Scale() float64
	SetScale(s float64)

	Visible() bool
	SetVisible(v bool)
}

// Base implements Node. Embed it to build custom nodes.
// The zero value is a visible node of size zero at the origin with scale 1.
type Base struct {
	x, y   float64
	w, h   float64
	scale  float64
	hidden bool
}

// ContentSize implements Node.
func (b *Base) ContentSize() (w, h float64) { return b.w, b.h }

// SetContentSize sets the unscaled size.
func (b *Base) SetContentSize(w, h float64) {
	b.w, b.h = w, h
}

// Position implements Node.
func (b *Base) Position() (x, y float64) { return b.x, b.y }

// SetPosition implements Node.
func (b *Base) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

// Scale implements Node. An unset scale reads as 1.
func (b *Base) Scale() float64 {
	if b.scale == 0 {
		return 1
	}
	return b.scale
}

// SetScale implements Node.
func (b *Base) SetScale(s float64) { b.scale = s }

// Visible implements Node.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible implements Node.
func (b *Base) SetVisible(v bool) { b.hidden = !v }

// Bounds returns the scaled rectangle covered by n.
func Bounds(n Node) Rect {
	x, y := n.Position()
	w, h := n.ContentSize()
	s := n.Scale()
	return Rect{X: x, Y: y, W: w * s, H: h * s}
}
