package scene

// Rect is a rectangle in texture or node space.
type Rect struct {
	X, Y, W, H float64
}

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// White is the neutral tint.
var White = Color{R: 255, G: 255, B: 255}

// Sprite draws a rectangle of its batch's texture.
//
// A sprite keeps its unmodified color. With opacity-modifies-RGB enabled
// the displayed color is the unmodified color multiplied by the opacity,
// so the color has to be applied before the opacity.
type Sprite struct {
	Base

	rect  Rect
	frame string

	color     Color
	displayed Color
	opacity   uint8
	modifyRGB bool

	z, tag int
}

func newSprite(rect Rect, z int) *Sprite {
	s := &Sprite{
		color:     White,
		displayed: White,
		opacity:   255,
		z:         z,
		tag:       z,
	}
	s.SetRect(rect)
	return s
}

// Rect returns the source rectangle on the texture.
func (s *Sprite) Rect() Rect { return s.rect }

// SetRect replaces the source rectangle and the content size.
func (s *Sprite) SetRect(r Rect) {
	s.rect = r
	s.SetContentSize(r.W, r.H)
}

// Frame returns the name of the frame shown, if any.
func (s *Sprite) Frame() string { return s.frame }

// Z returns the draw order within the batch.
func (s *Sprite) Z() int { return s.z }

// Tag returns the identifier assigned at creation.
func (s *Sprite) Tag() int { return s.tag }

// Color returns the unmodified color.
func (s *Sprite) Color() Color { return s.color }

// DisplayedColor returns the color used for drawing.
func (s *Sprite) DisplayedColor() Color { return s.displayed }

// SetColor sets the unmodified color.
func (s *Sprite) SetColor(c Color) {
	s.color = c
	s.updateDisplayed()
}

// Opacity returns the opacity, 255 being opaque.
func (s *Sprite) Opacity() uint8 { return s.opacity }

// SetOpacity sets the opacity and, with opacity-modifies-RGB, refreshes
// the displayed color from the unmodified one.
func (s *Sprite) SetOpacity(o uint8) {
	s.opacity = o
	s.updateDisplayed()
}

// OpacityModifyRGB reports whether the opacity premultiplies the color.
func (s *Sprite) OpacityModifyRGB() bool { return s.modifyRGB }

// SetOpacityModifyRGB toggles premultiplication of the color by the opacity.
func (s *Sprite) SetOpacityModifyRGB(v bool) {
	s.modifyRGB = v
	s.updateDisplayed()
}

func (s *Sprite) updateDisplayed() {
	if !s.modifyRGB {
		s.displayed = s.color
		return
	}
	s.displayed = Color{
		R: premultiply(s.color.R, s.opacity),
		G: premultiply(s.color.G, s.opacity),
		B: premultiply(s.color.B, s.opacity),
	}
}

func premultiply(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 255)
}
