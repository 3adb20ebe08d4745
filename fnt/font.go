package fnt

import (
	"maps"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rect is a rectangle on the atlas image, in pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Padding holds the padding insets declared by the info line.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Glyph holds the metrics of one character.
type Glyph struct {
	// Rect is the glyph's source rectangle on the atlas.
	Rect Rect

	// XOffset and YOffset position the rectangle relative to the pen,
	// YOffset measured down from the top of the line.
	XOffset float64
	YOffset float64

	// XAdvance is how far the pen moves after the glyph.
	XAdvance float64
}

// KerningPair is an ordered pair of characters.
type KerningPair struct {
	First, Second rune
}

// Font is a parsed descriptor.
// A Font is immutable once created and safe to share between goroutines.
type Font struct {
	path         string
	atlas        string
	commonHeight float64
	base         float64
	padding      Padding
	glyphs       map[rune]Glyph
	kerning      map[KerningPair]float64
}

// NewFont creates a Font from already known metrics.
// The maps are copied; the caller may reuse them afterwards.
func NewFont(path, atlas string, commonHeight float64, glyphs map[rune]Glyph, kerning map[KerningPair]float64) *Font {
	f := &Font{
		path:         path,
		atlas:        atlas,
		commonHeight: commonHeight,
		base:         commonHeight,
		glyphs:       make(map[rune]Glyph, len(glyphs)),
		kerning:      make(map[KerningPair]float64, len(kerning)),
	}
	maps.Copy(f.glyphs, glyphs)
	maps.Copy(f.kerning, kerning)
	return f
}

// Path returns the descriptor path the font was loaded from.
func (f *Font) Path() string { return f.path }

// Atlas returns the path of the atlas image, resolved against the descriptor.
func (f *Font) Atlas() string { return f.atlas }

// CommonHeight returns the distance between two lines, in pixels.
func (f *Font) CommonHeight() float64 { return f.commonHeight }

// Base returns the distance from the top of a line to the baseline.
func (f *Font) Base() float64 { return f.base }

// Padding returns the padding insets of the atlas glyphs.
func (f *Font) Padding() Padding { return f.padding }

// Len returns the number of glyphs in the font.
func (f *Font) Len() int { return len(f.glyphs) }

// KerningLen returns the number of kerning pairs in the font.
func (f *Font) KerningLen() int { return len(f.kerning) }

// Glyph returns the metrics for r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// HasGlyph reports whether the font defines r.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Kerning returns the kerning adjustment between first and second.
// Pairs without an entry have no adjustment.
func (f *Font) Kerning(first, second rune) float64 {
	return f.kerning[KerningPair{first, second}]
}

// Runes returns the defined characters in ascending order.
func (f *Font) Runes() []rune {
	return slices.Sorted(maps.Keys(f.glyphs))
}

// Metrics returns the font metrics in 26.6 fixed point.
// XHeight and CapHeight are taken from the 'x' and 'H' glyphs when present.
func (f *Font) Metrics() font.Metrics {
	m := font.Metrics{
		Height:  toFixed(f.commonHeight),
		Ascent:  toFixed(f.base),
		Descent: toFixed(f.commonHeight - f.base),
	}
	if g, ok := f.glyphs['x']; ok {
		m.XHeight = toFixed(g.Rect.Height)
	}
	if g, ok := f.glyphs['H']; ok {
		m.CapHeight = toFixed(g.Rect.Height)
	}
	return m
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
