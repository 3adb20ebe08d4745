package layout

import (
	"unicode"

	"github.com/gogpu/bmtext/fnt"
)

// Fallback is a secondary font consulted when the primary font lacks a glyph.
type Fallback struct {
	Font *fnt.Font

	// Scale is applied to the fallback's glyphs.
	// Zero derives it from the ratio of the common heights so fallback
	// glyphs match the line height of the primary font.
	Scale float64
}

// Resolution is the outcome of looking up a code point.
type Resolution struct {
	Font  *fnt.Font
	Glyph fnt.Glyph

	// Batch is 0 for the primary font and i+1 for fallbacks[i].
	Batch int
	Scale float64
	OK    bool
}

// Resolve finds the glyph that draws r.
//
// The primary font is tried first, then the upper-case form of r in the
// primary font, then each fallback in order. The first match wins.
func Resolve(r rune, primary *fnt.Font, fallbacks []Fallback) Resolution {
	if primary == nil {
		return Resolution{}
	}

	if g, ok := primary.Glyph(r); ok {
		return Resolution{Font: primary, Glyph: g, Scale: 1, OK: true}
	}
	if upper := unicode.ToUpper(r); upper != r {
		if g, ok := primary.Glyph(upper); ok {
			return Resolution{Font: primary, Glyph: g, Scale: 1, OK: true}
		}
	}

	for i, fb := range fallbacks {
		if fb.Font == nil {
			continue
		}
		g, ok := fb.Font.Glyph(r)
		if !ok {
			continue
		}
		return Resolution{
			Font:  fb.Font,
			Glyph: g,
			Batch: i + 1,
			Scale: fallbackScale(primary, fb),
			OK:    true,
		}
	}

	return Resolution{}
}

func fallbackScale(primary *fnt.Font, fb Fallback) float64 {
	if fb.Scale != 0 {
		return fb.Scale
	}
	if h := fb.Font.CommonHeight(); h > 0 {
		return primary.CommonHeight() / h
	}
	return 1
}
