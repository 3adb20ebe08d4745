// Package blend implements the pixel operators of the software compositor.
//
// Colors are 8-bit premultiplied RGBA unless stated otherwise.
package blend

// Mode is a Porter-Duff compositing operator.
type Mode uint8

const (
	// ModeSourceOver draws the source over the destination: S + D*(1-Sa).
	ModeSourceOver Mode = iota
	// ModeSource replaces the destination with the source.
	ModeSource
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeSource:
		return "Source"
	default:
		return "Unknown"
	}
}

// Func combines a source and destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the operator for mode, SourceOver for unknown modes.
func FuncFor(mode Mode) Func {
	if mode == ModeSource {
		return source
	}
	return sourceOver
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// Tint colors a straight-alpha texel and returns it premultiplied.
//
// The texel's color is multiplied by tint and its alpha by opacity. When
// tintPremultiplied is set the tint already carries the opacity, as sprites
// with opacity-modifies-RGB do, and is not scaled again.
func Tint(r, g, b, a, tr, tg, tb, opacity byte, tintPremultiplied bool) (byte, byte, byte, byte) {
	alpha := mulDiv255(a, opacity)
	colorAlpha := alpha
	if tintPremultiplied {
		colorAlpha = a
	}
	return mulDiv255(mulDiv255(r, tr), colorAlpha),
		mulDiv255(mulDiv255(g, tg), colorAlpha),
		mulDiv255(mulDiv255(b, tb), colorAlpha),
		alpha
}
