package emoji

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Kind classifies a visual unit.
type Kind uint8

const (
	// KindPlain is a single ordinary code point.
	KindPlain Kind = iota

	// KindEmoji is an emoji code point with its modifiers, selectors and joined parts.
	KindEmoji

	// KindKeycap is digit + variation selector + combining keycap.
	KindKeycap

	// KindFlag is a regional indicator, paired when the table defines the pair.
	KindFlag
)

var kindNames = [...]string{
	KindPlain:  "Plain",
	KindEmoji:  "Emoji",
	KindKeycap: "Keycap",
	KindFlag:   "Flag",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return unknownStr
}

// Unit is one visual unit of a text run.
type Unit struct {
	Start int // index of the first code point
	Len   int // number of code points consumed
	Kind  Kind
}

// End returns the index after the last code point of the unit.
func (u Unit) End() int {
	return u.Start + u.Len
}

// Runes returns the code points of u within text.
func (u Unit) Runes(text []rune) []rune {
	return text[u.Start:u.End()]
}

// Classify returns the visual unit starting at text[i].
//
// Regional indicator pairs are joined only when table defines the pair.
// A digit keycap consumes exactly three code points. Any other emoji is
// extended over following skin-tone modifiers and variation selectors, and
// over zero-width joiners together with the emoji that follows them.
// Everything else is a single plain code point.
//
// Classify returns a zero-length unit when i is out of range.
func Classify(text []rune, i int, table Table) Unit {
	if i < 0 || i >= len(text) {
		return Unit{Start: i}
	}
	if IsPlain(text, i) {
		return Unit{Start: i, Len: 1, Kind: KindPlain}
	}

	r := text[i]
	switch {
	case IsRegionalIndicator(r):
		if i+1 < len(text) && IsRegionalIndicator(text[i+1]) && Has(table, text[i:i+2]) {
			return Unit{Start: i, Len: 2, Kind: KindFlag}
		}
		return Unit{Start: i, Len: 1, Kind: KindFlag}

	case IsKeycap(text[i:]):
		return Unit{Start: i, Len: 3, Kind: KindKeycap}
	}

	j := i
	for j+1 < len(text) {
		next := text[j+1]
		switch {
		case IsSkinToneModifier(next) || IsVariationSelector(next):
			j++
		case IsZWJ(next):
			j++
			if j+1 < len(text) && IsEmoji(text[j+1]) {
				j++
			}
		default:
			return Unit{Start: i, Len: j - i + 1, Kind: KindEmoji}
		}
	}
	return Unit{Start: i, Len: j - i + 1, Kind: KindEmoji}
}

// Units segments the whole text into visual units.
func Units(text []rune, table Table) []Unit {
	if len(text) == 0 {
		return nil
	}
	units := make([]Unit, 0, len(text))
	for i := 0; i < len(text); {
		u := Classify(text, i, table)
		units = append(units, u)
		i = u.End()
	}
	return units
}
