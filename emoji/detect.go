package emoji

// IsEmoji reports whether r starts or extends an emoji sequence.
func IsEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F6FF) || // Pictographs, emoticons, transport
		(r >= 0x2600 && r <= 0x27BF) || // Miscellaneous symbols, dingbats
		(r >= 0x2000 && r <= 0x23FF) || // General punctuation through technical
		(r >= 0x2B50 && r <= 0x2B55) || // Stars and circles
		(r >= 0x1F900 && r <= 0x1F9FF) || // Supplemental symbols and pictographs
		(r >= 0x1F700 && r <= 0x1F7FF) || // Alchemical symbols
		(r >= 0x1FA00 && r <= 0x1FAFF) || // Symbols and pictographs extended-A
		(r >= 0x1F000 && r <= 0x1F02F) || // Mahjong, domino
		(r >= 0xE0020 && r <= 0xE007F) || // Tags
		(r >= 0x1C000 && r <= 0x1CFFF) || // Private emoji range
		r == 0x20E3
}

// IsRegionalIndicator reports whether r is a regional indicator letter (U+1F1E6-1F1FF).
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsSkinToneModifier reports whether r is a Fitzpatrick modifier (U+1F3FB-1F3FF).
func IsSkinToneModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsZWJ reports whether r is the zero-width joiner.
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsVariationSelector reports whether r is in U+FE00-FE0F.
func IsVariationSelector(r rune) bool {
	return r >= 0xFE00 && r <= 0xFE0F
}

// IsKeycapMark reports whether r is the combining enclosing keycap.
func IsKeycapMark(r rune) bool {
	return r == 0x20E3
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsKeycap reports whether text starts with digit + variation selector + keycap mark.
func IsKeycap(text []rune) bool {
	return len(text) > 2 && isDigit(text[0]) && IsVariationSelector(text[1]) && IsKeycapMark(text[2])
}

// IsPlain reports whether the unit at text[i] is a single plain code point
// without running the sequence detection.
func IsPlain(text []rune, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := text[i]
	return !IsRegionalIndicator(r) && !IsEmoji(r) && !IsKeycap(text[i:])
}
