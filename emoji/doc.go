// Package emoji splits decoded text into visual units.
//
// A visual unit is either one code point or a multi-codepoint sequence that
// renders as a single image: an emoji with skin-tone modifiers, variation
// selectors and zero-width-joined parts, a digit keycap (digit + U+FE0F +
// U+20E3), or a pair of regional indicators forming a flag.
//
// Emoji detection uses fixed code point ranges rather than the full Unicode
// grapheme cluster algorithm. The ranges are part of the package contract:
//
//	U+1F300-1F6FF  U+2600-27BF   U+2000-23FF  U+2B50-2B55
//	U+1F900-1F9FF  U+1F700-1F7FF U+1FA00-1FAFF U+1F000-1F02F
//	U+E0020-E007F  U+1C000-1CFFF U+20E3
//
// Flags are only joined when the pair is present in the caller's Table, so
// two unrelated regional indicators stay separate units.
package emoji
