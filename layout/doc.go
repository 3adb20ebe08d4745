// Package layout positions glyphs of bitmap fonts.
//
// Layout is a pure function of the text and a Config: it resolves every
// code point against the primary font and its fallbacks, asks an Inline
// resolver for anything the fonts cannot draw, applies kerning, wraps
// words greedily when wrapping is enabled and aligns lines. The result is
// a flat list of placed items that callers map onto sprites.
//
// Coordinates are in unscaled label space: X grows to the right, Y grows
// downwards, and every item is positioned by its top-left corner. Line k
// starts at Y = k * (CommonHeight + ExtraLineSpacing).
package layout
