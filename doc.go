// Package bmtext lays out and renders text with bitmap (BMFont) fonts.
//
// # Overview
//
// bmtext turns a string into positioned glyph sprites taken from a
// pre-rendered font atlas. It covers descriptor parsing, a process-wide
// font cache, font fallback, kerning, word wrapping, alignment, emoji and
// custom inline content, and CPU compositing into images.
//
// # Quick Start
//
//	import "github.com/gogpu/bmtext/label"
//
//	l, err := label.New("Hello, world", "fonts/main.fnt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	l.SetWrap(true, 200)
//	l.SetAlignment(layout.AlignCenter)
//	w, h := l.ContentSize()
//
// # Packages
//
//   - fnt: descriptor parser, compiled font codec and the font registry
//   - emoji: code point classification and visual unit segmentation
//   - layout: placement of glyphs and inline content into lines
//   - scene: sprites, sprite batches and groups a host attaches
//   - label: the text label tying fonts, layout and scene together
//   - render: compositing of a scene into an image
//
// # Font Lifecycle
//
// Fonts are parsed once per path and shared by every label. When the host
// reloads its resources it calls fnt.PurgeAll and then ReloadFonts on
// each live label.
//
// # Logging
//
// bmtext is silent by default. See [SetLogger] to route diagnostics to a
// [log/slog] handler.
package bmtext
