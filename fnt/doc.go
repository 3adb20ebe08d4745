// Package fnt parses and caches bitmap font descriptors.
//
// A descriptor is the line-oriented text format written by BMFont-style
// atlas generators: each line starts with a tag (info, common, page, char,
// kerning) followed by key=value tokens. One descriptor describes exactly
// one pre-rasterized atlas image.
//
// # Loading
//
// Fonts are normally obtained through a Registry, which parses each path at
// most once and keeps the result until PurgeAll:
//
//	f, err := fnt.Load("fonts/font_default.fnt")
//	if err != nil {
//	    return err
//	}
//	g, ok := f.Glyph('A')
//
// Tests and tools that need isolation create their own registry:
//
//	reg := fnt.NewRegistry(fnt.WithFS(fstest.MapFS{...}))
//
// # Compiled fonts
//
// Encode and Decode store a parsed font as CBOR. Paths ending in ".fntb"
// are decoded instead of parsed when loaded through a Registry.
package fnt
