// Package label renders text with bitmap fonts into a scene graph.
//
// A Label owns a scene.Group holding one sprite batch per font plus an
// optional emoji sheet batch and any custom nodes. Setters record the new
// state and mark the label dirty; the layout runs once on the next Update
// or size query, then sprites are taken from the batch pools by index.
//
//	l, err := label.New("Hello", "fonts/bigFont.fnt", label.WithWrap(200))
//	if err != nil {
//		return err
//	}
//	l.AddFonts("fonts/cyrillic.fnt", "fonts/japanese.fnt")
//	l.Update()
//	host.Attach(l.Root())
//
// A Label is not safe for concurrent use.
package label
