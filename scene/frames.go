package scene

// Frames maps frame names to rectangles on a sprite sheet.
type Frames map[string]Rect

// Lookup returns the rectangle of the named frame.
func (f Frames) Lookup(name string) (Rect, bool) {
	r, ok := f[name]
	return r, ok
}
