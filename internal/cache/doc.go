// Package cache provides the generic keyed store behind the font registry
// and the compositor's atlas image cache.
//
// Entries are never evicted one by one: a store grows lazily through
// GetOrLoad and is emptied as a whole with Clear. This matches resources
// that are reloaded together (fonts and atlases after a resource reload).
//
//	c := cache.New[string, *fnt.Font]()
//	f, err := c.GetOrLoad("font.fnt", func() (*fnt.Font, error) {
//	    return fnt.ParseFile(fsys, "font.fnt")
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
