package fnt

import (
	"errors"
	"fmt"
)

// Sentinel errors for descriptor parsing.
var (
	// ErrOutOfBounds is returned when the atlas is larger than the maximum texture size.
	ErrOutOfBounds = errors.New("fnt: atlas exceeds max texture size")

	// ErrPageCount is returned when a descriptor declares more or less than one page.
	ErrPageCount = errors.New("fnt: font must have exactly one page")

	// ErrMissingPage is returned when no atlas image file is named.
	ErrMissingPage = errors.New("fnt: missing page file")

	// ErrKerningOrder is returned for kerning entries not in first/second/amount order.
	ErrKerningOrder = errors.New("fnt: malformed kerning entry")
)

// ParseError reports where a descriptor failed to load.
type ParseError struct {
	Path string
	Line int    // 1-based; 0 when the file could not be read
	Tag  string // descriptor tag of the failing line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("fnt: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("fnt: %s:%d: %s: %v", e.Path, e.Line, e.Tag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
