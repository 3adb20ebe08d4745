package layout

import (
	"fmt"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Alignment specifies horizontal alignment of lines within the content width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignJustify is accepted but lays out like AlignLeft.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// ParseAlignment parses a case-insensitive alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("layout: unknown alignment %q", s)
}

// Align shifts the items of every line of r according to a.
//
// Right alignment moves each line so its trailing edge touches r.Width.
// Center alignment centers the span between the leading and trailing edge.
// Unwrapped single-line results are left as they are.
func Align(r *Result, a Alignment, wrapped bool) {
	if a == AlignLeft || a == AlignJustify {
		return
	}
	if len(r.Lines) < 2 && !wrapped {
		return
	}

	for _, line := range r.Lines {
		if line.Empty() {
			continue
		}

		var offset float64
		switch a {
		case AlignRight:
			offset = r.Width - line.Right
		case AlignCenter:
			offset = (r.Width-line.Width())/2 - line.Left
		}
		if offset == 0 {
			continue
		}

		for i := line.Start; i < line.End; i++ {
			r.Items[i].X += offset
		}
	}

	r.updateEdges()
}
