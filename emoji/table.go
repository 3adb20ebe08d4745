package emoji

// Table maps a code point sequence to the name of the frame that draws it.
type Table interface {
	Frame(seq string) (name string, ok bool)
}

// Frames is a Table backed by a map.
// Keys are the UTF-8 encoding of the sequence, e.g. "\U0001F1FA\U0001F1F8".
type Frames map[string]string

// Frame implements Table.
func (f Frames) Frame(seq string) (string, bool) {
	name, ok := f[seq]
	return name, ok
}

// Has reports whether t defines seq. A nil table defines nothing.
func Has(t Table, seq []rune) bool {
	if t == nil {
		return false
	}
	_, ok := t.Frame(string(seq))
	return ok
}
