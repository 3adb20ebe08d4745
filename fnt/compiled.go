package fnt

import (
	"cmp"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// CompiledExt is the file extension of compiled fonts.
const CompiledExt = ".fntb"

// compiledFont is the CBOR form of a Font.
// The atlas path is stored relative to the descriptor's directory when possible.
type compiledFont struct {
	Atlas        string          `cbor:"1,keyasint"`
	CommonHeight float64         `cbor:"2,keyasint"`
	Base         float64         `cbor:"3,keyasint"`
	Padding      [4]int          `cbor:"4,keyasint"`
	Glyphs       []compiledGlyph `cbor:"5,keyasint"`
	Kerning      []compiledKern  `cbor:"6,keyasint,omitempty"`
}

type compiledGlyph struct {
	_        struct{} `cbor:",toarray"`
	ID       rune
	X, Y     float64
	W, H     float64
	XOffset  float64
	YOffset  float64
	XAdvance float64
}

type compiledKern struct {
	_      struct{} `cbor:",toarray"`
	First  rune
	Second rune
	Amount float64
}

var (
	codecOnce sync.Once
	encMode   cbor.EncMode
	decMode   cbor.DecMode
	codecErr  error
)

func initCodec() {
	encMode, codecErr = cbor.CoreDetEncOptions().EncMode()
	if codecErr != nil {
		return
	}
	decMode, codecErr = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
}

// Encode writes f to w in compiled form.
// The output is deterministic: equal fonts encode to equal bytes.
func Encode(w io.Writer, f *Font) error {
	codecOnce.Do(initCodec)
	if codecErr != nil {
		return codecErr
	}

	c := compiledFont{
		Atlas:        relativeTo(f.path, f.atlas),
		CommonHeight: f.commonHeight,
		Base:         f.base,
		Padding:      [4]int{f.padding.Left, f.padding.Top, f.padding.Right, f.padding.Bottom},
		Glyphs:       make([]compiledGlyph, 0, len(f.glyphs)),
	}
	for _, r := range f.Runes() {
		g := f.glyphs[r]
		c.Glyphs = append(c.Glyphs, compiledGlyph{
			ID: r,
			X:  g.Rect.X, Y: g.Rect.Y,
			W: g.Rect.Width, H: g.Rect.Height,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
			XAdvance: g.XAdvance,
		})
	}
	for pair, amount := range f.kerning {
		c.Kerning = append(c.Kerning, compiledKern{First: pair.First, Second: pair.Second, Amount: amount})
	}
	slices.SortFunc(c.Kerning, func(a, b compiledKern) int {
		return cmp.Or(cmp.Compare(a.First, b.First), cmp.Compare(a.Second, b.Second))
	})

	data, err := encMode.Marshal(c)
	if err != nil {
		return fmt.Errorf("fnt: encode %s: %w", f.path, err)
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a compiled font from r.
// name is the compiled file's own path; the atlas is resolved relative to it.
func Decode(r io.Reader, name string) (*Font, error) {
	codecOnce.Do(initCodec)
	if codecErr != nil {
		return nil, codecErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	var c compiledFont
	if err := decMode.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	if c.Atlas == "" {
		return nil, &ParseError{Path: name, Err: ErrMissingPage}
	}

	f := &Font{
		path:         name,
		atlas:        resolveRelative(name, c.Atlas),
		commonHeight: c.CommonHeight,
		base:         c.Base,
		padding:      Padding{Left: c.Padding[0], Top: c.Padding[1], Right: c.Padding[2], Bottom: c.Padding[3]},
		glyphs:       make(map[rune]Glyph, len(c.Glyphs)),
		kerning:      make(map[KerningPair]float64, len(c.Kerning)),
	}
	for _, g := range c.Glyphs {
		f.glyphs[g.ID] = Glyph{
			Rect:     Rect{X: g.X, Y: g.Y, Width: g.W, Height: g.H},
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
			XAdvance: g.XAdvance,
		}
	}
	for _, k := range c.Kerning {
		f.kerning[KerningPair{k.First, k.Second}] = k.Amount
	}
	return f, nil
}

// DecodeFile reads the compiled font name from fsys.
func DecodeFile(fsys fs.FS, name string) (*Font, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	defer file.Close()

	return Decode(file, name)
}

// relativeTo returns target relative to the directory of base when target lies inside it.
func relativeTo(base, target string) string {
	dir := path.Dir(base)
	if dir == "." {
		return target
	}
	if rel, ok := strings.CutPrefix(target, dir+"/"); ok {
		return rel
	}
	return target
}
