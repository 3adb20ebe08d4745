package layout

import (
	"slices"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/emoji"
	"github.com/gogpu/bmtext/fnt"
)

// BatchInline is the Batch of items produced by the Inline resolver.
const BatchInline = -1

// ItemKind distinguishes font glyphs from inline content.
type ItemKind uint8

const (
	// KindGlyph is a glyph taken from the primary font or a fallback.
	KindGlyph ItemKind = iota
	// KindInline is content returned by the Inline resolver.
	KindInline
)

// String returns the string representation of the item kind.
func (k ItemKind) String() string {
	switch k {
	case KindGlyph:
		return "Glyph"
	case KindInline:
		return "Inline"
	default:
		return unknownStr
	}
}

// Content is inline content at its natural size.
// Layout scales it uniformly so its height equals the primary font's
// common height.
type Content struct {
	Width, Height float64
	Payload       any

	// Consumed is the number of code points after the sequence that the
	// content also stands for. Layout skips them. It is clamped to the
	// current word in wrapped mode and to the line otherwise.
	Consumed int
}

// Inline resolves code point sequences no font defines, such as emoji.
type Inline interface {
	// Inline returns the content drawn for seq. rest is the text that
	// follows seq up to the end of its line and index is the position of
	// seq's first code point in the laid out text.
	Inline(seq, rest []rune, index int) (Content, bool)
}

// Config controls a layout pass.
type Config struct {
	// Font is the primary font. It defines the line height.
	Font *fnt.Font

	// Fallbacks are consulted in order when Font lacks a glyph.
	Fallbacks []Fallback

	// Emoji joins regional indicator pairs and routes digit keycaps to
	// Inline before the fonts are consulted. May be nil.
	Emoji emoji.Table

	// Inline draws what the fonts cannot. May be nil.
	Inline Inline

	// Wrap enables greedy word wrapping at WrapWidth / Scale.
	Wrap      bool
	WrapWidth float64

	// BreakWords splits words longer than this many visual units.
	// Zero disables splitting.
	BreakWords int

	ExtraKerning     float64
	ExtraLineSpacing float64

	// Scale is the label's display scale. Zero means 1.
	Scale float64

	Alignment Alignment
}

// Item is one placed glyph or inline element.
type Item struct {
	Kind ItemKind

	// Batch is 0 for the primary font, i+1 for Fallbacks[i] and
	// BatchInline for inline content.
	Batch int

	// Index is the position within the batch, or the inline counter.
	Index int

	Rune  rune
	Glyph fnt.Glyph

	// X, Y is the top-left corner; W, H the scaled size.
	X, Y  float64
	W, H  float64
	Scale float64

	// Line is the index of the line holding the item.
	Line int

	// Payload is Content.Payload for inline items.
	Payload any
}

// Right returns the trailing edge of the item.
func (it Item) Right() float64 {
	return it.X + it.W
}

// Word is a run of items with no interior break, in wrapped layouts.
type Word struct {
	Start, End int // item range
	Width      float64
}

// Line is a range of Result.Items sharing a baseline.
type Line struct {
	Start, End int // item range
	Y          float64

	// Left and Right are the leading edge of the first item and the
	// trailing edge of the last item.
	Left, Right float64

	// Words is set in wrapped layouts.
	Words []Word
}

// Empty reports whether the line holds no items.
func (l Line) Empty() bool {
	return l.Start == l.End
}

// Width returns the distance between the leading and trailing edge.
func (l Line) Width() float64 {
	return l.Right - l.Left
}

// Result is the outcome of Layout.
type Result struct {
	Lines []Line
	Items []Item

	// Width and Height are the content size in unscaled label units.
	Width, Height float64

	// Skipped counts visual units nothing could draw.
	Skipped int

	// Missing lists the skipped units in text order.
	Missing []Missing
}

// Missing is a visual unit no font or inline resolver could draw.
type Missing struct {
	// Index is the position of the unit's first code point in the text.
	Index int
	Runes []rune

	// Script is the Unicode script of the first code point. Callers can
	// use it to pick a fallback font covering the script.
	Script language.Script
}

// MissingScripts returns the distinct scripts of the missing units in
// order of first appearance.
func (r *Result) MissingScripts() []language.Script {
	var scripts []language.Script
	for _, m := range r.Missing {
		if !slices.Contains(scripts, m.Script) {
			scripts = append(scripts, m.Script)
		}
	}
	return scripts
}

// Visible returns the number of placed items.
func (r *Result) Visible() int {
	return len(r.Items)
}

func (r *Result) updateEdges() {
	for i := range r.Lines {
		line := &r.Lines[i]
		if line.Empty() {
			line.Left, line.Right = 0, 0
			continue
		}
		line.Left = r.Items[line.Start].X
		line.Right = r.Items[line.End-1].Right()
	}
}

// Layout positions text according to cfg.
// Empty text or a nil primary font yield an empty Result.
func Layout(text []rune, cfg Config) Result {
	if len(text) == 0 || cfg.Font == nil {
		return Result{}
	}

	p := newPlacer(text, &cfg)
	if cfg.Wrap {
		p.layoutWrapped()
	} else {
		p.layoutLines()
	}

	res := &p.res
	res.Height = cfg.Font.CommonHeight()*float64(len(res.Lines)) +
		cfg.ExtraLineSpacing*float64(len(res.Lines)-1)
	res.updateEdges()
	Align(res, cfg.Alignment, cfg.Wrap)
	return *res
}

type placer struct {
	cfg  *Config
	text []rune
	res  Result

	// next index per font batch
	counters []int
	inlines  int
}

func newPlacer(text []rune, cfg *Config) *placer {
	return &placer{
		cfg:      cfg,
		text:     text,
		counters: make([]int, len(cfg.Fallbacks)+1),
		res: Result{
			Items: make([]Item, 0, len(text)),
		},
	}
}

func (p *placer) lineTop(line int) float64 {
	return float64(line) * (p.cfg.Font.CommonHeight() + p.cfg.ExtraLineSpacing)
}

// run places text[start:end] at pen on line and returns the pen after
// the last unit. Items are placed with Y relative to the line top.
func (p *placer) run(start, end int, pen float64, line int) float64 {
	text := p.text[:end]
	prev := rune(-1)

	for i := start; i < end; {
		r := text[i]

		if p.cfg.Emoji != nil && emoji.IsKeycap(text[i:]) {
			u := emoji.Classify(text, i, p.cfg.Emoji)
			pen, i = p.inline(u, end, pen, line)
			prev = -1
			continue
		}

		res := Resolve(r, p.cfg.Font, p.cfg.Fallbacks)
		if !res.OK {
			u := emoji.Classify(text, i, p.cfg.Emoji)
			pen, i = p.inline(u, end, pen, line)
			prev = -1
			continue
		}

		s := res.Scale
		g := res.Glyph
		kern := res.Font.Kerning(prev, r) * s

		p.res.Items = append(p.res.Items, Item{
			Kind:  KindGlyph,
			Batch: res.Batch,
			Index: p.counters[res.Batch],
			Rune:  r,
			Glyph: g,
			X:     pen + g.XOffset*s + kern,
			Y:     g.YOffset * s,
			W:     g.Rect.Width * s,
			H:     g.Rect.Height * s,
			Scale: s,
			Line:  line,
		})
		p.counters[res.Batch]++

		pen += p.cfg.ExtraKerning + g.XAdvance*s + kern
		prev = r
		i++
	}
	return pen
}

// inline places the unit u through the Inline resolver, or counts it as
// skipped when nothing can draw it. It returns the pen and the index of
// the next code point to place, which never exceeds end.
func (p *placer) inline(u emoji.Unit, end int, pen float64, line int) (float64, int) {
	seq := u.Runes(p.text)
	next := u.End()
	if p.cfg.Inline == nil {
		p.skip(u.Start, seq)
		return pen, next
	}

	c, ok := p.cfg.Inline.Inline(seq, p.text[next:p.lineEnd(next)], u.Start)
	if !ok || c.Height <= 0 {
		p.skip(u.Start, seq)
		return pen, next
	}
	if c.Consumed > 0 {
		next = min(next+c.Consumed, end)
	}

	common := p.cfg.Font.CommonHeight()
	s := common / c.Height
	w := c.Width * s

	p.res.Items = append(p.res.Items, Item{
		Kind:    KindInline,
		Batch:   BatchInline,
		Index:   p.inlines,
		Rune:    seq[0],
		W:       w,
		H:       common,
		X:       pen,
		Scale:   s,
		Line:    line,
		Payload: c.Payload,
	})
	p.inlines++

	return pen + w + p.cfg.ExtraKerning, next
}

// lineEnd returns the index of the newline ending the line that holds i,
// or len(text) on the last line.
func (p *placer) lineEnd(i int) int {
	for ; i < len(p.text); i++ {
		if p.text[i] == '\n' {
			return i
		}
	}
	return len(p.text)
}

func (p *placer) skip(index int, seq []rune) {
	script := language.LookupScript(seq[0])
	p.res.Skipped++
	p.res.Missing = append(p.res.Missing, Missing{
		Index:  index,
		Runes:  slices.Clone(seq),
		Script: script,
	})
	bmtext.Logger().Debug("layout: no glyph",
		"rune", string(seq),
		"codepoint", int(seq[0]),
		"script", script.String())
}

// layoutLines breaks only at newlines.
func (p *placer) layoutLines() {
	line := 0
	start := 0
	for i := 0; i <= len(p.text); i++ {
		if i < len(p.text) && p.text[i] != '\n' {
			continue
		}

		first := len(p.res.Items)
		pen := p.run(start, i, 0, line)
		extent := pen
		if n := len(p.res.Items); n > first {
			last := p.res.Items[n-1]
			if last.Kind == KindGlyph && last.Glyph.Rect.Width > last.Glyph.XAdvance {
				extent += (last.Glyph.Rect.Width - last.Glyph.XAdvance) * last.Scale
			}
		}
		p.res.Width = max(p.res.Width, extent)

		p.closeLine(first, len(p.res.Items), nil, line)
		line++
		start = i + 1
	}
}

// closeLine appends the line holding items[first:end] and moves them to
// their final vertical position.
func (p *placer) closeLine(first, end int, words []Word, line int) {
	top := p.lineTop(line)
	for i := first; i < end; i++ {
		p.res.Items[i].Y += top
		p.res.Items[i].Line = line
	}
	p.res.Lines = append(p.res.Lines, Line{
		Start: first,
		End:   end,
		Y:     top,
		Words: words,
	})
}
