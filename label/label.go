package label

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/emoji"
	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/layout"
	"github.com/gogpu/bmtext/scene"
)

// ErrInvalidUTF8 is returned by SetText for text that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("label: invalid UTF-8 text")

// tagEmoji is the root tag of the emoji sheet batch.
const tagEmoji = -1

// CustomNodes maps a code point sequence to a constructor for the node
// drawn in its place. rest is the text after the sequence up to the end of
// its line and index is the sequence's code point position in the text.
// The constructor returns how many code points of rest the node also
// stands for; those are not laid out. A nil node leaves the sequence
// undrawn.
type CustomNodes map[string]func(rest []rune, index int) (scene.Node, int)

// fontBatch pairs a font with the batch drawing its atlas.
type fontBatch struct {
	path  string
	font  *fnt.Font
	batch *scene.Batch

	// scale of a fallback font, zero for automatic.
	scale float64
}

// emojiSheet is the optional emoji batch.
type emojiSheet struct {
	batch *scene.Batch
	table emoji.Table
}

// emojiRef is the inline payload of an emoji sprite.
type emojiRef struct {
	frame string
	index int
}

// Label lays out text and keeps a pooled sprite per placed glyph.
type Label struct {
	cache fnt.Cache
	root  *scene.Group

	text  string
	runes []rune

	primary   fontBatch
	fallbacks []fontBatch
	sheet     *emojiSheet
	custom    CustomNodes

	alignment        layout.Alignment
	wrap             bool
	wrapWidth        float64
	breakWords       int
	extraKerning     float64
	extraLineSpacing float64
	scale            float64
	cfg              config

	color       scene.Color
	opacity     uint8
	modifyRGB   bool
	emojiColors bool

	dirty       bool
	result      layout.Result
	customNodes []scene.Node
	emojiCount  int
}

// New creates a label showing text in the font at fontPath.
// It fails when the font cannot be loaded.
func New(text, fontPath string, opts ...Option) (*Label, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Label{
		cache:     cfg.cache,
		root:      scene.NewGroup(),
		alignment: cfg.alignment,
		wrap:      cfg.wrap,
		wrapWidth: cfg.wrapWidth,
		scale:     cfg.scale,
		cfg:       cfg,
		color:     scene.White,
		opacity:   255,
		dirty:     true,
	}
	l.root.SetScale(l.scale)

	f, err := l.cache.Load(fontPath)
	if err != nil {
		return nil, fmt.Errorf("label: load font %s: %w", fontPath, err)
	}
	l.primary = l.newFontBatch(fontPath, f, 0)
	l.root.AddChild(l.primary.batch, 0, 0)

	if err := l.SetText(text); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) newFontBatch(path string, f *fnt.Font, scale float64) fontBatch {
	b := scene.NewBatch(f.Atlas())
	b.SetInit(l.initGlyph)
	return fontBatch{path: path, font: f, batch: b, scale: scale}
}

// initGlyph applies the label's look to a new font sprite.
// Opacity goes last: with opacity-modifies-RGB it derives the displayed
// color from the color set before it.
func (l *Label) initGlyph(s *scene.Sprite) {
	s.SetOpacityModifyRGB(l.modifyRGB)
	s.SetColor(l.color)
	s.SetOpacity(l.opacity)
}

func (l *Label) initEmoji(s *scene.Sprite) {
	s.SetOpacityModifyRGB(l.modifyRGB)
	if l.emojiColors {
		s.SetColor(l.color)
	}
	s.SetOpacity(l.opacity)
}

// Root returns the node to attach to the host scene.
func (l *Label) Root() *scene.Group { return l.root }

// Text returns the current text, normalized when normalization is enabled.
func (l *Label) Text() string { return l.text }

// Font returns the primary font.
func (l *Label) Font() *fnt.Font { return l.primary.font }

// Fallbacks returns the fallback fonts in lookup order.
func (l *Label) Fallbacks() []*fnt.Font {
	fonts := make([]*fnt.Font, len(l.fallbacks))
	for i, fb := range l.fallbacks {
		fonts[i] = fb.font
	}
	return fonts
}

// Dirty reports whether a layout is pending.
func (l *Label) Dirty() bool { return l.dirty }

// SetText replaces the text. Identical text is a no-op.
func (l *Label) SetText(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if l.cfg.normalize {
		text = l.cfg.form.String(text)
	}
	if text == l.text {
		return nil
	}

	l.text = text
	l.runes = []rune(text)
	l.dirty = true
	return nil
}

// SetFont replaces the primary font.
func (l *Label) SetFont(path string) error {
	if path == l.primary.path {
		return nil
	}
	f, err := l.cache.Load(path)
	if err != nil {
		return fmt.Errorf("label: load font %s: %w", path, err)
	}

	l.root.RemoveChild(l.primary.batch)
	l.primary = l.newFontBatch(path, f, 0)
	l.root.AddChild(l.primary.batch, 0, 0)
	l.dirty = true
	return nil
}

// AddFont appends a fallback font. A scale of zero matches the fallback's
// line height to the primary font. Fonts already in use are ignored.
func (l *Label) AddFont(path string, scale float64) error {
	if path == l.primary.path {
		return nil
	}
	for _, fb := range l.fallbacks {
		if fb.path == path {
			return nil
		}
	}

	f, err := l.cache.Load(path)
	if err != nil {
		return fmt.Errorf("label: load font %s: %w", path, err)
	}

	fb := l.newFontBatch(path, f, scale)
	l.fallbacks = append(l.fallbacks, fb)
	l.root.AddChild(fb.batch, 0, len(l.fallbacks))
	l.dirty = true
	return nil
}

// AddFonts appends several fallbacks with automatic scale.
// Fonts that fail to load are reported together and skipped.
func (l *Label) AddFonts(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := l.AddFont(p, 0); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetWrapEnabled toggles word wrapping.
func (l *Label) SetWrapEnabled(enabled bool) {
	if l.wrap == enabled {
		return
	}
	l.wrap = enabled
	l.dirty = true
}

// SetWrapWidth sets the width lines are wrapped at, in scaled units.
func (l *Label) SetWrapWidth(width float64) {
	if l.wrapWidth == width {
		return
	}
	l.wrapWidth = width
	l.dirty = true
}

// SetWrap sets the wrap flag and width together.
func (l *Label) SetWrap(enabled bool, width float64) {
	l.SetWrapEnabled(enabled)
	l.SetWrapWidth(width)
}

// SetAlignment sets the horizontal alignment of lines.
func (l *Label) SetAlignment(a layout.Alignment) {
	if l.alignment == a {
		return
	}
	l.alignment = a
	l.dirty = true
}

// SetExtraKerning adds spacing after every glyph.
func (l *Label) SetExtraKerning(v float64) {
	if l.extraKerning == v {
		return
	}
	l.extraKerning = v
	l.dirty = true
}

// SetExtraLineSpacing adds spacing between lines.
func (l *Label) SetExtraLineSpacing(v float64) {
	if l.extraLineSpacing == v {
		return
	}
	l.extraLineSpacing = v
	l.dirty = true
}

// SetBreakWords splits words longer than n visual units when wrapping.
// Zero disables splitting.
func (l *Label) SetBreakWords(n int) {
	if l.breakWords == n {
		return
	}
	l.breakWords = n
	l.dirty = true
}

// SetScale sets the display scale. Wrapped labels relayout since the
// wrap width is measured in scaled units.
func (l *Label) SetScale(s float64) {
	if l.scale == s {
		return
	}
	l.scale = s
	l.root.SetScale(s)
	if l.wrap {
		l.dirty = true
	}
}

// Scale returns the display scale.
func (l *Label) Scale() float64 { return l.scale }

// EnableEmojis draws sequences listed in table with frames of the sheet.
// Any previous sheet is replaced.
func (l *Label) EnableEmojis(sheet string, frames scene.Frames, table emoji.Table) {
	if l.sheet != nil {
		l.root.RemoveChild(l.sheet.batch)
	}

	b := scene.NewSheetBatch(sheet, frames)
	b.SetInit(l.initEmoji)
	l.sheet = &emojiSheet{batch: b, table: table}
	l.root.AddChild(b, 0, tagEmoji)
	l.dirty = true
}

// EnableCustomNodes draws sequences listed in nodes with custom nodes.
// Passing nil disables them.
func (l *Label) EnableCustomNodes(nodes CustomNodes) {
	l.custom = nodes
	l.dirty = true
}

// ReloadFonts fetches every font again from the cache. Call it after the
// cache was purged so the label picks up reloaded definitions.
func (l *Label) ReloadFonts() error {
	f, err := l.cache.Load(l.primary.path)
	if err != nil {
		return fmt.Errorf("label: reload font %s: %w", l.primary.path, err)
	}
	l.primary = l.reloadBatch(l.primary, f, 0)

	var errs []error
	for i, fb := range l.fallbacks {
		f, err := l.cache.Load(fb.path)
		if err != nil {
			errs = append(errs, fmt.Errorf("label: reload font %s: %w", fb.path, err))
			continue
		}
		l.fallbacks[i] = l.reloadBatch(fb, f, i+1)
	}

	bmtext.Logger().Debug("label: fonts reloaded", "primary", l.primary.path, "fallbacks", len(l.fallbacks))
	l.dirty = true
	return errors.Join(errs...)
}

// reloadBatch swaps the font of fb, keeping the sprite pool while the atlas
// stays the same.
func (l *Label) reloadBatch(fb fontBatch, f *fnt.Font, tag int) fontBatch {
	if f.Atlas() == fb.batch.Texture() {
		fb.font = f
		return fb
	}
	l.root.RemoveChild(fb.batch)
	nb := l.newFontBatch(fb.path, f, fb.scale)
	l.root.AddChild(nb.batch, 0, tag)
	return nb
}
