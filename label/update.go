package label

import (
	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/layout"
	"github.com/gogpu/bmtext/scene"
)

// Update runs the pending layout, if any, and places the sprites.
func (l *Label) Update() {
	if !l.dirty {
		return
	}
	l.dirty = false

	l.hideAll()
	l.emojiCount = 0

	l.result = layout.Layout(l.runes, l.layoutConfig())
	for _, it := range l.result.Items {
		l.place(it)
	}

	bmtext.Logger().Debug("label: layout",
		"runes", len(l.runes),
		"lines", len(l.result.Lines),
		"items", len(l.result.Items),
		"skipped", l.result.Skipped)
}

func (l *Label) layoutConfig() layout.Config {
	cfg := layout.Config{
		Font:             l.primary.font,
		Fallbacks:        make([]layout.Fallback, len(l.fallbacks)),
		Wrap:             l.wrap,
		WrapWidth:        l.wrapWidth,
		BreakWords:       l.breakWords,
		ExtraKerning:     l.extraKerning,
		ExtraLineSpacing: l.extraLineSpacing,
		Scale:            l.scale,
		Alignment:        l.alignment,
	}
	for i, fb := range l.fallbacks {
		cfg.Fallbacks[i] = layout.Fallback{Font: fb.font, Scale: fb.scale}
	}
	if l.sheet != nil {
		cfg.Emoji = l.sheet.table
	}
	if l.sheet != nil || l.custom != nil {
		cfg.Inline = l
	}
	return cfg
}

// hideAll hides every pooled sprite and discards the custom nodes.
func (l *Label) hideAll() {
	l.primary.batch.HideAll()
	for _, fb := range l.fallbacks {
		fb.batch.HideAll()
	}
	if l.sheet != nil {
		l.sheet.batch.HideAll()
	}

	for _, n := range l.customNodes {
		l.root.RemoveChild(n)
	}
	l.customNodes = nil
}

func (l *Label) batch(index int) *scene.Batch {
	if index == 0 {
		return l.primary.batch
	}
	return l.fallbacks[index-1].batch
}

func (l *Label) place(it layout.Item) {
	var n scene.Node

	switch it.Kind {
	case layout.KindGlyph:
		r := it.Glyph.Rect
		n = l.batch(it.Batch).GetOrCreate(it.Index, scene.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height})

	case layout.KindInline:
		switch p := it.Payload.(type) {
		case emojiRef:
			s, ok := l.sheet.batch.GetOrCreateFrame(p.index, p.frame)
			if !ok {
				return
			}
			n = s
		case scene.Node:
			l.root.AddChild(p, 0, len(l.customNodes))
			l.customNodes = append(l.customNodes, p)
			n = p
		default:
			return
		}
	}

	n.SetScale(it.Scale)
	n.SetPosition(it.X, it.Y)
}

// Inline implements layout.Inline. Emoji listed in the sheet's table take
// precedence over custom nodes.
func (l *Label) Inline(seq, rest []rune, index int) (layout.Content, bool) {
	key := string(seq)

	if l.sheet != nil && l.sheet.table != nil {
		if name, ok := l.sheet.table.Frame(key); ok {
			rect, ok := l.sheet.batch.Frames().Lookup(name)
			if !ok || rect.H <= 0 {
				bmtext.Logger().Warn("label: emoji frame not found", "frame", name, "sheet", l.sheet.batch.Texture())
				return layout.Content{}, false
			}
			ref := emojiRef{frame: name, index: l.emojiCount}
			l.emojiCount++
			return layout.Content{Width: rect.W, Height: rect.H, Payload: ref}, true
		}
	}

	if fn, ok := l.custom[key]; ok && fn != nil {
		n, consumed := fn(rest, index)
		if n == nil {
			return layout.Content{}, false
		}
		w, h := n.ContentSize()
		if h <= 0 {
			return layout.Content{}, false
		}
		return layout.Content{Width: w, Height: h, Payload: n, Consumed: consumed}, true
	}

	return layout.Content{}, false
}

// ContentSize returns the unscaled size of the laid out text.
func (l *Label) ContentSize() (w, h float64) {
	l.Update()
	return l.result.Width, l.result.Height
}

// ScaledContentSize returns ContentSize multiplied by the display scale.
func (l *Label) ScaledContentSize() (w, h float64) {
	w, h = l.ContentSize()
	return w * l.scale, h * l.scale
}

// Lines returns the laid out lines.
func (l *Label) Lines() []layout.Line {
	l.Update()
	return l.result.Lines
}

// Result returns the last layout.
func (l *Label) Result() layout.Result {
	l.Update()
	return l.result
}

// VisibleCount returns the number of visible sprites and custom nodes.
func (l *Label) VisibleCount() int {
	l.Update()
	n := l.primary.batch.VisibleCount() + len(l.customNodes)
	for _, fb := range l.fallbacks {
		n += fb.batch.VisibleCount()
	}
	if l.sheet != nil {
		n += l.sheet.batch.VisibleCount()
	}
	return n
}

// LimitWidth scales the label down so its content fits width.
// The scale never exceeds defaultScale nor drops below minScale; either
// bound is ignored when zero.
func (l *Label) LimitWidth(width, defaultScale, minScale float64) {
	w, _ := l.ContentSize()

	scale := defaultScale
	if w > width && width > 0 {
		scale = width / w * defaultScale
	}
	if defaultScale != 0 && defaultScale <= scale {
		scale = defaultScale
	}
	if minScale != 0 && minScale >= scale {
		scale = minScale
	}
	l.SetScale(scale)
}
