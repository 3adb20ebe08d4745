package label

import (
	"errors"
	"io/fs"
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/bmtext/emoji"
	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/internal/fonttest"
	"github.com/gogpu/bmtext/layout"
	"github.com/gogpu/bmtext/scene"
)

const grin = "\U0001F600"

func newRegistry() *fnt.Registry {
	return fnt.NewRegistry(fnt.WithFS(fonttest.FS()))
}

func newLabel(t *testing.T, text string, opts ...Option) *Label {
	t.Helper()
	opts = append([]Option{WithCache(newRegistry())}, opts...)
	l, err := New(text, "main.fnt", opts...)
	if err != nil {
		t.Fatalf("New(%q) error = %v", text, err)
	}
	return l
}

func batchByTag(t *testing.T, l *Label, tag int) *scene.Batch {
	t.Helper()
	b, ok := l.Root().ChildByTag(tag).(*scene.Batch)
	if !ok {
		t.Fatalf("no batch with tag %d", tag)
	}
	return b
}

func TestNewMissingFont(t *testing.T) {
	l, err := New("A", "missing.fnt", WithCache(newRegistry()))
	if l != nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("New(missing) = (%v, %v), want (nil, fs.ErrNotExist)", l, err)
	}

	_, err = New("A", "broken.fnt", WithCache(newRegistry()))
	if !errors.Is(err, fnt.ErrPageCount) {
		t.Errorf("New(broken) error = %v, want ErrPageCount", err)
	}
}

func TestEmptyText(t *testing.T) {
	l := newLabel(t, "")
	if w, h := l.ContentSize(); w != 0 || h != 0 {
		t.Errorf("ContentSize() = (%v, %v), want (0, 0)", w, h)
	}
	if n := l.VisibleCount(); n != 0 {
		t.Errorf("VisibleCount() = %d, want 0", n)
	}

	l.SetText("AB")
	l.SetText("")
	if w, h := l.ContentSize(); w != 0 || h != 0 || l.VisibleCount() != 0 {
		t.Errorf("after clearing: size (%v, %v), %d visible, want nothing", w, h, l.VisibleCount())
	}
}

func TestContentSize(t *testing.T) {
	l := newLabel(t, "AB\nA")
	w, h := l.ContentSize()
	if w != 16 || h != 60 {
		t.Errorf("ContentSize() = (%v, %v), want (16, 60)", w, h)
	}
	if n := len(l.Lines()); n != 2 {
		t.Errorf("len(Lines()) = %d, want 2", n)
	}

	l.SetScale(2)
	if w, h := l.ScaledContentSize(); w != 32 || h != 120 {
		t.Errorf("ScaledContentSize() = (%v, %v), want (32, 120)", w, h)
	}
}

func TestSetTextIdempotent(t *testing.T) {
	l := newLabel(t, "AB")
	l.Update()
	main := batchByTag(t, l, 0)
	first := main.Sprite(0)

	if err := l.SetText("AB"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	if l.Dirty() {
		t.Error("SetText(same text) marked the label dirty")
	}

	l.SetText("BA")
	l.Update()
	if main.Sprite(0) != first {
		t.Error("SetText replaced pooled sprite 0, want reuse")
	}
	if got := first.Rect().X; got != 10 {
		t.Errorf("reused sprite rect X = %v, want 10 (glyph B)", got)
	}
	if main.Len() != 2 {
		t.Errorf("pool size = %d, want 2", main.Len())
	}
}

func TestPoolHidesInsteadOfFreeing(t *testing.T) {
	l := newLabel(t, "AAAA")
	main := batchByTag(t, l, 0)

	if n := l.VisibleCount(); n != 4 {
		t.Fatalf("VisibleCount() = %d, want 4", n)
	}

	l.SetText("A")
	if n := l.VisibleCount(); n != 1 || main.Len() != 4 {
		t.Errorf("after shrink: %d visible of %d pooled, want 1 of 4", n, main.Len())
	}

	l.SetText("AAA")
	if n := l.VisibleCount(); n != 3 || main.Len() != 4 {
		t.Errorf("after regrow: %d visible of %d pooled, want 3 of 4", n, main.Len())
	}
}

func TestSpritePlacement(t *testing.T) {
	l := newLabel(t, "AB", WithScale(2))
	l.Update()

	b := batchByTag(t, l, 0).Sprite(1)
	if x, y := b.Position(); x != 9 || y != 4 {
		t.Errorf("B at (%v, %v), want (9, 4)", x, y)
	}
	if l.Root().Scale() != 2 {
		t.Errorf("root scale = %v, want 2", l.Root().Scale())
	}
}

func TestSettersMarkDirty(t *testing.T) {
	tests := []struct {
		name string
		same func(*Label)
		diff func(*Label)
	}{
		{"text", func(l *Label) { l.SetText("A") }, func(l *Label) { l.SetText("B") }},
		{"font", func(l *Label) { l.SetFont("main.fnt") }, func(l *Label) { l.SetFont("alt.fnt") }},
		{"wrap enabled", func(l *Label) { l.SetWrapEnabled(false) }, func(l *Label) { l.SetWrapEnabled(true) }},
		{"wrap width", func(l *Label) { l.SetWrapWidth(0) }, func(l *Label) { l.SetWrapWidth(50) }},
		{"wrap", func(l *Label) { l.SetWrap(false, 0) }, func(l *Label) { l.SetWrap(true, 0) }},
		{"alignment", func(l *Label) { l.SetAlignment(layout.AlignLeft) }, func(l *Label) { l.SetAlignment(layout.AlignRight) }},
		{"kerning", func(l *Label) { l.SetExtraKerning(0) }, func(l *Label) { l.SetExtraKerning(1) }},
		{"line spacing", func(l *Label) { l.SetExtraLineSpacing(0) }, func(l *Label) { l.SetExtraLineSpacing(2) }},
		{"break words", func(l *Label) { l.SetBreakWords(0) }, func(l *Label) { l.SetBreakWords(3) }},
		{"fallback", func(l *Label) { l.AddFont("main.fnt", 0) }, func(l *Label) { l.AddFont("kana.fnt", 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLabel(t, "A")
			l.Update()

			tt.same(l)
			if l.Dirty() {
				t.Error("unchanged value marked the label dirty")
			}
			tt.diff(l)
			if !l.Dirty() {
				t.Error("changed value did not mark the label dirty")
			}
			l.Update()
			if l.Dirty() {
				t.Error("Update() left the label dirty")
			}
		})
	}
}

func TestScaleOnlyRelayoutsWrapped(t *testing.T) {
	l := newLabel(t, "W W")
	l.Update()
	l.SetScale(0.5)
	if l.Dirty() {
		t.Error("SetScale on unwrapped label marked it dirty")
	}

	// 25 / 0.5 = 50 fits one word per line
	l.SetWrap(true, 25)
	if n := len(l.Lines()); n != 2 {
		t.Fatalf("wrapped at 25: %d lines, want 2", n)
	}
	l.SetScale(0.25)
	if !l.Dirty() {
		t.Error("SetScale on wrapped label did not mark it dirty")
	}
	// 25 / 0.25 = 100 leaves room for both words
	if n := len(l.Lines()); n != 1 {
		t.Errorf("wrapped at scale 0.25: %d lines, want 1", n)
	}
}

func TestInvalidUTF8(t *testing.T) {
	l := newLabel(t, "AB")
	if err := l.SetText("A\xff"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("SetText(invalid) error = %v, want ErrInvalidUTF8", err)
	}
	if l.Text() != "AB" {
		t.Errorf("Text() = %q after rejected update, want %q", l.Text(), "AB")
	}
}

func TestFallbackFonts(t *testing.T) {
	l := newLabel(t, "Aあ")
	if err := l.AddFont("kana.fnt", 0); err != nil {
		t.Fatalf("AddFont() error = %v", err)
	}
	children := l.Root().Len()

	l.AddFont("kana.fnt", 0)
	l.AddFont("main.fnt", 0)
	if l.Root().Len() != children || len(l.Fallbacks()) != 1 {
		t.Errorf("duplicate fonts were added: %d children, %d fallbacks", l.Root().Len(), len(l.Fallbacks()))
	}

	l.Update()
	kana := batchByTag(t, l, 1).Sprite(0)
	if kana == nil || !kana.Visible() {
		t.Fatal("fallback sprite missing")
	}
	if kana.Scale() != 0.75 {
		t.Errorf("fallback sprite scale = %v, want 0.75", kana.Scale())
	}
	if x, _ := kana.Position(); x != 10 {
		t.Errorf("fallback sprite X = %v, want 10", x)
	}

	err := l.AddFonts("alt.fnt", "missing.fnt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("AddFonts() error = %v, want fs.ErrNotExist", err)
	}
	if len(l.Fallbacks()) != 2 {
		t.Errorf("len(Fallbacks()) = %d, want 2", len(l.Fallbacks()))
	}
}

func TestEmoji(t *testing.T) {
	l := newLabel(t, "A"+grin+"A")
	l.EnableEmojis("emoji.png",
		scene.Frames{"grin": {X: 0, Y: 0, W: 60, H: 60}},
		emoji.Frames{grin: "grin"})
	l.Update()

	sheet := batchByTag(t, l, tagEmoji)
	s := sheet.Sprite(0)
	if s == nil || !s.Visible() || s.Frame() != "grin" {
		t.Fatalf("emoji sprite = %+v, want visible grin", s)
	}
	if s.Scale() != 0.5 {
		t.Errorf("emoji scale = %v, want 0.5", s.Scale())
	}
	if x, y := s.Position(); x != 10 || y != 0 {
		t.Errorf("emoji at (%v, %v), want (10, 0)", x, y)
	}
	if x, _ := batchByTag(t, l, 0).Sprite(1).Position(); x != 40 {
		t.Errorf("glyph after emoji X = %v, want 40", x)
	}

	red := scene.Color{R: 255}
	l.SetColor(red)
	if s.Color() != scene.White {
		t.Errorf("emoji color = %+v, want white", s.Color())
	}
	if got := batchByTag(t, l, 0).Sprite(0).Color(); got != red {
		t.Errorf("glyph color = %+v, want red", got)
	}

	l.EnableEmojiColors(true)
	if s.Color() != red {
		t.Errorf("emoji color with emoji colors = %+v, want red", s.Color())
	}
}

func TestEmojiMissingFrame(t *testing.T) {
	l := newLabel(t, "A"+grin)
	l.EnableEmojis("emoji.png", scene.Frames{}, emoji.Frames{grin: "nope"})

	if n := l.VisibleCount(); n != 1 {
		t.Errorf("VisibleCount() = %d, want 1", n)
	}
	if w, _ := l.ContentSize(); w != 10 {
		t.Errorf("width = %v, want 10", w)
	}
}

func TestCustomNodeArguments(t *testing.T) {
	var (
		rests   []string
		indices []int
	)
	l := newLabel(t, "AB"+grin+"AA"+grin)
	l.EnableCustomNodes(CustomNodes{
		grin: func(rest []rune, index int) (scene.Node, int) {
			rests = append(rests, string(rest))
			indices = append(indices, index)
			n := &scene.Base{}
			n.SetContentSize(30, 30)
			return n, 0
		},
	})
	l.Update()

	if len(rests) != 2 || rests[0] != "AA"+grin || rests[1] != "" {
		t.Errorf("rest = %q, want [%q \"\"]", rests, "AA"+grin)
	}
	if len(indices) != 2 || indices[0] != 2 || indices[1] != 5 {
		t.Errorf("index = %v, want [2 5]", indices)
	}
}

func TestCustomNodeConsumesText(t *testing.T) {
	l := newLabel(t, "A{B}A")
	l.EnableCustomNodes(CustomNodes{
		"{": func(rest []rune, index int) (scene.Node, int) {
			n := &scene.Base{}
			n.SetContentSize(30, 30)
			for i, r := range rest {
				if r == '}' {
					return n, i + 1
				}
			}
			return n, 0
		},
	})

	if n := l.VisibleCount(); n != 3 {
		t.Errorf("VisibleCount() = %d, want 3", n)
	}
	r := l.Result()
	if r.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", r.Skipped)
	}
	for _, it := range r.Items {
		if it.Kind == layout.KindGlyph && it.Rune == 'B' {
			t.Error("consumed 'B' was laid out")
		}
	}
	if w, _ := l.ContentSize(); w != 50 {
		t.Errorf("width = %v, want 50", w)
	}
}

func TestCustomNodesDiscarded(t *testing.T) {
	var created []scene.Node
	l := newLabel(t, "A"+grin)
	l.EnableCustomNodes(CustomNodes{
		grin: func(rest []rune, index int) (scene.Node, int) {
			n := &scene.Base{}
			n.SetContentSize(15, 15)
			created = append(created, n)
			return n, 0
		},
	})
	l.Update()

	if len(created) != 1 || !l.Root().Contains(created[0]) {
		t.Fatalf("custom node not attached: created %d", len(created))
	}
	if got := created[0].Scale(); got != 2 {
		t.Errorf("custom node scale = %v, want 2", got)
	}

	l.SetText("B" + grin)
	l.Update()
	if len(created) != 2 {
		t.Fatalf("created %d nodes, want 2", len(created))
	}
	if l.Root().Contains(created[0]) {
		t.Error("stale custom node still attached")
	}
	if !l.Root().Contains(created[1]) {
		t.Error("new custom node not attached")
	}
	if n := l.VisibleCount(); n != 2 {
		t.Errorf("VisibleCount() = %d, want 2", n)
	}
}

func TestColorThenOpacity(t *testing.T) {
	l := newLabel(t, "A")
	l.SetOpacityModifyRGB(true)
	l.SetOpacity(51)
	l.SetColor(scene.Color{R: 255, B: 100})

	// a sprite created now goes through the init hook
	l.SetText("AA")
	l.Update()

	want := scene.Color{R: 51, B: 20}
	for i, s := range batchByTag(t, l, 0).Sprites() {
		if got := s.DisplayedColor(); got != want {
			t.Errorf("sprite %d displayed color = %+v, want %+v", i, got, want)
		}
		if s.Opacity() != 51 {
			t.Errorf("sprite %d opacity = %d, want 51", i, s.Opacity())
		}
	}
}

func TestLimitWidth(t *testing.T) {
	tests := []struct {
		width, def, min float64
		want            float64
	}{
		{20, 1, 0.1, 0.5},
		{100, 1, 0, 1},
		{4, 1, 0.25, 0.25},
		{0, 0.8, 0, 0.8},
	}

	for _, tt := range tests {
		l := newLabel(t, "AAAA") // 40 wide
		l.LimitWidth(tt.width, tt.def, tt.min)
		if got := l.Scale(); got != tt.want {
			t.Errorf("LimitWidth(%v, %v, %v) scale = %v, want %v", tt.width, tt.def, tt.min, got, tt.want)
		}
	}
}

func TestReloadFonts(t *testing.T) {
	reg := newRegistry()
	l, err := New("AB", "main.fnt", WithCache(reg))
	if err != nil {
		t.Fatal(err)
	}
	l.Update()
	before := l.Font()
	batch := batchByTag(t, l, 0)

	reg.PurgeAll()
	if err := l.ReloadFonts(); err != nil {
		t.Fatalf("ReloadFonts() error = %v", err)
	}
	if l.Font() == before {
		t.Error("ReloadFonts() kept the purged font")
	}
	if batchByTag(t, l, 0) != batch {
		t.Error("ReloadFonts() replaced the batch of an unchanged atlas")
	}
	if n := l.VisibleCount(); n != 2 {
		t.Errorf("VisibleCount() after reload = %d, want 2", n)
	}
}

func TestNormalization(t *testing.T) {
	const decomposed, composed = "e\u0301", "\u00e9"

	l := newLabel(t, decomposed, WithNormalization(norm.NFC))
	if l.Text() != composed {
		t.Errorf("Text() = %q, want %q", l.Text(), composed)
	}

	l.Update()
	l.SetText(composed)
	l.SetText(decomposed)
	if l.Dirty() {
		t.Error("both forms of the same text marked the label dirty")
	}
}

func TestOptions(t *testing.T) {
	l := newLabel(t, "W W W", WithWrap(100), WithAlignment(layout.AlignRight))
	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	if lines[1].Left != 50 {
		t.Errorf("right aligned second line starts at %v, want 50", lines[1].Left)
	}
}
