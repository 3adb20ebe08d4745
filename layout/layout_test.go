package layout

import (
	"math"
	"slices"
	"testing"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/bmtext/emoji"
	"github.com/gogpu/bmtext/fnt"
)

// testFont has a 30px line: 'A' advances 10, 'B' 8 with a -2 kerning
// after 'A', 'C' overhangs its advance by 2, ' ' advances 10.
func testFont() *fnt.Font {
	return fnt.NewFont("test.fnt", "test.png", 30,
		map[rune]fnt.Glyph{
			'A': {Rect: fnt.Rect{Width: 10, Height: 20}, YOffset: 4, XAdvance: 10},
			'B': {Rect: fnt.Rect{X: 10, Width: 8, Height: 20}, XOffset: 1, YOffset: 4, XAdvance: 8},
			'C': {Rect: fnt.Rect{X: 20, Width: 12, Height: 20}, XAdvance: 10},
			'W': {Rect: fnt.Rect{X: 40, Width: 40, Height: 20}, XAdvance: 40},
			'1': {Rect: fnt.Rect{X: 80, Width: 6, Height: 20}, XAdvance: 6},
			' ': {XAdvance: 10},
		},
		map[fnt.KerningPair]float64{{First: 'A', Second: 'B'}: -2},
	)
}

// kanaFont has a 40px line and one 40px glyph.
func kanaFont() *fnt.Font {
	return fnt.NewFont("kana.fnt", "kana.png", 40,
		map[rune]fnt.Glyph{
			'あ': {Rect: fnt.Rect{Width: 40, Height: 40}, XAdvance: 40},
		}, nil)
}

// stubInline draws known sequences at a fixed size.
type stubInline struct {
	content map[string]Content
	calls   []string
}

func (s *stubInline) Inline(seq, rest []rune, index int) (Content, bool) {
	s.calls = append(s.calls, string(seq))
	c, ok := s.content[string(seq)]
	return c, ok
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutEmpty(t *testing.T) {
	res := Layout(nil, Config{Font: testFont()})
	if res.Width != 0 || res.Height != 0 {
		t.Errorf("Layout(\"\") size = (%v, %v), want (0, 0)", res.Width, res.Height)
	}
	if res.Visible() != 0 || len(res.Lines) != 0 {
		t.Errorf("Layout(\"\") = %d items, %d lines, want none", res.Visible(), len(res.Lines))
	}

	res = Layout([]rune("A"), Config{})
	if res.Visible() != 0 {
		t.Errorf("Layout without font = %d items, want 0", res.Visible())
	}
}

func TestLayoutKerning(t *testing.T) {
	res := Layout([]rune("AB"), Config{Font: testFont()})

	if res.Width != 16 {
		t.Errorf("Layout(\"AB\").Width = %v, want 16", res.Width)
	}
	if res.Height != 30 {
		t.Errorf("Layout(\"AB\").Height = %v, want 30", res.Height)
	}
	if len(res.Items) != 2 {
		t.Fatalf("Layout(\"AB\") = %d items, want 2", len(res.Items))
	}

	a, b := res.Items[0], res.Items[1]
	if a.X != 0 || a.Y != 4 {
		t.Errorf("A at (%v, %v), want (0, 4)", a.X, a.Y)
	}
	// pen 10, xoffset 1, kerning -2
	if b.X != 9 {
		t.Errorf("B.X = %v, want 9", b.X)
	}
	if a.Index != 0 || b.Index != 1 || a.Batch != 0 || b.Batch != 0 {
		t.Errorf("indices = (%d/%d, %d/%d), want primary 0 and 1", a.Batch, a.Index, b.Batch, b.Index)
	}
}

func TestLayoutExtraKerning(t *testing.T) {
	res := Layout([]rune("AA"), Config{Font: testFont(), ExtraKerning: 3})
	if res.Items[1].X != 13 {
		t.Errorf("second A.X = %v, want 13", res.Items[1].X)
	}
	if res.Width != 26 {
		t.Errorf("Width = %v, want 26", res.Width)
	}
}

func TestLayoutOverhang(t *testing.T) {
	res := Layout([]rune("AC"), Config{Font: testFont()})
	// pen 20 plus the 2px the last glyph extends past its advance
	if res.Width != 22 {
		t.Errorf("Layout(\"AC\").Width = %v, want 22", res.Width)
	}
}

func TestLayoutLines(t *testing.T) {
	tests := []struct {
		text    string
		spacing float64
		lines   int
		height  float64
	}{
		{"A", 0, 1, 30},
		{"A\nA", 0, 2, 60},
		{"A\nA", 5, 2, 65},
		{"A\n", 0, 2, 60},
		{"\n\n", 2, 3, 94},
	}

	for _, tt := range tests {
		res := Layout([]rune(tt.text), Config{Font: testFont(), ExtraLineSpacing: tt.spacing})
		if len(res.Lines) != tt.lines {
			t.Errorf("Layout(%q) = %d lines, want %d", tt.text, len(res.Lines), tt.lines)
		}
		if res.Height != tt.height {
			t.Errorf("Layout(%q).Height = %v, want %v", tt.text, res.Height, tt.height)
		}
	}

	res := Layout([]rune("A\nB"), Config{Font: testFont(), ExtraLineSpacing: 5})
	if got := res.Items[1]; got.Line != 1 || got.Y != 35+4 || got.X != 1 {
		t.Errorf("second line B = {Line: %d, X: %v, Y: %v}, want {1, 1, 39}", got.Line, got.X, got.Y)
	}
}

func TestResolve(t *testing.T) {
	primary := testFont()
	fallbacks := []Fallback{{Font: kanaFont()}}

	tests := []struct {
		name  string
		r     rune
		ok    bool
		batch int
		scale float64
	}{
		{"primary", 'A', true, 0, 1},
		{"upper case", 'a', true, 0, 1},
		{"auto scaled fallback", 'あ', true, 1, 0.75},
		{"missing", 'Ж', false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.r, primary, fallbacks)
			if got.OK != tt.ok || got.Batch != tt.batch || got.Scale != tt.scale {
				t.Errorf("Resolve(%q) = {OK: %v, Batch: %d, Scale: %v}, want {%v, %d, %v}",
					tt.r, got.OK, got.Batch, got.Scale, tt.ok, tt.batch, tt.scale)
			}
		})
	}

	got := Resolve('あ', primary, []Fallback{{Font: kanaFont(), Scale: 0.5}})
	if got.Scale != 0.5 {
		t.Errorf("Resolve with explicit scale = %v, want 0.5", got.Scale)
	}
	if Resolve('A', nil, nil).OK {
		t.Error("Resolve with nil primary = OK, want not found")
	}
}

func TestLayoutFallback(t *testing.T) {
	res := Layout([]rune("Aあ"), Config{
		Font:      testFont(),
		Fallbacks: []Fallback{{Font: kanaFont()}},
	})
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}

	it := res.Items[1]
	if it.Batch != 1 || it.Index != 0 {
		t.Errorf("fallback item batch/index = %d/%d, want 1/0", it.Batch, it.Index)
	}
	if it.Scale != 0.75 || it.W != 30 || it.H != 30 {
		t.Errorf("fallback item = {Scale: %v, W: %v, H: %v}, want {0.75, 30, 30}", it.Scale, it.W, it.H)
	}
	if it.X != 10 {
		t.Errorf("fallback item X = %v, want 10", it.X)
	}
	if res.Width != 40 {
		t.Errorf("Width = %v, want 40", res.Width)
	}
}

func TestLayoutSkipped(t *testing.T) {
	res := Layout([]rune("AЖA"), Config{Font: testFont()})
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	if len(res.Items) != 2 || res.Items[1].X != 10 {
		t.Errorf("items after skip = %d, second at %v, want 2 at 10", len(res.Items), res.Items[1].X)
	}
}

func TestLayoutInline(t *testing.T) {
	grin := string(rune(0x1F600))
	inl := &stubInline{content: map[string]Content{
		grin:  {Width: 20, Height: 60, Payload: "grin"},
		"1️⃣": {Width: 60, Height: 60, Payload: "one"},
	}}
	cfg := Config{
		Font:         testFont(),
		Emoji:        emoji.Frames{},
		Inline:       inl,
		ExtraKerning: 1,
	}

	res := Layout([]rune("A"+grin+"1️⃣A"), cfg)
	if len(res.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(res.Items))
	}

	e := res.Items[1]
	if e.Kind != KindInline || e.Batch != BatchInline || e.Index != 0 || e.Payload != "grin" {
		t.Errorf("emoji item = %+v, want inline 0 with payload grin", e)
	}
	if e.X != 11 || e.W != 10 || e.H != 30 || e.Scale != 0.5 {
		t.Errorf("emoji item = {X: %v, W: %v, H: %v, Scale: %v}, want {11, 10, 30, 0.5}", e.X, e.W, e.H, e.Scale)
	}

	k := res.Items[2]
	if k.Kind != KindInline || k.Index != 1 || k.Payload != "one" {
		t.Errorf("keycap item = %+v, want inline 1 with payload one", k)
	}
	if k.X != 22 {
		t.Errorf("keycap X = %v, want 22", k.X)
	}

	if last := res.Items[3]; last.X != 53 || last.Index != 1 {
		t.Errorf("trailing A = {X: %v, Index: %d}, want {53, 1}", last.X, last.Index)
	}
}

// recordingInline draws every sequence 30x30 and records its arguments.
type recordingInline struct {
	consumed int
	rests    []string
	indices  []int
}

func (r *recordingInline) Inline(seq, rest []rune, index int) (Content, bool) {
	r.rests = append(r.rests, string(rest))
	r.indices = append(r.indices, index)
	return Content{Width: 30, Height: 30, Consumed: r.consumed}, true
}

func TestLayoutInlineArguments(t *testing.T) {
	grin := string(rune(0x1F600))

	tests := []struct {
		name        string
		text        string
		wrap        bool
		wantRests   []string
		wantIndices []int
	}{
		{"single line", "AB" + grin + "AA" + grin, false, []string{"AA" + grin, ""}, []int{2, 5}},
		{"stops at newline", "A" + grin + "B\nA" + grin + "B", false, []string{"B", "B"}, []int{1, 5}},
		{"wrapped sees whole line", "A " + grin + " W", true, []string{" W"}, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inl := &recordingInline{}
			Layout([]rune(tt.text), Config{Font: testFont(), Inline: inl, Wrap: tt.wrap, WrapWidth: 1000})
			if !slices.Equal(inl.rests, tt.wantRests) {
				t.Errorf("rest = %q, want %q", inl.rests, tt.wantRests)
			}
			if !slices.Equal(inl.indices, tt.wantIndices) {
				t.Errorf("index = %v, want %v", inl.indices, tt.wantIndices)
			}
		})
	}
}

func TestLayoutInlineConsumed(t *testing.T) {
	grin := string(rune(0x1F600))

	tests := []struct {
		name      string
		text      string
		consumed  int
		wrap      bool
		wantRunes string
	}{
		{"none", grin + "AB", 0, false, "AB"},
		{"one", grin + "AB", 1, false, "B"},
		{"clamped to line", grin + "A\nB", 5, false, "B"},
		{"clamped to word", grin + "A B", 5, true, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Layout([]rune(tt.text), Config{
				Font:      testFont(),
				Inline:    &recordingInline{consumed: tt.consumed},
				Wrap:      tt.wrap,
				WrapWidth: 1000,
			})
			var got []rune
			for _, it := range res.Items {
				if it.Kind == KindGlyph {
					got = append(got, it.Rune)
				}
			}
			if string(got) != tt.wantRunes {
				t.Errorf("glyphs = %q, want %q", string(got), tt.wantRunes)
			}
			if res.Skipped != 0 {
				t.Errorf("Skipped = %d, want 0", res.Skipped)
			}
		})
	}
}

func TestLayoutMissing(t *testing.T) {
	res := Layout([]rune("AЖあж"), Config{Font: testFont()})

	want := []Missing{
		{Index: 1, Runes: []rune("Ж"), Script: language.Cyrillic},
		{Index: 2, Runes: []rune("あ"), Script: language.Hiragana},
		{Index: 3, Runes: []rune("ж"), Script: language.Cyrillic},
	}
	if res.Skipped != len(want) || len(res.Missing) != len(want) {
		t.Fatalf("Skipped = %d, Missing = %d, want %d", res.Skipped, len(res.Missing), len(want))
	}
	for i, m := range res.Missing {
		w := want[i]
		if m.Index != w.Index || string(m.Runes) != string(w.Runes) || m.Script != w.Script {
			t.Errorf("Missing[%d] = {%d %q %v}, want {%d %q %v}", i, m.Index, string(m.Runes), m.Script, w.Index, string(w.Runes), w.Script)
		}
	}

	scripts := res.MissingScripts()
	if !slices.Equal(scripts, []language.Script{language.Cyrillic, language.Hiragana}) {
		t.Errorf("MissingScripts() = %v, want [Cyrillic Hiragana]", scripts)
	}
}

func TestLayoutKeycapWithoutTable(t *testing.T) {
	inl := &stubInline{content: map[string]Content{}}
	res := Layout([]rune("1️⃣"), Config{Font: testFont(), Inline: inl})

	// '1' comes from the font, the selector and keycap mark are not drawn
	if len(res.Items) != 1 || res.Items[0].Rune != '1' {
		t.Fatalf("items = %+v, want the digit glyph only", res.Items)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
}

func TestLayoutUnknownSequenceSkipped(t *testing.T) {
	wave := []rune{0x1F44B, 0x1F3FB}
	inl := &stubInline{content: map[string]Content{}}
	res := Layout(append([]rune("A"), wave...), Config{Font: testFont(), Inline: inl})

	if res.Skipped != 1 || len(res.Items) != 1 {
		t.Errorf("Skipped = %d, items = %d, want 1 and 1", res.Skipped, len(res.Items))
	}
	if len(inl.calls) != 1 || inl.calls[0] != string(wave) {
		t.Errorf("inline calls = %q, want one call with the whole sequence", inl.calls)
	}
}

func TestItemKind_String(t *testing.T) {
	tests := []struct {
		kind ItemKind
		want string
	}{
		{KindGlyph, "Glyph"},
		{KindInline, "Inline"},
		{ItemKind(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ItemKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func BenchmarkLayout(b *testing.B) {
	text := []rune("AB AB CAB WWW A\nBA AB CC W W W AB")
	cfg := Config{Font: testFont(), Wrap: true, WrapWidth: 120}
	b.ReportAllocs()
	for b.Loop() {
		Layout(text, cfg)
	}
}
