package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/label"
	"github.com/gogpu/bmtext/layout"
)

// objectReplacement stands for inline content in line previews.
const objectReplacement = '\uFFFC'

func printLines(l *label.Label) {
	r := l.Result()
	pterm.Printf("%d line(s), content %.1f x %.1f, %d skipped\n", len(r.Lines), r.Width, r.Height, r.Skipped)
	if scripts := r.MissingScripts(); len(scripts) > 0 {
		names := make([]string, len(scripts))
		for i, sc := range scripts {
			names[i] = sc.String()
		}
		pterm.Info.Printf("no glyphs for scripts: %s\n", strings.Join(names, ", "))
	}
	if len(r.Lines) == 0 {
		return
	}
	data := [][]string{
		{"Line", "Text", "Y", "Left", "Right", "Width", "Words"},
	}
	for i, line := range r.Lines {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			lineText(r.Items, line),
			formatFloat(line.Y),
			formatFloat(line.Left),
			formatFloat(line.Right),
			formatFloat(line.Width()),
			fmt.Sprintf("%d", len(line.Words)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// lineText previews the characters placed on line.
func lineText(items []layout.Item, line layout.Line) string {
	var sb strings.Builder
	for _, it := range items[line.Start:line.End] {
		if it.Kind == layout.KindInline {
			sb.WriteRune(objectReplacement)
			continue
		}
		sb.WriteRune(it.Rune)
	}
	return sb.String()
}

func printInfo(l *label.Label, fonts fnt.Cache) {
	data := [][]string{
		{"Font", "Atlas", "Height", "Glyphs", "Kerning"},
	}
	data = append(data, fontRow(l.Font()))
	for _, f := range l.Fallbacks() {
		data = append(data, fontRow(f))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	w, h := l.ScaledContentSize()
	pterm.Printf("scale %s, content %s x %s, %d visible\n",
		formatFloat(l.Scale()), formatFloat(w), formatFloat(h), l.VisibleCount())
	if reg, ok := fonts.(*fnt.Registry); ok {
		st := reg.Stats()
		pterm.Printf("font cache: %d entries, %d hits, %d misses, %d loads\n",
			st.Entries, st.Hits, st.Misses, st.Loads)
	}
}

func fontRow(f *fnt.Font) []string {
	return []string{
		f.Path(),
		f.Atlas(),
		formatFloat(f.CommonHeight()),
		fmt.Sprintf("%d", f.Len()),
		fmt.Sprintf("%d", f.KerningLen()),
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
