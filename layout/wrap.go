package layout

import "github.com/gogpu/bmtext/emoji"

// span is a word in the source text. gap reports whether a space follows.
type span struct {
	start, end int
	gap        bool
}

// splitWords splits text[start:end] at spaces. Every space is one gap, so
// consecutive spaces produce empty words. With breakWords > 0, words are
// cut every breakWords visual units; the pieces carry no gap between them.
func splitWords(text []rune, start, end int, table emoji.Table, breakWords int) []span {
	var words []span
	wordStart := start
	for i := start; i <= end; i++ {
		if i < end && text[i] != ' ' {
			continue
		}
		words = appendWord(words, text[:i], wordStart, table, breakWords)
		if i < end {
			words[len(words)-1].gap = true
		}
		wordStart = i + 1
	}
	return words
}

func appendWord(words []span, text []rune, start int, table emoji.Table, breakWords int) []span {
	end := len(text)
	if breakWords <= 0 {
		return append(words, span{start: start, end: end})
	}

	pieceStart := start
	units := 0
	for i := start; i < end; {
		if units == breakWords {
			words = append(words, span{start: pieceStart, end: i})
			pieceStart = i
			units = 0
		}
		i = emoji.Classify(text, i, table).End()
		units++
	}
	return append(words, span{start: pieceStart, end: end})
}

// layoutWrapped places words greedily. A word that does not fit moves to
// the next line unless the current line is still empty.
func (p *placer) layoutWrapped() {
	scale := p.cfg.Scale
	if scale == 0 {
		scale = 1
	}
	maxWidth := p.cfg.WrapWidth / scale
	spaceWidth := p.spaceWidth()

	line := 0
	start := 0
	for i := 0; i <= len(p.text); i++ {
		if i < len(p.text) && p.text[i] != '\n' {
			continue
		}

		lineFirst := len(p.res.Items)
		var words []Word
		cursor := 0.0

		for _, w := range splitWords(p.text, start, i, p.cfg.Emoji, p.cfg.BreakWords) {
			first := len(p.res.Items)
			width := p.run(w.start, w.end, 0, line)
			placed := p.res.Items[first:]

			if len(placed) > 0 {
				if cursor+width > maxWidth && first > lineFirst {
					p.closeLine(lineFirst, first, words, line)
					line++
					lineFirst = first
					words = nil
					cursor = 0
				}

				shift := cursor - placed[0].X
				for j := range placed {
					placed[j].X += shift
				}
				cursor += width
			}

			words = append(words, Word{Start: first, End: len(p.res.Items), Width: width})
			if w.gap {
				cursor += spaceWidth
			}
		}

		p.closeLine(lineFirst, len(p.res.Items), words, line)
		line++
		start = i + 1
	}

	for _, it := range p.res.Items {
		p.res.Width = max(p.res.Width, it.Right())
	}
}

// spaceWidth is the gap between two words: the advance of ' ' plus the
// extra kerning. It is zero when no font defines a space.
func (p *placer) spaceWidth() float64 {
	res := Resolve(' ', p.cfg.Font, p.cfg.Fallbacks)
	if !res.OK {
		return 0
	}
	return p.cfg.ExtraKerning + res.Glyph.XAdvance*res.Scale
}
