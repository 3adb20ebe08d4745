package label

import "github.com/gogpu/bmtext/scene"

// Color returns the text color.
func (l *Label) Color() scene.Color { return l.color }

// Opacity returns the opacity, 255 being opaque.
func (l *Label) Opacity() uint8 { return l.opacity }

// SetColor tints every glyph. Emoji keep their colors unless
// EnableEmojiColors was called.
func (l *Label) SetColor(c scene.Color) {
	if l.color == c {
		return
	}
	l.color = c
	l.updateColors()
}

// SetOpacity sets the opacity of every sprite.
func (l *Label) SetOpacity(o uint8) {
	if l.opacity == o {
		return
	}
	l.opacity = o
	l.eachSprite(func(s *scene.Sprite, _ bool) {
		s.SetOpacity(o)
	})
}

// SetOpacityModifyRGB makes the opacity premultiply sprite colors.
func (l *Label) SetOpacityModifyRGB(v bool) {
	if l.modifyRGB == v {
		return
	}
	l.modifyRGB = v
	l.eachSprite(func(s *scene.Sprite, _ bool) {
		s.SetOpacityModifyRGB(v)
	})
}

// EnableEmojiColors applies the text color to emoji as well.
func (l *Label) EnableEmojiColors(v bool) {
	if l.emojiColors == v {
		return
	}
	l.emojiColors = v
	l.updateColors()
}

func (l *Label) updateColors() {
	l.eachSprite(func(s *scene.Sprite, isEmoji bool) {
		if isEmoji && !l.emojiColors {
			s.SetColor(scene.White)
			return
		}
		s.SetColor(l.color)
	})
}

// eachSprite visits every pooled sprite, hidden ones included, so reused
// sprites come back with the current look.
func (l *Label) eachSprite(fn func(s *scene.Sprite, isEmoji bool)) {
	glyph := func(s *scene.Sprite) { fn(s, false) }
	l.primary.batch.Each(glyph)
	for _, fb := range l.fallbacks {
		fb.batch.Each(glyph)
	}
	if l.sheet != nil {
		l.sheet.batch.Each(func(s *scene.Sprite) { fn(s, true) })
	}
}
