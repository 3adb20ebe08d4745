package scene

import "github.com/gogpu/bmtext"

// Batch is an arena of sprites sharing one texture.
//
// Sprites are addressed by index. A sprite, once created, lives as long
// as the batch; HideAll hides every sprite and later calls to GetOrCreate
// make them visible again.
type Batch struct {
	Base

	texture string
	frames  Frames
	sprites []*Sprite
	init    func(*Sprite)
}

// NewBatch creates an empty batch drawing from texture.
func NewBatch(texture string) *Batch {
	return &Batch{texture: texture}
}

// NewSheetBatch creates a batch whose sprites show named frames of a
// sprite sheet.
func NewSheetBatch(texture string, frames Frames) *Batch {
	return &Batch{texture: texture, frames: frames}
}

// Texture returns the path of the texture.
func (b *Batch) Texture() string { return b.texture }

// Frames returns the frame set of a sheet batch, or nil.
func (b *Batch) Frames() Frames { return b.frames }

// SetInit installs a hook called once for every newly created sprite.
func (b *Batch) SetInit(fn func(*Sprite)) { b.init = fn }

// Len returns the number of pooled sprites, visible or not.
func (b *Batch) Len() int { return len(b.sprites) }

// VisibleCount returns the number of visible sprites.
func (b *Batch) VisibleCount() int {
	n := 0
	for _, s := range b.sprites {
		if s.Visible() {
			n++
		}
	}
	return n
}

// Sprite returns the sprite at index, or nil.
func (b *Batch) Sprite(index int) *Sprite {
	if index < 0 || index >= len(b.sprites) {
		return nil
	}
	return b.sprites[index]
}

// Sprites returns the pooled sprites in index order.
// The slice is shared with the batch and must not be modified.
func (b *Batch) Sprites() []*Sprite { return b.sprites }

// GetOrCreate returns the sprite at index showing rect.
// An existing sprite is made visible and its rectangle replaced in place.
// Otherwise a sprite is created with z order and tag equal to index and
// passed to the init hook. Skipped indices are filled with hidden sprites.
func (b *Batch) GetOrCreate(index int, rect Rect) *Sprite {
	if index < len(b.sprites) {
		s := b.sprites[index]
		s.SetVisible(true)
		s.SetRect(rect)
		return s
	}

	for len(b.sprites) < index {
		gap := b.create(len(b.sprites), Rect{})
		gap.SetVisible(false)
	}
	s := b.create(index, rect)

	bmtext.Logger().Debug("scene: batch grown", "texture", b.texture, "sprites", len(b.sprites))
	return s
}

// GetOrCreateFrame is GetOrCreate for sheet batches, taking the rectangle
// from the named frame. It returns false when the frame is unknown.
func (b *Batch) GetOrCreateFrame(index int, name string) (*Sprite, bool) {
	rect, ok := b.frames.Lookup(name)
	if !ok {
		return nil, false
	}
	s := b.GetOrCreate(index, rect)
	s.frame = name
	return s, true
}

func (b *Batch) create(index int, rect Rect) *Sprite {
	s := newSprite(rect, index)
	b.sprites = append(b.sprites, s)
	if b.init != nil {
		b.init(s)
	}
	return s
}

// HideAll hides every pooled sprite.
func (b *Batch) HideAll() {
	for _, s := range b.sprites {
		s.SetVisible(false)
	}
}

// Each calls fn for every pooled sprite.
func (b *Batch) Each(fn func(*Sprite)) {
	for _, s := range b.sprites {
		fn(s)
	}
}
