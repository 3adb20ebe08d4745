// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/internal/blend"
	"github.com/gogpu/bmtext/internal/cache"
	"github.com/gogpu/bmtext/scene"
)

// ErrNilTarget is returned when drawing into a nil image.
var ErrNilTarget = errors.New("render: nil target")

// Drawer is implemented by custom nodes that draw themselves.
// bounds is the node's scaled rectangle in target pixels.
type Drawer interface {
	Draw(dst draw.Image, bounds image.Rectangle)
}

// Compositor draws scene graphs into images.
// A Compositor is safe for concurrent use; the atlas cache is shared.
type Compositor struct {
	cfg     config
	atlases *cache.Cache[string, *image.NRGBA]
}

// NewCompositor creates a compositor.
func NewCompositor(opts ...Option) *Compositor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Compositor{
		cfg:     cfg,
		atlases: cache.New[string, *image.NRGBA](),
	}
}

// Atlas returns the decoded atlas at path, loading it on first use.
func (c *Compositor) Atlas(path string) (*image.NRGBA, error) {
	return c.atlases.GetOrLoad(path, func() (*image.NRGBA, error) {
		img, err := c.decode(path)
		if err != nil {
			bmtext.Logger().Warn("render: atlas not loaded", "path", path, "error", err)
			return nil, fmt.Errorf("render: atlas %s: %w", path, err)
		}
		return imaging.Clone(img), nil
	})
}

func (c *Compositor) decode(path string) (image.Image, error) {
	if c.cfg.fsys == nil {
		return imaging.Open(path)
	}
	f, err := c.cfg.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imaging.Decode(f)
}

// Purge drops every cached atlas and returns how many there were.
func (c *Compositor) Purge() int {
	return c.atlases.Clear()
}

// transform maps node space to target pixels.
type transform struct {
	x, y, scale float64
}

func (t transform) child(n scene.Node) transform {
	x, y := n.Position()
	return transform{
		x:     t.x + x*t.scale,
		y:     t.y + y*t.scale,
		scale: t.scale * n.Scale(),
	}
}

// rect returns the target rectangle of a node of size w x h drawn with t.
func (t transform) rect(w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(t.x)),
		int(math.Round(t.y)),
		int(math.Round(t.x+w*t.scale)),
		int(math.Round(t.y+h*t.scale)),
	)
}

// Draw composites root into dst with the root's origin at at.
// Hidden nodes and their subtrees are skipped.
func (c *Compositor) Draw(dst draw.Image, root *scene.Group, at image.Point) error {
	if dst == nil {
		return ErrNilTarget
	}
	if root == nil {
		return nil
	}
	base := transform{x: float64(at.X), y: float64(at.Y), scale: 1}
	return c.drawNode(dst, root, base)
}

func (c *Compositor) drawNode(dst draw.Image, n scene.Node, parent transform) error {
	if !n.Visible() {
		return nil
	}
	t := parent.child(n)

	switch v := n.(type) {
	case *scene.Group:
		var errs []error
		for _, child := range v.Children() {
			if err := c.drawNode(dst, child, t); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)

	case *scene.Batch:
		return c.drawBatch(dst, v, t)

	case Drawer:
		w, h := n.ContentSize()
		v.Draw(dst, t.rect(w, h))
	}
	return nil
}

func (c *Compositor) drawBatch(dst draw.Image, b *scene.Batch, t transform) error {
	if b.VisibleCount() == 0 {
		return nil
	}
	atlas, err := c.Atlas(b.Texture())
	if err != nil {
		return err
	}
	for _, s := range b.Sprites() {
		if s.Visible() {
			c.drawSprite(dst, atlas, s, t.child(s))
		}
	}
	return nil
}

func (c *Compositor) drawSprite(dst draw.Image, atlas *image.NRGBA, s *scene.Sprite, t transform) {
	w, h := s.ContentSize()
	dr := t.rect(w, h)
	clipped := dr.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}

	r := s.Rect()
	src := imaging.Crop(atlas, image.Rect(
		int(r.X), int(r.Y),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	))
	if src.Bounds().Empty() {
		return
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	c.cfg.interp.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	tint := s.DisplayedColor()
	opacity := s.Opacity()
	premultiplied := s.OpacityModifyRGB()
	fn := blend.FuncFor(c.cfg.mode)

	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			i := scaled.PixOffset(x-dr.Min.X, y-dr.Min.Y)
			px := scaled.Pix[i : i+4 : i+4]
			sr, sg, sb, sa := blend.Tint(px[0], px[1], px[2], px[3], tint.R, tint.G, tint.B, opacity, premultiplied)
			if sa == 0 && c.cfg.mode == blend.ModeSourceOver {
				continue
			}

			d := color.RGBAModel.Convert(dst.At(x, y)).(color.RGBA)
			or, og, ob, oa := fn(sr, sg, sb, sa, d.R, d.G, d.B, d.A)
			dst.Set(x, y, color.RGBA{R: or, G: og, B: ob, A: oa})
		}
	}
}
