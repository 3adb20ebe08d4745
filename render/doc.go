// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a label's scene graph into an image on the CPU.
//
// The Compositor walks a scene.Group in child order. Sprite batches are
// drawn from their atlas image: each visible sprite's source rectangle is
// cropped, scaled to its on-screen size with golang.org/x/image/draw,
// tinted with the sprite's displayed color and opacity and composited
// source-over. Custom nodes draw themselves by implementing Drawer.
//
// Atlas images are decoded once and cached by path.
//
// Example:
//
//	l.Update()
//	w, h := l.ScaledContentSize()
//	target := render.NewPixmapTarget(int(math.Ceil(w)), int(math.Ceil(h)))
//	c := render.NewCompositor()
//	if err := c.Draw(target.Image(), l.Root(), image.Point{}); err != nil {
//		return err
//	}
//	err := target.Save("out.png")
package render
