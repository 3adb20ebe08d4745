// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"io/fs"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/bmtext/internal/blend"
)

// Option configures a Compositor.
type Option func(*config)

// config holds Compositor settings.
type config struct {
	fsys   fs.FS
	interp xdraw.Interpolator
	mode   blend.Mode
}

// defaultConfig returns the default compositor configuration.
func defaultConfig() config {
	return config{
		interp: xdraw.NearestNeighbor,
		mode:   blend.ModeSourceOver,
	}
}

// WithFS reads atlas images from fsys instead of the operating system.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithInterpolator sets the filter used to scale sprites.
// The default, nearest neighbour, keeps pixel fonts crisp.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(c *config) {
		if i != nil {
			c.interp = i
		}
	}
}

// WithReplace makes sprites replace the destination instead of blending.
func WithReplace() Option {
	return func(c *config) {
		c.mode = blend.ModeSource
	}
}
