package label

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/layout"
)

// Option configures a Label.
type Option func(*config)

// config holds the initial state of a Label.
type config struct {
	cache     fnt.Cache
	alignment layout.Alignment
	scale     float64
	wrap      bool
	wrapWidth float64
	normalize bool
	form      norm.Form
}

// defaultConfig returns the default label configuration.
func defaultConfig() config {
	return config{
		cache:     fnt.Default(),
		alignment: layout.AlignLeft,
		scale:     1,
	}
}

// WithCache loads fonts through c instead of the process-wide registry.
func WithCache(c fnt.Cache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithAlignment sets the initial alignment.
func WithAlignment(a layout.Alignment) Option {
	return func(cfg *config) {
		cfg.alignment = a
	}
}

// WithScale sets the initial display scale.
func WithScale(s float64) Option {
	return func(cfg *config) {
		cfg.scale = s
	}
}

// WithWrap enables word wrapping at width.
func WithWrap(width float64) Option {
	return func(cfg *config) {
		cfg.wrap = true
		cfg.wrapWidth = width
	}
}

// WithNormalization normalizes text to form before layout, so composed
// and decomposed input select the same glyphs.
func WithNormalization(form norm.Form) Option {
	return func(cfg *config) {
		cfg.normalize = true
		cfg.form = form
	}
}
