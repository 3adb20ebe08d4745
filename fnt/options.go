package fnt

import "io/fs"

// DefaultMaxTextureSize is the largest atlas edge accepted by default.
const DefaultMaxTextureSize = 4096

// ParseOption configures descriptor parsing.
type ParseOption func(*parseConfig)

// parseConfig holds configuration for Parse.
type parseConfig struct {
	maxTextureSize int
	atlasOptional  bool
}

// defaultParseConfig returns the default parse configuration.
func defaultParseConfig() parseConfig {
	return parseConfig{
		maxTextureSize: DefaultMaxTextureSize,
	}
}

// WithMaxTextureSize sets the largest accepted atlas width or height.
// Descriptors declaring a larger atlas fail with ErrOutOfBounds.
func WithMaxTextureSize(n int) ParseOption {
	return func(c *parseConfig) {
		c.maxTextureSize = n
	}
}

// WithAtlasOptional accepts descriptors that have no page line at all.
// A page line without a file is still an error.
func WithAtlasOptional() ParseOption {
	return func(c *parseConfig) {
		c.atlasOptional = true
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// registryConfig holds configuration for NewRegistry.
type registryConfig struct {
	fsys      fs.FS
	parseOpts []ParseOption
}

// defaultRegistryConfig returns the default registry configuration.
func defaultRegistryConfig() registryConfig {
	return registryConfig{
		fsys: osFS{},
	}
}

// WithFS sets the file system descriptors are read from.
// The default reads from the operating system and accepts absolute paths.
func WithFS(fsys fs.FS) RegistryOption {
	return func(c *registryConfig) {
		c.fsys = fsys
	}
}

// WithParseOptions sets the options used for every descriptor the registry parses.
func WithParseOptions(opts ...ParseOption) RegistryOption {
	return func(c *registryConfig) {
		c.parseOpts = append(c.parseOpts, opts...)
	}
}
