package fnt

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/internal/cache"
)

// Cache maps descriptor paths to parsed fonts.
//
// Load parses a path at most once and returns the same *Font on every hit.
// A failed load is not remembered, so a later Load retries. PurgeAll drops
// every entry; fonts obtained before a purge stay valid as values but are
// no longer shared with later loads. Len reports the cached fonts.
type Cache interface {
	Load(path string) (*Font, error)
	PurgeAll()
	Len() int
}

// Stats is a snapshot of registry statistics.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Loads   uint64
	Entries int
}

// Registry is the standard Cache implementation.
//
// Registry is safe for concurrent use.
type Registry struct {
	config registryConfig
	fonts  *cache.Cache[string, *Font]
}

var _ Cache = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	config := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Registry{
		config: config,
		fonts:  cache.New[string, *Font](),
	}
}

// Load returns the font for path, parsing it on first use.
// Paths ending in CompiledExt are decoded as compiled fonts.
func (r *Registry) Load(path string) (*Font, error) {
	return r.fonts.GetOrLoad(path, func() (*Font, error) {
		var (
			f   *Font
			err error
		)
		if strings.HasSuffix(path, CompiledExt) {
			f, err = DecodeFile(r.config.fsys, path)
		} else {
			f, err = ParseFile(r.config.fsys, path, r.config.parseOpts...)
		}
		if err != nil {
			bmtext.Logger().Error("fnt: font load failed", "path", path, "err", err)
			return nil, err
		}
		bmtext.Logger().Info("fnt: font loaded", "path", path, "glyphs", f.Len(), "kerning", f.KerningLen())
		return f, nil
	})
}

// PurgeAll removes every cached font.
func (r *Registry) PurgeAll() {
	n := r.fonts.Clear()
	bmtext.Logger().Info("fnt: font cache purged", "fonts", n)
}

// Len returns the number of cached fonts.
func (r *Registry) Len() int {
	return r.fonts.Len()
}

// Stats returns a snapshot of the registry statistics.
func (r *Registry) Stats() Stats {
	st := r.fonts.Stats()
	return Stats{Hits: st.Hits, Misses: st.Misses, Loads: st.Loads, Entries: st.Entries}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Load loads path through the process-wide registry.
func Load(path string) (*Font, error) {
	return defaultRegistry.Load(path)
}

// PurgeAll clears the process-wide registry.
// Hosts call it when resources are reloading.
func PurgeAll() {
	defaultRegistry.PurgeAll()
}

// osFS opens files from the operating system.
// Unlike os.DirFS it accepts absolute and parent-relative paths, which is
// what descriptor paths coming from a host usually are.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.FromSlash(name))
}
