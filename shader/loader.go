package shader

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/glcompat"
)

// ErrInvalidSPIRV is returned when a compiler produces a byte stream that is
// not a whole number of 32-bit words.
var ErrInvalidSPIRV = errors.New("shader: SPIR-V is not word aligned")

// Module is a compiled shader stage.
type Module struct {
	// Name is the file name the module was compiled from.
	Name string

	// Stage is derived from the file extension.
	Stage gputypes.ShaderStage

	// SPIRV holds little-endian SPIR-V words.
	SPIRV []uint32
}

// CompileFunc turns WGSL source into a SPIR-V byte stream.
type CompileFunc func(source string) ([]byte, error)

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	cacheSize int
	compile   CompileFunc
}

func defaultLoaderOptions() loaderOptions {
	return loaderOptions{
		cacheSize: DefaultCacheSize,
		compile:   naga.Compile,
	}
}

// WithCacheSize sets how many compiled modules the loader keeps.
// Values <= 0 select DefaultCacheSize.
func WithCacheSize(n int) LoaderOption {
	return func(o *loaderOptions) {
		o.cacheSize = n
	}
}

// WithCompiler replaces the WGSL compiler. The default is naga.Compile.
func WithCompiler(fn CompileFunc) LoaderOption {
	return func(o *loaderOptions) {
		if fn != nil {
			o.compile = fn
		}
	}
}

// Loader compiles shader sources and memoizes the results.
// It is safe for concurrent use.
type Loader struct {
	compile CompileFunc
	cache   *moduleCache
}

// NewLoader creates a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	o := defaultLoaderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader{
		compile: o.compile,
		cache:   newModuleCache(o.cacheSize),
	}
}

// Compile returns the module for the named source. The stage comes from the
// extension of name; the cache is keyed by name and a hash of source, so
// editing a file's contents recompiles it.
func (l *Loader) Compile(name, source string) (*Module, error) {
	stage, err := StageForFile(name)
	if err != nil {
		return nil, err
	}

	key := newCacheKey(name, source)
	if m, ok := l.cache.get(key); ok {
		return m, nil
	}

	code, err := l.compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", name, err)
	}
	words, err := spirvWords(code)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", name, err)
	}

	m := &Module{Name: name, Stage: stage, SPIRV: words}
	l.cache.put(key, m)

	glcompat.Logger().Debug("shader: compiled",
		"name", name,
		"stage", stage.String(),
		"words", len(words))
	return m, nil
}

// Stats returns cache statistics.
func (l *Loader) Stats() CacheStats {
	return l.cache.stats()
}

// Reset drops every cached module.
func (l *Loader) Reset() {
	l.cache.clear()
}

// spirvWords converts a SPIR-V byte stream to little-endian words.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words, nil
}
