// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"io"
	"slices"
	"sync"
)

// Builder produces the content of one fixture.
type Builder interface {
	// HeaderSize is the number of fixed bytes every output carries.
	// Sizes below it cannot be built.
	HeaderSize() int

	// Build writes exactly size bytes to w, drawing randomness from rnd.
	Build(w io.Writer, rnd *Rand, size int) error
}

// Registry maps extensions (e.g., "wav", "txt") to builders.
// Extensions without an entry use the fallback builder.
type Registry struct {
	builders map[string]Builder
	fallback Builder

	mtx *sync.RWMutex
}

// NewRegistry creates an empty registry. fallback may be nil, in which case
// unknown extensions fail with ErrNoBuilder.
func NewRegistry(fallback Builder) *Registry {
	return &Registry{
		builders: make(map[string]Builder),
		fallback: fallback,
		mtx:      &sync.RWMutex{},
	}
}

// Register sets the builder for ext, replacing any previous one.
// ext is normalized, so "WAV" and ".wav" share an entry.
func (r *Registry) Register(ext string, b Builder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.builders[NormalizeExtension(ext)] = b
}

// Get returns the builder registered for ext, without the fallback.
func (r *Registry) Get(ext string) (Builder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	b, ok := r.builders[NormalizeExtension(ext)]
	return b, ok
}

// Lookup returns the builder for ext, or the fallback.
func (r *Registry) Lookup(ext string) (Builder, bool) {
	if b, ok := r.Get(ext); ok {
		return b, true
	}
	return r.fallback, r.fallback != nil
}

// Extensions lists registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	exts := make([]string, 0, len(r.builders))
	for ext := range r.builders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}
