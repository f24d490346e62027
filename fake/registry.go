// File: fake/registry.go
// Author: momentics <momentics@gmail.com>
//
// Recording fake of api.PointerRegistry.

package fake

import (
	"sync"

	"github.com/momentics/silo/api"
)

// Registry records every Submit for later inspection.
type Registry struct {
	mu      sync.Mutex
	arrays  map[uintptr][]api.Piece
	Submits int
}

func NewRegistry() *Registry {
	return &Registry{arrays: make(map[uintptr][]api.Piece)}
}

func (r *Registry) Submit(base uintptr, pieces []api.Piece) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]api.Piece, len(pieces))
	copy(stored, pieces)
	r.arrays[base] = stored
	r.Submits++
}

func (r *Registry) Lookup(base uintptr) ([]api.Piece, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pieces, ok := r.arrays[base]
	return pieces, ok
}

func (r *Registry) Remove(base uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.arrays, base)
}

// Len returns the number of tracked arrays.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.arrays)
}
