// File: registry/registry.go
// Author: momentics <momentics@gmail.com>
//
// Sharded pointer-tracking registry. Maps the base address of every live
// multi-node array to its committed piece layout so the free path can
// release each piece. Sharding keeps concurrent allocators from contending
// on a single lock.

package registry

import (
	"sync"

	"github.com/momentics/silo/api"
)

// DefaultShards is the shard count used when none is configured.
const DefaultShards = 16

type shard struct {
	mu     sync.RWMutex
	arrays map[uintptr][]api.Piece
}

// Sharded implements api.PointerRegistry over a power-of-two shard array.
type Sharded struct {
	shards []shard
	mask   uintptr
}

// NewSharded creates a registry with shardCount shards, rounded up to a
// power of two. Non-positive counts fall back to DefaultShards.
func NewSharded(shardCount int) *Sharded {
	if shardCount <= 0 {
		shardCount = DefaultShards
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}
	r := &Sharded{
		shards: make([]shard, n),
		mask:   uintptr(n - 1),
	}
	for i := range r.shards {
		r.shards[i].arrays = make(map[uintptr][]api.Piece)
	}
	return r
}

// shard selects the shard for a base address. Bases are page-aligned, so the
// low 12 bits carry no entropy.
func (r *Sharded) shard(base uintptr) *shard {
	return &r.shards[(base>>12)&r.mask]
}

// Submit records the piece layout of an array. The slice is copied; callers
// may reuse their backing storage afterwards.
func (r *Sharded) Submit(base uintptr, pieces []api.Piece) {
	stored := make([]api.Piece, len(pieces))
	copy(stored, pieces)

	sh := r.shard(base)
	sh.mu.Lock()
	sh.arrays[base] = stored
	sh.mu.Unlock()
}

// Lookup returns the piece layout recorded for base. The returned slice is
// owned by the registry and must not be modified.
func (r *Sharded) Lookup(base uintptr) ([]api.Piece, bool) {
	sh := r.shard(base)
	sh.mu.RLock()
	pieces, ok := sh.arrays[base]
	sh.mu.RUnlock()
	return pieces, ok
}

// Remove forgets the array keyed by base.
func (r *Sharded) Remove(base uintptr) {
	sh := r.shard(base)
	sh.mu.Lock()
	delete(sh.arrays, base)
	sh.mu.Unlock()
}

// Len returns the number of tracked arrays across all shards.
func (r *Sharded) Len() int {
	total := 0
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.RLock()
		total += len(sh.arrays)
		sh.mu.RUnlock()
	}
	return total
}
