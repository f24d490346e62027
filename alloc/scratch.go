// File: alloc/scratch.go
// Author: momentics <momentics@gmail.com>
//
// Recycled scratch buffers for in-flight piece bookkeeping, so the commit
// loop does not allocate per call.

package alloc

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/silo/api"
)

// scratchKeep bounds how many idle buffers the free list retains.
const scratchKeep = 64

type pieceScratch struct {
	mu sync.Mutex
	q  *queue.Queue
}

func newPieceScratch() *pieceScratch {
	return &pieceScratch{q: queue.New()}
}

// get returns an empty piece buffer with at least the given capacity.
func (s *pieceScratch) get(capacity int) *[]api.Piece {
	s.mu.Lock()
	if s.q.Length() > 0 {
		buf := s.q.Remove().(*[]api.Piece)
		s.mu.Unlock()
		if cap(*buf) < capacity {
			*buf = make([]api.Piece, 0, capacity)
		} else {
			*buf = (*buf)[:0]
		}
		return buf
	}
	s.mu.Unlock()

	buf := make([]api.Piece, 0, capacity)
	return &buf
}

// put returns a buffer to the free list. Buffers beyond scratchKeep are
// dropped for the GC.
func (s *pieceScratch) put(buf *[]api.Piece) {
	s.mu.Lock()
	if s.q.Length() < scratchKeep {
		s.q.Add(buf)
	}
	s.mu.Unlock()
}
