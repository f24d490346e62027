// File: alloc/array.go
// Author: momentics <momentics@gmail.com>
//
// Multi-node array allocation: one contiguous virtual range, piece-wise
// committed across NUMA nodes, with all-or-nothing semantics.

package alloc

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/momentics/silo/api"
)

// AllocateArray allocates one contiguous virtual range whose pieces are
// committed, in order, on the NUMA nodes named by the requests. The returned
// address is the base of piece 0; piece i+1 always starts exactly where
// piece i ends.
//
// Each pieces[i].Size is overwritten with the bytes actually committed for
// that piece: sizes are rounded half-up to the allocation unit, and the last
// piece absorbs whole-unit padding until the array covers the originally
// requested total. Callers read the mutated sizes back to compute offsets.
//
// Node ids are validated before any request is rewritten, so a request
// containing an invalid node returns api.ErrInvalidNUMANode with the input
// slice untouched. Any later failure releases every piece committed by this
// call before returning.
func (m *Manager) AllocateArray(pieces []api.PieceRequest) (uintptr, error) {
	if len(pieces) == 0 {
		allocFailures.WithLabelValues(reasonZeroCoverage).Inc()
		return 0, fmt.Errorf("alloc: empty request: %w", api.ErrZeroCoverage)
	}

	osIndex := make([]int, len(pieces))
	for i, p := range pieces {
		osIndex[i] = m.topo.NodeOSIndex(p.Node)
		if osIndex[i] < 0 {
			allocFailures.WithLabelValues(reasonInvalidNode).Inc()
			return 0, fmt.Errorf("alloc: piece %d node %d: %w", i, p.Node, api.ErrInvalidNUMANode)
		}
	}

	unit := m.mem.AllocationUnit(false)
	totalRequested := 0
	totalActual := 0
	for i := range pieces {
		totalRequested += pieces[i].Size
		pieces[i].Size = roundAllocationSize(pieces[i].Size, unit)
		totalActual += pieces[i].Size
	}
	if totalActual == 0 {
		allocFailures.WithLabelValues(reasonZeroCoverage).Inc()
		return 0, fmt.Errorf("alloc: %d requested bytes: %w", totalRequested, api.ErrZeroCoverage)
	}

	// Rounding can lose bytes on the round-down side. Grow the tail piece by
	// whole units until the array covers the requested total.
	last := len(pieces) - 1
	for totalActual < totalRequested {
		totalActual += unit
		pieces[last].Size += unit
	}

	var lastErr error
	for attempt := 0; attempt < m.attempts; attempt++ {
		if attempt > 0 {
			probeRetries.Inc()
			m.log.Debug("re-probing after lost address race", zap.Int("attempt", attempt+1))
		}
		base, err := m.commitPieces(pieces, osIndex, totalActual)
		if err == nil {
			return base, nil
		}
		lastErr = err
		if !errors.Is(err, api.ErrCommitFailed) {
			// Address-space exhaustion will not improve on retry.
			break
		}
	}
	return 0, lastErr
}

// commitPieces runs one probe/commit round: discover a base address with
// enough contiguous room, then commit each piece at its fixed offset.
func (m *Manager) commitPieces(pieces []api.PieceRequest, osIndex []int, total int) (uintptr, error) {
	// Probe: reserve the whole range once, purely to learn a base address
	// where total contiguous bytes are available, then release it for the
	// piece-wise commits. The window between release and commit can be lost
	// to another mapper; the caller retries on commit failure.
	base, err := m.mem.Alloc(total, -1, 0, false, false)
	if err != nil {
		allocFailures.WithLabelValues(reasonAddressSpace).Inc()
		return 0, fmt.Errorf("alloc: probe of %d bytes: %w", total, api.ErrAddressSpace)
	}
	m.mem.Free(base, total)

	committed := m.scratch.get(len(pieces))
	defer m.scratch.put(committed)

	cursor := base
	for i := range pieces {
		ptr, err := m.mem.Alloc(pieces[i].Size, osIndex[i], cursor, true, false)
		if err != nil {
			m.rollback(*committed)
			allocFailures.WithLabelValues(reasonCommit).Inc()
			return 0, fmt.Errorf("alloc: piece %d (%d bytes, node index %d) at %#x: %w",
				i, pieces[i].Size, osIndex[i], cursor, api.ErrCommitFailed)
		}
		*committed = append(*committed, api.Piece{Ptr: ptr, Size: pieces[i].Size})
		cursor += uintptr(pieces[i].Size)
	}

	m.registry.Submit(base, *committed)
	arraysAllocated.Inc()
	bytesCommitted.Add(float64(total))
	m.log.Debug("multi-node array allocated",
		zap.Uintptr("base", base), zap.Int("pieces", len(pieces)), zap.Int("bytes", total))
	return base, nil
}

// rollback releases every piece committed so far in this call. The pieces
// are disjoint, so release order does not matter.
func (m *Manager) rollback(committed []api.Piece) {
	for _, p := range committed {
		m.mem.Free(p.Ptr, p.Size)
	}
	if len(committed) > 0 {
		rollbacksTotal.Inc()
		m.log.Debug("rolled back partial array", zap.Int("pieces", len(committed)))
	}
}

// Free releases every piece of a multi-node array previously returned by
// AllocateArray and forgets its layout.
func (m *Manager) Free(base uintptr) error {
	pieces, ok := m.registry.Lookup(base)
	if !ok {
		return fmt.Errorf("alloc: base %#x: %w", base, api.ErrNotTracked)
	}
	m.registry.Remove(base)

	total := 0
	for _, p := range pieces {
		m.mem.Free(p.Ptr, p.Size)
		total += p.Size
	}
	arraysFreed.Inc()
	bytesCommitted.Sub(float64(total))
	m.log.Debug("multi-node array freed",
		zap.Uintptr("base", base), zap.Int("pieces", len(pieces)), zap.Int("bytes", total))
	return nil
}
