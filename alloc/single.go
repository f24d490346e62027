// File: alloc/single.go
// Author: momentics <momentics@gmail.com>
//
// Single-node allocation path: one region, one node, no fixed address.

package alloc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/momentics/silo/api"
)

// AllocNUMA reserves and commits size bytes pinned to the given logical NUMA
// node and returns the region's start address.
func (m *Manager) AllocNUMA(size int, node int) (uintptr, error) {
	osIndex := m.topo.NodeOSIndex(node)
	if osIndex < 0 {
		allocFailures.WithLabelValues(reasonInvalidNode).Inc()
		return 0, fmt.Errorf("alloc: node %d: %w", node, api.ErrInvalidNUMANode)
	}

	ptr, err := m.mem.Alloc(size, osIndex, 0, true, false)
	if err != nil {
		allocFailures.WithLabelValues(reasonCommit).Inc()
		return 0, fmt.Errorf("alloc: %d bytes on node %d: %w", size, node, err)
	}

	bytesCommitted.Add(float64(size))
	m.log.Debug("single-node region allocated",
		zap.Uintptr("ptr", ptr), zap.Int("size", size), zap.Int("node", node))
	return ptr, nil
}

// FreeNUMA releases a region obtained from AllocNUMA. Release is best
// effort; platform failures are not surfaced, matching release semantics of
// the underlying primitives.
func (m *Manager) FreeNUMA(ptr uintptr, size int) {
	if ptr == 0 {
		return
	}
	m.mem.Free(ptr, size)
	bytesCommitted.Sub(float64(size))
}
