// File: topology/topology.go
// Author: momentics <momentics@gmail.com>
//
// NUMA topology discovery with runtime detection. Logical node ids used by
// callers are dense 0..Nodes()-1; on every supported platform they map
// one-to-one onto OS node indices. Platform-specific discovery lives in
// separate files guarded by build tags.

package topology

import (
	"sync"

	"github.com/momentics/silo/api"
)

var (
	detectOnce sync.Once
	nodeCount  int
)

type hostTopology struct {
	nodes int
}

// New returns the topology of the host. Discovery runs once per process.
func New() api.Topology {
	detectOnce.Do(func() {
		nodeCount = detectNodes()
		if nodeCount < 1 {
			nodeCount = 1
		}
	})
	return &hostTopology{nodes: nodeCount}
}

// NodeOSIndex returns the OS index backing a logical node, negative when the
// node does not exist.
func (t *hostTopology) NodeOSIndex(node int) int {
	if node < 0 || node >= t.nodes {
		return -1
	}
	return node
}

// Nodes returns the number of NUMA nodes visible to the process.
func (t *hostTopology) Nodes() int {
	return t.nodes
}
