// File: fake/topology.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-size fake NUMA topology.

package fake

// Topology maps logical nodes 0..NodeCount-1 onto identical OS indices and
// rejects everything else.
type Topology struct {
	NodeCount int
}

func (t *Topology) NodeOSIndex(node int) int {
	if node < 0 || node >= t.NodeCount {
		return -1
	}
	return node
}

func (t *Topology) Nodes() int {
	return t.NodeCount
}
