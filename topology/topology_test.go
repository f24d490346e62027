// File: topology/topology_test.go
// Author: momentics <momentics@gmail.com>

package topology_test

import (
	"testing"

	"github.com/momentics/silo/topology"
)

func TestHostTopology(t *testing.T) {
	topo := topology.New()

	nodes := topo.Nodes()
	if nodes < 1 {
		t.Fatalf("Nodes = %d, want >= 1", nodes)
	}

	if idx := topo.NodeOSIndex(0); idx < 0 {
		t.Errorf("NodeOSIndex(0) = %d, node 0 must always exist", idx)
	}
	if idx := topo.NodeOSIndex(-1); idx >= 0 {
		t.Errorf("NodeOSIndex(-1) = %d, want negative", idx)
	}
	if idx := topo.NodeOSIndex(nodes); idx >= 0 {
		t.Errorf("NodeOSIndex(%d) = %d, want negative", nodes, idx)
	}
}

func TestHostTopology_StableAcrossCalls(t *testing.T) {
	if topology.New().Nodes() != topology.New().Nodes() {
		t.Error("node count changed between calls")
	}
}
