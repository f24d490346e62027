//go:build !linux && !windows
// +build !linux,!windows

// File: topology/topology_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub discovery for platforms without NUMA topology information.

package topology

// detectNodes reports a single node on unsupported platforms.
func detectNodes() int {
	return 1
}
