//go:build linux
// +build linux

// File: topology/topology_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux NUMA node discovery. Primary source is sysfs; when sysfs is not
// mounted the node count falls back to the kernel memory policy mask, and
// finally to a single node.

package topology

import (
	"math/bits"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MPOL_F_MEMS_ALLOWED asks get_mempolicy for the set of nodes the process
// may allocate from. Not defined in the unix package.
const mpolFMemsAllowed = 1 << 2

// detectNodes counts the NUMA nodes configured on this host.
func detectNodes() int {
	if n := sysfsNodes(); n > 0 {
		return n
	}
	return mempolicyNodes()
}

// sysfsNodes counts node<N> entries under /sys/devices/system/node.
func sysfsNodes() int {
	entries, err := os.ReadDir("/sys/devices/system/node")
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "node") {
			continue
		}
		if _, err := strconv.Atoi(name[len("node"):]); err == nil {
			count++
		}
	}
	return count
}

// mempolicyNodes counts the bits in the process's allowed-memories mask.
func mempolicyNodes() int {
	var mask [1024 / 64]uint64
	_, _, errno := unix.RawSyscall6(unix.SYS_GET_MEMPOLICY,
		0, uintptr(unsafe.Pointer(&mask[0])), uintptr(len(mask)*64),
		0, mpolFMemsAllowed, 0)
	if errno != 0 {
		return 1
	}
	nodes := 0
	for _, word := range mask {
		nodes += bits.OnesCount64(word)
	}
	if nodes == 0 {
		return 1
	}
	return nodes
}
