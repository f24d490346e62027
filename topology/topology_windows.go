//go:build windows
// +build windows

// File: topology/topology_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows NUMA node discovery via GetNumaHighestNodeNumber.

package topology

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetNumaHighestNodeNumber = modkernel32.NewProc("GetNumaHighestNodeNumber")
)

// detectNodes counts the NUMA nodes configured on this host.
func detectNodes() int {
	var highest uint32
	ret, _, _ := procGetNumaHighestNodeNumber.Call(uintptr(unsafe.Pointer(&highest)))
	if ret == 0 {
		return 1
	}
	return int(highest) + 1
}
