//go:build !linux && !windows
// +build !linux,!windows

// File: mem/mem_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub memory backend for platforms without NUMA-capable primitives.

package mem

import (
	"os"

	"github.com/momentics/silo/api"
)

type stubMemory struct{}

// createPlatformMemory returns the stub backend.
func createPlatformMemory() api.PlatformMemory {
	return &stubMemory{}
}

func (m *stubMemory) Alloc(size int, node int, at uintptr, commit bool, largePages bool) (uintptr, error) {
	return 0, api.ErrNotSupported
}

func (m *stubMemory) Free(ptr uintptr, size int) {}

func (m *stubMemory) AllocationUnit(largePages bool) int {
	return os.Getpagesize()
}
