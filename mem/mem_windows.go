//go:build windows
// +build windows

// File: mem/mem_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows memory primitives. NUMA-pinned allocations go through
// VirtualAllocExNuma; unpinned ones through VirtualAlloc. The allocation
// unit is the largest of the system allocation granularity, the page size
// and, when requested, the large-page minimum.

package mem

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/silo/api"
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAllocExNuma  = modkernel32.NewProc("VirtualAllocExNuma")
	procGetLargePageMinimum = modkernel32.NewProc("GetLargePageMinimum")
	procGetSystemInfo       = modkernel32.NewProc("GetSystemInfo")
)

// systemInfo mirrors the layout of the Win32 SYSTEM_INFO structure.
type systemInfo struct {
	processorArchitecture     uint16
	reserved                  uint16
	pageSize                  uint32
	minimumApplicationAddress uintptr
	maximumApplicationAddress uintptr
	activeProcessorMask       uintptr
	numberOfProcessors        uint32
	processorType             uint32
	allocationGranularity     uint32
	processorLevel            uint16
	processorRevision         uint16
}

type windowsMemory struct{}

// createPlatformMemory returns the Windows backend.
func createPlatformMemory() api.PlatformMemory {
	return &windowsMemory{}
}

func (m *windowsMemory) Alloc(size int, node int, at uintptr, commit bool, largePages bool) (uintptr, error) {
	if size <= 0 {
		return 0, windows.ERROR_INVALID_PARAMETER
	}

	allocType := uint32(windows.MEM_RESERVE)
	if commit {
		allocType |= windows.MEM_COMMIT
	}
	if largePages {
		allocType |= windows.MEM_LARGE_PAGES
	}

	if node < 0 {
		ptr, err := windows.VirtualAlloc(at, uintptr(size), allocType, windows.PAGE_READWRITE)
		if ptr == 0 {
			return 0, err
		}
		return ptr, nil
	}

	ptr, _, err := procVirtualAllocExNuma.Call(
		uintptr(windows.CurrentProcess()),
		at,
		uintptr(size),
		uintptr(allocType),
		uintptr(windows.PAGE_READWRITE),
		uintptr(uint32(node)),
	)
	if ptr == 0 {
		return 0, err
	}
	return ptr, nil
}

func (m *windowsMemory) Free(ptr uintptr, size int) {
	if ptr == 0 {
		return
	}
	// MEM_RELEASE requires size zero and frees the whole reservation.
	windows.VirtualFree(ptr, 0, windows.MEM_RELEASE)
}

func (m *windowsMemory) AllocationUnit(largePages bool) int {
	var info systemInfo
	procGetSystemInfo.Call(uintptr(unsafe.Pointer(&info)))

	unit := int(info.allocationGranularity)
	if int(info.pageSize) > unit {
		unit = int(info.pageSize)
	}
	if largePages {
		large, _, _ := procGetLargePageMinimum.Call()
		if int(large) > unit {
			unit = int(large)
		}
	}
	return unit
}
