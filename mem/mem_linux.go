//go:build linux
// +build linux

// File: mem/mem_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux memory primitives built on raw mmap/munmap/mbind syscalls via
// golang.org/x/sys/unix. Pure Go: no cgo and no libnuma dependency, so the
// package works with CGO_ENABLED=0.
//
// Node pinning uses mbind(MPOL_BIND) after mapping. Binding is best effort,
// mirroring VirtualAllocExNuma on Windows where the node is a preference:
// on kernels without NUMA support the allocation stands unpinned.

package mem

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/silo/api"
)

const mpolBind = 2

var (
	hugePageOnce sync.Once
	hugePageSize int
)

type linuxMemory struct{}

// createPlatformMemory returns the Linux backend.
func createPlatformMemory() api.PlatformMemory {
	return &linuxMemory{}
}

func (m *linuxMemory) Alloc(size int, node int, at uintptr, commit bool, largePages bool) (uintptr, error) {
	if size <= 0 {
		return 0, unix.EINVAL
	}

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	if !commit {
		// Reserve-only: no access and no swap accounting until committed.
		prot = unix.PROT_NONE
		flags |= unix.MAP_NORESERVE
	}
	if at != 0 {
		// NOREPLACE keeps a racing mapper from being silently clobbered;
		// a lost race surfaces as EEXIST and the caller retries.
		flags |= unix.MAP_FIXED_NOREPLACE
	}
	if largePages {
		flags |= unix.MAP_HUGETLB
	}

	ptr, _, errno := unix.Syscall6(unix.SYS_MMAP,
		at, uintptr(size), uintptr(prot), uintptr(flags), ^uintptr(0), 0)
	if errno != 0 {
		return 0, errno
	}
	if at != 0 && ptr != at {
		// Kernel predating MAP_FIXED_NOREPLACE treats the flag as a hint.
		unix.Syscall(unix.SYS_MUNMAP, ptr, uintptr(size), 0)
		return 0, unix.EEXIST
	}

	if commit && node >= 0 {
		var mask [16]uint64
		mask[node/64] = 1 << (uint(node) % 64)
		unix.Syscall6(unix.SYS_MBIND,
			ptr, uintptr(size), mpolBind,
			uintptr(unsafe.Pointer(&mask[0])), uintptr(len(mask)*64), 0)
	}

	return ptr, nil
}

func (m *linuxMemory) Free(ptr uintptr, size int) {
	if ptr == 0 || size <= 0 {
		return
	}
	unix.Syscall(unix.SYS_MUNMAP, ptr, uintptr(size), 0)
}

func (m *linuxMemory) AllocationUnit(largePages bool) int {
	unit := os.Getpagesize()
	if largePages {
		if hp := largePageMinimum(); hp > unit {
			unit = hp
		}
	}
	return unit
}

// largePageMinimum reads the configured hugepage size from /proc/meminfo.
// Returns 0 when hugepages are not configured.
func largePageMinimum() int {
	hugePageOnce.Do(func() {
		f, err := os.Open("/proc/meminfo")
		if err != nil {
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "Hugepagesize:") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return
			}
			kb, err := strconv.Atoi(fields[1])
			if err != nil {
				return
			}
			hugePageSize = kb * 1024
			return
		}
	})
	return hugePageSize
}
