// Package mem
// Author: momentics <momentics@gmail.com>
//
// Platform memory primitives for the silo allocator: reserve/commit/release
// of virtual ranges with optional NUMA affinity, fixed placement and
// large-page backing, plus allocation-granularity queries.
//
// Linux uses raw mmap/mbind syscalls through golang.org/x/sys/unix (no cgo,
// no libnuma). Windows uses VirtualAllocExNuma. Other platforms return
// api.ErrNotSupported. See mem_linux.go, mem_windows.go, mem_stub.go.
package mem
