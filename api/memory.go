// File: api/memory.go
// Author: momentics <momentics@gmail.com>
//
// Core types and collaborator interfaces for topology-aware memory
// allocation. All sizes are in bytes; all addresses are process-virtual.

package api

// PieceRequest names one piece of a multi-node array: how many bytes the
// caller wants and which logical NUMA node should back them.
//
// AllocateArray overwrites Size with the number of bytes actually committed
// for the piece (rounded to the allocation unit, plus tail padding for the
// last piece). Callers must read the mutated sizes back to compute per-piece
// offsets inside the array.
type PieceRequest struct {
	Size int // desired bytes in, committed bytes out
	Node int // logical NUMA node id
}

// Piece is one committed, NUMA-pinned sub-region of a multi-node array.
type Piece struct {
	Ptr  uintptr
	Size int
}

// PlatformMemory abstracts the raw virtual-memory primitives of the host OS.
// The zero address and a negative node carry "let the OS choose" semantics
// throughout.
type PlatformMemory interface {
	// Alloc reserves, and when commit is set also commits, size bytes.
	// node is an OS-level NUMA node index; pass a negative value for no
	// affinity. at, when non-zero, requests that exact starting address and
	// fails if the range is unavailable.
	Alloc(size int, node int, at uintptr, commit bool, largePages bool) (uintptr, error)

	// Free releases a region previously returned by Alloc. Release is best
	// effort; platform failures are not reported.
	Free(ptr uintptr, size int)

	// AllocationUnit returns the effective allocation granularity: the
	// largest of the platform allocation granularity, the page size, and,
	// when largePages is set and the platform supports them, the large-page
	// minimum size.
	AllocationUnit(largePages bool) int
}

// Topology translates the logical NUMA node ids used by callers into
// OS-level node indices.
type Topology interface {
	// NodeOSIndex returns the OS index backing a logical node, or a negative
	// value when no such node exists.
	NodeOSIndex(node int) int

	// Nodes returns the number of NUMA nodes visible to the process.
	Nodes() int
}

// PointerRegistry remembers the piece layout of every live multi-node array,
// keyed by the array's base address, so a later free can locate and release
// every piece.
type PointerRegistry interface {
	Submit(base uintptr, pieces []Piece)
	Lookup(base uintptr) ([]Piece, bool)
	Remove(base uintptr)
}
