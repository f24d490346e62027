// File: pool/numapool.go
// Author: momentics <momentics@gmail.com>
//
// NUMA-pinned buffer pool over the silo single-node allocator.

package pool

import (
	"unsafe"

	"github.com/momentics/silo/alloc"
)

// NUMAPool hands out fixed-size []byte buffers whose physical backing is
// pinned to one NUMA node. Idle buffers are kept on a bounded free list;
// overflow is released back to the OS immediately.
type NUMAPool struct {
	mgr  *alloc.Manager
	node int
	size int // committed bytes per buffer, rounded to the allocation unit
	free chan uintptr
}

// NewNUMAPool creates a pool of bufSize-byte buffers on the given logical
// node, retaining at most capacity idle buffers. bufSize is rounded up to
// the allocation unit so every buffer maps to whole pages.
func NewNUMAPool(mgr *alloc.Manager, node int, bufSize int, capacity int) *NUMAPool {
	size := mgr.RoundRequestSize(bufSize, false)
	if size < bufSize {
		size += mgr.AllocationUnit(false)
	}
	if capacity <= 0 {
		capacity = 1
	}
	return &NUMAPool{
		mgr:  mgr,
		node: node,
		size: size,
		free: make(chan uintptr, capacity),
	}
}

// BufferSize returns the committed size of every buffer in the pool.
func (p *NUMAPool) BufferSize() int {
	return p.size
}

// Get returns a node-pinned buffer, reusing an idle one when available.
func (p *NUMAPool) Get() ([]byte, error) {
	select {
	case ptr := <-p.free:
		return p.slice(ptr), nil
	default:
	}
	ptr, err := p.mgr.AllocNUMA(p.size, p.node)
	if err != nil {
		return nil, err
	}
	return p.slice(ptr), nil
}

// Put returns a buffer to the free list, or releases it when the list is
// full. The buffer must have come from this pool's Get.
func (p *NUMAPool) Put(buf []byte) {
	if cap(buf) != p.size {
		return
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(buf[:cap(buf)])))
	select {
	case p.free <- ptr:
	default:
		p.mgr.FreeNUMA(ptr, p.size)
	}
}

// Close releases every idle buffer. Buffers still held by callers must be
// returned with Put (which then frees them) before the pool is discarded.
func (p *NUMAPool) Close() {
	for {
		select {
		case ptr := <-p.free:
			p.mgr.FreeNUMA(ptr, p.size)
		default:
			return
		}
	}
}

func (p *NUMAPool) slice(ptr uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), p.size)
}
