// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Error definitions shared across the silo library.

package api

import "errors"

var (
	// ErrInvalidNUMANode indicates a logical node id the topology cannot map.
	ErrInvalidNUMANode = errors.New("invalid NUMA node")

	// ErrZeroCoverage indicates a request whose pieces all round to zero bytes.
	ErrZeroCoverage = errors.New("request rounds to zero bytes")

	// ErrAddressSpace indicates no contiguous virtual range of the required
	// size could be reserved.
	ErrAddressSpace = errors.New("insufficient contiguous address space")

	// ErrCommitFailed indicates a per-node commit failed, either from memory
	// pressure on that node or from losing the probed address range.
	ErrCommitFailed = errors.New("piece commit failed")

	// ErrNotTracked indicates a base address unknown to the pointer registry.
	ErrNotTracked = errors.New("pointer not tracked")

	// ErrNotSupported indicates the platform lacks the required memory
	// primitives.
	ErrNotSupported = errors.New("not supported on this platform")
)
