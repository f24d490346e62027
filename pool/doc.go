// Package pool
// Author: momentics <momentics@gmail.com>
//
// NUMA-aware byte pooling built on the silo allocator. Buffers are
// fixed-size, node-pinned regions recycled through a bounded free list,
// keeping the single-node allocation path off the hot path.
package pool
