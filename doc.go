// Package silo
// Author: momentics <momentics@gmail.com>
//
// Topology-aware NUMA memory allocation for Go.
//
// silo lets a caller obtain one contiguous virtual address range backed by
// physically distinct memory on multiple NUMA nodes — a multi-node array —
// without juggling per-node buffers and offsets. The package-level functions
// operate on a process-wide default manager configured from the environment;
// construct an alloc.Manager directly for injected collaborators, custom
// logging or isolated pointer tracking.
//
// Layout: alloc/ carries the allocation core, mem/ the platform primitives,
// topology/ NUMA discovery, registry/ pointer tracking, pool/ NUMA-pinned
// buffer pooling, affinity/ thread pinning, fake/ test doubles.
package silo
