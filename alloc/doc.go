// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Topology-aware allocation core of the silo library.
//
// The centerpiece is the multi-node array allocator: one contiguous virtual
// address range whose physical backing is split across caller-chosen NUMA
// nodes in caller-chosen proportions. The algorithm validates the placement
// request, reconciles piece sizes against the platform allocation unit,
// probes for a contiguous base address, commits each piece NUMA-pinned at a
// fixed offset, and rolls every piece back if any commit fails. Success is
// all-or-nothing: a caller never observes a partially committed array.
//
// Collaborators (platform primitives, topology translation, pointer
// tracking) are injected interfaces, so the whole core is testable against
// the fakes in fake/. See array.go for the algorithm, single.go for the
// one-node convenience path.
package alloc
