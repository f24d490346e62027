// File: alloc/rounding.go
// Author: momentics <momentics@gmail.com>
//
// Size rounding policy: requests are reconciled to multiples of the
// effective allocation unit before any address-space work happens.

package alloc

// roundAllocationSize rounds unrounded to the nearest multiple of unit,
// half-up: a remainder of at least unit/2 rounds to the next multiple,
// anything smaller rounds down. A request below unit/2 therefore rounds to
// zero, which callers treat as "piece too small to honor".
func roundAllocationSize(unrounded, unit int) int {
	quotient := unrounded / unit
	remainder := unrounded % unit
	if remainder >= unit/2 {
		return unit * (quotient + 1)
	}
	return unit * quotient
}

// RoundRequestSize reports the size the allocator would commit for a single
// request of the given size, considering large-page granularity on demand.
func (m *Manager) RoundRequestSize(size int, largePages bool) int {
	return roundAllocationSize(size, m.mem.AllocationUnit(largePages))
}

// AllocationUnit reports the effective allocation granularity of the host.
func (m *Manager) AllocationUnit(largePages bool) int {
	return m.mem.AllocationUnit(largePages)
}
