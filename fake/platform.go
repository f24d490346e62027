// File: fake/platform.go
// Author: momentics <momentics@gmail.com>
//
// Simulated process address space implementing api.PlatformMemory. Never
// touches real memory: addresses are synthetic and must not be dereferenced.

package fake

import (
	"errors"
	"sync"
)

const fakeBase = uintptr(0x7f00_0000_0000)

var (
	errExhausted   = errors.New("fake: injected commit failure")
	errUnavailable = errors.New("fake: address range unavailable")
	errBadSize     = errors.New("fake: non-positive size")
)

type mapping struct {
	size      int
	node      int
	committed bool
}

// Platform is a fake api.PlatformMemory with deterministic addresses.
//
// FailCommit, when positive, makes exactly the Nth committing Alloc call
// fail (1-based, counted across the Platform's lifetime). StealProbeOnce
// makes the next release of a reserve-only region immediately re-claim its
// first allocation unit, simulating another thread winning the probe/commit
// race.
type Platform struct {
	mu             sync.Mutex
	unit           int
	next           uintptr
	mappings       map[uintptr]mapping
	commits        int
	FailCommit     int
	StealProbeOnce bool

	// Calls counts every Alloc invocation, successful or not.
	Calls int
}

// NewPlatform creates a fake platform with the given allocation unit.
func NewPlatform(unit int) *Platform {
	return &Platform{
		unit:     unit,
		next:     fakeBase,
		mappings: make(map[uintptr]mapping),
	}
}

func (p *Platform) Alloc(size int, node int, at uintptr, commit bool, largePages bool) (uintptr, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls++
	if size <= 0 {
		return 0, errBadSize
	}
	if commit {
		p.commits++
		if p.FailCommit > 0 && p.commits == p.FailCommit {
			return 0, errExhausted
		}
	}

	base := at
	if base == 0 {
		base = p.next
		p.next += uintptr(size + p.unit)
	} else if p.overlaps(base, size) {
		return 0, errUnavailable
	}

	p.mappings[base] = mapping{size: size, node: node, committed: commit}
	return base, nil
}

func (p *Platform) Free(ptr uintptr, size int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.mappings[ptr]
	if !ok {
		return
	}
	delete(p.mappings, ptr)

	if p.StealProbeOnce && !m.committed {
		p.StealProbeOnce = false
		p.mappings[ptr] = mapping{size: p.unit, node: -1, committed: true}
	}
}

func (p *Platform) AllocationUnit(largePages bool) int {
	return p.unit
}

// Mapped reports whether addr falls inside any live mapping.
func (p *Platform) Mapped(addr uintptr) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for base, m := range p.mappings {
		if addr >= base && addr < base+uintptr(m.size) {
			return true
		}
	}
	return false
}

// MappedCount returns the number of live mappings.
func (p *Platform) MappedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.mappings)
}

// NodeOf returns the NUMA node recorded for the mapping at base, or -1.
func (p *Platform) NodeOf(base uintptr) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.mappings[base]; ok {
		return m.node
	}
	return -1
}

func (p *Platform) overlaps(base uintptr, size int) bool {
	end := base + uintptr(size)
	for b, m := range p.mappings {
		if base < b+uintptr(m.size) && b < end {
			return true
		}
	}
	return false
}
