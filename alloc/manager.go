// File: alloc/manager.go
// Author: momentics <momentics@gmail.com>
//
// Manager construction and option wiring.

package alloc

import (
	"go.uber.org/zap"

	"github.com/momentics/silo/api"
	"github.com/momentics/silo/mem"
	"github.com/momentics/silo/registry"
	"github.com/momentics/silo/topology"
)

// DefaultProbeAttempts bounds how often AllocateArray re-probes for a base
// address after losing a fixed-address commit race.
const DefaultProbeAttempts = 3

// Manager orchestrates NUMA-aware allocation against injected collaborators.
// The zero value is not usable; construct with NewManager.
type Manager struct {
	mem      api.PlatformMemory
	topo     api.Topology
	registry api.PointerRegistry
	log      *zap.Logger
	attempts int
	scratch  *pieceScratch
}

// Option configures a Manager.
type Option func(*Manager)

// WithPlatformMemory replaces the platform memory backend.
func WithPlatformMemory(pm api.PlatformMemory) Option {
	return func(m *Manager) { m.mem = pm }
}

// WithTopology replaces the NUMA topology source.
func WithTopology(t api.Topology) Option {
	return func(m *Manager) { m.topo = t }
}

// WithRegistry replaces the pointer-tracking registry.
func WithRegistry(r api.PointerRegistry) Option {
	return func(m *Manager) { m.registry = r }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithProbeAttempts sets how many probe/commit rounds AllocateArray runs
// before giving up on a contested address range.
func WithProbeAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.attempts = n
		}
	}
}

// NewManager builds a Manager backed by the host platform, host topology and
// a fresh sharded registry unless options say otherwise.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		mem:      mem.Default(),
		topo:     topology.New(),
		registry: registry.NewSharded(registry.DefaultShards),
		log:      zap.NewNop(),
		attempts: DefaultProbeAttempts,
		scratch:  newPieceScratch(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry exposes the pointer-tracking registry, letting callers inspect
// the piece layout of a live array by its base address.
func (m *Manager) Registry() api.PointerRegistry {
	return m.registry
}

// Topology exposes the NUMA topology the manager allocates against.
func (m *Manager) Topology() api.Topology {
	return m.topo
}
