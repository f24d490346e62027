// File: silo.go
// Author: momentics <momentics@gmail.com>
//
// Facade over a lazily-built process-wide default manager.

package silo

import (
	"sync"

	"github.com/momentics/silo/alloc"
	"github.com/momentics/silo/api"
	"github.com/momentics/silo/control"
	"github.com/momentics/silo/registry"
)

var (
	defaultOnce sync.Once
	defaultMgr  *alloc.Manager
)

// Default returns the process-wide manager, building it on first use from
// SILO_-prefixed environment variables.
func Default() *alloc.Manager {
	defaultOnce.Do(func() {
		cfg, err := control.Load()
		if err != nil {
			cfg = control.Default()
		}
		defaultMgr = alloc.NewManager(
			alloc.WithProbeAttempts(cfg.ProbeAttempts),
			alloc.WithRegistry(registry.NewSharded(cfg.RegistryShards)),
		)
	})
	return defaultMgr
}

// AllocNUMA reserves and commits size bytes pinned to the given logical
// NUMA node.
func AllocNUMA(size int, node int) (uintptr, error) {
	return Default().AllocNUMA(size, node)
}

// FreeNUMA releases a region obtained from AllocNUMA.
func FreeNUMA(ptr uintptr, size int) {
	Default().FreeNUMA(ptr, size)
}

// AllocateArray allocates a multi-node array and returns its base address.
// See alloc.Manager.AllocateArray for the piece-size mutation contract.
func AllocateArray(pieces []api.PieceRequest) (uintptr, error) {
	return Default().AllocateArray(pieces)
}

// Free releases every piece of a multi-node array by its base address.
func Free(base uintptr) error {
	return Default().Free(base)
}
