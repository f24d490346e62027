// File: alloc/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus metrics for allocator observability.

package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons used as the label of silo_allocations_failed_total.
const (
	reasonInvalidNode  = "invalid_node"
	reasonZeroCoverage = "zero_coverage"
	reasonAddressSpace = "address_space"
	reasonCommit       = "commit"
)

var (
	arraysAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "silo_arrays_allocated_total",
		Help: "Multi-node arrays successfully allocated.",
	})

	arraysFreed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "silo_arrays_freed_total",
		Help: "Multi-node arrays released through the free path.",
	})

	allocFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "silo_allocations_failed_total",
		Help: "Failed allocation attempts by reason.",
	}, []string{"reason"})

	rollbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "silo_rollbacks_total",
		Help: "Partial multi-node allocations rolled back after a commit failure.",
	})

	probeRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "silo_probe_retries_total",
		Help: "Probe/commit rounds repeated after losing an address race.",
	})

	bytesCommitted = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "silo_bytes_committed",
		Help: "Bytes currently committed through the silo allocator.",
	})
)
