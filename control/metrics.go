// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Typed runtime counters for request-layer telemetry.
// Counters are plain atomics so the hot path stays allocation-free.

package control

import "sync/atomic"

// RequestMetrics aggregates the counters the request layer increments while
// waiting, chaining and draining deferred work.
type RequestMetrics struct {
	WaitsCompleted     atomic.Int64 // waits that returned successfully
	WaitFailures       atomic.Int64 // transport errors, counted once at the reporting level
	WorkItemsRun       atomic.Int64 // post-wait work items executed
	WorkListsAllocated atomic.Int64 // lazily created shared work lists
	WorkListsFreed     atomic.Int64 // work lists released at refcount zero
	PriorLinksAttached atomic.Int64 // chain links installed via attach
}

// NewRequestMetrics creates a zeroed counter set.
func NewRequestMetrics() *RequestMetrics {
	return &RequestMetrics{}
}

// Snapshot returns the current counter values as a map, in the layout debug
// probes and stats endpoints expect.
func (m *RequestMetrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"waits_completed":      m.WaitsCompleted.Load(),
		"wait_failures":        m.WaitFailures.Load(),
		"work_items_run":       m.WorkItemsRun.Load(),
		"work_lists_allocated": m.WorkListsAllocated.Load(),
		"work_lists_freed":     m.WorkListsFreed.Load(),
		"prior_links_attached": m.PriorLinksAttached.Load(),
	}
}
