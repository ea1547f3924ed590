// File: request/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Optional telemetry hook. Unset (the default) the counters cost one atomic
// load per event and no allocation, keeping the handle hot path clean.

package request

import (
	"sync/atomic"

	"github.com/momentics/hioload-req/control"
)

var metricsHook atomic.Pointer[control.RequestMetrics]

// SetMetrics installs counters the package increments from then on.
// Passing nil detaches telemetry again.
func SetMetrics(m *control.RequestMetrics) {
	metricsHook.Store(m)
}

func countWaitCompleted() {
	if m := metricsHook.Load(); m != nil {
		m.WaitsCompleted.Add(1)
	}
}

func countWaitFailure() {
	if m := metricsHook.Load(); m != nil {
		m.WaitFailures.Add(1)
	}
}

func countWorkItemRun() {
	if m := metricsHook.Load(); m != nil {
		m.WorkItemsRun.Add(1)
	}
}

func countWorkListAllocated() {
	if m := metricsHook.Load(); m != nil {
		m.WorkListsAllocated.Add(1)
	}
}

func countWorkListFreed() {
	if m := metricsHook.Load(); m != nil {
		m.WorkListsFreed.Add(1)
	}
}

func countPriorAttached() {
	if m := metricsHook.Load(); m != nil {
		m.PriorLinksAttached.Add(1)
	}
}
