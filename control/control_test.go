package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-req/control"
)

func TestRequestMetricsSnapshot(t *testing.T) {
	m := control.NewRequestMetrics()
	m.WaitsCompleted.Add(3)
	m.WorkItemsRun.Add(2)

	snap := m.Snapshot()
	assert.EqualValues(t, 3, snap["waits_completed"])
	assert.EqualValues(t, 2, snap["work_items_run"])
	assert.EqualValues(t, 0, snap["wait_failures"])
}

func TestConfigStoreReloadListeners(t *testing.T) {
	cs := control.NewConfigStore()

	var observed int
	cs.OnReload(func() {
		observed = cs.GetInt("workers", -1)
	})

	cs.SetConfig(map[string]any{"workers": 8})
	assert.Equal(t, 8, observed, "listeners run synchronously after the merge")

	snap := cs.GetSnapshot()
	assert.Equal(t, 8, snap["workers"])
}

func TestConfigStoreGetIntFallback(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfig(map[string]any{"name": "engine", "cap": int64(32)})

	assert.Equal(t, 7, cs.GetInt("missing", 7))
	assert.Equal(t, 7, cs.GetInt("name", 7), "non-integer values fall back")
	assert.Equal(t, 32, cs.GetInt("cap", 7), "int64 values convert")
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })
	control.RegisterRuntimeProbes(dp)

	state := dp.DumpState()
	assert.Equal(t, 42, state["answer"])
	require.Contains(t, state, "runtime.cpus")

	dp.RemoveProbe("answer")
	assert.NotContains(t, dp.DumpState(), "answer")
}
