package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-req/api"
	"github.com/momentics/hioload-req/control"
)

func TestWorkListRefcounting(t *testing.T) {
	wl := newWorkList()
	require.EqualValues(t, 1, wl.refs.Load())

	wl.acquire()
	wl.acquire()
	require.EqualValues(t, 3, wl.refs.Load())

	wl.release()
	wl.release()
	assert.NotNil(t, wl.items, "list survives while shares remain")

	wl.release()
	assert.Nil(t, wl.items, "list freed exactly at refcount zero")
}

func TestWorkListDrainOrder(t *testing.T) {
	wl := newWorkList()
	var got []int
	for i := 0; i < 4; i++ {
		i := i
		wl.append(api.PostWaitWorkFunc(func() { got = append(got, i) }))
	}
	wl.drain()
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Zero(t, wl.items.Length())

	// A second drain has nothing left to run.
	wl.drain()
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestMetricsHookCounts(t *testing.T) {
	m := control.NewRequestMetrics()
	SetMetrics(m)
	defer SetMetrics(nil)

	r := NewWithHandle(nil, api.HandleNone)
	r.AddPostWaitWork(api.PostWaitWorkFunc(func() {}))
	prior := New(nil)
	require.NoError(t, r.AddPriorRequest(prior))
	_, err := r.Wait()
	require.NoError(t, err)
	r.Release()

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap["waits_completed"], "chain link plus own wait")
	assert.EqualValues(t, 1, snap["work_items_run"])
	assert.EqualValues(t, 1, snap["work_lists_allocated"])
	assert.EqualValues(t, 1, snap["work_lists_freed"])
	assert.EqualValues(t, 1, snap["prior_links_attached"])
}

func TestMetricsCountChainFailureOnce(t *testing.T) {
	m := control.NewRequestMetrics()
	SetMetrics(m)
	defer SetMetrics(nil)

	failing := &api.MockTransport{
		WaitFunc: func(api.Handle) (api.Status, error) {
			return api.Status{}, api.NewError(api.ErrCodeTransportFailure, "lane down")
		},
	}

	r := NewWithHandle(&api.MockTransport{}, 1)
	require.NoError(t, r.AddPriorRequest(NewWithHandle(failing, 2)))

	_, err := r.Wait()
	require.Error(t, err)

	snap := m.Snapshot()
	assert.EqualValues(t, 1, snap["wait_failures"],
		"one transport error counts once, not once per chain level")
	assert.EqualValues(t, 0, snap["waits_completed"])
}
