package fake_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-req/api"
	"github.com/momentics/hioload-req/fake"
)

func TestWaitBlocksUntilSignal(t *testing.T) {
	tr := fake.NewTransport()
	h := tr.Issue()
	require.True(t, tr.Outstanding(h))

	got := make(chan api.Status, 1)
	go func() {
		stat, err := tr.Wait(h)
		if err == nil {
			got <- stat
		}
	}()

	select {
	case <-got:
		t.Fatal("wait returned before the handle was signaled")
	case <-time.After(10 * time.Millisecond):
	}

	tr.Signal(h, api.Status{Count: 42})
	select {
	case stat := <-got:
		assert.Equal(t, 42, stat.Count)
	case <-time.After(time.Second):
		t.Fatal("wait did not unblock on signal")
	}
	assert.False(t, tr.Outstanding(h))
}

func TestTestReportsPendingWithoutBlocking(t *testing.T) {
	tr := fake.NewTransport()
	h := tr.Issue()

	done, _, err := tr.Test(h)
	require.NoError(t, err)
	assert.False(t, done)

	tr.Signal(h, api.Status{Tag: 7})
	done, stat, err := tr.Test(h)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 7, stat.Tag)
	assert.Equal(t, 2, tr.TestCalls(h))
}

func TestFailWrapsTransportFailure(t *testing.T) {
	tr := fake.NewTransport()
	h := tr.Issue()
	cause := errors.New("peer reset")
	tr.Fail(h, cause)

	_, err := tr.Wait(h)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrTransportFailure)
	assert.ErrorIs(t, err, cause)

	done, _, err := tr.Test(h)
	assert.False(t, done, "a failed operation never reads as still pending success")
	assert.ErrorIs(t, err, api.ErrTransportFailure)
}

func TestNullHandleSemantics(t *testing.T) {
	tr := fake.NewTransport()

	stat, err := tr.Wait(api.HandleNone)
	require.NoError(t, err)
	assert.Equal(t, api.Status{}, stat)

	done, stat, err := tr.Test(api.HandleNone)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, api.Status{}, stat)
}
