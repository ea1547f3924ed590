// File: fake/transport.go
// Author: momentics <momentics@gmail.com>
//
// Fake implementation of api.Transport for testing.
// Handles are issued explicitly and completed by Signal or Fail; Wait blocks
// on a per-handle channel until then. Per-handle call counters let tests
// assert which operations a code path actually touched.

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-req/api"
)

// Transport is a fake implementation of api.Transport.
type Transport struct {
	mu        sync.Mutex
	next      api.Handle
	pending   map[api.Handle]chan struct{}
	statuses  map[api.Handle]api.Status
	failures  map[api.Handle]error
	waitCalls map[api.Handle]int
	testCalls map[api.Handle]int
}

// NewTransport creates an empty fake transport.
func NewTransport() *Transport {
	return &Transport{
		pending:   make(map[api.Handle]chan struct{}),
		statuses:  make(map[api.Handle]api.Status),
		failures:  make(map[api.Handle]error),
		waitCalls: make(map[api.Handle]int),
		testCalls: make(map[api.Handle]int),
	}
}

// Issue allocates a fresh outstanding handle. It stays pending until Signal
// or Fail completes it.
func (t *Transport) Issue() api.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := t.next
	t.pending[h] = make(chan struct{})
	return h
}

// IssueSignaled allocates a handle that is already complete with stat.
func (t *Transport) IssueSignaled(stat api.Status) api.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := t.next
	t.statuses[h] = stat
	return h
}

// Signal completes a pending handle with stat, releasing blocked waiters.
// Signaling an unknown or completed handle is a no-op.
func (t *Transport) Signal(h api.Handle, stat api.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[h] = stat
	if ch, ok := t.pending[h]; ok {
		delete(t.pending, h)
		close(ch)
	}
}

// Fail completes a pending handle with an error. A nil err records the bare
// api.ErrTransportFailure class.
func (t *Transport) Fail(h api.Handle, err error) {
	if err == nil {
		err = api.ErrTransportFailure
	} else {
		err = fmt.Errorf("%w: %w", api.ErrTransportFailure, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[h] = err
	if ch, ok := t.pending[h]; ok {
		delete(t.pending, h)
		close(ch)
	}
}

// Wait implements api.Transport.Wait. HandleNone and unknown handles
// complete immediately with a zero Status.
func (t *Transport) Wait(h api.Handle) (api.Status, error) {
	if h == api.HandleNone {
		return api.Status{}, nil
	}
	t.mu.Lock()
	t.waitCalls[h]++
	ch, outstanding := t.pending[h]
	if !outstanding {
		stat, err := t.resultLocked(h)
		t.mu.Unlock()
		return stat, err
	}
	t.mu.Unlock()

	<-ch

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resultLocked(h)
}

// Test implements api.Transport.Test.
func (t *Transport) Test(h api.Handle) (bool, api.Status, error) {
	if h == api.HandleNone {
		return true, api.Status{}, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.testCalls[h]++
	if _, outstanding := t.pending[h]; outstanding {
		return false, api.Status{}, nil
	}
	stat, err := t.resultLocked(h)
	if err != nil {
		return false, api.Status{}, err
	}
	return true, stat, nil
}

func (t *Transport) resultLocked(h api.Handle) (api.Status, error) {
	if err, ok := t.failures[h]; ok {
		return api.Status{}, err
	}
	return t.statuses[h], nil
}

// WaitCalls reports how many times Wait was invoked for h.
func (t *Transport) WaitCalls(h api.Handle) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waitCalls[h]
}

// TestCalls reports how many times Test was invoked for h.
func (t *Transport) TestCalls(h api.Handle) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.testCalls[h]
}

// Outstanding reports whether h has been issued and not yet completed.
func (t *Transport) Outstanding(h api.Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[h]
	return ok
}
