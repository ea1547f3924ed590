// File: request/worklist.go
// Author: momentics <momentics@gmail.com>
//
// Shared, refcounted FIFO of deferred post-wait work.

package request

import (
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-req/api"
)

// workList is the one structure clones of a Request share. The refcount
// equals the number of live handles referencing the list; the list is freed
// exactly when the count reaches zero.
//
// The count is atomic so clones may be released from different goroutines.
// Item mutation (append, drain) is not synchronized: one goroutine at a time
// owns the queue, per the package contract.
type workList struct {
	items    *queue.Queue
	refs     atomic.Int32
	draining atomic.Bool
}

func newWorkList() *workList {
	wl := &workList{items: queue.New()}
	wl.refs.Store(1)
	countWorkListAllocated()
	return wl
}

func (wl *workList) acquire() {
	wl.refs.Add(1)
}

// release drops one share, freeing the list at zero. Freeing a list that
// still holds undrained items is a caller lifetime bug: the deferred work
// would be lost. Strict builds fault on it.
func (wl *workList) release() {
	if wl.refs.Add(-1) > 0 {
		return
	}
	if strictChecks && wl.items.Length() > 0 {
		fault(api.NewError(api.ErrCodeInvariantViolation,
			"work list freed with pending items").
			WithContext("pending", wl.items.Length()))
	}
	wl.items = nil
	countWorkListFreed()
}

func (wl *workList) append(item api.PostWaitWork) {
	wl.items.Add(item)
}

// drain runs and removes every queued item front to back, each exactly once.
// Removing before running makes a second drain of the same item structurally
// impossible; strict builds additionally fault on re-entrant drains.
func (wl *workList) drain() {
	if strictChecks {
		if !wl.draining.CompareAndSwap(false, true) {
			fault(api.NewError(api.ErrCodeInvariantViolation,
				"re-entrant work list drain"))
		}
		defer wl.draining.Store(false)
	}
	for wl.items.Length() > 0 {
		item := wl.items.Remove().(api.PostWaitWork)
		item.Run()
		countWorkItemRun()
	}
}
