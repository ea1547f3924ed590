// File: request/request.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Request handle lifecycle: create, clone, assign, release, wait, test,
// prior-chain attach and post-wait work enqueue.

package request

import (
	"github.com/momentics/hioload-req/api"
)

// StrictChecks reports whether this build carries the strict-mode lifecycle
// assertions (-tags strictchecks).
const StrictChecks = strictChecks

// Request is a handle for one outstanding non-blocking operation.
// The zero value is not usable; construct through New or NewWithHandle.
//
// Go has no implicit copy or destruction, so the sharing semantics are
// explicit methods: Clone shares the work list and duplicates the chain,
// Assign re-targets an existing handle, Release drops the handle's shares.
// Every Clone must eventually be Released.
type Request struct {
	transport api.Transport
	handle    api.Handle
	prior     *Request  // owned; newest attachment at the head
	work      *workList // shared across clones; nil until first enqueue
}

// New returns an empty request: no outstanding operation, no chain, no work.
func New(t api.Transport) *Request {
	return &Request{transport: t, handle: api.HandleNone}
}

// NewWithHandle wraps an outstanding native handle.
func NewWithHandle(t api.Transport, h api.Handle) *Request {
	return &Request{transport: t, handle: h}
}

// Handle returns the raw native handle currently wrapped.
func (r *Request) Handle() api.Handle { return r.handle }

// Clone returns a copy sharing this request's work list and owning a private
// duplicate of its prior chain. Chain mutation on one copy never affects the
// other; the work lists hanging off duplicated links stay shared.
func (r *Request) Clone() *Request {
	c := &Request{transport: r.transport, handle: r.handle, work: r.work}
	if r.work != nil {
		r.work.acquire()
	}
	if r.prior != nil {
		c.prior = r.prior.Clone()
	}
	return c
}

// Assign re-targets r at other's operation, releasing whatever r held: the
// work-list share is dropped, the owned chain released, then r takes on
// other's state exactly as Clone builds it.
func (r *Request) Assign(other *Request) {
	if r == other {
		return
	}
	r.reset()
	r.transport = other.transport
	r.handle = other.handle
	r.work = other.work
	if r.work != nil {
		r.work.acquire()
	}
	if other.prior != nil {
		r.prior = other.prior.Clone()
	}
}

// AssignHandle re-targets r at a bare native handle on the same transport.
// The handle is fully reset: the work-list share is released and the prior
// chain detached, so no state of the previous operation leaks into the new
// one.
func (r *Request) AssignHandle(h api.Handle) {
	r.reset()
	r.handle = h
}

// Release drops this handle's work-list share, freeing the list when the
// last share goes, and recursively releases the owned prior chain. It does
// not cancel the underlying operation. Release is idempotent.
func (r *Request) Release() {
	r.reset()
	r.handle = api.HandleNone
}

func (r *Request) reset() {
	if r.work != nil {
		r.work.release()
		r.work = nil
	}
	if r.prior != nil {
		r.prior.Release()
		r.prior = nil
	}
}

// Wait blocks until the whole composite operation completes: first the prior
// chain, oldest attachment first, then this request's own operation, then
// the queued post-wait work front to back, each item exactly once.
//
// The returned Status describes this request's own operation; chain statuses
// are discarded. A transport error, whether from the chain or the own
// operation, propagates unmodified and skips the work queue. On success the
// native handle is consumed: it resets to HandleNone, so a repeated Wait
// returns immediately and re-runs nothing.
func (r *Request) Wait() (api.Status, error) {
	if r.prior != nil {
		if _, err := r.prior.Wait(); err != nil {
			// Already counted at the level whose transport reported it.
			return api.Status{}, err
		}
	}
	var stat api.Status
	if r.transport != nil {
		var err error
		stat, err = r.transport.Wait(r.handle)
		if err != nil {
			countWaitFailure()
			return api.Status{}, err
		}
	}
	r.handle = api.HandleNone
	if r.work != nil {
		r.work.drain()
	}
	countWaitCompleted()
	return stat, nil
}

// Test polls this request's own operation without blocking.
//
// Test never inspects the prior chain and never runs queued work; only Wait
// drains either. A caller that polls a chained handle without ever waiting
// will not observe chain completion. This asymmetry is deliberate and
// load-bearing: polling must stay side-effect free.
func (r *Request) Test() (bool, error) {
	done, _, err := r.testOwn()
	return done, err
}

// TestStatus is Test additionally populating stat when the operation has
// completed.
func (r *Request) TestStatus(stat *api.Status) (bool, error) {
	done, s, err := r.testOwn()
	if done && err == nil && stat != nil {
		*stat = s
	}
	return done, err
}

func (r *Request) testOwn() (bool, api.Status, error) {
	if r.transport == nil {
		return true, api.Status{}, nil
	}
	done, stat, err := r.transport.Test(r.handle)
	if err != nil {
		return false, api.Status{}, err
	}
	// The handle is deliberately not consumed here: only Wait retires it,
	// so a poll-then-wait sequence still observes the operation's Status.
	return done, stat, nil
}

// AddPriorRequest attaches prior as a new predecessor whose completion,
// including its own chain, must be observed by Wait before this request's
// own completion. Priors complete in attachment order.
//
// The attached request must not own a prior chain itself; chains stay a
// simple path, never a tree. Violation returns api.ErrAlreadyChained.
// r keeps a private clone; the caller remains responsible for releasing
// prior.
func (r *Request) AddPriorRequest(prior *Request) error {
	if prior.prior != nil {
		return api.ErrAlreadyChained
	}
	link := prior.Clone()
	// The new link takes ownership of the existing chain: recursion reaches
	// the oldest attachment first, so completion order equals attachment
	// order.
	link.prior = r.prior
	r.prior = link
	countPriorAttached()
	return nil
}

// AddPostWaitWork appends item to this request's shared work queue, lazily
// allocating the queue on first use. Items run in FIFO order on the next
// successful Wait. Ownership of item transfers to the queue.
func (r *Request) AddPostWaitWork(item api.PostWaitWork) {
	if r.work == nil {
		r.work = newWorkList()
	}
	r.work.append(item)
}
