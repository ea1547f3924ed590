// File: internal/concurrency/dispatcher.go
// Package concurrency implements the resizable completion dispatcher.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dispatcher fans submitted tasks out across worker goroutines pulling from
// a shared lock-free ring. Submission wakes at most one idle worker; a woken
// worker drains the ring until empty, so a collapsed wakeup burst still gets
// every task executed.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work to execute.
type Task func()

// Dispatcher manages a pool of worker goroutines.
type Dispatcher struct {
	ring   *taskRing
	notify chan struct{} // capacity 1: pending-wakeup flag, not a task count

	mu      sync.Mutex // protects workers/resizing
	workers []*dispatchWorker
	closed  atomic.Bool

	// statistics
	submitted atomic.Int64
	completed atomic.Int64
}

// NewDispatcher creates a dispatcher with numWorkers goroutines and a task
// ring of queueCap entries. numWorkers <= 0 defaults to runtime.NumCPU().
func NewDispatcher(numWorkers, queueCap int) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueCap <= 0 {
		queueCap = 1024
	}
	d := &Dispatcher{
		ring:   newTaskRing(queueCap),
		notify: make(chan struct{}, 1),
	}
	d.mu.Lock()
	d.spawnLocked(numWorkers)
	d.mu.Unlock()
	return d
}

// Submit enqueues a task for execution.
func (d *Dispatcher) Submit(t Task) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}
	if !d.ring.push(t) {
		return ErrQueueSaturated
	}
	d.submitted.Add(1)
	select {
	case d.notify <- struct{}{}:
	default:
		// a wakeup is already pending
	}
	return nil
}

// NumWorkers returns the current number of workers.
func (d *Dispatcher) NumWorkers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.workers)
}

// Resize adjusts the worker count at runtime, spawning or retiring workers.
func (d *Dispatcher) Resize(n int) {
	if n < 1 || d.closed.Load() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if delta := n - len(d.workers); delta > 0 {
		d.spawnLocked(delta)
	} else if delta < 0 {
		retire := d.workers[n:]
		d.workers = d.workers[:n]
		for _, w := range retire {
			close(w.stopCh)
		}
	}
}

// Stats returns basic dispatcher metrics.
func (d *Dispatcher) Stats() map[string]int64 {
	submitted := d.submitted.Load()
	completed := d.completed.Load()
	return map[string]int64{
		"submitted_tasks": submitted,
		"completed_tasks": completed,
		"pending_tasks":   submitted - completed,
		"num_workers":     int64(d.NumWorkers()),
	}
}

// Close stops all workers and waits for them to exit. Tasks still queued are
// dropped, not executed.
func (d *Dispatcher) Close() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}
	d.mu.Lock()
	workers := d.workers
	d.workers = nil
	d.mu.Unlock()
	for _, w := range workers {
		close(w.stopCh)
	}
	for _, w := range workers {
		<-w.doneCh
	}
}

func (d *Dispatcher) spawnLocked(n int) {
	for i := 0; i < n; i++ {
		w := &dispatchWorker{
			dispatcher: d,
			stopCh:     make(chan struct{}),
			doneCh:     make(chan struct{}),
		}
		d.workers = append(d.workers, w)
		go w.run()
	}
}

// dispatchWorker is a single dispatcher goroutine.
type dispatchWorker struct {
	dispatcher *Dispatcher
	stopCh     chan struct{}
	doneCh     chan struct{}
}

func (w *dispatchWorker) run() {
	defer close(w.doneCh)
	d := w.dispatcher
	for {
		select {
		case <-w.stopCh:
			return
		case <-d.notify:
			for {
				t, ok := d.ring.pop()
				if !ok {
					break
				}
				w.execute(t)
			}
			// Another producer may have pushed between the last pop and
			// here; leave its wakeup token for whichever worker grabs it.
		}
	}
}

// execute runs the task, recovering panics to keep the worker alive.
func (w *dispatchWorker) execute(t Task) {
	defer func() {
		recover()
		w.dispatcher.completed.Add(1)
	}()
	t()
}
