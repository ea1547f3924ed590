// File: internal/concurrency/task_ring.go
// Package concurrency provides the bounded MPMC ring feeding dispatch workers.
// Author: momentics <momentics@gmail.com>
//
// Sequence-numbered cells per Dmitry Vyukov's bounded MPMC queue pattern.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

// taskRing is a bounded multi-producer/multi-consumer queue of Tasks.
// Capacity rounds up to a power of two.
type taskRing struct {
	head  uint64
	_     [cacheLinePad]byte
	tail  uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []ringCell
}

type ringCell struct {
	sequence atomic.Uint64
	task     Task
}

func newTaskRing(capacity int) *taskRing {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	r := &taskRing{
		mask:  uint64(size - 1),
		cells: make([]ringCell, size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// push adds a task; returns false when the ring is full.
func (r *taskRing) push(t Task) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)
		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.task = t
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false
		default:
			// tail moved, retry
		}
	}
}

// pop removes the oldest task; ok is false when the ring is empty.
func (r *taskRing) pop() (t Task, ok bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)
		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				t = c.task
				c.task = nil
				c.sequence.Store(head + r.mask + 1)
				return t, true
			}
		case dif < 0:
			return nil, false
		default:
			// head moved, retry
		}
	}
}
