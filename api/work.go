// File: api/work.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deferred post-wait work capability.

package api

// PostWaitWork is a deferred action queued on a request and executed exactly
// once when the wait owning its queue completes. Ownership transfers to the
// enqueuing request's work list; the item is dropped after running.
type PostWaitWork interface {
	Run()
}

// PostWaitWorkFunc adapts a plain function to the PostWaitWork capability.
type PostWaitWorkFunc func()

// Run implements PostWaitWork.
func (f PostWaitWorkFunc) Run() { f() }

// PostWaitSignal returns a work item that closes ch when run, letting a
// goroutine observe the completion of a wait it did not perform itself.
func PostWaitSignal(ch chan<- struct{}) PostWaitWork {
	return PostWaitWorkFunc(func() { close(ch) })
}
