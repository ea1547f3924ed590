// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Defines the native completion primitive abstraction the request layer
// drives. Implementations own all progress and scheduling concerns.

package api

// Transport is the native non-blocking completion primitive. Exactly two
// operations exist on an outstanding handle: a blocking Wait and a
// non-blocking Test.
//
// Both must treat HandleNone as a trivially complete operation: return an
// immediate zero Status with no error. Errors reported here are terminal for
// the operation; the request layer never retries and never downgrades an
// error to "still pending".
type Transport interface {
	// Wait blocks the calling goroutine until the operation identified by h
	// completes, returning its completion Status.
	Wait(h Handle) (Status, error)

	// Test reports without blocking whether the operation identified by h
	// has completed, populating the Status only when done is true.
	Test(h Handle) (done bool, stat Status, err error)
}
