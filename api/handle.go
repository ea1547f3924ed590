// File: api/handle.go
// Author: momentics <momentics@gmail.com>
//
// Opaque handle and completion status types shared across the library.

package api

// Handle identifies one outstanding non-blocking operation issued on a
// Transport. The zero value HandleNone means "nothing outstanding": waiting
// on it completes immediately with a zero Status.
//
// Handle values are opaque tokens minted by the transport. The request layer
// only stores and forwards them.
type Handle uint64

// HandleNone is the sentinel for "no outstanding operation".
const HandleNone Handle = 0

// Status carries the completion metadata a transport reports from Wait or
// Test. Its fields are informational; nothing in the request layer inspects
// them.
type Status struct {
	Source int // peer or lane the operation completed against
	Tag    int // transport-level tag of the completed operation
	Count  int // payload units transferred, transport-defined
}
