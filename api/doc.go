// Package api
// Author: momentics <momentics@gmail.com>
//
// Core contracts for hioload-req: the opaque native handle, the blocking
// wait / non-blocking test transport primitive, completion status, and the
// deferred post-wait work capability.
//
// The packages implementing these contracts never interpret handle bits;
// handles are forwarded to the Transport untouched.
package api
