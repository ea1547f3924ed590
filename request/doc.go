// Package request
// Author: momentics <momentics@gmail.com>
//
// Asynchronous-operation handles for hioload-req.
//
// A Request tracks completion of one non-blocking operation issued on an
// api.Transport and layers two guarantees on top of the raw primitive:
//
//   - an owned chain of predecessor requests that must complete, in the order
//     they were attached, before the request's own operation counts as
//     finished;
//   - a shared, ordered queue of deferred post-wait work that runs exactly
//     once on the wait that drains it, no matter how many copies of the
//     handle exist across containers.
//
// Only Wait drains the chain and the work queue. Test polls the request's own
// operation and deliberately touches neither; callers that never wait never
// observe chain completion. A Request with no chain and no queued work costs
// no allocations beyond the handle itself.
//
// Requests are not safe for concurrent use of the same handle; the shared
// work list tolerates copies living on different goroutines but assumes one
// goroutine mutates it at a time.
package request
