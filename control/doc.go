// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, and debug introspection layer for
// hioload-req.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed atomic counters for request/work-list telemetry
//   - Immutable snapshot config reads with hot-reload observers
//   - Debug hooks and probe registration for state export
package control
