// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Completion dispatch machinery backing the fake transport engine: a
// resizable worker pool fed from a bounded MPMC task ring.
package concurrency
