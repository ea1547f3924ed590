// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the concurrency package.

package concurrency

import "errors"

var (
	// ErrDispatcherClosed indicates the dispatcher has been shut down.
	ErrDispatcherClosed = errors.New("dispatcher is closed")

	// ErrQueueSaturated indicates the task ring is full and the task was not accepted.
	ErrQueueSaturated = errors.New("task queue saturated")
)
