// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides a controllable Transport whose handles are signaled explicitly,
// and an Engine that drives completions asynchronously through a worker pool.
package fake
