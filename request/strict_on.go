//go:build strictchecks

// File: request/strict_on.go
// Author: momentics <momentics@gmail.com>
//
// Strict-mode lifecycle assertions. Build with -tags strictchecks to fault
// on caller lifetime bugs the release build cannot afford to look for.

package request

const strictChecks = true

// fault reports an invariant violation. Strict checks guard programmer
// errors, so recovery is meaningless: the process state is already wrong.
func fault(err error) {
	panic(err)
}
