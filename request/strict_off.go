//go:build !strictchecks

// File: request/strict_off.go
// Author: momentics <momentics@gmail.com>

package request

const strictChecks = false

func fault(error) {}
