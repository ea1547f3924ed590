// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

// MockTransport is a test and mock-friendly implementation of Transport.
// Unset funcs make the corresponding operation complete immediately with a
// zero Status.
type MockTransport struct {
	WaitFunc func(Handle) (Status, error)
	TestFunc func(Handle) (bool, Status, error)
}

func (m *MockTransport) Wait(h Handle) (Status, error) {
	if m.WaitFunc == nil {
		return Status{}, nil
	}
	return m.WaitFunc(h)
}

func (m *MockTransport) Test(h Handle) (bool, Status, error) {
	if m.TestFunc == nil {
		return true, Status{}, nil
	}
	return m.TestFunc(h)
}
