package driver

import "path/filepath"

// MockDriver is a test double for Driver interface
type MockDriver struct {
	name string
	dir  string

	// Function mocks - set these to customize behavior
	RotateFunc func(timestamp string) error
	WriteFunc  func(namespace, target string) (string, error)

	// Call tracking - check these to verify interactions
	RotateCalls []string
	WriteCalls  []WriteCall
}

// WriteCall records arguments passed to Write
type WriteCall struct {
	Namespace string
	Target    string
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name, dir string) *MockDriver {
	return &MockDriver{
		name:        name,
		dir:         dir,
		RotateCalls: make([]string, 0),
		WriteCalls:  make([]WriteCall, 0),
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// Dir returns the configured directory
func (m *MockDriver) Dir() string {
	return m.dir
}

// FileName returns <namespace>.<name>
func (m *MockDriver) FileName(namespace string) string {
	return namespace + "." + m.name
}

// Rotate records the call and invokes the mock function if set
func (m *MockDriver) Rotate(timestamp string) error {
	m.RotateCalls = append(m.RotateCalls, timestamp)
	if m.RotateFunc != nil {
		return m.RotateFunc(timestamp)
	}
	return nil
}

// Write records the call and invokes the mock function if set
func (m *MockDriver) Write(namespace, target string) (string, error) {
	m.WriteCalls = append(m.WriteCalls, WriteCall{Namespace: namespace, Target: target})
	if m.WriteFunc != nil {
		return m.WriteFunc(namespace, target)
	}
	return filepath.Join(m.dir, m.FileName(namespace)), nil
}
