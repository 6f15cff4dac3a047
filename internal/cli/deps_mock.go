package cli

import (
	"time"

	"github.com/ksyq12/web-distributor/internal/generate"
)

// MockRunner is a test double for Runner
type MockRunner struct {
	Result *generate.Result
	Err    error
	Calls  []generate.Options
}

func (m *MockRunner) Run(opts generate.Options) (*generate.Result, error) {
	m.Calls = append(m.Calls, opts)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &generate.Result{ConfigPath: opts.ConfigPath}, nil
}

// MockClock is a test double for Clock
type MockClock struct {
	T time.Time
}

func (m *MockClock) Now() time.Time {
	return m.T
}
