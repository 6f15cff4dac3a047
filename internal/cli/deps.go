package cli

import (
	"time"

	"github.com/ksyq12/web-distributor/internal/generate"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	Runner Runner
	Clock  Clock
}

// Runner performs one generation
type Runner interface {
	Run(opts generate.Options) (*generate.Result, error)
}

// Clock supplies the generation timestamp
type Clock interface {
	Now() time.Time
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	Runner: &realRunner{},
	Clock:  &realClock{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

type realRunner struct{}

func (r *realRunner) Run(opts generate.Options) (*generate.Result, error) {
	return generate.Run(opts)
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}
