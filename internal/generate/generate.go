// Package generate runs one web-distributor generation: load the config,
// rotate each output location, and write one file per mapping entry into
// each of them.
//
// The first failure stops the run. Files already written stay on disk and
// the previous generation stays in its backup slot.
package generate

import (
	"time"

	"github.com/ksyq12/web-distributor/internal/config"
	"github.com/ksyq12/web-distributor/internal/driver"
	"github.com/ksyq12/web-distributor/internal/logger"
	"github.com/ksyq12/web-distributor/internal/rotate"
)

// Options configures Run.
type Options struct {
	// ConfigPath defaults to config.DefaultPath.
	ConfigPath string

	// Now defaults to time.Now. It is read once per run.
	Now func() time.Time
}

// Output records what one driver wrote.
type Output struct {
	Driver string
	Dir    string
	Files  []string
}

// Result summarizes a completed run.
type Result struct {
	ConfigPath string
	Timestamp  string
	Outputs    []Output
}

// Generator writes a config's mapping through a fixed set of drivers.
type Generator struct {
	Config  *config.Config
	Drivers []driver.Driver
}

// New returns a Generator using the real drivers for cfg.
func New(cfg *config.Config) *Generator {
	return &Generator{
		Config:  cfg,
		Drivers: driver.All(cfg),
	}
}

// Run loads the config and performs one generation.
func Run(opts Options) (*Result, error) {
	opts.setDefaults()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	ts := rotate.Timestamp(opts.Now())
	result, err := New(cfg).Generate(ts)
	if err != nil {
		return nil, err
	}
	result.ConfigPath = opts.ConfigPath
	return result, nil
}

func (o *Options) setDefaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = config.DefaultPath
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Generate rotates and repopulates every driver in order, all under the
// same timestamp. Each driver is rotated immediately before it is written.
func (g *Generator) Generate(timestamp string) (*Result, error) {
	namespaces := g.Config.Namespaces()
	result := &Result{
		Timestamp: timestamp,
		Outputs:   make([]Output, 0, len(g.Drivers)),
	}

	logger.Info("starting generation", "timestamp", timestamp, "entries", len(namespaces))

	for _, drv := range g.Drivers {
		if err := drv.Rotate(timestamp); err != nil {
			return nil, err
		}

		out := Output{
			Driver: drv.Name(),
			Dir:    drv.Dir(),
			Files:  make([]string, 0, len(namespaces)),
		}
		for _, ns := range namespaces {
			path, err := drv.Write(ns, g.Config.Map[ns])
			if err != nil {
				return nil, err
			}
			logger.Info("wrote", "driver", drv.Name(), "path", path)
			out.Files = append(out.Files, path)
		}

		logger.Info("generated", "driver", drv.Name(), "dir", drv.Dir(), "files", len(out.Files))
		result.Outputs = append(result.Outputs, out)
	}

	return result, nil
}
