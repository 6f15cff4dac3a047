package driver

import (
	"os"
	"path/filepath"

	"github.com/ksyq12/web-distributor/internal/config"
	"github.com/ksyq12/web-distributor/internal/errors"
)

// Driver is one output location: it knows how to rotate it, what each
// mapping entry is rendered to, and what the file is called.
type Driver interface {
	// Name returns the driver name (nginx, acme-redirect)
	Name() string

	// Dir returns the directory generated files are written to
	Dir() string

	// Rotate moves the previous generation into backup
	Rotate(timestamp string) error

	// FileName returns the generated file name for a namespace
	FileName(namespace string) string

	// Write renders and writes the file for one mapping entry and returns its path
	Write(namespace, target string) (string, error)
}

// All returns the drivers for cfg in the order a run must process them.
func All(cfg *config.Config) []Driver {
	return []Driver{
		NewNginx(cfg.Home),
		NewAcmeRedirect(cfg.AcmeRedirectConfigs),
	}
}

// writeFile writes content to dir/name, creating dir if needed.
func writeFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WrapPath(errors.ErrCodeWrite, "create directory", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.WrapPath(errors.ErrCodeWrite, "write", path, err)
	}
	return path, nil
}
