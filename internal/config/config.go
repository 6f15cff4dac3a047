package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ksyq12/web-distributor/internal/errors"
	"github.com/ksyq12/web-distributor/internal/logger"
)

// Config is the input for a single generation run. It is never modified
// after Load returns.
type Config struct {
	// Home is the output root; proxy hosts are written to Home/nginx.
	Home string `toml:"home" yaml:"home"`

	// AcmeRedirectConfigs is the shared acme-redirect config directory.
	AcmeRedirectConfigs string `toml:"acme_redirect_configs" yaml:"acme_redirect_configs"`

	// Map maps public hostnames (namespaces) to backend addresses.
	Map map[string]string `toml:"map" yaml:"map"`
}

// Defaults written on first run.
const (
	DefaultPath                = "/etc/web-distributor.toml"
	DefaultHome                = "/etc/web-distributor"
	DefaultAcmeRedirectConfigs = "/etc/acme-redirect.d"
)

// New creates a Config with default roots and an empty mapping.
func New() *Config {
	return &Config{
		Home:                DefaultHome,
		AcmeRedirectConfigs: DefaultAcmeRedirectConfigs,
		Map:                 make(map[string]string),
	}
}

// Load reads the config at path. When no file exists, the defaults are
// written to path and returned. Keys other than the three known ones are
// ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.IsNotExist(err) {
			return nil, errors.WrapPath(errors.ErrCodeConfig, "read config", path, err)
		}

		cfg := New()
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		logger.Info("wrote default config", "path", path)
		return cfg, nil
	}

	cfg := &Config{}
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.WrapPath(errors.ErrCodeConfig, "parse config", path, err)
	}
	if cfg.Map == nil {
		cfg.Map = make(map[string]string)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapPath(errors.ErrCodeConfig, "invalid config", path, err)
	}

	logger.Info("loaded config", "path", path, "entries", len(cfg.Map))
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := encode(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "marshal config", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapPath(errors.ErrCodeConfig, "create config directory", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapPath(errors.ErrCodeConfig, "write config", path, err)
	}

	return nil
}

// Validate checks the fields a run cannot do without. Mapping keys and
// values are not inspected. Empty roots are rejected even though the file
// format allows them, so a run never writes relative to the working directory.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.Config("home must not be empty")
	}
	if c.AcmeRedirectConfigs == "" {
		return errors.Config("acme_redirect_configs must not be empty")
	}
	return nil
}

// Namespaces returns the mapping keys in sorted order.
func (c *Config) Namespaces() []string {
	names := make([]string, 0, len(c.Map))
	for name := range c.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decode(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return toml.Unmarshal(data, cfg)
}

func encode(path string, cfg *Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}
