package config

import (
	"fmt"
	"net/netip"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/burrow/pkg/types"
)

// DefaultPath is where the agent looks for its config when no path is
// given
const DefaultPath = "/etc/burrow/config.yaml"

// Config holds resolver defaults. Flags override file values; the file
// is optional.
type Config struct {
	// Backend is the preferred backend name, or "auto" to probe
	Backend string `yaml:"backend"`

	// Servers are the default resolver addresses used when a lookup
	// does not name its own
	Servers []string `yaml:"servers"`

	// TimeoutSeconds bounds each external tool invocation
	TimeoutSeconds int `yaml:"timeout_seconds"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend:        "auto",
		TimeoutSeconds: 10,
		Log:            LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. A missing file at
// the default path is not an error; a missing file at an explicit path
// is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks server addresses and the timeout
func (c *Config) Validate() error {
	for _, s := range c.Servers {
		if err := ValidateServer(s); err != nil {
			return err
		}
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeout_seconds must not be negative", types.ErrBadInput)
	}
	return nil
}

// ValidateServer checks one resolver address: a bare IP or an
// ip:port / [v6]:port pair.
func ValidateServer(s string) error {
	if _, err := netip.ParseAddr(s); err == nil {
		return nil
	}
	if _, err := netip.ParseAddrPort(s); err == nil {
		return nil
	}
	return fmt.Errorf("%w: malformed server address %q", types.ErrBadInput, s)
}

// Timeout returns the per-invocation timeout as a duration
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Get looks up a configuration value by key with a default, the
// option-lookup contract consumed by callers that treat config as a
// flat keyspace.
func (c *Config) Get(key string, def any) any {
	switch key {
	case "backend":
		if c.Backend != "" {
			return c.Backend
		}
	case "servers":
		if len(c.Servers) > 0 {
			return c.Servers
		}
	case "timeout_seconds":
		if c.TimeoutSeconds > 0 {
			return c.TimeoutSeconds
		}
	}
	return def
}
