package goexpr

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration read by the goexpr command.
//
//	max_depth: 4096
//	prelude: true
//	vars:
//	  limit: "10"
//	  slot: ~        # declared, unbound
type Config struct {
	MaxDepth int                `yaml:"max_depth"`
	Prelude  *bool              `yaml:"prelude"`
	Vars     map[string]*string `yaml:"vars"`
}

// ConfigError collects validation failures in a Config.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	return "config: " + strings.Join(e.Issues, "; ")
}

// LoadConfig decodes and validates a YAML config. Unknown keys are errors.
// An empty document yields the zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var issues []string
	if c.MaxDepth < 0 {
		issues = append(issues, fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	for _, name := range c.varNames() {
		if !IsIdent(name) {
			issues = append(issues, fmt.Sprintf("invalid variable name %q", name))
			continue
		}
		if src := c.Vars[name]; src != nil {
			if _, err := Parse(*src); err != nil {
				issues = append(issues, fmt.Sprintf("var %s: %v", name, err))
			}
		}
	}
	if len(issues) > 0 {
		return &ConfigError{Issues: issues}
	}
	return nil
}

func (c *Config) varNames() []string {
	names := make([]string, 0, len(c.Vars))
	for name := range c.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UsePrelude reports whether the prelude library should be loaded. It
// defaults to true.
func (c *Config) UsePrelude() bool {
	return c.Prelude == nil || *c.Prelude
}

// Apply binds the configured variables into b.
func (c *Config) Apply(b Binder) error {
	for _, name := range c.varNames() {
		src := c.Vars[name]
		if src == nil {
			b.Bind(name, nil)
			continue
		}
		node, err := Parse(*src)
		if err != nil {
			return fmt.Errorf("var %s: %w", name, err)
		}
		b.Bind(name, node)
	}
	return nil
}
