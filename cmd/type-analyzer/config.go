package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"type-analyzer/internal/suggest"
	"type-analyzer/options"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config drives a run of the demo.
type Config struct {
	// Types are catalog sample names, analyzed in order.
	Types []string `yaml:"types"`
	// Stages are the category masks requested one after another for each type.
	Stages []options.Category `yaml:"stages"`
	Format string             `yaml:"format"`
	Dump   bool               `yaml:"dump"`
}

// LoadConfig loads and parses a YAML config file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig parses YAML data into a Config. Empty data yields the defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults reproduces the classic demo: methods first, then everything.
func applyDefaults(cfg *Config) {
	if len(cfg.Types) == 0 {
		cfg.Types = []string{"Example"}
	}
	if len(cfg.Stages) == 0 {
		cfg.Stages = []options.Category{options.CategoryMethods, options.CategoryAll}
	}
	if cfg.Format == "" {
		cfg.Format = formatText
	}
}

// Validate checks the config against the sample catalog.
func (c *Config) Validate() error {
	var errs []error

	for _, name := range c.Types {
		if _, ok := catalog[name]; ok {
			continue
		}
		if guess, ok := suggest.Closest(name, sampleNames()); ok {
			errs = append(errs, fmt.Errorf("unknown sample type %q, did you mean %s?", name, guess))
			continue
		}
		errs = append(errs, fmt.Errorf("unknown sample type %q (known: %v)", name, sampleNames()))
	}
	for i, stage := range c.Stages {
		if !stage.Valid() {
			errs = append(errs, fmt.Errorf("stage %d: %w: %s", i+1, options.ErrUnknownCategory, stage))
		}
	}
	if c.Format != formatText && c.Format != formatYAML {
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}

	return errors.Join(errs...)
}
