package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propcheck"
)

// fileConfig mirrors propcheck.Config's tunable fields for YAML loading.
// Pointer fields leave DefaultConfig's value untouched when absent from
// the file.
type fileConfig struct {
	Tests           *int     `yaml:"tests"`
	MaxTests        *int     `yaml:"maxTests"`
	Size            *int     `yaml:"size"`
	MinTestsPassed  *int     `yaml:"minTestsPassed"`
	MaxDiscardRatio *float64 `yaml:"maxDiscardRatio"`
	MaxShrinkCount  *int     `yaml:"maxShrinkCount"`
	Seed            *int64   `yaml:"seed"`
}

// loadConfig returns DefaultConfig when path is empty, otherwise
// DefaultConfig with any fields present in the YAML file at path
// overridden.
func loadConfig(path string) (propcheck.Config, error) {
	cfg := propcheck.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var overrides fileConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, err
	}

	if overrides.Tests != nil {
		cfg.Tests = *overrides.Tests
	}
	if overrides.MaxTests != nil {
		cfg.MaxTests = *overrides.MaxTests
	}
	if overrides.Size != nil {
		cfg.Size = *overrides.Size
	}
	if overrides.MinTestsPassed != nil {
		cfg.MinTestsPassed = *overrides.MinTestsPassed
	}
	if overrides.MaxDiscardRatio != nil {
		cfg.MaxDiscardRatio = *overrides.MaxDiscardRatio
	}
	if overrides.MaxShrinkCount != nil {
		cfg.MaxShrinkCount = *overrides.MaxShrinkCount
	}
	if overrides.Seed != nil {
		cfg.Seed = *overrides.Seed
	}
	return cfg, nil
}
