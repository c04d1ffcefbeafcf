package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads game configuration from a YAML file. Fields absent from the
// file keep their built-in defaults; list-valued tables (plans,
// achievements, wheel) are replaced wholesale when present.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
