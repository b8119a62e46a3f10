package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	BufferOps int           `json:"bufferOps"`
	LogLevel  string        `json:"logLevel"`
	LogFormat string        `json:"logFormat"`
	Demo      DemoDefaults  `json:"demo"`
	Bench     BenchDefaults `json:"bench"`
}

// DemoDefaults captures the demo command's baseline inputs.
type DemoDefaults struct {
	Count int `json:"count"`
}

// BenchDefaults captures the bench command's baseline inputs.
type BenchDefaults struct {
	Ops int `json:"ops"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		BufferOps: 64,
		LogLevel:  "info",
		LogFormat: "text",
		Demo: DemoDefaults{
			Count: 20,
		},
		Bench: BenchDefaults{
			Ops: 1_000_000,
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults. YAML is intentionally unsupported to keep deps light.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	ext := filepath.Ext(path)
	switch ext {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate rejects configurations the container cannot run with.
func (c Config) Validate() error {
	if c.BufferOps <= 0 {
		return fmt.Errorf("bufferOps must be > 0, got %d", c.BufferOps)
	}
	if c.Demo.Count < 0 {
		return fmt.Errorf("demo.count must be >= 0, got %d", c.Demo.Count)
	}
	if c.Bench.Ops <= 0 {
		return fmt.Errorf("bench.ops must be > 0, got %d", c.Bench.Ops)
	}
	return nil
}
