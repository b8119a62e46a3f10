package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CONTIG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CONTIG_BUFFER_OPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BufferOps = n
		}
	}
	if v := os.Getenv("CONTIG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CONTIG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CONTIG_DEMO_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Demo.Count = n
		}
	}
	if v := os.Getenv("CONTIG_BENCH_OPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bench.Ops = n
		}
	}
}
