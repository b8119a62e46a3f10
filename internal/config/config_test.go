package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BufferOps != 64 {
		t.Fatalf("default buffer ops")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level")
	}
	if cfg.Demo.Count != 20 {
		t.Fatalf("default demo count")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "contigset.json")
	data := []byte(`{"bufferOps":16,"logLevel":"debug","demo":{"count":5},"bench":{"ops":1000}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BufferOps != 16 {
		t.Fatalf("expected 16")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug")
	}
	if cfg.Demo.Count != 5 {
		t.Fatalf("expected 5")
	}
	if cfg.Bench.Ops != 1000 {
		t.Fatalf("expected 1000")
	}
}

func TestLoadRejectsYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "contigset.yaml")
	if err := os.WriteFile(file, []byte("bufferOps: 16\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("yaml should be rejected")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("CONTIG_BUFFER_OPS", "8")
	os.Setenv("CONTIG_LOG_LEVEL", "warn")
	os.Setenv("CONTIG_DEMO_COUNT", "50")
	t.Cleanup(func() {
		os.Unsetenv("CONTIG_BUFFER_OPS")
		os.Unsetenv("CONTIG_LOG_LEVEL")
		os.Unsetenv("CONTIG_DEMO_COUNT")
	})
	FromEnv(&cfg)
	if cfg.BufferOps != 8 {
		t.Fatalf("env override buffer ops")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("env override level")
	}
	if cfg.Demo.Count != 50 {
		t.Fatalf("env override demo count")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.BufferOps = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("zero buffer ops must be rejected")
	}
	cfg = Default()
	cfg.Bench.Ops = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative bench ops must be rejected")
	}
}
