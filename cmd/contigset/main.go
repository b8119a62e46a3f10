package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nomad010/contiguous-ds/internal/cmd/cli"
	cfgpkg "github.com/nomad010/contiguous-ds/internal/config"
	logpkg "github.com/nomad010/contiguous-ds/pkg/log"
)

func main() {
	cfg := cfgpkg.Default()
	if path := os.Getenv("CONTIG_CONFIG"); path != "" {
		loaded, err := cfgpkg.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfgpkg.FromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "contigset",
		Short: "Deferred-write sorted set CLI",
		Long:  "contigset exercises the contiguous-ds deferred-write sorted set: mutations are buffered in a fixed-capacity operation log and reconciled in one pass.",
	}
	rootCmd.AddCommand(cli.NewDemoCommand(&cfg, logger))
	rootCmd.AddCommand(cli.NewBenchCommand(&cfg, logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger from config; bad level/format names
// fall back to defaults rather than failing startup.
func newLogger(cfg cfgpkg.Config) logpkg.Logger {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
}
