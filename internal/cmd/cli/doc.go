// Package cli contains Cobra CLI commands for contigset.
//
// The commands exercise the deferred-write sorted set in
// pkg/contigset from a terminal. They are primarily intended for
// demonstration and quick performance checks.
//
// Usage
//
//	contigset demo --count 20
//
//	contigset bench --ops 1000000 --keyspace 100000 --seed 1
//
// Defaults come from internal/config (JSON file plus CONTIG_* env
// overlay); flags override per invocation.
package cli
