package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nomad010/contiguous-ds/internal/config"
	"github.com/nomad010/contiguous-ds/pkg/contigset"
	logpkg "github.com/nomad010/contiguous-ds/pkg/log"
)

// NewBenchCommand constructs the `bench` command: drive a randomized
// insert/erase stream through the deferred log and report throughput.
func NewBenchCommand(cfg *config.Config, logger logpkg.Logger) *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized insert/erase workload and report throughput",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := cfg.Bench.Ops
			if cmd.Flags().Changed("ops") {
				ops, _ = cmd.Flags().GetInt("ops")
			}
			keyspace, _ := cmd.Flags().GetInt("keyspace")
			seed, _ := cmd.Flags().GetInt64("seed")
			eraseFrac, _ := cmd.Flags().GetInt("erase-pct")
			if ops <= 0 {
				return fmt.Errorf("ops must be > 0, got %d", ops)
			}
			if keyspace <= 0 {
				return fmt.Errorf("keyspace must be > 0, got %d", keyspace)
			}
			if eraseFrac < 0 || eraseFrac > 100 {
				return fmt.Errorf("erase-pct must be in [0,100], got %d", eraseFrac)
			}

			s := contigset.New[int](contigset.Options{
				BufferOps: cfg.BufferOps,
				Logger:    logger.WithComponent("contigset"),
			})
			rng := rand.New(rand.NewSource(seed))

			inserts, erases := 0, 0
			start := time.Now()
			for i := 0; i < ops; i++ {
				v := rng.Intn(keyspace)
				if rng.Intn(100) < eraseFrac {
					s.Erase(v)
					erases++
				} else {
					s.Insert(v)
					inserts++
				}
			}
			size := s.Len() // forces the final reconciliation
			elapsed := time.Since(start)

			rate := float64(ops) / elapsed.Seconds()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ops:        %s (%s inserts, %s erases)\n",
				humanize.Comma(int64(ops)), humanize.Comma(int64(inserts)), humanize.Comma(int64(erases)))
			fmt.Fprintf(out, "buffer ops: %d\n", cfg.BufferOps)
			fmt.Fprintf(out, "final size: %s\n", humanize.Comma(int64(size)))
			fmt.Fprintf(out, "elapsed:    %s\n", elapsed.Round(time.Microsecond))
			fmt.Fprintf(out, "throughput: %s ops/sec\n", humanize.CommafWithDigits(rate, 0))

			logger.Info("bench finished",
				logpkg.Int("ops", ops),
				logpkg.Int("final_size", size),
				logpkg.Duration("elapsed", elapsed))
			return nil
		},
	}
	benchCmd.Flags().Int("ops", cfg.Bench.Ops, "Total operations to record")
	benchCmd.Flags().Int("keyspace", 100_000, "Values are drawn uniformly from [0, keyspace)")
	benchCmd.Flags().Int64("seed", 1, "Random seed for a reproducible stream")
	benchCmd.Flags().Int("erase-pct", 25, "Percentage of operations that are erases")
	return benchCmd
}
