package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomad010/contiguous-ds/internal/config"
	"github.com/nomad010/contiguous-ds/pkg/contigset"
	logpkg "github.com/nomad010/contiguous-ds/pkg/log"
)

// NewDemoCommand constructs the `demo` command: insert a run of consecutive
// integers through the deferred log, then print the reconciled ascending
// sequence one value per line.
func NewDemoCommand(cfg *config.Config, logger logpkg.Logger) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert a run of integers and print the reconciled set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count := cfg.Demo.Count
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			if count < 0 {
				return fmt.Errorf("count must be >= 0, got %d", count)
			}

			s := contigset.New[int](contigset.Options{
				BufferOps: cfg.BufferOps,
				Logger:    logger.WithComponent("contigset"),
			})
			for i := 0; i < count; i++ {
				s.Insert(i)
			}

			out := cmd.OutOrStdout()
			for v := range s.All() {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	demoCmd.Flags().Int("count", cfg.Demo.Count, "How many consecutive integers to insert")
	return demoCmd
}
