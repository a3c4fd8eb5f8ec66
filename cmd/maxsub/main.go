// Command maxsub prints the maximum-sum contiguous subarray of a sequence.
//
// With no flags it solves the CLRS sample:
//
//	$ maxsub
//	Maximum subarray found between indices 7 and 10
//	Maximum sum: 43
package main

import (
	"fmt"
	"os"

	"github.com/mbzadegan/PhD-Research/algo/maxsub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

type options struct {
	seq     []int32
	low     int
	high    int
	format  string
	verify  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "maxsub",
		Short: "Find the maximum-sum contiguous subarray",
		Long: `Finds the contiguous subarray with the largest sum using the
divide-and-conquer algorithm (CLRS chapter 4).

Without --seq the 16-element sample from CLRS figure 4.3 is used.

Example:
  maxsub --seq=-2,1,-3,4,-1,2,1,-5,4 --low=1 --high=6`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Int32SliceVar(&opts.seq, "seq", nil, "comma separated sequence to search (default: CLRS sample)")
	flags.IntVar(&opts.low, "low", 0, "first index of the search range")
	flags.IntVar(&opts.high, "high", -1, "last index of the search range (-1 for the last element)")
	flags.StringVar(&opts.format, "format", formatText, "output format: text or yaml")
	flags.BoolVar(&opts.verify, "verify", false, "cross-check the sum with the linear solver")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	seq := maxsub.Sample()
	if cmd.Flags().Changed("seq") {
		seq = maxsub.Sequence(opts.seq)
	}

	high := opts.high
	if !cmd.Flags().Changed("high") || opts.high == -1 {
		high = len(seq) - 1
	}

	logger.Debug("solving",
		zap.Int("len", len(seq)),
		zap.Int("low", opts.low),
		zap.Int("high", high))

	best, err := maxsub.SolveRange(seq, opts.low, high)
	if err != nil {
		return err
	}
	logger.Debug("solved", zap.Stringer("candidate", best), zap.Int("width", best.Len()))

	if opts.verify {
		if err := verify(logger, seq, opts.low, high, best); err != nil {
			return err
		}
	}

	return writeReport(cmd.OutOrStdout(), opts.format, best)
}

// verify re-solves the searched window with the linear solver and compares sums.
func verify(log *zap.Logger, seq maxsub.Sequence, low, high int, best maxsub.Candidate) error {
	lin, err := maxsub.Linear(seq[low : high+1])
	if err != nil {
		return err
	}
	if lin.Sum != best.Sum {
		log.Error("solvers disagree",
			zap.Int64("recursive", best.Sum),
			zap.Int64("linear", lin.Sum))
		return fmt.Errorf("verification failed: recursive sum %d, linear sum %d", best.Sum, lin.Sum)
	}
	log.Debug("verified", zap.Int64("sum", lin.Sum))
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}
