// Command polycube is the CLI entry point: it loads a problem file, runs
// the solver, and prints every solution it finds.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format       string
		maxSolutions int
		verbose      bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "polycube <problem-file>",
		Short: "Enumerate exact covers of a box by a multiset of polycube pieces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			return runSolve(ctx, log, args[0], format, maxSolutions)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", `output format: "text" or "json"`)
	cmd.Flags().IntVar(&maxSolutions, "max-solutions", 0, "stop after this many solutions (0 = unlimited)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop enumeration after this long (0 = no timeout)")

	return cmd
}
