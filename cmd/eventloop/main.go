// eventloop runs scripted workloads on a deterministic phase scheduler and
// prints the order in which tasks execute.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	logFormat string
	logLevel  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eventloop",
		Short: "Observe the scheduling order of a phase-based event loop",
		Long: `eventloop drains eight named queues in a fixed order and reports the
order in which tasks run.

Each tick runs the phases timers, pending, idle-prepare, poll, check and
closing. The priority-immediate and priority-deferred queues are flushed
before every phase and after every single phase task.

Examples:
  # Run a scenario file
  eventloop run scenario.yaml

  # Re-run a scenario whenever the file changes
  eventloop run --watch scenario.yaml

  # Run the bundled scenarios
  eventloop demo
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logFormat, logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(queuesCmd())

	return rootCmd
}
