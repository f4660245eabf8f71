package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hackebrot/go-event-loop/internal/loop"
	"github.com/hackebrot/go-event-loop/internal/scenario"
)

type runOptions struct {
	ticks          int
	maxTicks       int
	trace          bool
	faultIsolation bool
	watch          bool
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Run a YAML scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			path := args[0]
			if opts.watch {
				return watch(cmd.Context(), path, func() {
					if err := runFile(cmd.Context(), path, opts); err != nil {
						slog.Error("scenario failed", "path", path, "error", err)
					}
				})
			}
			return runFile(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "Run exactly this many ticks (overrides the scenario)")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 0, "Stop running until idle after this many ticks (overrides the scenario)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Log phase, priority flush and task events")
	cmd.Flags().BoolVar(&opts.faultIsolation, "fault-isolation", false, "Log failing tasks and keep draining instead of aborting the tick")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-run the scenario whenever the file changes")

	return cmd
}

func (o runOptions) validate() error {
	if o.ticks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", o.ticks)
	}
	if o.maxTicks < 0 {
		return fmt.Errorf("--max-ticks must not be negative, got %d", o.maxTicks)
	}
	if o.ticks > 0 && o.maxTicks > 0 {
		return errors.New("--ticks and --max-ticks are mutually exclusive")
	}
	return nil
}

func runFile(ctx context.Context, path string, opts runOptions) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	if opts.ticks > 0 {
		s.Ticks, s.MaxTicks = opts.ticks, 0
	} else if opts.maxTicks > 0 {
		s.Ticks, s.MaxTicks = 0, opts.maxTicks
	}
	return runScenario(ctx, s, opts)
}

func runScenario(ctx context.Context, s *scenario.Scenario, opts runOptions) error {
	logger := slog.Default().With("scenario", s.Name)
	logger.Info("starting scenario", "count_items", len(s.Items))

	loopOpts := []loop.Option{loop.WithLogger(logger)}
	if opts.trace {
		loopOpts = append(loopOpts, loop.WithObserver(newTraceObserver(logger)))
	}
	if opts.faultIsolation {
		loopOpts = append(loopOpts, loop.WithFaultIsolation())
	}

	res, err := s.Run(ctx, loopOpts...)
	if res != nil {
		processResults(logger, res)
	}
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return nil
}
