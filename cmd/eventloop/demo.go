package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hackebrot/go-event-loop/internal/scenario"
)

func demoCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "demo [scenario-name]",
		Short: "Run the bundled scenarios, or one of them by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				s, err := scenario.LookupBuiltin(args[0])
				if err != nil {
					return err
				}
				return runScenario(cmd.Context(), s, opts)
			}

			scenarios, err := scenario.Builtin()
			if err != nil {
				return err
			}

			var errs []error
			for _, s := range scenarios {
				errs = append(errs, runScenario(cmd.Context(), s, opts))
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Log phase, priority flush and task events")

	return cmd
}
