package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

func queuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queues",
		Short: "List queue names in drain order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, q := range scheduler.Queues() {
				kind := "priority"
				if q.IsPhase() {
					kind = "phase"
				}
				if _, err := fmt.Fprintf(out, "%-20s %s\n", q, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
