package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var pf patternFlags

	cmd := &cobra.Command{
		Use:   "stats [pattern]",
		Short: "Show how many names a pattern can produce and their lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := pf.compile(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pattern:      %s\n", gen.Pattern())
			fmt.Fprintf(out, "combinations: %d\n", gen.Combinations())
			fmt.Fprintf(out, "min length:   %d\n", gen.Min())
			fmt.Fprintf(out, "max length:   %d\n", gen.Max())
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}
