package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namegen/pkg/namegen"
)

func newPresetsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List bundled patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !verbose {
				for _, name := range namegen.Presets() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range namegen.Presets() {
				p, _ := namegen.Preset(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, p)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print patterns next to names")
	return cmd
}
