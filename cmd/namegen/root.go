package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "namegen",
		Short: "Generate fantasy names from compact patterns",
		Long: `namegen compiles name patterns into generators.

Inside <...> each letter stands for a class of fragments (s syllable,
v vowel, c consonant, ...). Inside (...) text is literal. "|" separates
alternatives, "!" capitalizes and "~" reverses the next element.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newStatsCmd(),
		newPresetsCmd(),
		newServeCmd(),
	)
	return root
}
