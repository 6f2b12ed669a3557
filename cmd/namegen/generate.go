package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/namegen/internal/registry"
	"github.com/dmitrymomot/namegen/pkg/namegen"
)

type patternFlags struct {
	preset       string
	noCollapse   bool
	noCapitalize bool
	symbolsFile  string
	maxDepth     int
}

func (f *patternFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.preset, "preset", "p", "", "use a bundled pattern instead of an argument")
	fs.BoolVar(&f.noCollapse, "no-collapse", false, "keep runs of repeated letters")
	fs.BoolVar(&f.noCapitalize, "no-capitalize", false, "leave the first letter as generated")
	fs.StringVar(&f.symbolsFile, "symbols", "", "YAML file overriding the symbol table")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "reject patterns nested deeper than this (0 = unlimited)")
}

// compile resolves the pattern from args or --preset and compiles it.
func (f *patternFlags) compile(args []string) (*namegen.Generator, error) {
	var pattern string
	switch {
	case len(args) > 0 && f.preset != "":
		return nil, errors.New("pass either a pattern or --preset, not both")
	case f.preset != "":
		p, err := namegen.Preset(f.preset)
		if err != nil {
			return nil, err
		}
		pattern = p
	case len(args) > 0:
		pattern = norm.NFC.String(args[0])
	default:
		return nil, errors.New("a pattern argument or --preset is required")
	}

	symbols, err := loadSymbols(f.symbolsFile)
	if err != nil {
		return nil, err
	}
	return namegen.Compile(pattern,
		namegen.WithCollapse(!f.noCollapse),
		namegen.WithCapitalize(!f.noCapitalize),
		namegen.WithSymbols(symbols),
		namegen.WithMaxDepth(f.maxDepth),
	)
}

func newGenerateCmd() *cobra.Command {
	var (
		pf       patternFlags
		count    int
		seed     uint64
		unique   bool
		attempts int
	)

	cmd := &cobra.Command{
		Use:     "generate [pattern]",
		Aliases: []string{"gen"},
		Short:   "Print names produced by a pattern",
		Example: `  namegen generate "<s|B|Bv|v><V|s|'|V><s|V|C>" -n 10
  namegen generate --preset middle-earth --seed 42
  namegen generate "(foo)<v|c>" --unique -n 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			gen, err := pf.compile(args)
			if err != nil {
				return err
			}

			var rng namegen.Rand
			if cmd.Flags().Changed("seed") {
				rng = namegen.NewRand(seed)
			}

			out := cmd.OutOrStdout()
			if !unique {
				for _, name := range gen.GenerateN(rng, count) {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			store := registry.NewMemoryStore()
			for range count {
				name, err := namegen.GenerateUnique(cmd.Context(), gen, rng, store, attempts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	pf.register(cmd)
	fs := cmd.Flags()
	fs.IntVarP(&count, "count", "n", 1, "number of names to print")
	fs.Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	fs.BoolVarP(&unique, "unique", "u", false, "never print the same name twice")
	fs.IntVar(&attempts, "attempts", namegen.DefaultAttempts, "draws per name before --unique gives up")
	return cmd
}
