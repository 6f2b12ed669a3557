package namegen

import "fmt"

// Generator is a compiled pattern. It holds no generation state and is safe
// for concurrent use; concurrency of the random source is the caller's
// concern unless Generate is passed nil.
type Generator struct {
	pattern      string
	root         Node
	combinations uint64
	min          int
	max          int
}

// Compile parses pattern into a Generator. Unless disabled through options,
// the output is run-collapsed and then capitalized.
//
//	g, err := namegen.Compile("sV'i")
//	name := g.Generate(nil) // e.g. "Entheu'loaf"
func Compile(pattern string, opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	root, err := parse(pattern, o)
	if err != nil {
		return nil, err
	}
	if o.collapse {
		root = NewCollapse(root)
	}
	if o.capitalize {
		root = NewCapitalize(root)
	}

	return &Generator{
		pattern:      pattern,
		root:         root,
		combinations: Combinations(root),
		min:          MinLen(root),
		max:          MaxLen(root),
	}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string, opts ...Option) *Generator {
	g, err := Compile(pattern, opts...)
	if err != nil {
		panic(fmt.Sprintf("namegen: Compile(%q): %v", pattern, err))
	}
	return g
}

// Generate returns one random output. A nil rng uses a shared,
// concurrency-safe source.
func (g *Generator) Generate(rng Rand) string {
	return Evaluate(g.root, rng)
}

// GenerateN returns n outputs drawn from rng in order.
func (g *Generator) GenerateN(rng Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = globalRand{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Evaluate(g.root, rng)
	}
	return out
}

// Combinations returns the number of distinct choice paths through the pattern.
func (g *Generator) Combinations() uint64 { return g.combinations }

// Min returns the minimum output length in characters.
func (g *Generator) Min() int { return g.min }

// Max returns the maximum output length in characters.
func (g *Generator) Max() int { return g.max }

// Pattern returns the source pattern.
func (g *Generator) Pattern() string { return g.pattern }

// Root returns the compiled tree.
func (g *Generator) Root() Node { return g.root }
