// Package namegen compiles a small pattern language into generators of
// random, structurally constrained strings such as fantasy names and place
// names.
//
// A pattern is compiled once into an immutable tree of nodes and can then be
// evaluated any number of times. All randomness is supplied by the caller at
// evaluation time, so a compiled Generator is safe to share between
// goroutines.
//
// # Pattern syntax
//
// Inside angle brackets (and at the top level, which behaves as if wrapped in
// <...>) the following letters expand to a random entry of the symbol table:
//
//	s  generic syllable
//	v  vowel
//	V  vowel or vowel combination
//	c  consonant
//	B  consonant or cluster suitable for beginning a word
//	C  consonant or cluster suitable anywhere in a word
//	i  insult
//	m  mushy name
//	M  mushy name ending
//	D  consonant suited for a stupid person's name
//	d  syllable suited for a stupid person's name (begins with a vowel)
//
// Any other character is produced literally. Characters between parentheses
// are always literal, although a nested <...> group expands symbols again.
//
// A vertical bar separates alternatives of the innermost group, one of which
// is picked uniformly: "(foo|bar)" produces "foo" or "bar", and "<c|v|>"
// produces a consonant, a vowel or nothing.
//
// In symbol context, "!" capitalizes and "~" reverses the element that
// follows it: "!(foo)" produces "Foo" and "~(foo)" produces "oof". Inside
// parentheses both characters are literal. There is no escape mechanism.
//
// # Usage
//
//	g, err := namegen.Compile("<s|B>V(mon|chu|zard)")
//	if err != nil {
//		// err matches namegen.ErrSyntax; inspect *namegen.SyntaxError for details
//	}
//	name := g.Generate(nil)                   // shared concurrency-safe source
//	names := g.GenerateN(namegen.NewRand(42), 10) // reproducible
//	fmt.Println(g.Combinations(), g.Min(), g.Max())
//
// By default the output is passed through a run-collapsing filter and then
// capitalized; WithCollapse(false) and WithCapitalize(false) turn these off.
// Note that Min and Max ignore the effect of collapsing, which can only make
// output shorter.
//
// Patterns bundled with the package are available through Preset and Presets.
// Custom symbol tables can be loaded from YAML with LoadSymbols and passed to
// Compile with WithSymbols.
package namegen
