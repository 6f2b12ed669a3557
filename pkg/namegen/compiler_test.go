package namegen_test

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/namegen"
)

func plain() []namegen.Option {
	return []namegen.Option{namegen.WithCapitalize(false), namegen.WithCollapse(false)}
}

func TestCompile_LiteralAlternation(t *testing.T) {
	t.Parallel()

	g, err := namegen.Compile("(foo|bar)", namegen.WithCapitalize(false))
	require.NoError(t, err)

	rng := namegen.NewRand(1)
	seen := map[string]int{}
	for range 200 {
		seen[g.Generate(rng)]++
	}

	assert.Len(t, seen, 2)
	assert.Positive(t, seen["foo"])
	assert.Positive(t, seen["bar"])
}

func TestCompile_FixedOutputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		opts    []namegen.Option
		want    string
	}{
		{name: "capitalize group", pattern: "!(foo)", want: "Foo"},
		{name: "capitalize group without policy", pattern: "!(foo)", opts: plain(), want: "Foo"},
		{name: "reverse group", pattern: "~(foo)", opts: plain(), want: "oof"},
		{name: "reverse then default capitalize", pattern: "~(foo)", want: "Oof"},
		{name: "operators are literal in literal group", pattern: "(!foo)", opts: plain(), want: "!foo"},
		{name: "tilde is literal in literal group", pattern: "(f~oo)", opts: plain(), want: "f~oo"},
		{name: "symbol letters are literal in literal group", pattern: "(sv)", opts: plain(), want: "sv"},
		{name: "first operator is outermost", pattern: "!~(abc)", opts: plain(), want: "Cba"},
		{name: "reverse of capitalized", pattern: "~!(abc)", opts: plain(), want: "cbA"},
		{name: "inner capitalize kept without policy", pattern: "(ab)!(cd)", opts: plain(), want: "abCd"},
		{name: "default capitalize lowers the rest", pattern: "(ab)!(cd)", want: "Abcd"},
		{name: "unmapped letters are literal", pattern: "xyz", opts: plain(), want: "xyz"},
		{name: "pending wrap at group end is dropped", pattern: "<(ab)!>", opts: plain(), want: "ab"},
		{name: "deep nesting", pattern: "(((((<(((((((((((((((a)))))))))))))))>)))))", opts: plain(), want: "a"},
		{name: "empty pattern", pattern: "", want: ""},
		{name: "empty alternatives", pattern: "(|)", want: ""},
		{name: "collapse applies to whole output", pattern: "(baaad)", want: "Bad"},
		{name: "collapse disabled", pattern: "(baaad)", opts: []namegen.Option{namegen.WithCollapse(false)}, want: "Baaad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := namegen.Compile(tt.pattern, tt.opts...)
			require.NoError(t, err)

			rng := namegen.NewRand(7)
			for range 20 {
				assert.Equal(t, tt.want, g.Generate(rng))
			}
		})
	}
}

func TestCompile_SymbolAlternationWithEmptyBranch(t *testing.T) {
	t.Parallel()

	g, err := namegen.Compile("<c|v|>", namegen.WithCapitalize(false))
	require.NoError(t, err)

	symbols := namegen.DefaultSymbols()
	allowed := map[string]bool{"": true}
	for _, s := range append(symbols['c'], symbols['v']...) {
		allowed[s] = true
	}

	rng := namegen.NewRand(3)
	sawEmpty := false
	for range 500 {
		out := g.Generate(rng)
		assert.LessOrEqual(t, len(out), 1)
		assert.True(t, allowed[out], "unexpected output %q", out)
		sawEmpty = sawEmpty || out == ""
	}
	assert.True(t, sawEmpty)
	assert.Equal(t, uint64(21+6+1), g.Combinations())
	assert.Equal(t, 0, g.Min())
	assert.Equal(t, 1, g.Max())
}

func TestCompile_CapitalizeInsideSymbolContext(t *testing.T) {
	t.Parallel()

	g, err := namegen.Compile("v!s", plain()...)
	require.NoError(t, err)

	rng := namegen.NewRand(11)
	for range 100 {
		out := g.Generate(rng)
		require.GreaterOrEqual(t, len(out), 3)
		assert.True(t, strings.ContainsRune("aeiouy", rune(out[0])), out)
		assert.True(t, unicode.IsUpper(rune(out[1])), out)
		assert.Equal(t, strings.ToLower(out[2:]), out[2:])
	}
}

func TestCompile_NestedSymbolGroupInLiteralGroup(t *testing.T) {
	t.Parallel()

	g, err := namegen.Compile("(x<v>)", plain()...)
	require.NoError(t, err)

	rng := namegen.NewRand(5)
	for range 50 {
		out := g.Generate(rng)
		require.Len(t, out, 2)
		assert.Equal(t, byte('x'), out[0])
		assert.True(t, strings.ContainsRune("aeiouy", rune(out[1])), out)
	}
}

func TestCompile_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		kind    namegen.SyntaxKind
		pos     int
		char    rune
	}{
		{pattern: "(foo", kind: namegen.UnterminatedGroup, pos: 0, char: '('},
		{pattern: "<a", kind: namegen.UnterminatedGroup, pos: 0, char: '<'},
		{pattern: "(a)<b(c)", kind: namegen.UnterminatedGroup, pos: 3, char: '<'},
		{pattern: "foo)", kind: namegen.UnbalancedClose, pos: 3, char: ')'},
		{pattern: "a>", kind: namegen.UnbalancedClose, pos: 1, char: '>'},
		{pattern: "<foo)", kind: namegen.MismatchedClose, pos: 4, char: ')'},
		{pattern: "(a>", kind: namegen.MismatchedClose, pos: 2, char: '>'},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			g, err := namegen.Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, namegen.ErrSyntax)

			var syntaxErr *namegen.SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.kind, syntaxErr.Kind)
			assert.Equal(t, tt.pos, syntaxErr.Pos)
			assert.Equal(t, tt.char, syntaxErr.Char)
			assert.NotEmpty(t, syntaxErr.Error())
		})
	}
}

func TestCompile_MaxDepth(t *testing.T) {
	t.Parallel()

	_, err := namegen.Compile("((a))", namegen.WithMaxDepth(2))
	require.NoError(t, err)

	_, err = namegen.Compile("(<(a)>)", namegen.WithMaxDepth(2))
	require.Error(t, err)

	var syntaxErr *namegen.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, namegen.TooDeep, syntaxErr.Kind)
	assert.Equal(t, 2, syntaxErr.Pos)

	_, err = namegen.Compile("(<(a)>)", namegen.WithMaxDepth(0))
	assert.NoError(t, err, "zero disables the limit")
}

func TestMustCompile(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { namegen.MustCompile("sV'i") })
	assert.Panics(t, func() { namegen.MustCompile("(sV'i") })
}

func TestSyntaxKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unbalanced_close", namegen.UnbalancedClose.String())
	assert.Equal(t, "mismatched_close", namegen.MismatchedClose.String())
	assert.Equal(t, "unterminated_group", namegen.UnterminatedGroup.String())
	assert.Equal(t, "too_deep", namegen.TooDeep.String())
	assert.Equal(t, "unknown", namegen.SyntaxKind(0).String())
}
