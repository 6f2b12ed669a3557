package namegen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Leaves(t *testing.T) {
	t.Parallel()

	lit := NewLiteral("foo")
	assert.Equal(t, uint64(1), Combinations(lit))
	assert.Equal(t, 3, MinLen(lit))
	assert.Equal(t, 3, MaxLen(lit))

	empty := NewSequence()
	assert.Equal(t, uint64(1), Combinations(empty))
	assert.Equal(t, 0, MinLen(empty))
	assert.Equal(t, 0, MaxLen(empty))
}

func TestStats_EmptyChoice(t *testing.T) {
	t.Parallel()

	c := NewChoice()
	assert.Equal(t, uint64(1), Combinations(c))
	assert.Equal(t, 0, MinLen(c))
	assert.Equal(t, 0, MaxLen(c))
	assert.Equal(t, "", Evaluate(c, NewRand(1)))
}

func TestStats_Composite(t *testing.T) {
	t.Parallel()

	// (a|bb|ccc)(dd|e)
	n := NewSequence(
		NewChoice(NewLiteral("a"), NewLiteral("bb"), NewLiteral("ccc")),
		NewChoice(NewLiteral("dd"), NewLiteral("e")),
	)
	assert.Equal(t, uint64(6), Combinations(n))
	assert.Equal(t, 2, MinLen(n))
	assert.Equal(t, 5, MaxLen(n))

	for _, wrapped := range []Node{NewCapitalize(n), NewReverse(n), NewCollapse(n)} {
		assert.Equal(t, uint64(6), Combinations(wrapped), wrapped.Kind().String())
		assert.Equal(t, 2, MinLen(wrapped), wrapped.Kind().String())
		assert.Equal(t, 5, MaxLen(wrapped), wrapped.Kind().String())
	}
}

func TestStats_LengthCountsCharacters(t *testing.T) {
	t.Parallel()

	lit := NewLiteral("ñá")
	assert.Equal(t, 2, MinLen(lit))
	assert.Equal(t, 2, MaxLen(lit))
}

func TestCombinations_Saturates(t *testing.T) {
	t.Parallel()

	pair := NewChoice(NewLiteral("a"), NewLiteral("b"))
	items := make([]Node, 70)
	for i := range items {
		items[i] = pair
	}
	assert.Equal(t, uint64(math.MaxUint64), Combinations(NewSequence(items...)))

	huge := NewSequence(items...)
	assert.Equal(t, uint64(math.MaxUint64), Combinations(NewChoice(huge, huge)))

	items = items[:63]
	assert.Equal(t, uint64(1)<<63, Combinations(NewSequence(items...)))
}

func TestCompile_NeverBuildsEmptyChoice(t *testing.T) {
	t.Parallel()

	patterns := []string{"", "|", "||", "()", "<>", "(|)", "<|>", "<c|v|>", "((|)|)", "!<>", "~()"}
	for _, name := range Presets() {
		p, err := Preset(name)
		require.NoError(t, err)
		patterns = append(patterns, p)
	}

	var walk func(n Node)
	walk = func(n Node) {
		if c, ok := n.(*Choice); ok {
			assert.NotEmpty(t, c.options)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}

	for _, p := range patterns {
		g, err := Compile(p)
		require.NoError(t, err, p)
		walk(g.Root())
	}
}
