package namegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/namegen"
)

func TestDefaultSymbols_Completeness(t *testing.T) {
	t.Parallel()

	table := namegen.DefaultSymbols()
	assert.Equal(t, []rune("BCDMVcdimsv"), table.Letters())
	require.NoError(t, table.Validate())

	for _, letter := range table.Letters() {
		candidates := table[letter]
		assert.NotEmpty(t, candidates, string(letter))
		for _, c := range candidates {
			assert.NotEmpty(t, c, string(letter))
		}
	}

	assert.Equal(t, []string{"a", "e", "i", "o", "u", "y"}, table['v'])
	assert.Len(t, table['c'], 21)
	assert.Len(t, table['V'], 22)
}

func TestSymbolTable_Expand(t *testing.T) {
	t.Parallel()

	table := namegen.DefaultSymbols()
	assert.Equal(t, []string{"'"}, table.Expand('\''))
	assert.Equal(t, []string{"z"}, table.Expand('z'))
	assert.Equal(t, table['s'], table.Expand('s'))
}

func TestDefaultSymbols_ReturnsCopy(t *testing.T) {
	t.Parallel()

	table := namegen.DefaultSymbols()
	table['v'] = []string{"zzz"}
	table['c'][0] = "qqq"

	fresh := namegen.DefaultSymbols()
	assert.Equal(t, "a", fresh['v'][0])
	assert.Equal(t, "b", fresh['c'][0])
}

func TestLoadSymbols(t *testing.T) {
	t.Parallel()

	t.Run("merges over defaults", func(t *testing.T) {
		t.Parallel()

		table, err := namegen.LoadSymbols(strings.NewReader("x: [zz, zx]\nv: [o]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"zz", "zx"}, table['x'])
		assert.Equal(t, []string{"o"}, table['v'])
		assert.Len(t, table.Letters(), 12)

		g, err := namegen.Compile("<x>v", namegen.WithSymbols(table), namegen.WithCapitalize(false))
		require.NoError(t, err)
		rng := namegen.NewRand(2)
		for range 20 {
			out := g.Generate(rng)
			assert.Contains(t, []string{"zzo", "zxo"}, out)
		}
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		table, err := namegen.LoadSymbols(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, namegen.DefaultSymbols(), table)
	})

	invalid := map[string]string{
		"multi-character key": "ab: [x]\n",
		"empty list":          "x: []\n",
		"empty candidate":     "x: ['']\n",
		"reserved character":  "'<': [a]\n",
		"malformed yaml":      "x: [a, b\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			table, err := namegen.LoadSymbols(strings.NewReader(doc))
			assert.ErrorIs(t, err, namegen.ErrInvalidSymbols)
			assert.Nil(t, table)
		})
	}
}

func TestWithSymbols_IgnoresEmptyTable(t *testing.T) {
	t.Parallel()

	g, err := namegen.Compile("v", namegen.WithSymbols(nil), namegen.WithCapitalize(false))
	require.NoError(t, err)
	assert.Equal(t, uint64(6), g.Combinations())
}
