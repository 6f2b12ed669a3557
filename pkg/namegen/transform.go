package namegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(first))
	b.WriteString(strings.ToLower(s[size:]))
	return b.String()
}

// reverse reverses s character by character.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// weakRunes may not repeat at all; every other character may appear at most
// twice in a row.
const weakRunes = "ahijquvwxy"

func runLimit(r rune) int {
	if strings.ContainsRune(weakRunes, r) {
		return 1
	}
	return 2
}

// collapse drops characters that extend a run past its limit.
func collapse(s string) string {
	var (
		b    strings.Builder
		prev rune = -1
		run  int
	)
	b.Grow(len(s))
	for _, r := range s {
		if r == prev {
			run++
		} else {
			run = 0
		}
		if run < runLimit(r) {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// CollapseRuns applies the run-collapsing filter used by WithCollapse to s.
func CollapseRuns(s string) string { return collapse(s) }
