package namegen

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// SymbolTable maps a pattern letter to its candidate substrings.
// A table is treated as read-only once handed to Compile.
type SymbolTable map[rune][]string

// Expand returns the candidates for letter. Letters without an entry
// expand to themselves.
func (t SymbolTable) Expand(letter rune) []string {
	if c, ok := t[letter]; ok && len(c) > 0 {
		return c
	}
	return []string{string(letter)}
}

// Letters returns the mapped letters in ascending order.
func (t SymbolTable) Letters() []rune {
	return slices.Sorted(maps.Keys(t))
}

// Validate checks that every entry has at least one candidate and that no
// candidate is empty.
func (t SymbolTable) Validate() error {
	for _, letter := range t.Letters() {
		candidates := t[letter]
		if len(candidates) == 0 {
			return fmt.Errorf("%w: letter %q has no candidates", ErrInvalidSymbols, letter)
		}
		for i, c := range candidates {
			if c == "" {
				return fmt.Errorf("%w: letter %q candidate %d is empty", ErrInvalidSymbols, letter, i)
			}
		}
	}
	return nil
}

// DefaultSymbols returns a copy of the built-in table:
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
func DefaultSymbols() SymbolTable {
	t := make(SymbolTable, len(defaultSymbols))
	for k, v := range defaultSymbols {
		t[k] = slices.Clone(v)
	}
	return t
}

// LoadSymbols reads a YAML mapping of single-letter keys to candidate lists
// and merges it over the default table. Entries in r replace the default
// entry for the same letter.
//
//	s: [ach, ack, ad]
//	x: [zz, zx]
func LoadSymbols(r io.Reader) (SymbolTable, error) {
	var raw map[string][]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidSymbols, err)
	}

	t := DefaultSymbols()
	for key, candidates := range raw {
		letter, size := utf8.DecodeRuneInString(key)
		if letter == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("%w: key %q must be a single character", ErrInvalidSymbols, key)
		}
		if isReserved(letter) {
			return nil, fmt.Errorf("%w: %q is pattern syntax", ErrInvalidSymbols, letter)
		}
		t[letter] = slices.Clone(candidates)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// isReserved reports whether r has grammatical meaning in a pattern.
func isReserved(r rune) bool {
	switch r {
	case '<', '>', '(', ')', '|', '!', '~':
		return true
	}
	return false
}

var defaultSymbols = SymbolTable{
	's': {
		"ach", "ack", "ad", "age", "ald", "ale", "an", "ang", "ar", "ard",
		"as", "ash", "at", "ath", "augh", "aw", "ban", "bel", "bur", "cer",
		"cha", "che", "dan", "dar", "del", "den", "dra", "dyn", "ech", "eld",
		"elm", "em", "en", "end", "eng", "enth", "er", "ess", "est", "et",
		"gar", "gha", "hat", "hin", "hon", "ia", "ight", "ild", "im", "ina",
		"ine", "ing", "ir", "is", "iss", "it", "kal", "kel", "kim", "kin",
		"ler", "lor", "lye", "mor", "mos", "nal", "ny", "nys", "old", "om",
		"on", "or", "orm", "os", "ough", "per", "pol", "qua", "que", "rad",
		"rak", "ran", "ray", "ril", "ris", "rod", "roth", "ryn", "sam",
		"say", "ser", "shy", "skel", "sul", "tai", "tan", "tas", "ther",
		"tia", "tin", "ton", "tor", "tur", "um", "und", "unt", "urn", "usk",
		"ust", "ver", "ves", "vor", "war", "wor", "yer",
	},
	'v': {"a", "e", "i", "o", "u", "y"},
	'V': {
		"a", "e", "i", "o", "u", "y", "ae", "ai", "au", "ay", "ea", "ee",
		"ei", "eu", "ey", "ia", "ie", "oe", "oi", "oo", "ou", "ui",
	},
	'c': {
		"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "q", "r",
		"s", "t", "v", "w", "x", "y", "z",
	},
	'B': {
		"b", "bl", "br", "c", "ch", "chr", "cl", "cr", "d", "dr", "f", "g",
		"h", "j", "k", "l", "ll", "m", "n", "p", "ph", "qu", "r", "rh", "s",
		"sch", "sh", "sl", "sm", "sn", "st", "str", "sw", "t", "th", "thr",
		"tr", "v", "w", "wh", "y", "z", "zh",
	},
	'C': {
		"b", "c", "ch", "ck", "d", "f", "g", "gh", "h", "k", "l", "ld", "ll",
		"lt", "m", "n", "nd", "nn", "nt", "p", "ph", "q", "r", "rd", "rr",
		"rt", "s", "sh", "ss", "st", "t", "th", "v", "w", "y", "z",
	},
	'i': {
		"air", "ankle", "ball", "beef", "bone", "bum", "bumble", "bump",
		"cheese", "clod", "clot", "clown", "corn", "dip", "dolt", "doof",
		"dork", "dumb", "face", "finger", "foot", "fumble", "goof",
		"grumble", "head", "knock", "knocker", "knuckle", "loaf", "lump",
		"lunk", "meat", "muck", "munch", "nit", "numb", "pin", "puff",
		"skull", "snark", "sneeze", "thimble", "twerp", "twit", "wad",
		"wimp", "wipe",
	},
	'm': {
		"baby", "booble", "bunker", "cuddle", "cuddly", "cutie", "doodle",
		"foofie", "gooble", "honey", "kissie", "lover", "lovey", "moofie",
		"mooglie", "moopie", "moopsie", "nookum", "poochie", "poof",
		"poofie", "pookie", "schmoopie", "schnoogle", "schnookie",
		"schnookum", "smooch", "smoochie", "smoosh", "snoogle", "snoogy",
		"snookie", "snookum", "snuggy", "sweetie", "woogle", "woogy",
		"wookie", "wookum", "wuddle", "wuddly", "wuggy", "wunny",
	},
	'M': {
		"boo", "bunch", "bunny", "cake", "cakes", "cute", "darling",
		"dumpling", "dumplings", "face", "foof", "goo", "head", "kin",
		"kins", "lips", "love", "mush", "pie", "poo", "pooh", "pook", "pums",
	},
	'D': {
		"b", "bl", "br", "cl", "d", "f", "fl", "fr", "g", "gh", "gl", "gr",
		"h", "j", "k", "kl", "m", "n", "p", "th", "w",
	},
	'd': {
		"elch", "idiot", "ob", "og", "ok", "olph", "olt", "omph", "ong",
		"onk", "oo", "oob", "oof", "oog", "ook", "ooz", "org", "ork", "orm",
		"oron", "ub", "uck", "ug", "ulf", "ult", "um", "umb", "ump", "umph",
		"un", "unb", "ung", "unk", "unph", "unt", "uzz",
	},
}
