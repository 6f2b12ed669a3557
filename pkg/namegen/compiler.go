package namegen

type groupType int

const (
	symbolGroup groupType = iota
	literalGroup
)

type wrapper int

const (
	capitalizer wrapper = iota
	reverser
)

// frame accumulates one open group while the pattern is scanned.
type frame struct {
	typ      groupType
	open     rune
	pos      int
	branches [][]Node
	wraps    []wrapper
}

// split starts a new alternative. A group that has not started a branch yet
// gets an implicit empty first one.
func (f *frame) split() {
	if len(f.branches) == 0 {
		f.branches = append(f.branches, nil)
	}
	f.branches = append(f.branches, nil)
}

func (f *frame) wrap(w wrapper) {
	f.wraps = append(f.wraps, w)
}

// add appends n to the current branch after applying pending wrappers.
// The most recently pushed wrapper is applied first, so the operator written
// first ends up outermost.
func (f *frame) add(n Node) {
	for len(f.wraps) > 0 {
		w := f.wraps[len(f.wraps)-1]
		f.wraps = f.wraps[:len(f.wraps)-1]
		switch w {
		case capitalizer:
			n = NewCapitalize(n)
		case reverser:
			n = NewReverse(n)
		}
	}
	if len(f.branches) == 0 {
		f.branches = append(f.branches, nil)
	}
	last := len(f.branches) - 1
	f.branches[last] = append(f.branches[last], n)
}

// addChar appends a single pattern character, expanding it through the
// symbol table when the group is a symbol group.
func (f *frame) addChar(c rune, symbols SymbolTable) {
	if f.typ == literalGroup {
		f.add(NewLiteral(string(c)))
		return
	}
	candidates := symbols.Expand(c)
	if len(candidates) == 1 {
		f.add(NewLiteral(candidates[0]))
		return
	}
	alts := make([]Node, len(candidates))
	for i, s := range candidates {
		alts[i] = NewLiteral(s)
	}
	f.add(NewChoice(alts...))
}

// produce closes the group. Wrappers still pending are dropped.
func (f *frame) produce() Node {
	switch len(f.branches) {
	case 0:
		return NewLiteral("")
	case 1:
		return NewSequence(f.branches[0]...)
	default:
		alts := make([]Node, len(f.branches))
		for i, b := range f.branches {
			alts[i] = NewSequence(b...)
		}
		return NewChoice(alts...)
	}
}

// parse compiles pattern into a tree without the top-level policy wrappers.
// The whole pattern behaves as if it were enclosed in <...>.
func parse(pattern string, o *options) (Node, error) {
	var stack []*frame
	top := &frame{typ: symbolGroup}

	for pos, c := range pattern {
		switch c {
		case '<', '(':
			if o.maxDepth > 0 && len(stack) >= o.maxDepth {
				return nil, &SyntaxError{Kind: TooDeep, Pos: pos, Char: c}
			}
			typ := symbolGroup
			if c == '(' {
				typ = literalGroup
			}
			stack = append(stack, top)
			top = &frame{typ: typ, open: c, pos: pos}

		case '>', ')':
			if len(stack) == 0 {
				return nil, &SyntaxError{Kind: UnbalancedClose, Pos: pos, Char: c}
			}
			if (c == '>') != (top.typ == symbolGroup) {
				return nil, &SyntaxError{Kind: MismatchedClose, Pos: pos, Char: c}
			}
			last := top.produce()
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.add(last)

		case '|':
			top.split()

		case '!', '~':
			if top.typ != symbolGroup {
				top.addChar(c, o.symbols)
				break
			}
			if c == '!' {
				top.wrap(capitalizer)
			} else {
				top.wrap(reverser)
			}

		default:
			top.addChar(c, o.symbols)
		}
	}

	if len(stack) != 0 {
		return nil, &SyntaxError{Kind: UnterminatedGroup, Pos: top.pos, Char: top.open}
	}
	return top.produce(), nil
}
