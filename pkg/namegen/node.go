package namegen

import "slices"

// Kind identifies the variant of a Node.
type Kind int

// Node variants.
const (
	KindLiteral Kind = iota
	KindSequence
	KindChoice
	KindCapitalize
	KindReverse
	KindCollapse
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindSequence:
		return "sequence"
	case KindChoice:
		return "choice"
	case KindCapitalize:
		return "capitalize"
	case KindReverse:
		return "reverse"
	case KindCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Node is one element of a compiled generator tree. The set of
// implementations is closed: *Literal, *Sequence, *Choice, *Capitalize,
// *Reverse and *Collapse. Nodes are immutable once constructed.
type Node interface {
	Kind() Kind
	// Children returns a copy of the node's direct children.
	Children() []Node
	sealed()
}

// Literal produces a fixed string.
type Literal struct {
	text string
}

// NewLiteral returns a node that always produces text.
func NewLiteral(text string) *Literal { return &Literal{text: text} }

func (n *Literal) Kind() Kind       { return KindLiteral }
func (n *Literal) Children() []Node { return nil }
func (n *Literal) Text() string     { return n.text }
func (n *Literal) sealed()          {}

// Sequence concatenates the output of its children in order.
type Sequence struct {
	items []Node
}

// NewSequence returns a concatenation node. The slice is copied.
func NewSequence(items ...Node) *Sequence { return &Sequence{items: slices.Clone(items)} }

func (n *Sequence) Kind() Kind       { return KindSequence }
func (n *Sequence) Children() []Node { return slices.Clone(n.items) }
func (n *Sequence) sealed()          {}

// Choice produces the output of exactly one uniformly selected child.
type Choice struct {
	options []Node
}

// NewChoice returns an alternation node. The slice is copied.
func NewChoice(options ...Node) *Choice { return &Choice{options: slices.Clone(options)} }

func (n *Choice) Kind() Kind       { return KindChoice }
func (n *Choice) Children() []Node { return slices.Clone(n.options) }
func (n *Choice) sealed()          {}

// Capitalize upper-cases the first character of its child's output and
// lower-cases the rest.
type Capitalize struct {
	child Node
}

// NewCapitalize wraps child in a capitalization transform.
func NewCapitalize(child Node) *Capitalize { return &Capitalize{child: child} }

func (n *Capitalize) Kind() Kind       { return KindCapitalize }
func (n *Capitalize) Children() []Node { return []Node{n.child} }
func (n *Capitalize) sealed()          {}

// Reverse reverses the characters of its child's output.
type Reverse struct {
	child Node
}

// NewReverse wraps child in a reversal transform.
func NewReverse(child Node) *Reverse { return &Reverse{child: child} }

func (n *Reverse) Kind() Kind       { return KindReverse }
func (n *Reverse) Children() []Node { return []Node{n.child} }
func (n *Reverse) sealed()          {}

// Collapse limits runs of repeated characters in its child's output.
// The compiler only ever places it at the root.
type Collapse struct {
	child Node
}

// NewCollapse wraps child in the run-collapsing transform.
func NewCollapse(child Node) *Collapse { return &Collapse{child: child} }

func (n *Collapse) Kind() Kind       { return KindCollapse }
func (n *Collapse) Children() []Node { return []Node{n.child} }
func (n *Collapse) sealed()          {}
