package namegen

import "strings"

// Evaluate produces one output string from n. Choices draw from rng in
// left-to-right order of the tree; unselected branches are never visited.
// Evaluate never modifies the tree.
func Evaluate(n Node, rng Rand) string {
	if rng == nil {
		rng = globalRand{}
	}
	var b strings.Builder
	evaluate(&b, n, rng)
	return b.String()
}

func evaluate(b *strings.Builder, n Node, rng Rand) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(n.text)
	case *Sequence:
		for _, item := range n.items {
			evaluate(b, item, rng)
		}
	case *Choice:
		// Empty choices are never built by the compiler.
		if len(n.options) == 0 {
			return
		}
		evaluate(b, n.options[rng.IntN(len(n.options))], rng)
	case *Capitalize:
		b.WriteString(capitalize(Evaluate(n.child, rng)))
	case *Reverse:
		b.WriteString(reverse(Evaluate(n.child, rng)))
	case *Collapse:
		b.WriteString(collapse(Evaluate(n.child, rng)))
	}
}
