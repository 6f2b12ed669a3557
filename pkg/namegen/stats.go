package namegen

import (
	"math"
	"math/bits"
	"unicode/utf8"
)

// Combinations returns the number of outputs n can produce under its choice
// structure. Distinct choice paths that render the same text are counted
// separately. The count saturates at math.MaxUint64.
func Combinations(n Node) uint64 {
	switch n := n.(type) {
	case *Literal:
		return 1
	case *Sequence:
		total := uint64(1)
		for _, item := range n.items {
			hi, lo := bits.Mul64(total, Combinations(item))
			if hi != 0 {
				return math.MaxUint64
			}
			total = lo
		}
		return total
	case *Choice:
		var total uint64
		for _, opt := range n.options {
			sum, carry := bits.Add64(total, Combinations(opt), 0)
			if carry != 0 {
				return math.MaxUint64
			}
			total = sum
		}
		return max(total, 1)
	case *Capitalize:
		return Combinations(n.child)
	case *Reverse:
		return Combinations(n.child)
	case *Collapse:
		return Combinations(n.child)
	default:
		return 1
	}
}

// MinLen returns the shortest output length of n, in characters.
// Wrapper nodes report their child's bound, so collapsing may produce
// shorter output than the value reported for a Collapse root.
func MinLen(n Node) int {
	switch n := n.(type) {
	case *Literal:
		return utf8.RuneCountInString(n.text)
	case *Sequence:
		total := 0
		for _, item := range n.items {
			total += MinLen(item)
		}
		return total
	case *Choice:
		if len(n.options) == 0 {
			return 0
		}
		least := MinLen(n.options[0])
		for _, opt := range n.options[1:] {
			least = min(least, MinLen(opt))
		}
		return least
	case *Capitalize:
		return MinLen(n.child)
	case *Reverse:
		return MinLen(n.child)
	case *Collapse:
		return MinLen(n.child)
	default:
		return 0
	}
}

// MaxLen returns the longest output length of n, in characters.
func MaxLen(n Node) int {
	switch n := n.(type) {
	case *Literal:
		return utf8.RuneCountInString(n.text)
	case *Sequence:
		total := 0
		for _, item := range n.items {
			total += MaxLen(item)
		}
		return total
	case *Choice:
		most := 0
		for _, opt := range n.options {
			most = max(most, MaxLen(opt))
		}
		return most
	case *Capitalize:
		return MaxLen(n.child)
	case *Reverse:
		return MaxLen(n.child)
	case *Collapse:
		return MaxLen(n.child)
	default:
		return 0
	}
}
