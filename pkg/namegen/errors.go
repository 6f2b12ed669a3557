package namegen

import (
	"errors"
	"fmt"
)

// Package-level errors.
var (
	// ErrSyntax is the sentinel every *SyntaxError matches with errors.Is.
	ErrSyntax = errors.New("namegen: invalid pattern")

	// ErrUnknownPreset is returned by Preset for names not in the bundled set.
	ErrUnknownPreset = errors.New("namegen: unknown preset")

	// ErrInvalidSymbols is returned when a symbol table fails validation.
	ErrInvalidSymbols = errors.New("namegen: invalid symbol table")

	// ErrExhausted is returned when unique generation runs out of attempts.
	ErrExhausted = errors.New("namegen: no unused name found")

	// ErrReserve wraps failures of a Reserver during unique generation.
	ErrReserve = errors.New("namegen: failed to reserve name")
)

// SyntaxKind classifies a pattern syntax error.
type SyntaxKind int

const (
	// UnbalancedClose is a closing bracket with no open group.
	UnbalancedClose SyntaxKind = iota + 1
	// MismatchedClose is a closing bracket of the wrong type for the open group.
	MismatchedClose
	// UnterminatedGroup is a group still open at the end of the pattern.
	UnterminatedGroup
	// TooDeep is a group nested beyond the configured depth limit.
	TooDeep
)

func (k SyntaxKind) String() string {
	switch k {
	case UnbalancedClose:
		return "unbalanced_close"
	case MismatchedClose:
		return "mismatched_close"
	case UnterminatedGroup:
		return "unterminated_group"
	case TooDeep:
		return "too_deep"
	default:
		return "unknown"
	}
}

// SyntaxError describes why a pattern failed to compile.
// Pos is the byte offset of the offending character; for UnterminatedGroup
// it is the offset of the innermost unclosed bracket.
type SyntaxError struct {
	Kind SyntaxKind
	Pos  int
	Char rune
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnbalancedClose:
		return fmt.Sprintf("namegen: unbalanced %q at offset %d", e.Char, e.Pos)
	case MismatchedClose:
		return fmt.Sprintf("namegen: unexpected %q at offset %d", e.Char, e.Pos)
	case UnterminatedGroup:
		return fmt.Sprintf("namegen: group %q opened at offset %d is never closed", e.Char, e.Pos)
	case TooDeep:
		return fmt.Sprintf("namegen: %q at offset %d exceeds maximum nesting depth", e.Char, e.Pos)
	default:
		return fmt.Sprintf("namegen: syntax error at offset %d", e.Pos)
	}
}

// Is reports ErrSyntax as the error class.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
