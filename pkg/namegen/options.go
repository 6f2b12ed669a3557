package namegen

// Option configures pattern compilation.
type Option func(*options)

type options struct {
	collapse   bool
	capitalize bool
	symbols    SymbolTable
	maxDepth   int
}

func defaultOptions() *options {
	return &options{
		collapse:   true,
		capitalize: true,
		symbols:    defaultSymbols,
	}
}

// WithCollapse toggles run-collapsing of the final output. Enabled by default.
func WithCollapse(enabled bool) Option {
	return func(o *options) { o.collapse = enabled }
}

// WithCapitalize toggles capitalization of the final output. Enabled by default.
func WithCapitalize(enabled bool) Option {
	return func(o *options) { o.capitalize = enabled }
}

// WithSymbols replaces the symbol table used inside <...> groups.
// A nil or empty table is ignored.
func WithSymbols(t SymbolTable) Option {
	return func(o *options) {
		if len(t) > 0 {
			o.symbols = t
		}
	}
}

// WithMaxDepth rejects patterns nesting groups deeper than n.
// Zero or a negative value disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxDepth = n
	}
}
