package jsonish

// Options configures a single parse invocation. The zero value disables every
// behaviour; most callers want [DefaultOptions]. Options values are passed
// explicitly through every recursive call; there is no ambient configuration.
type Options struct {
	// ParseQuotedStructures re-parses string leaves that themselves look like
	// embedded structures ("{...}", "[...]", "(...)"), replacing the string
	// with the parsed value when that succeeds.
	ParseQuotedStructures bool

	// Tolerant applies heuristic preprocessing (escaping of unescaped inner
	// quotes) before structural dispatch. It is only honoured at the
	// outermost parse attempt; nested re-parses always run with it off.
	Tolerant bool

	// ExtractMultiple returns every candidate structure found in the text.
	// When false, scanning stops at the first candidate.
	ExtractMultiple bool

	// StrictJSON restricts recognised structures to objects and arrays,
	// excluding tuple parens and set literals.
	StrictJSON bool
}

// DefaultOptions returns the standard configuration: quoted-structure
// recovery, tolerant preprocessing, and multi-candidate extraction enabled,
// strict JSON off.
func DefaultOptions() Options {
	return Options{
		ParseQuotedStructures: true,
		Tolerant:              true,
		ExtractMultiple:       true,
	}
}

// inner derives the configuration used when re-parsing a string leaf: the
// heuristic escaper must not run again and exactly one result is wanted.
func (o Options) inner() Options {
	o.Tolerant = false
	o.ExtractMultiple = false
	return o
}
