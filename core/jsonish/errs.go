package jsonish

import "errors"

var (
	// ErrInvalidInput reports input that could not be rendered as text.
	ErrInvalidInput = errors.New("jsonish: input cannot be rendered as text")

	// ErrInvalidStructure reports text that does not open with a recognized
	// bracket ({, [, or a paren outside strict mode).
	ErrInvalidStructure = errors.New("jsonish: text does not start with a recognized structure")

	// ErrUnterminatedString reports a double-quoted literal with no closing
	// quote before end of input.
	ErrUnterminatedString = errors.New("jsonish: unterminated string")

	// ErrUnbalancedBrackets reports a bracketed region whose closer was not
	// found before end of input.
	ErrUnbalancedBrackets = errors.New("jsonish: unbalanced brackets")

	// ErrExpectedQuote reports a string scan that did not start on a double
	// quote.
	ErrExpectedQuote = errors.New("jsonish: expected opening double quote")

	// ErrInvalidJSONLike reports input from which no structure could be
	// recovered: no candidate region was found and the cleaned whole text did
	// not parse either.
	ErrInvalidJSONLike = errors.New("jsonish: input is not JSON-like")
)
