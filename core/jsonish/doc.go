// Package jsonish recovers structured data from JSON-like text that a
// language model emitted but that is not guaranteed to be valid JSON. Input
// may use single quotes, trailing commas, Python-style tuple and set
// literals, unescaped inner quotes, surrounding prose, or doubly-encoded
// string-within-string structures; the parser still returns something usable.
//
// Recovery is layered: every balanced candidate region found in the text is
// first parsed directly, then cleaned and retried, and finally kept as its
// raw trimmed text when both attempts fail. The same guarantee applies inside
// containers: an element that cannot be parsed degrades to its raw text
// instead of aborting the enclosing structure. Only [Parse] on text with no
// candidate regions at all can fail, with [ErrInvalidJSONLike].
//
// Results are [Value] instances, a closed tagged variant over null, bool,
// integer, float, string, array, insertion-ordered object, tuple, and set.
// The main entry points are [Parse], [ParseOne], and [ParseAny], all
// configured through an explicit [Options] record.
//
// The parser is pure and synchronous: it holds no global state, performs no
// I/O, and is safe for concurrent use. Recursion depth follows input nesting,
// so callers should bound input size before handing over pathological data.
package jsonish
