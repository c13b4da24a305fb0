package jsonish

import (
	"fmt"
	"strconv"
	"strings"
)

// looksLikeSet decides whether the interior of a braced region is a set or a
// mapping: content with no top-level, unquoted, unnested colon is set-like.
// Quoted strings and nested regions are skipped whole. A malformed string
// concludes immediately that the content is not set-like, rather than
// surfacing the string error; this asymmetry is deliberate and relied upon.
func looksLikeSet(s string, opts Options) (bool, error) {
	i, n := 0, len(s)
	for i < n {
		switch s[i] {
		case '"':
			_, next, err := scanString(s, i)
			if err != nil {
				return false, nil
			}
			i = next
		case '{':
			end, err := findBalanced(s, i, '{', '}')
			if err != nil {
				return false, err
			}
			i = end
		case '[':
			end, err := findBalanced(s, i, '[', ']')
			if err != nil {
				return false, err
			}
			i = end
		case '(':
			end, err := findBalanced(s, i, '(', ')')
			if err != nil {
				return false, err
			}
			i = end
		case ':':
			return false, nil
		default:
			i++
		}
	}
	return true, nil
}

// parseObject parses the interior of a mapping. Keys may be quoted or bare;
// a bare key runs to the next top-level colon or comma and sheds one layer of
// matching single quotes. A key with no following colon maps to null, an
// empty key ends the loop with whatever was collected, and a value that fails
// to parse is captured as raw text in place.
func parseObject(s string, opts Options) *Object {
	obj := NewObject()
	i, n := 0, len(s)
	for i < n {
		if isSpace(s[i]) || s[i] == ',' {
			i++
			continue
		}

		var key string
		if s[i] == '"' {
			parsed, next, err := scanString(s, i)
			if err != nil {
				// Unterminated key: everything up to the first colon (or the
				// end) becomes the key, and the rest of the input is consumed.
				key, _, _ = strings.Cut(s[i:], ":")
				key = strings.TrimSpace(key)
				next = n
			} else {
				key = parsed
			}
			i = next
		} else {
			start := i
			i = scanBareKey(s, i)
			key = bareKey(s[start:i])
		}
		if key == "" {
			break
		}

		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n || s[i] != ':' {
			obj.Set(key, NullValue())
			continue
		}
		i++

		value, next, err := parseNextValue(s, i, opts)
		if err == nil {
			obj.Set(key, processNested(value, opts))
			i = advanced(i, next)
			continue
		}
		raw, next := captureRaw(s, i)
		if raw == "" {
			obj.Set(key, NullValue())
		} else {
			obj.Set(key, StringValue(raw))
		}
		i = advanced(i, next)
	}
	return obj
}

// scanBareKey returns the index of the first top-level colon or comma after
// an unquoted key, skipping quoted spans and balancing brackets on the way.
func scanBareKey(s string, i int) int {
	depth := 0
	n := len(s)
	for i < n {
		switch ch := s[i]; {
		case ch == '"':
			if _, next, err := scanString(s, i); err == nil {
				i = next
				continue
			}
			i++
		case ch == '{' || ch == '[' || ch == '(':
			depth++
			i++
		case ch == '}' || ch == ']' || ch == ')':
			depth--
			i++
		case (ch == ':' || ch == ',') && depth == 0:
			return i
		default:
			i++
		}
	}
	return n
}

// bareKey trims an unquoted key and sheds one layer of matching single
// quotes, so {'a': 1} yields the key a.
func bareKey(raw string) string {
	key := strings.TrimSpace(raw)
	if len(key) >= 2 && key[0] == '\'' && key[len(key)-1] == '\'' {
		key = key[1 : len(key)-1]
	}
	return key
}

// parseElements runs the shared element loop over the interior of an array,
// tuple, or set literal: skip separators, parse the next value, hand it to
// the nested-value processor, and degrade any unparsable element to its raw
// trimmed text instead of failing.
func parseElements(s string, opts Options) []Value {
	var elems []Value
	i, n := 0, len(s)
	for i < n {
		if isSpace(s[i]) || s[i] == ',' {
			i++
			continue
		}
		value, next, err := parseNextValue(s, i, opts)
		if err == nil {
			if next == i {
				// A stray closer parses as an empty token; step past it so
				// the loop keeps making progress.
				i++
				continue
			}
			elems = append(elems, processNested(value, opts))
			i = next
			continue
		}
		raw, next := captureRaw(s, i)
		if raw != "" {
			elems = append(elems, StringValue(raw))
		}
		i = advanced(i, next)
	}
	return elems
}

// parseTupleBody strips one layer of enclosing parens and parses the
// remainder with the shared element loop.
func parseTupleBody(s string, opts Options) []Value {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	return parseElements(s, opts)
}

// parseSet parses set-literal interior content. Insertion goes through
// [Set.Add], which coerces composite members to their canonical rendering
// and drops duplicates.
func parseSet(s string, opts Options) *Set {
	set := NewSet()
	for _, v := range parseElements(s, opts) {
		set.Add(v)
	}
	return set
}

// parseNextValue parses one embedded value starting at s[i]: a string, a
// container, or a primitive token running to the next top-level comma or
// closing delimiter. It returns the value and the index just past it.
func parseNextValue(s string, i int, opts Options) (Value, int, error) {
	n := len(s)
	for i < n && isSpace(s[i]) {
		i++
	}
	if i >= n {
		return Value{}, i, fmt.Errorf("%w: no value at offset %d", ErrInvalidStructure, i)
	}
	switch s[i] {
	case '"':
		text, next, err := scanString(s, i)
		if err != nil {
			return Value{}, i, err
		}
		return StringValue(text), next, nil
	case '{':
		end, err := findBalanced(s, i, '{', '}')
		if err != nil {
			return Value{}, i, err
		}
		v, err := parseBraced(s[i:end], opts)
		if err != nil {
			return Value{}, i, err
		}
		return v, end, nil
	case '[':
		end, err := findBalanced(s, i, '[', ']')
		if err != nil {
			return Value{}, i, err
		}
		return ArrayValue(parseElements(s[i+1:end-1], opts)...), end, nil
	case '(':
		if !opts.StrictJSON {
			end, err := findBalanced(s, i, '(', ')')
			if err != nil {
				return Value{}, i, err
			}
			return TupleValue(parseTupleBody(s[i:end], opts)...), end, nil
		}
	}
	raw, next := captureRaw(s, i)
	return parsePrimitive(raw), next, nil
}

// processNested walks a freshly built composite value. String leaves that
// look like embedded structures are re-parsed with the derived inner options
// (escaper off, single result) and replaced on success; anything that fails
// stays as the original string. Containers recurse.
func processNested(v Value, opts Options) Value {
	switch v.kind {
	case KindObject:
		for at := range v.obj.vals {
			v.obj.vals[at] = processNested(v.obj.vals[at], opts)
		}
	case KindArray, KindTuple:
		for at := range v.seq {
			v.seq[at] = processNested(v.seq[at], opts)
		}
	case KindSet:
		rebuilt := NewSet()
		for _, elem := range v.set.elems {
			rebuilt.Add(processNested(elem, opts))
		}
		v.set = rebuilt
	case KindString:
		if !opts.ParseQuotedStructures {
			return v
		}
		trimmed := strings.TrimSpace(v.s)
		if trimmed == "" {
			return v
		}
		switch trimmed[0] {
		case '{', '[', '(':
			parsed, err := parseValue(trimmed, opts.inner())
			if err != nil {
				return v
			}
			return processNested(parsed, opts)
		}
	}
	return v
}

// parsePrimitive coerces a raw token: null/none, true/false
// (case-insensitive), then a number, with a decimal point or exponent marker
// selecting floating point. A token that is none of these stays a string; an
// empty token is null.
func parsePrimitive(raw string) Value {
	if raw == "" {
		return NullValue()
	}
	// A single-quoted token is a string, skipping every coercion below.
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return StringValue(raw[1 : len(raw)-1])
	}
	switch low := strings.ToLower(raw); low {
	case "null", "none":
		return NullValue()
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if strings.ContainsAny(raw, ".eE") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(raw)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(n)
	}
	// An integer-looking token too large for int64 still counts as a number.
	if allDigits(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
	}
	return StringValue(raw)
}

func allDigits(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// advanced guarantees forward progress for loops driven by captureRaw and
// parseNextValue, which can legitimately stand still on a stray delimiter.
func advanced(from, to int) int {
	if to > from {
		return to
	}
	return from + 1
}
