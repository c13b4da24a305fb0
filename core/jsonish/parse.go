package jsonish

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse extracts every balanced JSON-like structure from text and parses each
// one. Candidates are returned in left-to-right order; a candidate that fails
// both the direct parse and the clean-and-retry parse is returned as its raw
// trimmed text, so every candidate always yields a usable result. When
// opts.ExtractMultiple is false the slice holds exactly one element.
//
// When no candidate region exists at all, the whole cleaned text is given one
// direct parse attempt; if that also fails, Parse returns
// [ErrInvalidJSONLike]. That is the only failure mode.
func Parse(text string, opts Options) ([]Value, error) {
	candidates := findStructures(text, opts)
	if len(candidates) == 0 {
		v, err := parseValue(Clean(text), opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSONLike, err)
		}
		return []Value{v}, nil
	}

	results := make([]Value, 0, len(candidates))
	for _, cand := range candidates {
		v, err := parseValue(cand, opts)
		if err != nil {
			v, err = parseValue(Clean(cand), opts)
		}
		if err != nil {
			// Total recovery: keep the candidate itself as text.
			v = StringValue(strings.TrimSpace(cand))
		}
		results = append(results, v)
	}
	if !opts.ExtractMultiple {
		return results[:1], nil
	}
	return results, nil
}

// ParseOne is Parse restricted to the first candidate.
func ParseOne(text string, opts Options) (Value, error) {
	opts.ExtractMultiple = false
	results, err := Parse(text, opts)
	if err != nil {
		return Value{}, err
	}
	return results[0], nil
}

// ParseAny renders input as text and parses it. Strings, byte slices,
// [fmt.Stringer] implementations, and errors are used directly; anything else
// is rendered through JSON encoding. Input that cannot be rendered fails with
// [ErrInvalidInput].
func ParseAny(input any, opts Options) ([]Value, error) {
	text, err := stringify(input)
	if err != nil {
		return nil, err
	}
	return Parse(text, opts)
}

func stringify(input any) (string, error) {
	switch v := input.(type) {
	case nil:
		return "", fmt.Errorf("%w: nil input", ErrInvalidInput)
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	default:
		encoded, err := json.Marshal(input)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return string(encoded), nil
	}
}

// findStructures scans the raw text left to right and collects every
// top-level balanced candidate region. Openers are {, [, and, outside strict
// mode, (. A matched span is recorded whole and the cursor advances past it,
// so candidates never overlap; an opener with no matching closer is skipped
// one character at a time. Scanning stops after the first candidate when
// opts.ExtractMultiple is false.
func findStructures(text string, opts Options) []string {
	var out []string
	i, n := 0, len(text)
	for i < n {
		var close byte
		switch text[i] {
		case '{':
			close = '}'
		case '[':
			close = ']'
		case '(':
			if opts.StrictJSON {
				i++
				continue
			}
			close = ')'
		default:
			i++
			continue
		}
		end, err := findBalanced(text, i, text[i], close)
		if err != nil {
			i++
			continue
		}
		out = append(out, text[i:end])
		i = end
		if !opts.ExtractMultiple {
			break
		}
	}
	return out
}

// parseValue parses one whole candidate. Empty input deliberately yields an
// empty object. In tolerant mode the inner-quote escaper runs first; when the
// escaped text fails to parse and the escaper actually changed something, the
// untouched text gets a second chance, since the escaper is a heuristic that
// can break a candidate whose strings contain unbalanced brackets.
func parseValue(s string, opts Options) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ObjectValue(NewObject()), nil
	}
	if opts.Tolerant {
		if escaped := escapeInnerQuotes(s); escaped != s {
			if v, err := parseTrimmed(escaped, opts); err == nil {
				return v, nil
			}
		}
	}
	return parseTrimmed(s, opts)
}

// parseTrimmed dispatches on the first character of a trimmed candidate.
func parseTrimmed(s string, opts Options) (Value, error) {
	switch s[0] {
	case '{':
		end, err := findBalanced(s, 0, '{', '}')
		if err != nil {
			return Value{}, err
		}
		return parseBraced(s[:end], opts)
	case '[':
		end, err := findBalanced(s, 0, '[', ']')
		if err != nil {
			return Value{}, err
		}
		return ArrayValue(parseElements(s[1:end-1], opts)...), nil
	case '(':
		if !opts.StrictJSON {
			end, err := findBalanced(s, 0, '(', ')')
			if err != nil {
				return Value{}, err
			}
			return TupleValue(parseTupleBody(s[:end], opts)...), nil
		}
	}
	return Value{}, fmt.Errorf("%w: %q", ErrInvalidStructure, firstFragment(s))
}

// parseBraced parses a brace-delimited region (braces included) as either an
// object or a set, decided by looksLikeSet. Strict mode always yields an
// object.
func parseBraced(content string, opts Options) (Value, error) {
	inner := strings.TrimSpace(content[1 : len(content)-1])
	if inner == "" {
		return ObjectValue(NewObject()), nil
	}
	setLike, err := looksLikeSet(inner, opts)
	if err != nil {
		return Value{}, err
	}
	if setLike && !opts.StrictJSON {
		return SetValue(parseSet(inner, opts)), nil
	}
	return ObjectValue(parseObject(inner, opts)), nil
}

func firstFragment(s string) string {
	const max = 40
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
