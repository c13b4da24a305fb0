package jsonish

import "strings"

// Clean rewrites common JSON-like malformations in one left-to-right pass:
//
//   - a leading byte-order mark is stripped;
//   - single-quoted tokens outside key/value structural positions become
//     double-quoted, with any inner double quotes escaped;
//   - a trailing comma immediately before } or ] is dropped;
//   - the bare tokens undefined and NaN become null.
//
// Double-quoted spans are copied verbatim so no fix ever touches string
// interiors, which keeps Clean a no-op on already-valid JSON. All fixes run
// in the same pass so one rewrite cannot corrupt a region another already
// repaired. Clean is pure and is only applied as a fallback, never on the
// first parse attempt of a candidate.
func Clean(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	var b strings.Builder
	b.Grow(len(text))
	n := len(text)
	i := 0
	for i < n {
		ch := text[i]
		switch {
		case ch == '"':
			j := skipQuotedSpan(text, i)
			b.WriteString(text[i:j])
			i = j
		case ch == '\'':
			if fixed, next, ok := convertSingleQuoted(text, i); ok {
				b.WriteString(fixed)
				i = next
				continue
			}
			b.WriteByte(ch)
			i++
		case ch == ',':
			j := i + 1
			for j < n && isSpace(text[j]) {
				j++
			}
			if j < n && (text[j] == '}' || text[j] == ']') {
				i = j // drop the trailing comma and the gap; the closer copies as usual
				continue
			}
			b.WriteByte(ch)
			i++
		case ch == 'u' || ch == 'N':
			if width := sentinelAt(text, i); width > 0 {
				b.WriteString("null")
				i += width
				continue
			}
			b.WriteByte(ch)
			i++
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// skipQuotedSpan returns the index just past the double-quoted span starting
// at s[i], honouring backslash escapes. An unterminated span extends to the
// end of the text.
func skipQuotedSpan(s string, i int) int {
	n := len(s)
	j := i + 1
	for j < n {
		if s[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		if s[j] == '"' {
			return j + 1
		}
		j++
	}
	return n
}

// convertSingleQuoted rewrites the single-quoted token starting at s[i] to a
// double-quoted one. Conversion is skipped when no closing quote exists, or
// when a ':' or ',' follows the opening quote before any '{' or '[', which
// marks the token as part of a key/value structural position that rewriting
// would corrupt.
func convertSingleQuoted(s string, i int) (string, int, bool) {
scan:
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '{', '[':
			break scan
		case ':', ',':
			return "", 0, false
		}
	}
	end := strings.IndexByte(s[i+1:], '\'')
	if end < 0 {
		return "", 0, false
	}
	body := s[i+1 : i+1+end]
	return `"` + strings.ReplaceAll(body, `"`, `\"`) + `"`, i + end + 2, true
}

// sentinelAt reports the width of a bare undefined or NaN token at s[i], or
// zero when s[i] starts neither or the token is part of a larger word.
func sentinelAt(s string, i int) int {
	var width int
	switch {
	case strings.HasPrefix(s[i:], "undefined"):
		width = len("undefined")
	case strings.HasPrefix(s[i:], "NaN"):
		width = len("NaN")
	default:
		return 0
	}
	if i > 0 && isWordByte(s[i-1]) {
		return 0
	}
	if i+width < len(s) && isWordByte(s[i+width]) {
		return 0
	}
	return width
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// escapeInnerQuotes is the tolerant-mode heuristic for the common
// malformation of a bracketed fragment embedded in a string whose inner
// quotes were never escaped. Inside each string a depth counter follows
// brackets seen within that string; a quote at positive depth is rewritten
// as \" and the string is presumed to continue, while a quote at depth zero
// closes the string normally. Already-escaped sequences pass through
// verbatim.
func escapeInnerQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	n := len(s)
	i := 0
	for i < n {
		ch := s[i]
		if ch != '"' {
			b.WriteByte(ch)
			i++
			continue
		}
		b.WriteByte('"')
		i++
		depth := 0
	str:
		for i < n {
			c := s[i]
			if c == '\\' && i+1 < n {
				b.WriteByte(c)
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			switch c {
			case '(', '{', '[':
				depth++
				b.WriteByte(c)
			case ')', '}', ']':
				depth--
				b.WriteByte(c)
			case '"':
				if depth > 0 {
					b.WriteString(`\"`)
				} else {
					b.WriteByte('"')
					i++
					break str
				}
			default:
				b.WriteByte(c)
			}
			i++
		}
	}
	return b.String()
}
