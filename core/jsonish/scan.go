package jsonish

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// scanString reads one double-quoted literal starting at s[i] and returns the
// decoded text together with the index just past the closing quote.
//
// Escape handling follows JSON with two lenient twists: an unknown escape
// emits the escaped character with the backslash dropped, and a malformed
// \uXXXX emits the literal two characters `\u` with scanning resuming right
// after them, so broken unicode escapes are preserved instead of rejected.
func scanString(s string, i int) (string, int, error) {
	if i >= len(s) || s[i] != '"' {
		return "", i, fmt.Errorf("%w at offset %d", ErrExpectedQuote, i)
	}
	start := i
	i++
	n := len(s)
	var b strings.Builder
	for i < n {
		ch := s[i]
		if ch == '"' {
			return b.String(), i + 1, nil
		}
		if ch != '\\' {
			b.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= n {
			// Trailing backslash: the string can no longer terminate.
			break
		}
		switch esc := s[i+1]; esc {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, width, ok := decodeUnicodeEscape(s, i)
			if !ok {
				b.WriteString(`\u`)
				i += 2
				continue
			}
			b.WriteRune(r)
			i += width
			continue
		default:
			b.WriteByte(esc)
		}
		i += 2
	}
	return "", i, fmt.Errorf("%w starting at offset %d", ErrUnterminatedString, start)
}

// decodeUnicodeEscape decodes the \uXXXX sequence beginning at s[i] (which
// must point at the backslash). Surrogate pairs spanning two escapes are
// combined; a lone surrogate decodes to U+FFFD, matching encoding/json.
func decodeUnicodeEscape(s string, i int) (rune, int, bool) {
	if i+6 > len(s) {
		return 0, 0, false
	}
	hi, err := strconv.ParseUint(s[i+2:i+6], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	r := rune(hi)
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}
	if i+12 <= len(s) && s[i+6] == '\\' && s[i+7] == 'u' {
		if lo, err := strconv.ParseUint(s[i+8:i+12], 16, 32); err == nil {
			if paired := utf16.DecodeRune(r, rune(lo)); paired != 0xFFFD {
				return paired, 12, true
			}
		}
	}
	return 0xFFFD, 6, true
}

// findBalanced locates the closer matching the opener at s[i], tracking depth
// for that one bracket pair only and skipping whole quoted spans so brackets
// inside strings never affect the count. It returns the index just past the
// matching closer.
func findBalanced(s string, i int, open, close byte) (int, error) {
	start := i
	depth := 0
	n := len(s)
	for i < n {
		switch ch := s[i]; ch {
		case '"':
			_, next, err := scanString(s, i)
			if err != nil {
				return 0, fmt.Errorf("%w: string inside region at offset %d does not terminate", ErrUnbalancedBrackets, i)
			}
			i = next
		case open:
			depth++
			i++
		case close:
			depth--
			i++
			if depth == 0 {
				return i, nil
			}
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: no %q matching offset %d", ErrUnbalancedBrackets, close, start)
}

// captureRaw scans from i to the next top-level comma or closing delimiter,
// skipping whole quoted spans and balancing every bracket kind, and returns
// the trimmed raw text together with the index of the delimiter. This is the
// element-level total-recovery fallback: whatever could not be parsed is kept
// as text.
func captureRaw(s string, i int) (string, int) {
	start := i
	depth := 0
	n := len(s)
	for i < n {
		ch := s[i]
		switch {
		case ch == '"':
			if _, next, err := scanString(s, i); err == nil {
				i = next
				continue
			}
			// Malformed string: step past the quote and keep scanning.
			i++
		case ch == '{' || ch == '[' || ch == '(':
			depth++
			i++
		case ch == '}' || ch == ']' || ch == ')':
			if depth == 0 {
				return strings.TrimSpace(s[start:i]), i
			}
			depth--
			i++
		case ch == ',' && depth == 0:
			return strings.TrimSpace(s[start:i]), i
		default:
			i++
		}
	}
	return strings.TrimSpace(s[start:i]), i
}
