package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/oarkflow/searchql/token"
)

// maxFieldBytes/maxTagBytes bound FIELD (including its trailing '.') and TAG
// respectively, per SPEC_FULL.md §4.1.
const (
	maxFieldBytes = 65
	maxTagBytes   = 255
)

var barewordKeywords = []string{"AND", "OR", "NOT", "&&", "||"}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// singleCharTerminators ends an identifier scan outright. '&' and '|' are
// added to the set spec.md §4.1 enumerates literally, so that "a&&b" and
// "a||b" split on the doubled operator instead of being swallowed whole by
// the shared scanner — see DESIGN.md for this resolution.
func isSingleCharTerminator(r rune) bool {
	switch r {
	case '(', ')', '*', '?', ',', '"', '~', '^', '&', '|':
		return true
	}
	return false
}

// scanIdentifier walks s until it finds a lexeme-terminating rune, per the
// shared scanner described in SPEC_FULL.md §4.1. It reports the number of
// bytes consumed and whether the run ended on a bare '.' (a FIELD boundary)
// as opposed to any other terminator (a TAG boundary).
func scanIdentifier(s string) (n int, dot bool) {
	if len(s) == 0 {
		return 0, false
	}
	if s[0] == '-' || s[0] == '!' {
		// A leading '-' or '!' only terminates at the very start: it is the
		// NOT prefix operator's territory, not an identifier's.
		return 0, false
	}

	// The bareword-keyword boundary only applies at the very start of the
	// scan: at any later position the previous byte was already accepted as
	// ordinary identifier content, so "ANDROID" keeps scanning as one tag
	// while a standalone "AND" does not.
	if _, ok := matchBarewordTerminator(s); ok {
		return 0, false
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '\\' {
			i += size
			if i < len(s) {
				_, esize := utf8.DecodeRuneInString(s[i:])
				i += esize
			}
			continue
		}
		if unicode.IsSpace(r) {
			break
		}
		if isSingleCharTerminator(r) {
			break
		}
		if r == '.' {
			return i, true
		}
		i += size
	}
	return i, false
}

// matchBarewordTerminator reports whether s begins with one of the bareword
// combinator keywords at a word boundary (i.e. immediately followed by
// whitespace, a terminator, or end of input — never mid-identifier, since
// "ANDROID" must keep scanning as one tag).
func matchBarewordTerminator(s string) (string, bool) {
	for _, w := range barewordKeywords {
		if len(s) < len(w) || s[:len(w)] != w {
			continue
		}
		if len(s) == len(w) {
			return w, true
		}
		r, _ := utf8.DecodeRuneInString(s[len(w):])
		if unicode.IsSpace(r) || isSingleCharTerminator(r) || r == '.' {
			return w, true
		}
	}
	return "", false
}

func matchField(s string, _ int) (int, bool) {
	n, dot := scanIdentifier(s)
	if !dot || n < 1 {
		return 0, false
	}
	total := n + 1 // include the trailing '.'
	if total > maxFieldBytes {
		return 0, false
	}
	return total, true
}

func matchTag(s string, _ int) (int, bool) {
	n, dot := scanIdentifier(s)
	if dot || n < 1 {
		return 0, false
	}
	if n > maxTagBytes {
		return 0, false
	}
	return n, true
}

var (
	mField = matcher{kind: token.FIELD, fn: matchField}
	mTag   = matcher{kind: token.TAG, fn: matchTag}
)
