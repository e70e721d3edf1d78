package tokenizer

import "github.com/oarkflow/searchql/token"

const maxDigits = 32

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

// matchInteger recognises an optional sign followed by 1-32 decimal digits.
func matchInteger(s string, _ int) (int, bool) {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	digits := 0
	for n < len(s) && isDigitByte(s[n]) && digits < maxDigits {
		n++
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return n, true
}

// matchFloat recognises an integer prefix, a '.', and optionally 1-32
// fractional digits. A trailing bare '.' with no fractional digits is
// accepted ("12.") per the boundary case in SPEC_FULL.md §8.
func matchFloat(s string, _ int) (int, bool) {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	intDigits := 0
	for n < len(s) && isDigitByte(s[n]) && intDigits < maxDigits {
		n++
		intDigits++
	}
	if intDigits == 0 {
		return 0, false
	}
	if n >= len(s) || s[n] != '.' {
		return 0, false
	}
	n++ // consume '.'
	fracDigits := 0
	for n < len(s) && isDigitByte(s[n]) && fracDigits < maxDigits {
		n++
		fracDigits++
	}
	return n, true
}

var (
	mFloat   = matcher{kind: token.FLOAT, fn: matchFloat}
	mInteger = matcher{kind: token.INTEGER, fn: matchInteger}
)
