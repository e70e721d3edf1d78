package tokenizer

import "github.com/oarkflow/searchql/token"

// matchAbsoluteDate recognises the ISO-8601 subset:
//
//	YYYY[-MM[-DD[(T| )HH[:MM[:SS]]]]][±HH[:MM]|Z]
//
// later components require earlier ones; the offset is always optional.
func matchAbsoluteDate(s string, _ int) (int, bool) {
	n, ok := takeDigits(s, 0, 4, 4)
	if !ok {
		return 0, false
	}
	if !hasPrefixAt(s, n, "-") {
		return n, true
	}
	n2, ok := takeDigits(s, n+1, 2, 2)
	if !ok {
		return n, true
	}
	n = n2
	if !hasPrefixAt(s, n, "-") {
		return n, true
	}
	n2, ok = takeDigits(s, n+1, 2, 2)
	if !ok {
		return n, true
	}
	n = n2

	sep := ""
	if hasPrefixAt(s, n, "T") {
		sep = "T"
	} else if hasPrefixAt(s, n, " ") {
		sep = " "
	} else {
		return withOffset(s, n), true
	}
	n2, ok = takeDigits(s, n+len(sep), 2, 2)
	if !ok {
		return n, true
	}
	n = n2
	if hasPrefixAt(s, n, ":") {
		n2, ok = takeDigits(s, n+1, 2, 2)
		if ok {
			n = n2
			if hasPrefixAt(s, n, ":") {
				n2, ok = takeDigits(s, n+1, 2, 2)
				if ok {
					n = n2
				}
			}
		}
	}
	return withOffset(s, n), true
}

// withOffset extends n past an optional "Z" or "±HH[:MM]" timezone offset.
func withOffset(s string, n int) int {
	if hasPrefixAt(s, n, "Z") {
		return n + 1
	}
	if hasPrefixAt(s, n, "+") || hasPrefixAt(s, n, "-") {
		n2, ok := takeDigits(s, n+1, 2, 2)
		if !ok {
			return n
		}
		if hasPrefixAt(s, n2, ":") {
			n3, ok := takeDigits(s, n2+1, 2, 2)
			if ok {
				return n3
			}
		}
		return n2
	}
	return n
}

func hasPrefixAt(s string, at int, prefix string) bool {
	return at+len(prefix) <= len(s) && s[at:at+len(prefix)] == prefix
}

// takeDigits requires between min and max decimal digits starting at `at`.
// Returns the new cursor position and whether the minimum was satisfied.
func takeDigits(s string, at, min, max int) (int, bool) {
	n := at
	for n < len(s) && n-at < max && isDigitByte(s[n]) {
		n++
	}
	if n-at < min {
		return at, false
	}
	return n, true
}

var mAbsoluteDate = matcher{kind: token.ABSOLUTE_DATE, fn: matchAbsoluteDate}

// relativeUnits is tried longest-first so "minutes" isn't cut short by a
// hypothetical shorter prefix.
var relativeUnits = []string{"years", "year", "months", "month", "weeks", "week", "days", "day", "hours", "hour", "minutes", "minute", "seconds", "second"}

// matchRelativeDate recognises ((N unit )+ (ago|from now)).
func matchRelativeDate(s string, _ int) (int, bool) {
	n := 0
	quantities := 0
	for {
		start := n
		d, ok := takeDigits(s, n, 1, maxDigits)
		if !ok {
			break
		}
		n = d
		if !hasPrefixAt(s, n, " ") {
			n = start
			break
		}
		n++ // space
		unit, ok := matchLongestWord(s[n:], relativeUnits)
		if !ok {
			n = start
			break
		}
		n += unit
		quantities++
		if hasPrefixAt(s, n, " ") {
			n++
		} else {
			break
		}
	}
	if quantities == 0 {
		return 0, false
	}
	if hasPrefixAt(s, n, "ago") {
		return n + 3, true
	}
	if hasPrefixAt(s, n, "from now") {
		return n + 8, true
	}
	return 0, false
}

func matchLongestWord(s string, words []string) (int, bool) {
	for _, w := range words {
		if len(s) >= len(w) && s[:len(w)] == w {
			return len(w), true
		}
	}
	return 0, false
}

var mRelativeDate = matcher{kind: token.RELATIVE_DATE, fn: matchRelativeDate}
