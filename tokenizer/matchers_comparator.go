package tokenizer

import "github.com/oarkflow/searchql/token"

// comparatorWords is tried longest-prefix-first so "gt:" never steals a
// match that should go to "gte:", etc. The leading '.' that precedes a
// comparator is consumed by the FIELD matcher (it eats "name" + "."), so by
// the time RANGE runs the cursor already sits on the comparator letters.
var comparatorWords = []string{"gte:", "lte:", "neq:", "has:", "gt:", "lt:", "eq:"}

func matchComparator(s string, _ int) (int, bool) {
	for _, w := range comparatorWords {
		if len(s) < len(w) {
			continue
		}
		if asciiEqualFold(s[:len(w)-1], w[:len(w)-1]) && s[len(w)-1] == ':' {
			return len(w), true
		}
	}
	return 0, false
}

var mRange = matcher{kind: token.RANGE, fn: matchComparator}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 32
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 32
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// comparatorKind classifies matched RANGE text into the three follow-up
// branches the FSM table distinguishes: eq/neq accept any data value,
// lt/lte/gt/gte accept only ordered values, has accepts string/IP/CIDR.
type comparatorKind uint8

const (
	comparatorEqNeq comparatorKind = iota
	comparatorRelational
	comparatorHas
)

func classifyComparator(raw string) comparatorKind {
	switch {
	case len(raw) >= 3 && asciiEqualFold(raw[:3], "has"):
		return comparatorHas
	case len(raw) >= 2 && (asciiEqualFold(raw[:2], "eq") || (len(raw) >= 3 && asciiEqualFold(raw[:3], "neq"))):
		return comparatorEqNeq
	default:
		return comparatorRelational
	}
}
