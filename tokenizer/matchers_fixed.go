package tokenizer

import "github.com/oarkflow/searchql/token"

// literalSet matches the first member, in listed order, of a fixed set of
// literal strings that prefixes the input. Grouping and infix/prefix operators are all closed sets of
// constant-length lexemes, so each commits after a constant-length probe
// with no scanning loop.
func literalSet(words ...string) matchFunc {
	return func(s string, _ int) (int, bool) {
		for _, w := range words {
			if len(s) >= len(w) && s[:len(w)] == w {
				return len(w), true
			}
		}
		return 0, false
	}
}

var (
	mGroupStart = matcher{kind: token.LPAREN, fn: literalSet("(")}
	mGroupEnd   = matcher{kind: token.RPAREN, fn: literalSet(")")}

	// AND keywords are matched uppercase-only by design; see §9 "Case
	// sensitivity" in SPEC_FULL.md. No member of a set is a prefix of
	// another, so the listed order does not change which one matches.
	mAnd = matcher{kind: token.AND, fn: literalSet("&&", "AND", ",")}
	mOr  = matcher{kind: token.OR, fn: literalSet("||", "OR")}

	mNot   = matcher{kind: token.NOT, fn: literalSet("NOT", "!", "-")}
	mBoost = matcher{kind: token.BOOST, fn: literalSet("^")}
	mFuzz  = matcher{kind: token.FUZZ, fn: literalSet("~")}
)
