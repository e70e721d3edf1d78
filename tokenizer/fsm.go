package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/token"
)

// Name is the registration name the public façade (package searchql) uses
// to select this tokenizer.
const Name = "fsm"

// admitsEOI lists the states whose row in the successor table ends in
// EndOfInput, per SPEC_FULL.md §4.2.
var admitsEOI = map[state]bool{
	stateStart:    true,
	stateGroupEnd: true,
	stateDataValue: true,
	stateTag:      true,
}

// Tokenize scans text into a flat stream of token.TokenSpan, prefixed with a
// synthetic ROOT span and terminated by a zero-width EOI span. It is a
// single left-to-right pass with no backtracking: at each step every
// admissible successor for the current state is offered the remaining
// input in order, and the first one that matches wins.
func Tokenize(text string) ([]token.TokenSpan, error) {
	out := make([]token.TokenSpan, 0, estimateTokenCount(text))
	out = append(out, token.NewTokenSpan(token.ROOT, text, 0, len(text)))

	cur := stateStart
	cursor := 0
	cursor = skipWhitespace(text, cursor)

	for {
		if cursor >= len(text) {
			if admitsEOI[cur] {
				out = append(out, token.NewTokenSpan(token.EOI, text, cursor, cursor))
				return out, nil
			}
			return nil, apperrors.NewLexicalStuck(expectedKinds(cur), text, cursor)
		}

		m, matched, n := tryMatch(cur, text[cursor:])
		if !matched {
			return nil, apperrors.NewLexicalStuck(expectedKinds(cur), text, cursor)
		}

		start := cursor
		end := cursor + n
		out = append(out, token.NewTokenSpan(m.kind, text, start, end))

		next, ok := nextState(cur, m, text[start:end])
		if !ok {
			return nil, apperrors.NewLexicalStuck(expectedKinds(cur), text, cursor)
		}
		cur = next
		cursor = skipWhitespace(text, end)
	}
}

// tryMatch offers the remaining input to every matcher admissible from cur,
// in table order, committing the first one that matches.
func tryMatch(cur state, remaining string) (matcher, bool, int) {
	for _, m := range successors[cur] {
		if n, ok := m.try(remaining); ok {
			return m, true, n
		}
	}
	return matcher{}, false, 0
}

// nextState computes the FSM's next state after committing token kind k,
// branching on the comparator text for RANGE tokens since Comp(eq|neq),
// Comp(lt|lte|gt|gte) and Comp(has) each admit a different successor set.
func nextState(cur state, m matcher, raw string) (state, bool) {
	switch m.kind {
	case token.LPAREN:
		return stateGroupStart, true
	case token.RPAREN:
		return stateGroupEnd, true
	case token.AND, token.OR:
		return stateInfixOp, true
	case token.NOT:
		return statePrefixNot, true
	case token.BOOST, token.FUZZ:
		return statePrefixBoostFuzz, true
	case token.RANGE:
		return compNextState(classifyComparator(raw)), true
	case token.FIELD:
		return stateField, true
	case token.TAG:
		if cur == stateCompEqNeq || cur == stateCompHas {
			return dataValueNextState(), true
		}
		return stateTag, true
	case token.FLOAT, token.INTEGER, token.BOOLEAN, token.IP_CIDR, token.ABSOLUTE_DATE, token.RELATIVE_DATE:
		return dataValueNextState(), true
	}
	return stateStart, false
}

// expectedKinds lists the token kinds admissible from state s, for error
// reporting.
func expectedKinds(s state) []token.Kind {
	ms := successors[s]
	kinds := make([]token.Kind, 0, len(ms)+1)
	for _, m := range ms {
		kinds = append(kinds, m.kind)
	}
	if admitsEOI[s] {
		kinds = append(kinds, token.EOI)
	}
	return kinds
}

// skipWhitespace advances past any run of Unicode whitespace, swallowing
// trailing whitespace after the previous token as SPEC_FULL.md §4.2
// requires.
func skipWhitespace(text string, cursor int) int {
	for cursor < len(text) {
		r, size := utf8.DecodeRuneInString(text[cursor:])
		if !isUnicodeSpace(r) {
			break
		}
		cursor += size
	}
	return cursor
}

func isUnicodeSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// estimateTokenCount sizes the initial token buffer to roughly one token per
// 4 bytes of input, avoiding repeated grows for typical queries while
// keeping the allocation proportional to input length per SPEC_FULL.md §5.
func estimateTokenCount(text string) int {
	n := len(text)/4 + 4
	if n > 1<<16 {
		n = 1 << 16
	}
	return n
}
