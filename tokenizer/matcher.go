// Package tokenizer implements the FSM tokenizer: a deterministic,
// single-pass, no-backtracking scanner that turns query text into a flat
// stream of token.TokenSpan values.
package tokenizer

import "github.com/oarkflow/searchql/token"

// matchFunc is a pure sub-matcher: given the remaining input and the
// matcher's maximum_bound (0 = unbounded), it reports how many bytes of a
// prefix it recognises, or ok=false on a miss. Matchers never mutate input
// and never commit more than max bytes.
type matchFunc func(s string, max int) (n int, ok bool)

// matcher pairs a matchFunc with the token.Kind it produces.
type matcher struct {
	kind token.Kind
	max  int // 0 means unbounded
	fn   matchFunc
}

func (m matcher) try(s string) (int, bool) {
	return m.fn(s, m.max)
}
