package token

// Span is an immutable, borrowed view over a slice of the original input
// text. Spans never copy input; they are valid for as long as the caller
// keeps the source text alive.
//
// Invariant: 0 <= Start <= End <= len(text this span was cut from).
type Span struct {
	text  string
	Start int
	End   int
}

// NewSpan builds a Span over text[start:end]. Callers (the tokenizer) are
// responsible for keeping start <= end <= len(text).
func NewSpan(text string, start, end int) Span {
	return Span{text: text, Start: start, End: end}
}

// String returns the borrowed substring text[Start:End].
func (s Span) String() string {
	return s.text[s.Start:s.End]
}

// Len returns the byte length of the span.
func (s Span) Len() int { return s.End - s.Start }

// TokenSpan pairs a Span with the Kind the FSM committed it as.
type TokenSpan struct {
	Span
	Kind Kind
}

// NewTokenSpan builds a TokenSpan.
func NewTokenSpan(kind Kind, text string, start, end int) TokenSpan {
	return TokenSpan{Span: NewSpan(text, start, end), Kind: kind}
}

// Raw returns the exact source text this token was cut from.
func (t TokenSpan) Raw() string { return t.String() }
