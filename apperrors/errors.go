// Package apperrors defines the error taxonomy shared by the tokenizer and
// parser, grounded on the teacher's single-struct *parser.ParseError but
// split into distinct, errors.Is-compatible categories since the façade
// must be able to tell them apart (SPEC_FULL.md §7).
package apperrors

import (
	"errors"
	"fmt"

	"github.com/oarkflow/searchql/token"
)

// Category sentinels. Callers distinguish error kinds with errors.Is against
// these, never by inspecting internal identifiers or string-matching
// messages.
var (
	// ErrLexicalStuck: the FSM is in a non-terminal state with no
	// admissible successor matching the current cursor.
	ErrLexicalStuck = errors.New("lexical error: no admissible token matched")
	// ErrUnexpectedToken: the parser can neither shift nor reduce.
	ErrUnexpectedToken = errors.New("parse error: unexpected token")
	// ErrLiteralParse: a literal token matched lexically but failed value
	// conversion (integer overflow, malformed date, invalid IP).
	ErrLiteralParse = errors.New("literal conversion error")
	// ErrUnknownImplementation: a named tokenizer/parser isn't registered.
	ErrUnknownImplementation = errors.New("unknown implementation name")
	// ErrIO is reserved for the CLI boundary; the core never returns it.
	ErrIO = errors.New("io error")
)

// LexicalStuckError carries the expected-kinds set and the offending
// context so callers can build a precise (if terse) message.
type LexicalStuckError struct {
	Expected []token.Kind
	Text     string
	Pos      int
}

func NewLexicalStuck(expected []token.Kind, text string, pos int) *LexicalStuckError {
	return &LexicalStuckError{Expected: expected, Text: text, Pos: pos}
}

func (e *LexicalStuckError) Error() string {
	ctx := e.Text[e.Pos:]
	if len(ctx) > 24 {
		ctx = ctx[:24] + "..."
	}
	return fmt.Sprintf("%s at byte %d, expected one of %v, got %q", ErrLexicalStuck, e.Pos, e.Expected, ctx)
}

func (e *LexicalStuckError) Unwrap() error { return ErrLexicalStuck }

// UnexpectedTokenError is surfaced with the offending token.TokenSpan.
type UnexpectedTokenError struct {
	Got      token.TokenSpan
	Expected []token.Kind
}

func NewUnexpectedToken(got token.TokenSpan, expected ...token.Kind) *UnexpectedTokenError {
	return &UnexpectedTokenError{Got: got, Expected: expected}
}

func (e *UnexpectedTokenError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: %s %q", ErrUnexpectedToken, e.Got.Kind, e.Got.Raw())
	}
	return fmt.Sprintf("%s: %s %q, expected one of %v", ErrUnexpectedToken, e.Got.Kind, e.Got.Raw(), e.Expected)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// LiteralParseError wraps the underlying conversion failure (e.g. a
// strconv.ErrRange on integer overflow) with the offending span.
type LiteralParseError struct {
	Span token.TokenSpan
	Err  error
}

func NewLiteralParse(span token.TokenSpan, err error) *LiteralParseError {
	return &LiteralParseError{Span: span, Err: err}
}

func (e *LiteralParseError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrLiteralParse, e.Span.Raw(), e.Err)
}

func (e *LiteralParseError) Unwrap() []error { return []error{ErrLiteralParse, e.Err} }

// UnknownImplementationError names the implementation kind (tokenizer or
// parser) and the name that wasn't registered.
type UnknownImplementationError struct {
	Component string // "tokenizer" or "parser"
	Name      string
}

func NewUnknownImplementation(component, name string) *UnknownImplementationError {
	return &UnknownImplementationError{Component: component, Name: name}
}

func (e *UnknownImplementationError) Error() string {
	return fmt.Sprintf("%s: unknown %s %q", ErrUnknownImplementation, e.Component, e.Name)
}

func (e *UnknownImplementationError) Unwrap() error { return ErrUnknownImplementation }
