// Package searchql translates a compact, human-authored search-query
// language into typed expression trees suitable for downstream search
// backends. It exposes a small public façade over two closed-set stages:
//
//   - Tokenize(name, input)  selects a tokenizer by name ("fsm" is the core)
//   - Parse(name, tokens)    selects a parser by name ("shift_reduce" is the
//     core; "recdec" is a secondary recursive-descent implementation with
//     equivalent semantics on well-formed input)
//
// Per SPEC_FULL.md §9's design notes, selection is a closed explicit
// dispatch rather than an open plug-in registry: the set of implementations
// is small and known at compile time.
package searchql

import (
	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/parser"
	"github.com/oarkflow/searchql/token"
	"github.com/oarkflow/searchql/tokenizer"
)

// Re-export the core types so callers only need to import this package for
// everyday use.
type (
	Expr      = ast.Expr
	Value     = ast.Value
	TokenSpan = token.TokenSpan
	Kind      = token.Kind
)

// Tokenize selects a tokenizer implementation by name and runs it over input.
func Tokenize(name, input string) ([]token.TokenSpan, error) {
	switch name {
	case tokenizer.Name:
		return tokenizer.Tokenize(input)
	default:
		return nil, apperrors.NewUnknownImplementation("tokenizer", name)
	}
}

// Parse selects a parser implementation by name and runs it over a
// previously tokenized stream.
func Parse(name string, tokens []token.TokenSpan) (ast.Expr, error) {
	switch name {
	case parser.ShiftReduceName:
		return parser.Parse(tokens)
	case parser.RecDecName:
		return parser.ParseRecDec(tokens)
	default:
		return nil, apperrors.NewUnknownImplementation("parser", name)
	}
}

// Tokenizers enumerates the registered tokenizer implementation names.
func Tokenizers() []string {
	return []string{tokenizer.Name}
}

// Parsers enumerates the registered parser implementation names.
func Parsers() []string {
	return []string{parser.ShiftReduceName, parser.RecDecName}
}

// Optimizer selects the post-parse tree optimisation to apply.
type Optimizer string

const (
	// OptimizerNone skips the EOI-fold pass, leaving transient Group nodes
	// and unflattened Combine chains in the tree.
	OptimizerNone Optimizer = "none"
	// OptimizerEOIFold ("stfap" in the CLI's flag vocabulary — short for the
	// single-pass "splice/flatten/absorb/prune" fold) runs ast.Fold.
	OptimizerEOIFold Optimizer = "stfap"
)

// ParseQuery runs the full pipeline: tokenize, parse, and optionally fold.
// It is the convenience entry point most callers want; Tokenize and Parse
// remain available separately for callers who need the intermediate token
// stream (e.g. the CLI's --output tokens/spans modes).
func ParseQuery(tokenizerName, parserName string, input string, opt Optimizer) (ast.Expr, error) {
	toks, err := Tokenize(tokenizerName, input)
	if err != nil {
		return nil, err
	}
	tree, err := Parse(parserName, toks)
	if err != nil {
		return nil, err
	}
	if opt == OptimizerEOIFold {
		tree = ast.Fold(tree)
	}
	return tree, nil
}

// Render produces canonical query text for a tree (§8 invariant 4's
// round-trip form).
func Render(e ast.Expr) string { return ast.Render(e) }
