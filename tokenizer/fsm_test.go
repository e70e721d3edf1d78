package tokenizer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/token"
	"github.com/oarkflow/searchql/tokenizer"
)

func kinds(t *testing.T, toks []token.TokenSpan) []token.Kind {
	t.Helper()
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func wantKinds(t *testing.T, text string, want ...token.Kind) {
	t.Helper()
	toks, err := tokenizer.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", text, err)
	}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q): got %v, want %v", text, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokenize(%q): got %v, want %v", text, got, want)
		}
	}
}

func TestBareTagsSeparatedByCommaAreAndTokens(t *testing.T) {
	wantKinds(t, "a,b,c",
		token.ROOT, token.TAG, token.AND, token.TAG, token.AND, token.TAG, token.EOI)
}

func TestFieldRangeInteger(t *testing.T) {
	wantKinds(t, "field.gte:1000",
		token.ROOT, token.FIELD, token.RANGE, token.INTEGER, token.EOI)
}

func TestPrefixNot(t *testing.T) {
	wantKinds(t, "-foo", token.ROOT, token.NOT, token.TAG, token.EOI)
}

func TestEmptyGroup(t *testing.T) {
	wantKinds(t, "()", token.ROOT, token.LPAREN, token.RPAREN, token.EOI)
}

func TestEmptyInputProducesJustRootAndEOI(t *testing.T) {
	wantKinds(t, "", token.ROOT, token.EOI)
}

func TestWhitespaceOnlyInputProducesJustRootAndEOI(t *testing.T) {
	wantKinds(t, "   \t  ", token.ROOT, token.EOI)
}

func TestHasWithIPLiteralDoesNotMisclassifyAsTag(t *testing.T) {
	toks, err := tokenizer.Tokenize("other.has:192.168.0.1")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	got := kinds(t, toks)
	want := []token.Kind{token.ROOT, token.FIELD, token.RANGE, token.IP_CIDR, token.EOI}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHasWithBarewordIsTag(t *testing.T) {
	toks, err := tokenizer.Tokenize("other.has:plaintext")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	got := kinds(t, toks)
	want := []token.Kind{token.ROOT, token.FIELD, token.RANGE, token.TAG, token.EOI}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFloatPrecedesIntegerOnDottedLiteral(t *testing.T) {
	toks, err := tokenizer.Tokenize("bla.gte:100.2")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	// field, range, one FLOAT token (not INTEGER followed by a stray DOT).
	if len(toks) != 5 || toks[3].Kind != token.FLOAT {
		t.Fatalf("got kinds %v", kinds(t, toks))
	}
	if toks[3].Raw() != "100.2" {
		t.Fatalf("got raw %q, want %q", toks[3].Raw(), "100.2")
	}
}

func TestUnrecognizedCharacterIsLexicalStuck(t *testing.T) {
	_, err := tokenizer.Tokenize("field.gte:1000 @@@")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var lexErr *apperrors.LexicalStuckError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T, want *apperrors.LexicalStuckError", err)
	}
}

func TestUnmatchedClosingParenIsLexicallyValid(t *testing.T) {
	// The tokenizer alone has no notion of matching parens; "a)" lexes fine
	// because Tag's successor table legitimately includes GroupEnd. Catching
	// the imbalance is the parser's job (see parser/parser_test.go).
	toks, err := tokenizer.Tokenize("a)")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	wantK := []token.Kind{token.ROOT, token.TAG, token.RPAREN, token.EOI}
	got := kinds(t, toks)
	if len(got) != len(wantK) {
		t.Fatalf("got %v, want %v", got, wantK)
	}
}

func TestTokenCountGrowsLinearlyWithInputSize(t *testing.T) {
	// A crude O(n) sanity check (spec.md §8 testable property): doubling a
	// repeated bare-tag query should roughly double the token count, not
	// blow up polynomially.
	one := strings.TrimSuffix(strings.Repeat("a,", 64), ",")
	two := strings.TrimSuffix(strings.Repeat("a,", 128), ",")
	toksOne, err := tokenizer.Tokenize(one)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	toksTwo, err := tokenizer.Tokenize(two)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	ratio := float64(len(toksTwo)) / float64(len(toksOne))
	if ratio < 1.9 || ratio > 2.1 {
		t.Fatalf("token count did not scale linearly: %d -> %d (ratio %.2f)", len(toksOne), len(toksTwo), ratio)
	}
}
