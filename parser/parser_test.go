package parser_test

import (
	"testing"

	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/parser"
	"github.com/oarkflow/searchql/token"
	"github.com/oarkflow/searchql/tokenizer"
)

func mustTokenize(t *testing.T, text string) []token.TokenSpan {
	t.Helper()
	toks, err := tokenizer.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", text, err)
	}
	return toks
}

func bothParsers(t *testing.T, text string) (shiftReduce ast.Expr) {
	t.Helper()
	toks := mustTokenize(t, text)
	sr, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("shift_reduce parse(%q): %v", text, err)
	}
	rd, err := parser.ParseRecDec(toks)
	if err != nil {
		t.Fatalf("recdec parse(%q): %v", text, err)
	}
	if !ast.Equal(sr, rd) {
		t.Fatalf("parsers disagree on %q:\n  shift_reduce: %s\n  recdec:       %s", text, ast.Render(sr), ast.Render(rd))
	}
	return sr
}

func TestScenarioS1BareTagsAnd(t *testing.T) {
	got := bothParsers(t, "a,b,c")
	want := ast.Combine{Op: ast.And, Children: []ast.Expr{
		ast.Tag{Name: "a"}, ast.Tag{Name: "b"}, ast.Tag{Name: "c"},
	}}
	if !ast.Equal(ast.Fold(got), want) {
		t.Fatalf("got %s, want %s", ast.Render(ast.Fold(got)), ast.Render(want))
	}
}

func TestScenarioS2FieldComparison(t *testing.T) {
	got := bothParsers(t, "field.gte:1000")
	cmp, ok := got.(ast.Comparison)
	if !ok {
		t.Fatalf("got %T, want ast.Comparison", got)
	}
	if cmp.Field != "field" || cmp.Op != ast.GreaterThanOrEqual {
		t.Fatalf("got %+v", cmp)
	}
	if cmp.Value.Kind != ast.IntegerValue || cmp.Value.Integer.Int64() != 1000 {
		t.Fatalf("got value %+v", cmp.Value)
	}
}

func TestScenarioS4NotTag(t *testing.T) {
	got := bothParsers(t, "-foo")
	want := ast.Apply{Op: ast.Not, Child: ast.Tag{Name: "foo"}}
	if !ast.Equal(got, want) {
		t.Fatalf("got %s, want %s", ast.Render(got), ast.Render(want))
	}
}

func TestScenarioS5Idempotence(t *testing.T) {
	got := bothParsers(t, "a AND a")
	want := ast.Tag{Name: "a"}
	if !ast.Equal(got, want) {
		t.Fatalf("got %s, want %s", ast.Render(got), ast.Render(want))
	}
}

func TestScenarioS6EmptyGroup(t *testing.T) {
	got := bothParsers(t, "()")
	if !ast.Equal(got, ast.Empty{}) {
		t.Fatalf("got %s, want Empty", ast.Render(got))
	}
}

func TestEmptyInput(t *testing.T) {
	got := bothParsers(t, "")
	if !ast.Equal(got, ast.Empty{}) {
		t.Fatalf("got %s, want Empty", ast.Render(got))
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	got := bothParsers(t, "   \t  ")
	if !ast.Equal(got, ast.Empty{}) {
		t.Fatalf("got %s, want Empty", ast.Render(got))
	}
}

func TestScenarioS3NestedOptimisation(t *testing.T) {
	text := `(((field.gte:1000)AND data.neq:20)||bla.gte:100.2,tag),test.lte:-10,tag`
	raw := bothParsers(t, text)
	got := ast.Fold(raw)
	combine, ok := got.(ast.Combine)
	if !ok || combine.Op != ast.And {
		t.Fatalf("expected top-level AND Combine, got %s", ast.Render(got))
	}
	if len(combine.Children) != 3 {
		t.Fatalf("expected 3 top-level children after flattening, got %d: %s", len(combine.Children), ast.Render(got))
	}
	orNode, ok := combine.Children[0].(ast.Combine)
	if !ok || orNode.Op != ast.Or {
		t.Fatalf("expected first child to be an OR Combine, got %s", ast.Render(combine.Children[0]))
	}
}

func TestUnmatchedClosingParenIsError(t *testing.T) {
	toks := mustTokenize(t, "a)")
	if _, err := parser.Parse(toks); err == nil {
		t.Fatalf("expected error for unmatched closing paren")
	}
}

func TestReusableParserMatchesPlainParse(t *testing.T) {
	toks := mustTokenize(t, "field.eq:true AND other.has:192.168.0.1")
	want, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := parser.NewReusable()
	for i := 0; i < 3; i++ {
		got, err := r.Parse(toks)
		if err != nil {
			t.Fatalf("reusable parse iteration %d: %v", i, err)
		}
		if !ast.Equal(got, want) {
			t.Fatalf("iteration %d: got %s, want %s", i, ast.Render(got), ast.Render(want))
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"a,b,c",
		"field.gte:1000",
		"-foo",
		"(a AND b) || c",
	}
	for _, in := range inputs {
		toks := mustTokenize(t, in)
		tree, err := parser.Parse(toks)
		if err != nil {
			t.Fatalf("parse(%q): %v", in, err)
		}
		folded := ast.Fold(tree)
		rendered := ast.Render(folded)

		toks2 := mustTokenize(t, rendered)
		tree2, err := parser.Parse(toks2)
		if err != nil {
			t.Fatalf("re-parse of rendered %q (from %q): %v", rendered, in, err)
		}
		folded2 := ast.Fold(tree2)
		if !ast.Equal(folded, folded2) {
			t.Fatalf("round-trip mismatch for %q: %s != %s", in, ast.Render(folded), ast.Render(folded2))
		}
	}
}
