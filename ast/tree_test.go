package ast_test

import (
	"testing"

	"github.com/oarkflow/searchql/ast"
)

func TestEqualIdenticalTags(t *testing.T) {
	if !ast.Equal(ast.Tag{Name: "a"}, ast.Tag{Name: "a"}) {
		t.Fatalf("expected equal")
	}
	if ast.Equal(ast.Tag{Name: "a"}, ast.Tag{Name: "b"}) {
		t.Fatalf("expected not equal")
	}
}

func TestEqualDifferentKinds(t *testing.T) {
	if ast.Equal(ast.Tag{Name: "a"}, ast.Empty{}) {
		t.Fatalf("expected not equal across node kinds")
	}
}

func TestFoldUnwrapsSingletonGroup(t *testing.T) {
	got := ast.Fold(ast.Group{Children: []ast.Expr{ast.Tag{Name: "a"}}})
	if !ast.Equal(got, ast.Tag{Name: "a"}) {
		t.Fatalf("got %s, want Tag(a)", ast.Render(got))
	}
}

func TestFoldEmptyGroupBecomesEmpty(t *testing.T) {
	got := ast.Fold(ast.Group{})
	if !ast.Equal(got, ast.Empty{}) {
		t.Fatalf("got %s, want Empty", ast.Render(got))
	}
}

func TestFoldFlattensSameOpCombine(t *testing.T) {
	tree := ast.Combine{Op: ast.And, Children: []ast.Expr{
		ast.Tag{Name: "a"},
		ast.Combine{Op: ast.And, Children: []ast.Expr{ast.Tag{Name: "b"}, ast.Tag{Name: "c"}}},
	}}
	got := ast.Fold(tree)
	combine, ok := got.(ast.Combine)
	if !ok || len(combine.Children) != 3 {
		t.Fatalf("got %s, want a flat 3-child AND", ast.Render(got))
	}
}

func TestFoldDropsEmptyChildren(t *testing.T) {
	tree := ast.Combine{Op: ast.Or, Children: []ast.Expr{ast.Tag{Name: "a"}, ast.Empty{}}}
	got := ast.Fold(tree)
	if !ast.Equal(got, ast.Tag{Name: "a"}) {
		t.Fatalf("got %s, want Tag(a)", ast.Render(got))
	}
}

func TestRenderAtomParenthesisesNonAtoms(t *testing.T) {
	tree := ast.Combine{Op: ast.And, Children: []ast.Expr{
		ast.Combine{Op: ast.Or, Children: []ast.Expr{ast.Tag{Name: "a"}, ast.Tag{Name: "b"}}},
		ast.Tag{Name: "c"},
	}}
	got := ast.Render(tree)
	want := "(a OR b) AND c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := ast.Render(ast.Empty{}); got != "()" {
		t.Fatalf("got %q, want \"()\"", got)
	}
}
