package ast

import "strings"

// Render produces canonical query text for the "normal-form subset"
// SPEC_FULL.md §8 invariant 4 calls for: comparisons, tags, combinations,
// and not-applies. Re-tokenizing and re-parsing Render's output is required
// to yield a structurally Equal tree. Non-atomic children are always
// parenthesised on the way out, so every grouping is explicit and the
// round-trip never depends on how the parsers rank AND against OR.
func Render(e Expr) string {
	var b strings.Builder
	renderInto(&b, e)
	return b.String()
}

func renderInto(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Empty:
		b.WriteString("()")
	case Field:
		b.WriteString(v.Name)
		b.WriteByte('.')
	case Tag:
		b.WriteString(v.Name)
	case Tags:
		for i, n := range v.Names {
			if i > 0 {
				b.WriteString(" AND ")
			}
			b.WriteString(n)
		}
	case Apply:
		switch v.Op {
		case Not:
			b.WriteByte('-')
		case Boost:
			b.WriteByte('^')
		case Fuzz:
			b.WriteByte('~')
		}
		renderAtom(b, v.Child)
	case Comparison:
		b.WriteString(v.Field)
		b.WriteByte('.')
		b.WriteString(v.Op.String())
		b.WriteByte(':')
		b.WriteString(v.Value.Raw)
	case Combine:
		for i, c := range v.Children {
			if i > 0 {
				b.WriteByte(' ')
				b.WriteString(v.Op.String())
				b.WriteByte(' ')
			}
			renderAtom(b, c)
		}
	case Group:
		b.WriteByte('(')
		for i, c := range v.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			renderInto(b, c)
		}
		b.WriteByte(')')
	}
}

// renderAtom wraps e in parentheses unless it is already a single lexeme
// (Tag, Comparison, Empty).
func renderAtom(b *strings.Builder, e Expr) {
	switch e.(type) {
	case Tag, Comparison, Empty:
		renderInto(b, e)
	default:
		b.WriteByte('(')
		renderInto(b, e)
		b.WriteByte(')')
	}
}
