package ast

// Equal reports whether a and b are structurally equal. The AND/OR
// idempotence rule (Combine(op, [x, x]) ≡ x) is built directly on this
// function, per SPEC_FULL.md §4.4.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Field:
		bv, ok := b.(Field)
		return ok && av.Name == bv.Name
	case Tag:
		bv, ok := b.(Tag)
		return ok && av.Name == bv.Name
	case Tags:
		bv, ok := b.(Tags)
		return ok && stringSliceEqual(av.Names, bv.Names)
	case Apply:
		bv, ok := b.(Apply)
		return ok && av.Op == bv.Op && Equal(av.Child, bv.Child)
	case Comparison:
		bv, ok := b.(Comparison)
		return ok && av.Field == bv.Field && av.Op == bv.Op && av.Value.Equal(bv.Value)
	case Combine:
		bv, ok := b.(Combine)
		return ok && av.Op == bv.Op && exprSliceEqual(av.Children, bv.Children)
	case Group:
		bv, ok := b.(Group)
		return ok && exprSliceEqual(av.Children, bv.Children)
	case Empty:
		_, ok := b.(Empty)
		return ok
	default:
		return false
	}
}

func exprSliceEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
