package ast

import (
	"math/big"
	"net/netip"
	"time"
)

// ValueKind discriminates the closed Value sum type from SPEC_FULL.md §3.
type ValueKind uint8

const (
	Undefined ValueKind = iota
	IntegerValue
	FloatValue
	BoolValue
	IPValue
	RelativeDateValue
	AbsoluteDateValue
)

// Value is a typed literal. Raw always holds the original source text, both
// for diagnostics and so Render can reproduce it verbatim instead of
// reformatting (e.g. preserving "100.20" rather than normalising to "100.2").
//
// Integer uses math/big.Int for the signed-128-bit range spec.md calls for;
// no third-party big-integer library appears anywhere in the reference
// pack, so this is a documented stdlib choice (see DESIGN.md).
type Value struct {
	Kind ValueKind
	Raw  string

	Integer      *big.Int
	Float        float64
	Bool         bool
	IP           netip.Prefix // a bare address is represented with Bits() == addr.BitLen()
	RelativeDate time.Duration
	AbsoluteDate time.Time
}

// IsCIDR reports whether IP carries an explicit prefix length shorter than
// the address's full bit width.
func (v Value) IsCIDR() bool {
	return v.Kind == IPValue && v.IP.Bits() < v.IP.Addr().BitLen()
}

// Equal reports structural equality, used by the parser's AND/OR idempotence
// rule and by property tests.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case IntegerValue:
		if v.Integer == nil || o.Integer == nil {
			return v.Integer == o.Integer
		}
		return v.Integer.Cmp(o.Integer) == 0
	case FloatValue:
		return v.Float == o.Float
	case BoolValue:
		return v.Bool == o.Bool
	case IPValue:
		return v.IP == o.IP
	case RelativeDateValue:
		return v.RelativeDate == o.RelativeDate
	case AbsoluteDateValue:
		return v.AbsoluteDate.Equal(o.AbsoluteDate)
	default:
		return v.Raw == o.Raw
	}
}
