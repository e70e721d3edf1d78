package ast_test

import (
	"testing"

	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/token"
)

func tokenSpan(kind token.Kind, raw string) token.TokenSpan {
	return token.NewTokenSpan(kind, raw, 0, len(raw))
}

func TestValueFromTokenInteger(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.INTEGER, "1000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != ast.IntegerValue || v.Integer.Int64() != 1000 {
		t.Fatalf("got %+v", v)
	}
}

func TestValueFromTokenIntegerOverflowIsRejected(t *testing.T) {
	// One past signed-128-bit max (2^127 - 1).
	overflow := "170141183460469231731687303715884105728"
	_, err := ast.ValueFromToken(tokenSpan(token.INTEGER, overflow))
	if err == nil {
		t.Fatalf("expected an overflow error")
	}
}

func TestValueFromTokenFloatTrailingDot(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.FLOAT, "12."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Float != 12.0 {
		t.Fatalf("got %v, want 12.0", v.Float)
	}
}

func TestValueFromTokenBoolWords(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "YES": true, "false": false, "No": false} {
		v, err := ast.ValueFromToken(tokenSpan(token.BOOLEAN, raw))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if v.Bool != want {
			t.Fatalf("%q: got %v, want %v", raw, v.Bool, want)
		}
	}
}

func TestValueFromTokenBareIPGetsHostBits(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.IP_CIDR, "192.168.0.1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsCIDR() {
		t.Fatalf("bare address should not report as CIDR")
	}
}

func TestValueFromTokenCIDR(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.IP_CIDR, "10.0.0.0/24"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsCIDR() {
		t.Fatalf("expected a CIDR prefix")
	}
}

func TestValueFromTokenAbsoluteDateVariants(t *testing.T) {
	for _, raw := range []string{"2024", "2024-06", "2024-06-15", "2024-06-15T10:30", "2024-06-15T10:30:00Z"} {
		if _, err := ast.ValueFromToken(tokenSpan(token.ABSOLUTE_DATE, raw)); err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
	}
}

func TestValueFromTokenRelativeDateAgoAndFromNow(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.RELATIVE_DATE, "2 days ago"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.RelativeDate >= 0 {
		t.Fatalf("expected a negative duration for \"ago\", got %v", v.RelativeDate)
	}

	v2, err := ast.ValueFromToken(tokenSpan(token.RELATIVE_DATE, "3 hours from now"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2.RelativeDate <= 0 {
		t.Fatalf("expected a positive duration for \"from now\", got %v", v2.RelativeDate)
	}
}

func TestValueFromTokenTagIsOpaque(t *testing.T) {
	v, err := ast.ValueFromToken(tokenSpan(token.TAG, "plaintext"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != ast.Undefined || v.Raw != "plaintext" {
		t.Fatalf("got %+v", v)
	}
}
