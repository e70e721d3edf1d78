package ast

import (
	"math/big"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/token"
)

// minInt128/maxInt128 bound the signed-128-bit integer range spec.md §3 calls
// for; big.Int itself is arbitrary-precision, so this is an explicit clamp.
var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// ValueFromToken converts a literal token into a typed Value, per
// SPEC_FULL.md §4.4. INTEGER/FLOAT use numeric parsing (overflow surfaces
// as apperrors.ErrLiteralParse), BOOLEAN by table, IPs via net/netip, dates
// via an ISO-8601 subset parser and a relative-duration parser.
func ValueFromToken(ts token.TokenSpan) (Value, error) {
	raw := ts.Raw()
	switch ts.Kind {
	case token.INTEGER:
		i, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return Value{}, apperrors.NewLiteralParse(ts, strconv.ErrSyntax)
		}
		if i.Cmp(minInt128) < 0 || i.Cmp(maxInt128) > 0 {
			return Value{}, apperrors.NewLiteralParse(ts, strconv.ErrRange)
		}
		return Value{Kind: IntegerValue, Raw: raw, Integer: i}, nil

	case token.FLOAT:
		text := raw
		if strings.HasSuffix(text, ".") {
			text += "0" // "12." is accepted lexically; parse it as 12.0
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, apperrors.NewLiteralParse(ts, err)
		}
		return Value{Kind: FloatValue, Raw: raw, Float: f}, nil

	case token.BOOLEAN:
		b, err := parseBoolWord(raw)
		if err != nil {
			return Value{}, apperrors.NewLiteralParse(ts, err)
		}
		return Value{Kind: BoolValue, Raw: raw, Bool: b}, nil

	case token.IP_CIDR:
		prefix, err := parseIPOrCIDR(raw)
		if err != nil {
			return Value{}, apperrors.NewLiteralParse(ts, err)
		}
		return Value{Kind: IPValue, Raw: raw, IP: prefix}, nil

	case token.ABSOLUTE_DATE:
		t, err := parseAbsoluteDate(raw)
		if err != nil {
			return Value{}, apperrors.NewLiteralParse(ts, err)
		}
		return Value{Kind: AbsoluteDateValue, Raw: raw, AbsoluteDate: t}, nil

	case token.RELATIVE_DATE:
		d, err := parseRelativeDate(raw)
		if err != nil {
			return Value{}, apperrors.NewLiteralParse(ts, err)
		}
		return Value{Kind: RelativeDateValue, Raw: raw, RelativeDate: d}, nil

	case token.TAG:
		// Comp(has)'s "String" successor: a bareword carried opaquely since
		// spec.md's Value sum type has no String variant.
		return Value{Kind: Undefined, Raw: raw}, nil

	default:
		return Value{Kind: Undefined, Raw: raw}, nil
	}
}

func parseBoolWord(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	default:
		return false, strconv.ErrSyntax
	}
}

func parseIPOrCIDR(raw string) (netip.Prefix, error) {
	if slash := strings.IndexByte(raw, '/'); slash >= 0 {
		return netip.ParsePrefix(raw)
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// parseAbsoluteDate parses the ISO-8601 subset the tokenizer accepts:
// YYYY[-MM[-DD[(T| )HH[:MM[:SS]]]]][±HH[:MM]|Z].
func parseAbsoluteDate(raw string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04:05Z07",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z07",
		"2006-01-02T15:04",
		"2006-01-02T15Z07:00",
		"2006-01-02T15Z07",
		"2006-01-02T15",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05Z07",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04Z07:00",
		"2006-01-02 15:04Z07",
		"2006-01-02 15:04",
		"2006-01-02 15Z07:00",
		"2006-01-02 15Z07",
		"2006-01-02 15",
		"2006-01-02Z07:00",
		"2006-01-02Z07",
		"2006-01-02",
		"2006-01",
		"2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, strconv.ErrSyntax
}

var relativeUnitDurations = map[string]time.Duration{
	"second": time.Second, "seconds": time.Second,
	"minute": time.Minute, "minutes": time.Minute,
	"hour": time.Hour, "hours": time.Hour,
	"day": 24 * time.Hour, "days": 24 * time.Hour,
	"week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour, "months": 30 * 24 * time.Hour,
	"year": 365 * 24 * time.Hour, "years": 365 * 24 * time.Hour,
}

// parseRelativeDate sums the named quantities in "(N unit )+ (ago|from now)",
// signed negative for "ago" and positive for "from now".
func parseRelativeDate(raw string) (time.Duration, error) {
	sign := time.Duration(1)
	body := raw
	switch {
	case strings.HasSuffix(body, "ago"):
		sign = -1
		body = strings.TrimSpace(strings.TrimSuffix(body, "ago"))
	case strings.HasSuffix(body, "from now"):
		body = strings.TrimSpace(strings.TrimSuffix(body, "from now"))
	default:
		return 0, strconv.ErrSyntax
	}

	var total time.Duration
	fields := strings.Fields(body)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(fields); i += 2 {
		n, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return 0, err
		}
		unit, ok := relativeUnitDurations[strings.ToLower(fields[i+1])]
		if !ok {
			return 0, strconv.ErrSyntax
		}
		total += time.Duration(n) * unit
	}
	return sign * total, nil
}
