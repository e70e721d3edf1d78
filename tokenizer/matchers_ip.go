package tokenizer

import (
	"net/netip"
	"strconv"

	"github.com/oarkflow/searchql/token"
)

// matchIPCIDR recognises an IPv4 or IPv6 address, optionally followed by a
// "/N" prefix-length suffix. It greedily collects the run of characters an
// address or CIDR literal can contain (hex digits, ':', '.', '/') and
// delegates the actual validation to net/netip, so the FSM never reimplements
// address-family parsing rules by hand.
//
// See DESIGN.md for why net/netip (stdlib) is used here rather than a
// third-party library: none of the reference examples parse IP/CIDR
// literals.
func matchIPCIDR(s string, _ int) (int, bool) {
	n := 0
	for n < len(s) && isAddrByte(s[n]) {
		n++
	}
	if n == 0 {
		return 0, false
	}
	candidate := s[:n]

	if slash := indexByte(candidate, '/'); slash >= 0 {
		addrPart := candidate[:slash]
		bitsPart := candidate[slash+1:]
		if bitsPart == "" {
			// trim a trailing bare '/' that isn't part of a real prefix
			candidate = addrPart
			n = len(addrPart)
		} else {
			bits, err := strconv.Atoi(bitsPart)
			if err != nil {
				return 0, false
			}
			addr, err := netip.ParseAddr(addrPart)
			if err != nil {
				return 0, false
			}
			maxBits := 32
			if addr.Is6() {
				maxBits = 128
			}
			if bits < 0 || bits > maxBits {
				return 0, false
			}
			return n, true
		}
	}

	if _, err := netip.ParseAddr(candidate); err != nil {
		return 0, false
	}
	return n, true
}

func isAddrByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	case c == ':' || c == '.' || c == '/':
		return true
	}
	return false
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

var mIPCIDR = matcher{kind: token.IP_CIDR, fn: matchIPCIDR}
