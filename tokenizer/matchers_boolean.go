package tokenizer

import "github.com/oarkflow/searchql/token"

var booleanWords = []string{"true", "false", "yes", "no"}

// matchBoolean recognises true|false|yes|no, ASCII case-insensitive, and
// requires the match to end at a word boundary so "yesterday" isn't read
// as the boolean "yes" plus a dangling "terday".
func matchBoolean(s string, _ int) (int, bool) {
	for _, w := range booleanWords {
		if len(s) < len(w) || !asciiEqualFold(s[:len(w)], w) {
			continue
		}
		if len(s) > len(w) && isIdentByte(s[len(w)]) {
			continue
		}
		return len(w), true
	}
	return 0, false
}

var mBoolean = matcher{kind: token.BOOLEAN, fn: matchBoolean}
