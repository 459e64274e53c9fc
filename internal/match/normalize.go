package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a name for comparison: CamelCase and separators
// ("_", "-", " ", ".") are ignored and the result is lower case, so
// "AddCapability", "add-capability" and "add_capability" all compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits a name into lowercase words.
//   - "AddCapability" -> ["add", "capability"]
//   - "cap-add" -> ["cap", "add"]
//   - "ContainersConfModule" -> ["containers", "conf", "module"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports a lower-to-upper transition ("addHost") or the last
// capital of an acronym followed by lowercase ("IPAddress").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
