package format

import (
	"strings"

	"quadlet-generator/internal/common"
	"quadlet-generator/internal/record"
)

// SepSpace joins values with single spaces.
func SepSpace(values []string) string {
	return strings.Join(values, " ")
}

// Mapping renders a device style mapping "host[:container][:permissions]".
// Duplicate permission flags are dropped, keeping first-seen order, and the
// remaining flags are concatenated without separator. An empty container
// omits its segment. ifExists prefixes the result with "-".
func Mapping(host, container string, permissions []string, ifExists bool) string {
	var b strings.Builder

	if ifExists {
		b.WriteByte('-')
	}

	b.WriteString(host)

	if container != "" {
		b.WriteByte(':')
		b.WriteString(container)
	}

	if perms := common.Dedupe(permissions); len(perms) > 0 {
		b.WriteByte(':')
		b.WriteString(strings.Join(perms, ""))
	}

	return b.String()
}

// Pair renders key=value entries in insertion order, space separated. An
// entry whose value contains a space is wrapped in double quotes as a whole.
func Pair(values *record.PairMap) string {
	if values == nil {
		return ""
	}

	parts := make([]string, 0, values.Len())

	for p := values.Oldest(); p != nil; p = p.Next() {
		entry := p.Key + "=" + p.Value
		if strings.Contains(p.Value, " ") {
			entry = `"` + entry + `"`
		}

		parts = append(parts, entry)
	}

	return strings.Join(parts, " ")
}
