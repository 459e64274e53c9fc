package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedKey is returned when a flat key does not follow the key syntax.
var ErrMalformedKey = errors.New("malformed field key")

// TagSeparator starts the optional tag suffix of a flat key.
const TagSeparator = "/"

// Role tells which half of a pair entry a key carries.
type Role int

const (
	RoleNone Role = iota
	RoleKey
	RoleValue
)

// String returns the key segment used for the role ("keys", "values").
func (r Role) String() string {
	switch r {
	case RoleKey:
		return "keys"
	case RoleValue:
		return "values"
	default:
		return ""
	}
}

// Key is the decoded form of a flat field name.
type Key struct {
	Option  string
	Param   string
	Role    Role
	IsArray bool
	Index   int
}

// Scalar names a single-valued parameter.
func Scalar(option, param string) Key {
	return Key{Option: option, Param: param}
}

// Element names the index-th element of an array parameter.
func Element(option, param string, index int) Key {
	return Key{Option: option, Param: param, IsArray: true, Index: index}
}

// PairKey names the key half of the index-th pair entry.
func PairKey(option, param string, index int) Key {
	return Key{Option: option, Param: param, Role: RoleKey, IsArray: true, Index: index}
}

// PairValue names the value half of the index-th pair entry.
func PairValue(option, param string, index int) Key {
	return Key{Option: option, Param: param, Role: RoleValue, IsArray: true, Index: index}
}

// IsPair reports whether the key addresses a pair entry.
func (k Key) IsPair() bool {
	return k.Role != RoleNone
}

// String encodes the key into its flat form.
func (k Key) String() string {
	var b strings.Builder

	b.WriteString(k.Option)
	b.WriteByte('.')
	b.WriteString(k.Param)

	if k.Role != RoleNone {
		b.WriteByte('.')
		b.WriteString(k.Role.String())
	}

	if k.IsArray {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(k.Index))
		b.WriteByte(']')
	}

	return b.String()
}

// Encode builds the flat name for one parameter occurrence. index is only
// used for arrays and pair entries.
func Encode(option, param string, isArray bool, index int, role Role) string {
	if role != RoleNone {
		isArray = true
	}

	return Key{Option: option, Param: param, Role: role, IsArray: isArray, Index: index}.String()
}

// StripTag removes a "/tag" suffix from a flat key.
func StripTag(raw string) string {
	if i := strings.Index(raw, TagSeparator); i >= 0 {
		return raw[:i]
	}

	return raw
}

// Decode parses a flat key, ignoring any tag suffix.
func Decode(raw string) (Key, error) {
	s := StripTag(raw)

	option, rest, ok := strings.Cut(s, ".")
	if !ok || option == "" || rest == "" {
		return Key{}, fmt.Errorf("%w %q: expected option.param", ErrMalformedKey, raw)
	}

	k := Key{Option: option}

	if strings.HasSuffix(rest, "]") {
		open := strings.LastIndex(rest, "[")
		if open < 0 {
			return Key{}, fmt.Errorf("%w %q: unbalanced index brackets", ErrMalformedKey, raw)
		}

		idx, err := strconv.Atoi(rest[open+1 : len(rest)-1])
		if err != nil || idx < 0 {
			return Key{}, fmt.Errorf("%w %q: invalid index", ErrMalformedKey, raw)
		}

		k.IsArray = true
		k.Index = idx
		rest = rest[:open]
	}

	switch {
	case strings.HasSuffix(rest, "."+RoleKey.String()):
		k.Role = RoleKey
		rest = strings.TrimSuffix(rest, "."+RoleKey.String())
	case strings.HasSuffix(rest, "."+RoleValue.String()):
		k.Role = RoleValue
		rest = strings.TrimSuffix(rest, "."+RoleValue.String())
	}

	if k.Role != RoleNone && !k.IsArray {
		return Key{}, fmt.Errorf("%w %q: pair entry without index", ErrMalformedKey, raw)
	}

	if rest == "" || strings.ContainsAny(rest, ".[]") {
		return Key{}, fmt.Errorf("%w %q: invalid parameter name", ErrMalformedKey, raw)
	}

	k.Param = rest

	return k, nil
}
