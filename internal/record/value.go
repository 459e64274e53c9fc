package record

import (
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"quadlet-generator/internal/common"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindPairs
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindPairs:
		return "pairs"
	default:
		return common.UnknownStr
	}
}

// PairMap is an insertion-ordered key/value mapping.
type PairMap = orderedmap.OrderedMap[string, string]

// NewPairMap creates an empty PairMap.
func NewPairMap() *PairMap {
	return orderedmap.New[string, string]()
}

// Value is a tagged union over the three parameter shapes.
type Value struct {
	kind   Kind
	scalar string
	list   []string
	pairs  *PairMap
}

// Scalar creates a single string value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List creates an ordered list value. The slice is copied.
func List(values ...string) Value {
	return Value{kind: KindList, list: slices.Clone(values)}
}

// Pairs creates a mapping value backed by m.
func Pairs(m *PairMap) Value {
	if m == nil {
		m = NewPairMap()
	}

	return Value{kind: KindPairs, pairs: m}
}

// PairsOf builds a mapping value from alternating keys and values.
// A trailing key without a value is ignored.
func PairsOf(kv ...string) Value {
	m := NewPairMap()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}

	return Pairs(m)
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the scalar text. Lists are space-joined and pairs are
// rendered as space-separated key=value entries.
func (v Value) String() string {
	switch v.kind {
	case KindList:
		return strings.Join(v.list, " ")
	case KindPairs:
		parts := make([]string, 0, v.pairs.Len())
		for p := v.pairs.Oldest(); p != nil; p = p.Next() {
			parts = append(parts, p.Key+"="+p.Value)
		}

		return strings.Join(parts, " ")
	default:
		return v.scalar
	}
}

// Strings returns the list elements. A scalar yields a one-element slice.
func (v Value) Strings() []string {
	switch v.kind {
	case KindList:
		return slices.Clone(v.list)
	case KindScalar:
		return []string{v.scalar}
	default:
		return nil
	}
}

// Map returns the pair mapping, or nil when the value is not a mapping.
func (v Value) Map() *PairMap {
	if v.kind != KindPairs {
		return nil
	}

	return v.pairs
}

// Len returns the number of elements held by the value.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindPairs:
		return v.pairs.Len()
	default:
		return 1
	}
}

// Interface converts the value into plain Go data for templates:
// string, []string or map[string]string.
func (v Value) Interface() any {
	switch v.kind {
	case KindList:
		return slices.Clone(v.list)
	case KindPairs:
		out := make(map[string]string, v.pairs.Len())
		for p := v.pairs.Oldest(); p != nil; p = p.Next() {
			out[p.Key] = p.Value
		}

		return out
	default:
		return v.scalar
	}
}

// Equal reports whether both values have the same shape and contents.
// Order matters for lists and pairs.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindList:
		return slices.Equal(v.list, o.list)
	case KindPairs:
		if v.pairs.Len() != o.pairs.Len() {
			return false
		}

		a, b := v.pairs.Oldest(), o.pairs.Oldest()
		for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
			if a.Key != b.Key || a.Value != b.Value {
				return false
			}
		}

		return true
	default:
		return v.scalar == o.scalar
	}
}
