package record

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one parsed instance of an option: parameter key to value,
// in the order the parameters were first set.
type Record struct {
	fields *orderedmap.OrderedMap[string, Value]
}

// New creates an empty record.
func New() *Record {
	return &Record{fields: orderedmap.New[string, Value]()}
}

// Set stores v under param, replacing any previous value in place.
func (r *Record) Set(param string, v Value) {
	r.fields.Set(param, v)
}

// Get returns the value stored under param.
func (r *Record) Get(param string) (Value, bool) {
	return r.fields.Get(param)
}

// Has reports whether param is present.
func (r *Record) Has(param string) bool {
	_, ok := r.fields.Get(param)
	return ok
}

// Len returns the number of parameters in the record.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Params returns the parameter keys in insertion order.
func (r *Record) Params() []string {
	keys := make([]string, 0, r.fields.Len())
	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// Each calls fn for every parameter in insertion order.
func (r *Record) Each(fn func(param string, v Value)) {
	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Scalar returns the text of param, or "" when absent.
func (r *Record) Scalar(param string) string {
	v, ok := r.Get(param)
	if !ok {
		return ""
	}

	return v.String()
}

// Strings returns the list stored under param, or nil when absent.
func (r *Record) Strings(param string) []string {
	v, ok := r.Get(param)
	if !ok {
		return nil
	}

	return v.Strings()
}

// Bool interprets param as a checkbox: present and not "false"/"off"/"0".
func (r *Record) Bool(param string) bool {
	v, ok := r.Get(param)
	if !ok {
		return false
	}

	switch strings.ToLower(v.String()) {
	case "false", "off", "0", "no":
		return false
	default:
		return true
	}
}

// Clone returns a shallow copy: values are shared, the key set is not.
func (r *Record) Clone() *Record {
	c := New()
	r.Each(func(param string, v Value) {
		c.Set(param, v)
	})

	return c
}

// Data converts the record into a map suitable as text/template data.
func (r *Record) Data() map[string]any {
	out := make(map[string]any, r.Len())
	r.Each(func(param string, v Value) {
		out[param] = v.Interface()
	})

	return out
}

// Equal reports whether both records hold equal values under the same keys.
// Key order is not compared.
func (r *Record) Equal(o *Record) bool {
	if r.Len() != o.Len() {
		return false
	}

	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		ov, ok := o.Get(p.Key)
		if !ok || !p.Value.Equal(ov) {
			return false
		}
	}

	return true
}

// String renders the record as {param: value, ...} for logs and test output.
func (r *Record) String() string {
	parts := make([]string, 0, r.Len())
	r.Each(func(param string, v Value) {
		switch v.Kind() {
		case KindList:
			parts = append(parts, fmt.Sprintf("%s: %q", param, v.Strings()))
		case KindPairs:
			parts = append(parts, fmt.Sprintf("%s: {%s}", param, v.String()))
		default:
			parts = append(parts, fmt.Sprintf("%s: %q", param, v.String()))
		}
	})

	return "{" + strings.Join(parts, ", ") + "}"
}
