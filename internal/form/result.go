package form

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"quadlet-generator/internal/record"
)

// Result maps option names to their records, in first-encounter order.
type Result struct {
	options *orderedmap.OrderedMap[string, []*record.Record]
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{options: orderedmap.New[string, []*record.Record]()}
}

// Append adds rec to the records of option.
func (r *Result) Append(option string, rec *record.Record) {
	recs, _ := r.options.Get(option)
	r.options.Set(option, append(recs, rec))
}

// Options returns the option names in first-encounter order.
func (r *Result) Options() []string {
	names := make([]string, 0, r.options.Len())
	for p := r.options.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}

	return names
}

// Records returns the records of option, or nil.
func (r *Result) Records(option string) []*record.Record {
	recs, _ := r.options.Get(option)
	return recs
}

// Has reports whether option has at least one record.
func (r *Result) Has(option string) bool {
	return len(r.Records(option)) > 0
}

// Len returns the number of distinct options.
func (r *Result) Len() int {
	return r.options.Len()
}

// Each calls fn for every option in order.
func (r *Result) Each(fn func(option string, records []*record.Record)) {
	for p := r.options.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Entries flattens the whole result back into field entries.
func (r *Result) Entries() []Entry {
	var entries []Entry

	r.Each(func(option string, records []*record.Record) {
		entries = append(entries, Flatten(option, records)...)
	})

	return entries
}

// Equal reports whether both results hold equal records per option, in the
// same option order.
func (r *Result) Equal(o *Result) bool {
	if r.Len() != o.Len() {
		return false
	}

	a, b := r.options.Oldest(), o.options.Oldest()
	for ; a != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || len(a.Value) != len(b.Value) {
			return false
		}

		for i := range a.Value {
			if !a.Value[i].Equal(b.Value[i]) {
				return false
			}
		}
	}

	return true
}
