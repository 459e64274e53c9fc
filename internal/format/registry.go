package format

import (
	"slices"
)

// Registry maps formatter names to implementations.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a registry holding the builtin formatters.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]Formatter)}

	r.Add(NameIdentity, Identity)
	r.Add(NameSepSpace, SepSpaceRecord)
	r.Add(NameMapping, MappingRecord)
	r.Add(NamePair, PairRecord)

	return r
}

// Add registers f under name, replacing any previous entry.
func (r *Registry) Add(name string, f Formatter) {
	r.formatters[name] = f
}

// Get returns the formatter registered under name, or nil if not found.
func (r *Registry) Get(name string) Formatter {
	return r.formatters[name]
}

// Has returns true if a formatter with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.formatters[name]
	return exists
}

// Names returns all formatter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
