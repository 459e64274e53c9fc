package catalog

import (
	"errors"
	"fmt"

	"quadlet-generator/internal/common"
	"quadlet-generator/internal/field"
	"quadlet-generator/internal/format"
	"quadlet-generator/internal/record"
)

// ErrUnresolved is returned when an option is used before its catalogue
// was loaded through Load.
var ErrUnresolved = errors.New("option formatters not resolved")

// resolve computes the config and command formatters and the separable
// field of every supported option. The catalogue must have passed Validate.
func (c *Catalog) resolve(reg *format.Registry) error {
	for _, opt := range c.Options {
		if opt.Unsupported {
			continue
		}

		base, err := opt.formatter(reg, opt.Format, opt.FormatTemplate, nil)
		if err != nil {
			return err
		}

		opt.configFormatter = opt.withDedupe(base)

		cmd, err := opt.formatter(reg, opt.ArgFormat, opt.ArgFormatTemplate, base)
		if err != nil {
			return err
		}

		opt.commandFormatter = opt.withDedupe(cmd)

		for _, p := range opt.Params {
			if p.Type == TypePair {
				opt.separableField = p.Param
				break
			}
		}
	}

	return nil
}

// formatter resolves one reference, falling back to fallback and then to
// the identity formatter.
func (o *Option) formatter(reg *format.Registry, name, tmpl string, fallback format.Formatter) (format.Formatter, error) {
	switch {
	case tmpl != "":
		return format.Template(o.Name, tmpl, o.paramKeys())
	case name != "":
		f := reg.Get(name)
		if f == nil {
			return nil, fmt.Errorf("option %q: formatter %q is not registered", o.Name, name)
		}

		return f, nil
	case fallback != nil:
		return fallback, nil
	default:
		return format.Identity, nil
	}
}

// withDedupe wraps f so that params declared with dedupe lose repeated values.
func (o *Option) withDedupe(f format.Formatter) format.Formatter {
	var keys []string

	for _, p := range o.Params {
		if p.Dedupe && p.IsArray && p.Type != TypePair {
			keys = append(keys, p.Param)
		}
	}

	if len(keys) == 0 {
		return f
	}

	return func(r *record.Record) (string, error) {
		c := r.Clone()

		for _, k := range keys {
			if v, ok := c.Get(k); ok && v.Kind() == record.KindList {
				c.Set(k, record.List(common.Dedupe(v.Strings())...))
			}
		}

		return f(c)
	}
}

func (o *Option) paramKeys() []string {
	keys := make([]string, len(o.Params))
	for i, p := range o.Params {
		keys[i] = p.Param
	}

	return keys
}

// FormatConfig renders r for a Quadlet file.
func (o *Option) FormatConfig(r *record.Record) (string, error) {
	if o.configFormatter == nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, o.Name)
	}

	return o.configFormatter(r)
}

// FormatCommand renders r for a podman command line.
func (o *Option) FormatCommand(r *record.Record) (string, error) {
	if o.commandFormatter == nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, o.Name)
	}

	return o.commandFormatter(r)
}

// SeparableField returns the key of the option's pair param, whose entries
// are emitted one per flag in command mode, or "" when there is none.
func (o *Option) SeparableField() string {
	return o.separableField
}

// FieldNames lists the flat field names a form renderer emits for one
// instance of the option when every array param shows siblings elements.
func (o *Option) FieldNames(siblings int) []string {
	var names []string

	for _, p := range o.Params {
		switch {
		case p.Type == TypePair:
			for i := range siblings {
				names = append(names,
					field.PairKey(o.Name, p.Param, i).String(),
					field.PairValue(o.Name, p.Param, i).String())
			}
		case p.IsArray:
			for i := range siblings {
				names = append(names, field.Element(o.Name, p.Param, i).String())
			}
		default:
			names = append(names, field.Scalar(o.Name, p.Param).String())
		}
	}

	return names
}
