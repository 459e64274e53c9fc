package catalog

import (
	"slices"

	"quadlet-generator/internal/format"
)

// Catalog is the set of options available for one resource kind.
type Catalog struct {
	// Kind is the resource kind (container, pod, kube, network, volume, build, image).
	Kind string `yaml:"kind"`

	// Section is the Quadlet unit section header, e.g. "Container".
	Section string `yaml:"section,omitempty"`

	// Command are the podman subcommand words, e.g. ["volume", "create"].
	Command []string `yaml:"command,omitempty"`

	// Required lists options every generated unit should carry.
	Required []string `yaml:"required,omitempty"`

	// Roles places options outside the flag list in command mode.
	Roles Roles `yaml:"roles,omitempty"`

	// Options in declaration order.
	Options OptionList `yaml:"options"`

	index map[string]*Option
}

// Roles assigns options to fixed positions of the podman command line.
type Roles struct {
	// Global options are emitted as flags before the subcommand.
	Global []string `yaml:"global,omitempty"`

	// Positional is the option whose value follows all flags (the image).
	Positional string `yaml:"positional,omitempty"`

	// Trailing is the option whose value ends the command (exec arguments).
	Trailing string `yaml:"trailing,omitempty"`
}

// RoleOf classifies an option name.
func (r Roles) RoleOf(option string) Role {
	switch {
	case option == "":
		return RoleFlag
	case option == r.Positional:
		return RolePositional
	case option == r.Trailing:
		return RoleTrailing
	case slices.Contains(r.Global, option):
		return RoleGlobal
	default:
		return RoleFlag
	}
}

// Role is the command line position of an option.
type Role int

const (
	RoleFlag Role = iota
	RoleGlobal
	RolePositional
	RoleTrailing
)

// OptionList is an ordered list of options decoded from a YAML mapping.
type OptionList []*Option

// Option describes one Quadlet key and its podman flag.
type Option struct {
	// Name is the catalogue key, written as the Quadlet key in config mode.
	Name string `yaml:"-"`

	// Arg is the podman flag name emitted in command mode. Several options
	// may share an Arg.
	Arg string `yaml:"arg,omitempty"`

	// Description is shown in listings.
	Description string `yaml:"description,omitempty"`

	// AllowMultiple permits more than one instance per unit.
	AllowMultiple bool `yaml:"allow_multiple,omitempty"`

	// Unsupported marks planned options that cannot be generated yet.
	Unsupported bool `yaml:"unsupported,omitempty"`

	// Format names the registered config-mode formatter.
	Format string `yaml:"format,omitempty"`

	// FormatTemplate is a text/template alternative to Format.
	FormatTemplate string `yaml:"format_template,omitempty"`

	// ArgFormat names the registered command-mode formatter.
	ArgFormat string `yaml:"arg_format,omitempty"`

	// ArgFormatTemplate is a text/template alternative to ArgFormat.
	ArgFormatTemplate string `yaml:"arg_format_template,omitempty"`

	// Params in form order.
	Params []Param `yaml:"params"`

	configFormatter  format.Formatter
	commandFormatter format.Formatter
	separableField   string
}

// Param describes one field of an option.
type Param struct {
	// Param is the machine key used in field names and records.
	Param string `yaml:"param"`

	// Name is the display label.
	Name string `yaml:"name"`

	// TypeName is the declared type as written in YAML.
	TypeName string `yaml:"type"`

	// Type is TypeName resolved by the loader; zero when TypeName is unknown.
	Type ParamType `yaml:"-"`

	// IsArray accepts an ordered sequence of values per record.
	IsArray bool `yaml:"is_array,omitempty"`

	// IsOptional allows the field to be left blank. Always true for booleans.
	IsOptional bool `yaml:"is_optional,omitempty"`

	// Dedupe drops repeated list values before formatting.
	Dedupe bool `yaml:"dedupe,omitempty"`

	// Default is preselected by the form.
	Default string `yaml:"default,omitempty"`

	// Placeholder hint: one string, or key and value hints for pairs.
	Placeholder StringOrArray `yaml:"placeholder,omitempty"`

	// Options are the choices of a select.
	Options Choices `yaml:"options,omitempty"`

	// Condition is a free-form hint shown next to the field.
	Condition string `yaml:"condition,omitempty"`
}

// IsRequired reports whether the form must mark the field as required.
func (p *Param) IsRequired() bool {
	return !p.IsOptional && p.Type != TypeBoolean
}

// Choice is one select option.
type Choice struct {
	Value string
	Label string
}

// Choices is an ordered list of select options.
type Choices []Choice

// Values returns the literal values in order.
func (c Choices) Values() []string {
	out := make([]string, len(c))
	for i, ch := range c {
		out[i] = ch.Value
	}

	return out
}

// Contains returns true if value is one of the choices.
func (c Choices) Contains(value string) bool {
	return slices.ContainsFunc(c, func(ch Choice) bool { return ch.Value == value })
}

// StringOrArray accepts a single string or a list of strings in YAML.
type StringOrArray []string
