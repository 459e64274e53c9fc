package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"quadlet-generator/internal/format"
)

//go:embed catalogs/*.yaml
var builtinFS embed.FS

// ErrUnknownKind is returned when no builtin catalogue exists for a kind.
var ErrUnknownKind = errors.New("unknown resource kind")

// Kinds returns the resource kinds that ship with a builtin catalogue.
func Kinds() []string {
	entries, err := builtinFS.ReadDir("catalogs")
	if err != nil {
		return nil
	}

	kinds := make([]string, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}

	slices.Sort(kinds)

	return kinds
}

// BuiltinData returns the embedded YAML of the catalogue for kind.
func BuiltinData(kind string) ([]byte, error) {
	data, err := builtinFS.ReadFile("catalogs/" + kind + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
	}

	return data, nil
}

// Builtin loads, checks and resolves the embedded catalogue for kind.
func Builtin(kind string, reg *format.Registry, log *zap.Logger) (*Catalog, error) {
	data, err := BuiltinData(kind)
	if err != nil {
		return nil, err
	}

	return Load(data, reg, log)
}

// LoadFile loads, checks and resolves a catalogue from the given path.
func LoadFile(path string, reg *format.Registry, log *zap.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Load(data, reg, log)
}

// Load parses YAML data, runs the self-check and resolves formatters.
// Warnings are logged; any error diagnostic fails the load.
func Load(data []byte, reg *format.Registry, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	diags := Validate(c, reg)
	for _, w := range diags.Warnings {
		log.Warn("catalog check", zap.String("kind", c.Kind), zap.String("diagnostic", w.String()))
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("catalog %q is invalid: %w", c.Kind, err)
	}

	if err := c.resolve(reg); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", c.Kind, err)
	}

	log.Debug("catalog loaded", zap.String("kind", c.Kind), zap.Int("options", len(c.Options)))

	return c, nil
}

// Parse parses YAML data into a Catalog without checking it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults resolves type names and fills implied flags.
func applyDefaults(c *Catalog) {
	c.index = make(map[string]*Option, len(c.Options))

	for _, opt := range c.Options {
		c.index[opt.Name] = opt

		for i := range opt.Params {
			p := &opt.Params[i]
			p.Type, _ = ParseParamType(p.TypeName)

			switch p.Type {
			case TypeBoolean:
				p.IsOptional = true
			case TypePair:
				p.IsArray = true
			}
		}
	}
}

// Marshal serializes a Catalog to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// Lookup returns the option named name, or nil if not found.
func (c *Catalog) Lookup(name string) *Option {
	return c.index[name]
}

// Names returns the option names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Options))
	for i, opt := range c.Options {
		names[i] = opt.Name
	}

	return names
}

// MissingRequired returns the required options absent from present.
func (c *Catalog) MissingRequired(present func(option string) bool) []string {
	var missing []string

	for _, name := range c.Required {
		if !present(name) {
			missing = append(missing, name)
		}
	}

	return missing
}
