package output

import (
	"errors"
	"fmt"
	"strings"

	"quadlet-generator/internal/catalog"
	"quadlet-generator/internal/form"
	"quadlet-generator/internal/match"
	"quadlet-generator/internal/record"
)

var (
	// ErrUnknownOption is returned for records of an option the catalogue
	// does not declare.
	ErrUnknownOption = errors.New("unknown option")

	// ErrUnsupportedOption is returned for records of a declared but
	// unsupported option.
	ErrUnsupportedOption = errors.New("option is not supported")

	// ErrTooManyRecords is returned when a single-instance option carries
	// more than one record.
	ErrTooManyRecords = errors.New("option allows a single instance")
)

// Line is one formatted (key, value) pair produced from a record.
type Line struct {
	// Option is the catalogue option the line was produced from.
	Option string
	// Key is the Quadlet key in config mode and the podman flag in command mode.
	Key   string
	Value string
}

// String renders the line as KEY=VALUE.
func (l Line) String() string {
	return l.Key + "=" + l.Value
}

// Pairs formats every record of res in option order.
func Pairs(cat *catalog.Catalog, res *form.Result, mode Mode) ([]Line, error) {
	var lines []Line

	for _, name := range res.Options() {
		opt, err := lookup(cat, name)
		if err != nil {
			return nil, err
		}

		records := res.Records(name)
		if !opt.AllowMultiple && len(records) > 1 {
			return nil, fmt.Errorf("%w: %s has %d records", ErrTooManyRecords, name, len(records))
		}

		for _, r := range records {
			var out []Line

			switch mode {
			case ModeConfig:
				out, err = configLines(opt, r)
			case ModeCommand:
				out, err = commandLines(opt, r)
			default:
				return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
			}

			if err != nil {
				return nil, fmt.Errorf("formatting %s: %w", name, err)
			}

			lines = append(lines, out...)
		}
	}

	return lines, nil
}

func lookup(cat *catalog.Catalog, name string) (*catalog.Option, error) {
	opt := cat.Lookup(name)
	if opt == nil {
		if hints := match.Suggest(name, cat.Names(), 1); len(hints) > 0 {
			return nil, fmt.Errorf("%w %q for kind %s (did you mean %s?)", ErrUnknownOption, name, cat.Kind, hints[0])
		}

		return nil, fmt.Errorf("%w %q for kind %s", ErrUnknownOption, name, cat.Kind)
	}

	if opt.Unsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOption, name)
	}

	return opt, nil
}

func configLines(opt *catalog.Option, r *record.Record) ([]Line, error) {
	v, err := opt.FormatConfig(r)
	if err != nil {
		return nil, err
	}

	return []Line{{Option: opt.Name, Key: opt.Name, Value: v}}, nil
}

// commandLines emits one line per entry of the separable pair field, each
// formatted from a copy of r holding only that entry.
func commandLines(opt *catalog.Option, r *record.Record) ([]Line, error) {
	sep := opt.SeparableField()

	v, ok := r.Get(sep)
	if sep == "" || !ok || v.Kind() != record.KindPairs {
		s, err := opt.FormatCommand(r)
		if err != nil {
			return nil, err
		}

		return []Line{{Option: opt.Name, Key: opt.Arg, Value: s}}, nil
	}

	lines := make([]Line, 0, v.Len())

	for p := v.Map().Oldest(); p != nil; p = p.Next() {
		single := r.Clone()
		single.Set(sep, record.PairsOf(p.Key, p.Value))

		s, err := opt.FormatCommand(single)
		if err != nil {
			return nil, err
		}

		lines = append(lines, Line{Option: opt.Name, Key: opt.Arg, Value: s})
	}

	return lines, nil
}

// Quadlet joins lines as KEY=VALUE, one per line. A non-empty section is
// written first as an INI header.
func Quadlet(lines []Line, section string) string {
	parts := make([]string, 0, len(lines)+1)
	if section != "" {
		parts = append(parts, "["+section+"]")
	}

	for _, l := range lines {
		parts = append(parts, l.String())
	}

	return strings.Join(parts, "\n")
}

// Command assembles a podman invocation:
//
//	podman <global flags> <subcommand> <flags> <positional> <trailing>
//
// Roles come from the catalogue. Flags keep encounter order. A repeated
// positional or trailing option keeps its last value. Empty parts are dropped.
func Command(cat *catalog.Catalog, lines []Line) string {
	var globals, flags []string
	var positional, trailing string

	for _, l := range lines {
		switch cat.Roles.RoleOf(l.Option) {
		case catalog.RoleGlobal:
			globals = append(globals, flag(l))
		case catalog.RolePositional:
			positional = l.Value
		case catalog.RoleTrailing:
			trailing = l.Value
		default:
			flags = append(flags, flag(l))
		}
	}

	parts := []string{"podman"}
	parts = append(parts, globals...)
	parts = append(parts, cat.Command...)
	parts = append(parts, flags...)
	parts = append(parts, positional, trailing)

	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}

func flag(l Line) string {
	if l.Value == "" {
		return "--" + l.Key
	}

	return "--" + l.Key + " " + l.Value
}

// Generate formats res in the given mode and assembles the final text.
// section is only used in config mode.
func Generate(cat *catalog.Catalog, res *form.Result, mode Mode, section string) (string, error) {
	lines, err := Pairs(cat, res, mode)
	if err != nil {
		return "", err
	}

	if mode == ModeCommand {
		return Command(cat, lines), nil
	}

	return Quadlet(lines, section), nil
}
