package catalog

import (
	"fmt"

	"quadlet-generator/internal/diagnostic"
	"quadlet-generator/internal/format"
	"quadlet-generator/internal/match"
)

// maxSuggestions bounds "did you mean" hints per diagnostic.
const maxSuggestions = 3

// Validate checks a parsed catalogue against the schema rules. It never
// fails early: every violation is reported.
func Validate(c *Catalog, reg *format.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if reg == nil {
		res.AddError("registry_is_nil", "formatter registry is nil", "", "")
		return res
	}

	if c.Kind == "" {
		res.AddError("missing_kind", "catalog has no kind", "", "")
	}

	if len(c.Options) == 0 {
		res.AddError("no_options", "catalog declares no options", "", "")
	}

	for _, opt := range c.Options {
		if opt.Unsupported {
			res.AddInfo("unsupported_option", "option is not supported yet", opt.Name, "")
			continue
		}

		validateOption(res, opt, reg)
	}

	validateRoles(res, c)

	return res
}

// validateOption checks one supported option and its parameters.
func validateOption(res *diagnostic.Diagnostics, opt *Option, reg *format.Registry) {
	if opt.Arg == "" {
		res.AddError("missing_arg", "option has no podman arg", opt.Name, "")
	}

	if len(opt.Params) == 0 {
		res.AddError("no_params", "option declares no params", opt.Name, "")
	}

	validateFormatter(res, opt.Name, "format", opt.Format, opt.FormatTemplate, reg)
	validateFormatter(res, opt.Name, "arg_format", opt.ArgFormat, opt.ArgFormatTemplate, reg)

	if opt.Format == "" && opt.FormatTemplate == "" && len(opt.Params) > 1 && !opt.hasParam(format.ParamValue) {
		res.AddWarning("ambiguous_identity",
			fmt.Sprintf("identity formatter on %d params without a %q param", len(opt.Params), format.ParamValue),
			opt.Name, "")
	}

	seen := make(map[string]struct{}, len(opt.Params))
	pairs := 0

	for i := range opt.Params {
		p := &opt.Params[i]

		if p.Param == "" {
			res.AddError("missing_param_key", fmt.Sprintf("param #%d has no key", i), opt.Name, "")
			continue
		}

		if _, dup := seen[p.Param]; dup {
			res.AddError("duplicate_param", "param declared twice", opt.Name, p.Param)
		}

		seen[p.Param] = struct{}{}

		if p.Type == TypePair {
			pairs++
		}

		validateParam(res, opt.Name, p)
	}

	if pairs > 1 {
		res.AddError("multiple_pair_params",
			fmt.Sprintf("option has %d pair params, at most one is allowed", pairs), opt.Name, "")
	}
}

// validateParam checks type-specific rules of a single parameter.
func validateParam(res *diagnostic.Diagnostics, option string, p *Param) {
	if !p.Type.IsValid() {
		res.AddError("invalid_param_type", fmt.Sprintf("unknown type %q", p.TypeName),
			option, p.Param, match.Suggest(p.TypeName, ParamTypeNames(), maxSuggestions)...)

		return
	}

	switch p.Type {
	case TypeSelect:
		if len(p.Options) == 0 {
			res.AddError("select_without_options", "select param has no options", option, p.Param)
			break
		}

		if p.Default != "" && !p.Options.Contains(p.Default) {
			res.AddWarning("default_not_an_option", fmt.Sprintf("default %q is not one of the options", p.Default),
				option, p.Param, match.Suggest(p.Default, p.Options.Values(), maxSuggestions)...)
		}

		seen := make(map[string]struct{}, len(p.Options))
		for _, ch := range p.Options {
			if _, dup := seen[ch.Value]; dup {
				res.AddWarning("duplicate_choice", fmt.Sprintf("option %q listed twice", ch.Value), option, p.Param)
			}

			seen[ch.Value] = struct{}{}
		}

	case TypePair:
		if len(p.Placeholder) != 0 && len(p.Placeholder) != 2 {
			res.AddWarning("pair_placeholder", "pair placeholder should hold a key and a value hint", option, p.Param)
		}

	case TypeBoolean:
		if p.IsArray {
			res.AddError("boolean_array", "boolean params cannot be arrays", option, p.Param)
		}

	default:
		if len(p.Options) > 0 {
			res.AddWarning("options_ignored", fmt.Sprintf("options are ignored for %s params", p.Type), option, p.Param)
		}
	}

	if p.Dedupe && !p.IsArray {
		res.AddWarning("dedupe_scalar", "dedupe has no effect on scalar params", option, p.Param)
	}
}

// validateFormatter checks that a formatter reference resolves.
func validateFormatter(res *diagnostic.Diagnostics, option, field, name, tmpl string, reg *format.Registry) {
	if name != "" && tmpl != "" {
		res.AddError("conflicting_formatter",
			fmt.Sprintf("%s and %s_template are mutually exclusive", field, field), option, "")

		return
	}

	if name != "" && !reg.Has(name) {
		res.AddError("unknown_formatter", fmt.Sprintf("%s %q is not registered", field, name),
			option, "", match.Suggest(name, reg.Names(), maxSuggestions)...)
	}

	if tmpl != "" {
		if _, err := format.Template(option, tmpl, nil); err != nil {
			res.AddError("invalid_template", err.Error(), option, "")
		}
	}
}

// validateRoles checks that every role names a supported option.
func validateRoles(res *diagnostic.Diagnostics, c *Catalog) {
	names := c.Names()

	check := func(role, option string) {
		if option == "" {
			return
		}

		opt := c.Lookup(option)
		if opt == nil {
			res.AddError("unknown_role_option", fmt.Sprintf("%s role names unknown option %q", role, option),
				"", "", match.Suggest(option, names, maxSuggestions)...)

			return
		}

		if opt.AllowMultiple && role != "global" {
			res.AddWarning("multiple_role_option",
				fmt.Sprintf("%s role option allows multiple instances; only the last is used", role), option, "")
		}
	}

	for _, g := range c.Roles.Global {
		check("global", g)
	}

	check("positional", c.Roles.Positional)
	check("trailing", c.Roles.Trailing)

	for _, r := range c.Required {
		if c.Lookup(r) == nil {
			res.AddError("unknown_required_option", fmt.Sprintf("required option %q is not declared", r),
				"", "", match.Suggest(r, names, maxSuggestions)...)
		}
	}
}

func (o *Option) hasParam(key string) bool {
	return o.Param(key) != nil
}

// Param returns the parameter with the given key, or nil if not found.
func (o *Option) Param(key string) *Param {
	for i := range o.Params {
		if o.Params[i].Param == key {
			return &o.Params[i]
		}
	}

	return nil
}
