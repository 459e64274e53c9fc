// Package catalog provides the option catalogue: YAML schema definitions,
// the embedded catalogues for every Quadlet resource kind, loading,
// self-checking and formatter resolution.
//
// # Schema Overview
//
// A catalogue file describes one resource kind:
//
//	kind: container
//	section: Container          # Quadlet unit section
//	command: [run]              # podman subcommand words
//	required: [Image]
//	roles:
//	  global: [ContainersConfModule]   # placed before the subcommand
//	  positional: Image                # placed after all flags
//	  trailing: Exec                   # placed last
//	options:
//	  AddDevice:
//	    arg: device                    # podman flag, not unique
//	    allow_multiple: true
//	    format: mapping                # registered formatter name
//	    params:
//	      - param: host
//	        name: Host device
//	        type: path
//	      - param: permissions
//	        name: Permissions
//	        type: select
//	        is_array: true
//	        is_optional: true
//	        options: {r: read, w: write, m: mknod}
//	  AddHost:
//	    arg: add-host
//	    format_template: "{{.hostname}}:{{.ip}}"
//	    params: [...]
//
// # Formatters
//
// Each option resolves two formatters when the catalogue is loaded:
//   - config: format, then identity
//   - command: arg_format, then format, then identity
//
// Either reference may be a registered name (format, arg_format) or a
// text/template (format_template, arg_format_template), not both.
//
// # Self-check
//
// Validate reports invalid parameter types, selects without options,
// more than one pair parameter per option, unknown formatters, bad
// templates and roles naming unknown options. Load refuses catalogues
// with errors.
package catalog
