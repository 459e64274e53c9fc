// Package format turns parsed records into the text written after "Key=" in
// a Quadlet file or after "--arg" on a podman command line.
//
// Formatters are plain functions over a record and are looked up by name
// through a Registry. Builtin names:
//   - identity: the record's sole value
//   - sepSpace: a list joined with spaces
//   - mapping: host[:container][:permissions], "-" prefixed when optional
//   - pair: key=value entries, quoted when the value contains a space
//
// Catalogues can also declare text/template formatters; see Template.
package format
