// Package diagnostic provides structured errors, warnings and notes
// produced while checking an option catalogue.
//
// Key capabilities:
//   - Per-option and per-parameter location
//   - Stable codes for each kind of schema violation
//   - "Did you mean" suggestions for misspelled references
package diagnostic
