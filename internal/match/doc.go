// Package match ranks known names against a misspelled one.
//
// Key functions:
//   - NormalizeIdent: case- and separator-insensitive form of a name
//   - Levenshtein: edit distance between two strings
//   - Suggest: closest known names for "did you mean" hints
package match
