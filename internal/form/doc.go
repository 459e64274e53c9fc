// Package form rebuilds option records from ordered flat field entries.
//
// A renderer emits one entry per filled field, named with the field
// package. Parse walks the entries once, left to right, and groups them
// into records per option. Entry order carries meaning: it is the only way
// to tell apart repeated instances of an option whose field names collide.
//
// # Grouping Rules
//
//   - A change of option closes the current record.
//   - An array element whose field differs from the accumulated one, or
//     whose index restarts, opens a new record.
//   - A scalar field already present in the current record opens a new
//     record.
//   - Blank values are dropped before any of the above applies.
//
// Flatten is the inverse of Parse for records produced by it.
package form
