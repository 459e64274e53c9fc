// Package field encodes and decodes the flat field names that carry one
// parameter value across the form boundary.
//
// # Key Syntax
//
//   - Scalar parameter: "AddDevice.host"
//   - Array element: "AddCapability.values[2]"
//   - Pair entry key: "Annotation.values.keys[0]"
//   - Pair entry value: "Annotation.values.values[0]"
//
// Any key may carry a "/tag" suffix. Tags are stripped before decoding and
// only serve to keep otherwise identical keys apart in fixtures.
package field
