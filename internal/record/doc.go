// Package record holds the structured form of one submitted option instance.
//
// A Record maps parameter keys to Values in insertion order. A Value is one
// of three shapes:
//   - Scalar: a single string ("/dev/sda")
//   - List: an ordered sequence of strings (["CAP_SYSLOG", "CAP_BPF"])
//   - Pairs: an ordered string to string mapping ({"A": "B", "C": "D"})
package record
