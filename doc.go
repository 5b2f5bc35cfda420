// Package lobjects is a small family of list-transformation objects over
// bounded, dynamically typed lists of ints, floats and symbols.
//
// 🚀 What is lobjects?
//
//	A set of message-driven list processors, each usable as a plain Go
//	library or as a hosted object fed by a patch script:
//		• Change detection: pass a list only when it differs from a stored one
//		• Interpolated search: fractional position of a value inside a list
//		• Elementwise min/max with broadcasting and int/float promotion
//		• Padding: align a list inside a fixed-length output
//		• Indicator sets: 0/1 vectors from lists of indices
//
// ✨ Why lobjects?
//
//   - Bounded: every list has a capacity; oversize input is clipped with a
//     warning, never an error.
//   - Typed: a closed Int | Float | Symbol atom, compared and promoted the
//     same way everywhere.
//   - Quiet by default: diagnostics flow through a Reporter and zap.
//
// Packages:
//
//	atom/     scalar atoms and messages, text parsing
//	mess/     the capacity-bounded typed list and its elementwise algebra
//	diag/     diagnostics: kinds, severities, reporters
//	change/   change detector
//	find/     interpolated search
//	extremum/ elementwise min/max
//	pad/      left padding
//	toset/    indicator sets
//	host/     message routing, attributes and the six hosted object kinds
//	config/   YAML patch scripts
//
// Quick example, Lmax with a broadcast right operand:
//
//	left   1 5 3
//	right  4
//	out    4 5 4
//
//	go run ./cmd/lobjects -kind Lmax -args 4 "1 5 3"
package lobjects
