// Package change detects whether an incoming message differs from a stored
// baseline.
//
// A Detector holds one baseline list. Compare tests an incoming message
// against it:
//
//   - equal     → the message is routed to the "same" output;
//   - different → the message is routed to the "different" output and, when
//     the detector is unlocked, becomes the new baseline.
//
// Equality is positional with cross-kind numeric comparison, so "1 2 3" and
// "1 2 3.0" are the same. Lengths must match exactly: a message longer than
// the capacity can never equal the (necessarily clipped) baseline.
//
// A new Detector starts locked: the baseline only changes through
// SetBaseline until SetLocked(false) is called.
package change
