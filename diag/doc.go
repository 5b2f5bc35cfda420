// Package diag carries the structured diagnostics raised by list objects.
//
// Nothing in lobjects aborts on bad input: every abnormal condition degrades
// to a smaller result or to no result, and is surfaced as a Diagnostic with a
// Kind and a Severity. The host decides how to render it.
//
// Kinds:
//
//	OutOfMemory       : list allocation failed; the object is inert until
//	                    maxlen is reset (Error).
//	Truncated         : payload longer than the capacity was clipped (Warning).
//	InvalidConfigValue: non-positive maxlen or out-of-range argument; a
//	                    default was substituted (Warning).
//	TypeMismatch      : a symbol where a number was expected (Warning).
//	InvalidInlet      : a message sent to an inlet that cannot take it (Error).
//
// Warnings pass through an Emitter only while its Warnings flag is set.
// Errors are always reported.
package diag
