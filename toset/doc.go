// Package toset turns a list of indices into an indicator vector.
//
// Every output slot is zero except the slots named by the indices, which
// hold the mark value. The output has a configurable length; indices are
// bounded by the capacity only, so a slot beyond the current length is
// still written and shows once the length grows.
package toset
