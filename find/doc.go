// Package find locates a value inside a numeric list and reports its
// fractional position.
//
// 🚀 How it works:
//
//  1. Exact match: the first index holding the query is returned.
//  2. Bracket: the largest value below the query is searched from the front
//     (or, when the first element is not below the query, from the back);
//     then the first value above the query is searched from that index
//     forward, and backward if none lies ahead.
//  3. Interpolate linearly in index space between the two bracket ends.
//
// Increasing, decreasing and non-monotonic references are all handled; for
// non-monotonic data the bracket is the one the scan order finds first.
//
// When no bracket exists (empty reference, every value above or every value
// below the query) nothing is produced.
//
//	pos, ok := find.Locate(15, []float64{0, 10, 20, 30}) // 1.5, true
package find
