// SPDX-License-Identifier: MIT

package mess

import "github.com/katalvlaran/lobjects/atom"

// Equal reports whether l and other hold the same message.
//
// Rules:
//   - Lengths, lead tag included, must match exactly; a truncated list never
//     equals its full-length original.
//   - With compareLead, both lists must agree on having a lead tag and the
//     tags must be atom-equal.
//   - Every remaining slot pair must be atom-equal (Int/Float cross-kind).
//
// Complexity: O(Len()).
func (l *List) Equal(other *List, compareLead bool) bool {
	if l.n != other.n {
		return false
	}
	start := 0
	if l.offset == 1 || other.offset == 1 {
		start = 1
	}
	if compareLead && start == 1 {
		if l.offset != other.offset || !atom.Equal(l.vals[0], other.vals[0]) {
			return false
		}
	}
	for i := start; i < l.n; i++ {
		if !atom.Equal(l.vals[i], other.vals[i]) {
			return false
		}
	}

	return true
}

// Picker selects one of two numbers. Implementations must be pure.
type Picker interface {
	PickInt(a, b int64) int64
	PickFloat(a, b float64) float64
}

// Combine fills out with the elementwise combination of left and right.
//
// Implementation:
//   - Stage 1: refuse Null operands.
//   - Stage 2: choose the output length and broadcast side:
//     left of length 1 → right's length, left slot 0 reused;
//     else right of length 1 → left's length, right slot 0 reused;
//     else left's length, both advance together.
//   - Stage 3: per position, a non-numeric operand passes left through,
//     two ints pick as int, anything else picks as float.
//   - Stage 4: classify out.
//
// Behavior highlights:
//   - Unequal lengths above 1 read right's backing slots past its length;
//     callers keep right zero-padded so those read as Int(0).
//   - The output length is clipped to out's capacity.
//
// Errors:
//   - ErrNull when any list is Null.
//
// Complexity: O(out length).
func Combine(out, left, right *List, p Picker) error {
	if out.IsNull() || left.IsNull() || right.IsNull() {
		return ErrNull
	}

	n, stepL, stepR := left.n, 1, 1
	switch {
	case left.n == 1:
		n, stepL = right.n, 0
	case right.n == 1:
		stepR = 0
	}
	n = clamp(n, 0, len(out.vals))

	for i, li, ri := 0, 0, 0; i < n; i, li, ri = i+1, li+stepL, ri+stepR {
		a, b := left.At(li), right.At(ri)
		switch {
		case !a.IsNumber() || !b.IsNumber():
			out.vals[i] = a
		case a.Kind() == atom.KindInt && b.Kind() == atom.KindInt:
			out.vals[i] = atom.Int(p.PickInt(a.AsInt(), b.AsInt()))
		default:
			out.vals[i] = atom.Float(p.PickFloat(a.AsFloat(), b.AsFloat()))
		}
	}
	out.n = n
	out.Classify()

	return nil
}
