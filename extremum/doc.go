// Package extremum computes the elementwise minimum or maximum of two lists.
//
// ✨ Rules:
//   - Broadcast: a one-element side is reused against every position of the
//     other side. Otherwise the output follows the left list's length.
//   - Promotion: int with int stays int; any float makes the result float.
//   - Mismatch: when either side is not a number, the left value passes
//     through unchanged, so a lead tag on the left survives.
//
// The right list is zero-padded to the capacity on every update, so a left
// list longer than the right one meets zeros past the right list's end.
//
//	e, _ := extremum.New(extremum.Max, 16)
//	_ = e.SetRight(atom.IntMessage(4))
//	out, _ := e.SetLeft(atom.ListMessage(atom.Int(1), atom.Int(5), atom.Int(3)))
//	// out: list 4 5 4
package extremum
