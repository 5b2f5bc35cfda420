// Package pad aligns a message inside a fixed-length output by padding it
// on the left and filling the rest with a pad value.
//
// 🚀 What it does:
//   - Writes leftPad copies of the pad value.
//   - Writes the lead tag, if any, then as much of the payload as fits.
//   - Fills every remaining slot of the capacity with the pad value.
//
// The output length is configured independently of the input. It may be
// shorter than the written data (the tail is hidden) or longer (the pad
// value shows). Content that does not fit is clipped with a warning.
//
// ⚙️ Defaults: leftPad 0, pad value Int(0), output length = capacity.
// Resize restores the defaults.
//
//	p, _ := pad.New(5)
//	p.SetLeftPad(1)
//	out, _, _ := p.Apply(atom.ListMessage(atom.Int(7), atom.Int(8)))
//	// out: list 0 7 8 0 0
package pad
