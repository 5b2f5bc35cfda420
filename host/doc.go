// Package host runs the list components as message-driven objects.
//
// An Object wraps one Component and plays the part of the host patcher:
// it routes incoming messages by selector and inlet, owns the maxlen,
// warnings and lock attributes, applies creation arguments, and forwards
// component output to whatever is connected to its outlets.
//
// 🚀 Object kinds:
//   - Lchange: pass a message left when it differs from the stored one.
//   - Lfind:   position of a value inside a list, interpolated.
//   - Lmax, Lmin: elementwise extremum of two lists.
//   - Lpad:    left-pad and align a message to a fixed length.
//   - Ltoset:  indicator set from a list of indices.
//
// ⚙️ Methods understood by every object: bang, clear, post, maxlen <n>,
// warnings <0|1>. Lchange adds lock <0|1>, Lpad adds reset.
//
// Creation arguments follow the host convention: positional values first,
// then "@name value..." attribute pairs.
//
//	o, _ := host.New("Lmax", atom.ParseAtoms("4 @maxlen 16"))
//	rec := &host.Recorder{}
//	_ = o.Connect(0, rec.Tap("max", 0))
//	_ = o.Send(0, atom.ListMessage(atom.Int(1), atom.Int(5), atom.Int(3)))
//	// rec.Events(): max[0] 4 5 4
package host
