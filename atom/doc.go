// Package atom defines the scalar values that flow through every list object
// in lobjects, and the messages that carry them.
//
// 🚀 What is an atom?
//
//	An Atom is a closed variant holding exactly one of:
//	  • Int   : a signed 64-bit integer
//	  • Float : a float64
//	  • Symbol: an interned-by-value string
//
//	The zero Atom is Int(0), which is also the value every unused slot of a
//	list container holds.
//
// ✨ Equality rules:
//   - Int and Float compare numerically across kinds: Int(2) == Float(2.0).
//   - Symbol compares only to Symbol, by value.
//   - A number never equals a symbol, even Int(1) vs Symbol("1").
//
// ⚙️ Messages:
//
//	A Message is a selector plus arguments, the unit a host delivers to an
//	object inlet and receives from an outlet. The selectors "int", "float"
//	and "list" describe plain numeric data; any other selector is a lead tag
//	that occupies the first slot when the message is stored in a list.
//
//	msg, err := atom.Parse("foo 1 2.5")
//	// msg.Selector == "foo", msg.Args == [Int(1), Float(2.5)]
package atom
