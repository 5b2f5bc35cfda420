// SPDX-License-Identifier: MIT

// Package mess provides the capacity-bounded, type-tagged list container
// shared by every lobjects component, and the list algebra built on it.
//
// 🚀 What is a List?
//
//	A List is a fixed-capacity buffer of atoms plus a current length. Only
//	the first Len() slots are meaningful; the rest hold Int(0). The list
//	also carries a selector that classifies its content:
//
//	  null  : never allocated, or the last allocation failed
//	  empty : allocated, length 0
//	  int   : one integer
//	  float : one float
//	  list  : several values starting with a number
//	  <sym> : a message whose first slot is the lead tag <sym>
//
// ✨ Key behaviors:
//   - Allocate is destructive: contents are discarded on every call.
//   - Writing more than the capacity truncates and returns *TruncatedError;
//     the list is still updated (clip, not fail).
//   - Set* record the selector they are given; Classify re-derives it from
//     slot 0 and the length. Callers decide when to reclassify.
//   - A Null list ignores every mutation (ErrNull).
//
// ⚙️ Usage:
//
//	l := mess.New()
//	if err := l.Allocate(8); err != nil { ... }
//	_ = l.SetList([]atom.Atom{atom.Int(1), atom.Int(2)})
//	msg, ok := l.Message() // list 1 2
//
// List algebra:
//
//	Equal compares two lists with cross-kind numeric equality.
//	Combine merges two lists elementwise with single-element broadcast and
//	int/float promotion; a non-numeric pair passes the left value through.
package mess
