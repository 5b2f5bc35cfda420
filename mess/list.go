// SPDX-License-Identifier: MIT

package mess

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
)

// MaxCapacity is the largest capacity Allocate will grant. Larger requests
// fail with ErrOutOfMemory instead of exhausting the process.
const MaxCapacity = 1 << 24

// DefaultCapacity is the capacity hosts substitute for a non-positive maxlen.
const DefaultCapacity = 256

// Class is the derived classification of a List.
type Class int

const (
	// ClassNull marks an unallocated list.
	ClassNull Class = iota
	// ClassEmpty marks an allocated list of length 0.
	ClassEmpty
	// ClassInt marks a single integer.
	ClassInt
	// ClassFloat marks a single float.
	ClassFloat
	// ClassList marks plain numeric data.
	ClassList
	// ClassCustom marks a message with a lead tag.
	ClassCustom
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassNull:
		return "null"
	case ClassEmpty:
		return "empty"
	case ClassInt:
		return "int"
	case ClassFloat:
		return "float"
	case ClassList:
		return "list"
	case ClassCustom:
		return "custom"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// List is a capacity-bounded sequence of atoms with a derived selector.
//
// Invariants:
//   - Len() <= Cap().
//   - len(vals) == Cap(); vals[Len():] are Int(0) unless a fill wrote them.
//   - offset is 1 exactly when slot 0 holds the lead tag.
//
// A List is owned by a single component and is not safe for concurrent use.
type List struct {
	vals   []atom.Atom
	n      int
	sel    atom.Symbol
	offset int
}

// New returns a Null list. Call Allocate before use.
func New() *List {
	return &List{sel: atom.SymNull}
}

// Allocate (re)creates the backing storage with capacity n.
//
// Implementation:
//   - Stage 1: drop the previous storage.
//   - Stage 2: validate n; on failure leave the list Null.
//   - Stage 3: allocate n zeroed slots and set the list Empty.
//
// Errors:
//   - ErrInvalidCapacity when n < 1.
//   - ErrOutOfMemory when n > MaxCapacity.
//
// Complexity: O(n).
func (l *List) Allocate(n int) error {
	l.Release()
	if n < 1 {
		return fmt.Errorf("allocate %d: %w", n, ErrInvalidCapacity)
	}
	if n > MaxCapacity {
		return fmt.Errorf("allocate %d: %w", n, ErrOutOfMemory)
	}
	l.vals = make([]atom.Atom, n)
	l.SetEmpty()

	return nil
}

// Release frees the backing storage and returns the list to Null.
func (l *List) Release() {
	l.vals = nil
	l.n = 0
	l.sel = atom.SymNull
	l.offset = 0
}

// IsNull reports whether the list has no usable storage.
func (l *List) IsNull() bool { return l == nil || len(l.vals) == 0 }

// Cap returns the capacity, 0 for a Null list.
func (l *List) Cap() int { return len(l.vals) }

// Len returns the current length, lead tag included.
func (l *List) Len() int { return l.n }

// Offset returns 1 when slot 0 holds a lead tag.
func (l *List) Offset() int { return l.offset }

// Selector returns the selector the list is emitted with.
func (l *List) Selector() atom.Symbol { return l.sel }

// Class derives the classification from the selector.
func (l *List) Class() Class {
	switch l.sel {
	case atom.SymNull:
		return ClassNull
	case atom.SymEmpty:
		return ClassEmpty
	case atom.SymInt:
		return ClassInt
	case atom.SymFloat:
		return ClassFloat
	case atom.SymList:
		return ClassList
	default:
		return ClassCustom
	}
}

// At returns backing slot i, which may lie beyond Len(). Out-of-range
// indices read as Int(0).
func (l *List) At(i int) atom.Atom {
	if i < 0 || i >= len(l.vals) {
		return atom.Atom{}
	}

	return l.vals[i]
}

// Put writes backing slot i without touching length or selector.
// It reports false when i is outside the capacity.
func (l *List) Put(i int, v atom.Atom) bool {
	if i < 0 || i >= len(l.vals) {
		return false
	}
	l.vals[i] = v

	return true
}

// Values returns a copy of the in-use slots, lead tag included.
func (l *List) Values() []atom.Atom {
	out := make([]atom.Atom, l.n)
	copy(out, l.vals[:l.n])

	return out
}

// Payload returns a copy of the in-use slots after the lead tag.
func (l *List) Payload() []atom.Atom {
	if l.n <= l.offset {
		return nil
	}
	out := make([]atom.Atom, l.n-l.offset)
	copy(out, l.vals[l.offset:l.n])

	return out
}

// Floats returns the in-use slots read as numbers; symbols read as 0.
func (l *List) Floats() []float64 {
	out := make([]float64, l.n)
	for i := 0; i < l.n; i++ {
		out[i] = l.vals[i].AsFloat()
	}

	return out
}

// SetLen changes the length, clamped to [0, Cap()], keeping the selector.
// Slots are not touched, so content written beyond the old length becomes
// visible.
func (l *List) SetLen(n int) {
	l.n = clamp(n, 0, len(l.vals))
}

// SetEmpty zeroes every slot and sets the list Empty.
func (l *List) SetEmpty() {
	if l.IsNull() {
		return
	}
	l.n = 0
	for i := range l.vals {
		l.vals[i] = atom.Atom{}
	}
	l.offset = 0
	l.sel = atom.SymEmpty
}

// Set stores args under selector sel.
//
// Implementation:
//   - Stage 1: refuse a Null list.
//   - Stage 2: with a lead tag, write sel into slot 0 and shift args by one.
//   - Stage 3: clip args to the remaining capacity.
//   - Stage 4: copy, then record length, selector and offset.
//
// Behavior highlights:
//   - The selector is recorded as given; no reclassification happens.
//   - Slots past the new length keep their previous content.
//
// Errors:
//   - ErrNull on a Null list.
//   - *TruncatedError (matches ErrTruncated) when clipped; the list is updated.
func (l *List) Set(sel atom.Symbol, args []atom.Atom, withLead bool) error {
	if l.IsNull() {
		return ErrNull
	}
	offset := 0
	if withLead {
		offset = 1
		l.vals[0] = atom.Sym(sel)
	}

	var err error
	argc := len(args)
	if room := len(l.vals) - offset; argc > room {
		err = &TruncatedError{From: argc + offset, To: len(l.vals)}
		argc = room
	}

	copy(l.vals[offset:], args[:argc])
	l.n = argc + offset
	l.sel = sel
	l.offset = offset

	return err
}

// SetInt stores a single integer.
func (l *List) SetInt(n int64) error {
	return l.Set(atom.SymInt, []atom.Atom{atom.Int(n)}, false)
}

// SetFloat stores a single float.
func (l *List) SetFloat(f float64) error {
	return l.Set(atom.SymFloat, []atom.Atom{atom.Float(f)}, false)
}

// SetList stores plain data under the "list" selector.
func (l *List) SetList(args []atom.Atom) error {
	return l.Set(atom.SymList, args, false)
}

// SetAny stores a message with lead tag sel.
func (l *List) SetAny(sel atom.Symbol, args []atom.Atom) error {
	return l.Set(sel, args, true)
}

// SetMessage stores msg, with a lead tag when its selector is not a data
// selector.
func (l *List) SetMessage(msg atom.Message) error {
	return l.Set(msg.Selector, msg.Args, msg.HasLead())
}

// SetScalar stores a single value and classifies it: Int and Float keep
// their kind, a Symbol becomes the lead tag of a one-slot message.
func (l *List) SetScalar(v atom.Atom) error {
	switch v.Kind() {
	case atom.KindInt:
		return l.Set(atom.SymInt, []atom.Atom{v}, false)
	case atom.KindFloat:
		return l.Set(atom.SymFloat, []atom.Atom{v}, false)
	default:
		return l.Set(v.AsSymbol(), nil, true)
	}
}

// SetFromValues stores values, preceded by lead when it is non-nil.
// A symbolic lead becomes the lead tag; a numeric lead is stored as the
// first data value. The selector is "list" or the lead tag; call Classify
// to derive int/float/empty.
func (l *List) SetFromValues(values []atom.Atom, lead *atom.Atom) error {
	if lead == nil {
		return l.SetList(values)
	}
	if lead.IsSymbol() {
		return l.SetAny(lead.AsSymbol(), values)
	}
	all := make([]atom.Atom, 0, len(values)+1)
	all = append(all, *lead)

	return l.SetList(append(all, values...))
}

// Classify derives selector and offset from slot 0 and the length.
//
//	length 0              → empty
//	length 1, int/float   → int / float
//	length 1, symbol      → <symbol>, offset 1
//	length >1, number     → list
//	length >1, symbol     → <symbol>, offset 1
//
// A Null list stays Null.
func (l *List) Classify() {
	if l.IsNull() {
		l.offset = 0
		l.sel = atom.SymNull

		return
	}
	first := l.vals[0]
	switch {
	case l.n == 0:
		l.offset, l.sel = 0, atom.SymEmpty
	case first.IsSymbol():
		l.offset, l.sel = 1, first.AsSymbol()
	case l.n == 1 && first.Kind() == atom.KindInt:
		l.offset, l.sel = 0, atom.SymInt
	case l.n == 1:
		l.offset, l.sel = 0, atom.SymFloat
	default:
		l.offset, l.sel = 0, atom.SymList
	}
}

// Fill writes v into every slot of the capacity, sets the length to count
// (clamped to the capacity) and classifies the result.
func (l *List) Fill(v atom.Atom, count int) {
	if l.IsNull() {
		return
	}
	for i := range l.vals {
		l.vals[i] = v
	}
	l.n = clamp(count, 0, len(l.vals))
	l.Classify()
}

// FillInt is Fill with an integer.
func (l *List) FillInt(n int64, count int) { l.Fill(atom.Int(n), count) }

// FillFloat is Fill with a float.
func (l *List) FillFloat(f float64, count int) { l.Fill(atom.Float(f), count) }

// ZeroPadTail resets slots [Len(), Cap()) to Int(0).
func (l *List) ZeroPadTail() {
	for i := l.n; i < len(l.vals); i++ {
		l.vals[i] = atom.Atom{}
	}
}

// Message returns the list in outlet form. Null and Empty lists produce
// nothing.
func (l *List) Message() (atom.Message, bool) {
	if l.IsNull() || l.sel == atom.SymNull || l.sel == atom.SymEmpty {
		return atom.Message{}, false
	}

	return atom.Message{Selector: l.sel, Args: l.Payload()}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
