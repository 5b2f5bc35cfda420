package atom

import (
	"fmt"
	"strconv"
)

// Kind discriminates the three scalar variants.
type Kind uint8

const (
	// KindInt marks an integer atom. It is the zero Kind so that the zero
	// Atom reads as Int(0).
	KindInt Kind = iota

	// KindFloat marks a floating point atom.
	KindFloat

	// KindSymbol marks a symbol atom.
	KindSymbol
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSymbol:
		return "symbol"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbol is a symbolic value. Symbols are compared by value.
type Symbol string

// Frequently used symbols. They are immutable and shared process-wide.
const (
	SymInt   Symbol = "int"
	SymFloat Symbol = "float"
	SymList  Symbol = "list"
	SymMess  Symbol = "mess"
	SymEmpty Symbol = "empty"
	SymNull  Symbol = "null"
	SymBang  Symbol = "bang"
)

// Atom is a single scalar: Int, Float or Symbol.
// Construct atoms with Int, Float or Sym; the zero value is Int(0).
type Atom struct {
	kind Kind
	i    int64
	f    float64
	s    Symbol
}

// Int returns an integer atom.
func Int(n int64) Atom { return Atom{kind: KindInt, i: n} }

// Float returns a float atom.
func Float(f float64) Atom { return Atom{kind: KindFloat, f: f} }

// Sym returns a symbol atom.
func Sym(s Symbol) Atom { return Atom{kind: KindSymbol, s: s} }

// Kind reports the variant held by a.
func (a Atom) Kind() Kind { return a.kind }

// IsNumber reports whether a is an Int or a Float.
func (a Atom) IsNumber() bool { return a.kind == KindInt || a.kind == KindFloat }

// IsSymbol reports whether a is a Symbol.
func (a Atom) IsSymbol() bool { return a.kind == KindSymbol }

// AsFloat returns the numeric value of a as float64.
// Symbols read as 0.
func (a Atom) AsFloat() float64 {
	switch a.kind {
	case KindInt:
		return float64(a.i)
	case KindFloat:
		return a.f
	default:
		return 0
	}
}

// AsInt returns the numeric value of a as int64, truncating floats toward
// zero. Symbols read as 0.
func (a Atom) AsInt() int64 {
	switch a.kind {
	case KindInt:
		return a.i
	case KindFloat:
		return int64(a.f)
	default:
		return 0
	}
}

// AsSymbol returns the symbol held by a, or "" for numbers.
func (a Atom) AsSymbol() Symbol {
	if a.kind == KindSymbol {
		return a.s
	}

	return ""
}

// String formats a the way it would be typed into a message box.
func (a Atom) String() string {
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(a.i, 10)
	case KindFloat:
		return strconv.FormatFloat(a.f, 'f', -1, 64)
	case KindSymbol:
		return string(a.s)
	default:
		return fmt.Sprintf("<%s>", a.kind)
	}
}

// Equal reports whether a and b are atom-equal: both symbols with the same
// value, or both numbers with the same numeric value regardless of kind.
func Equal(a, b Atom) bool {
	switch {
	case a.kind == KindSymbol && b.kind == KindSymbol:
		return a.s == b.s
	case a.IsNumber() && b.IsNumber():
		return a.AsFloat() == b.AsFloat()
	default:
		return false
	}
}
