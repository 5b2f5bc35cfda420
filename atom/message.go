package atom

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyMessage is returned by Parse when the text holds no tokens.
var ErrEmptyMessage = errors.New("atom: empty message")

// Message is a selector with its arguments, as delivered to an inlet or sent
// from an outlet.
//
// Selectors "int", "float" and "list" carry plain data in Args. Any other
// selector is a lead tag: stored lists keep it in slot 0 and shift Args by one.
type Message struct {
	Selector Symbol
	Args     []Atom
}

// IntMessage returns an "int" message.
func IntMessage(n int64) Message { return Message{Selector: SymInt, Args: []Atom{Int(n)}} }

// FloatMessage returns a "float" message.
func FloatMessage(f float64) Message { return Message{Selector: SymFloat, Args: []Atom{Float(f)}} }

// ListMessage returns a "list" message over args.
func ListMessage(args ...Atom) Message { return Message{Selector: SymList, Args: args} }

// AnyMessage returns a message with a lead tag selector.
func AnyMessage(sel Symbol, args ...Atom) Message { return Message{Selector: sel, Args: args} }

// IsData reports whether sel is one of the plain data selectors.
func IsData(sel Symbol) bool {
	return sel == SymInt || sel == SymFloat || sel == SymList
}

// HasLead reports whether the selector is a lead tag.
func (m Message) HasLead() bool { return !IsData(m.Selector) }

// Offset is 1 when the selector is a lead tag, 0 otherwise.
func (m Message) Offset() int {
	if m.HasLead() {
		return 1
	}

	return 0
}

// Len is the stored length of the message, lead tag included.
func (m Message) Len() int { return len(m.Args) + m.Offset() }

// Atoms returns the message flattened into atoms, lead tag first.
func (m Message) Atoms() []Atom {
	out := make([]Atom, 0, m.Len())
	if m.HasLead() {
		out = append(out, Sym(m.Selector))
	}

	return append(out, m.Args...)
}

// String renders m the way a console would print it. Data selectors are
// implied and left out.
func (m Message) String() string {
	var sb strings.Builder
	if m.HasLead() {
		sb.WriteString(string(m.Selector))
	}
	for i, a := range m.Args {
		if i > 0 || m.HasLead() {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
	}

	return sb.String()
}

// FromAtoms builds the message a host would form from a sequence of atoms:
// a leading symbol becomes the selector, a single number becomes an int or
// float message, anything else is a list.
func FromAtoms(atoms []Atom) Message {
	if len(atoms) == 0 {
		return Message{Selector: SymList}
	}
	first := atoms[0]
	switch {
	case first.IsSymbol():
		return Message{Selector: first.s, Args: cloneAtoms(atoms[1:])}
	case len(atoms) == 1 && first.kind == KindInt:
		return IntMessage(first.i)
	case len(atoms) == 1 && first.kind == KindFloat:
		return FloatMessage(first.f)
	default:
		return Message{Selector: SymList, Args: cloneAtoms(atoms)}
	}
}

// Parse splits text on white space and converts each token to an atom,
// then forms the message with FromAtoms.
//
//	Parse("1 2 3")   → list 1 2 3
//	Parse("2.5")     → float 2.5
//	Parse("foo 1")   → foo 1
//	Parse("bang")    → bang
func Parse(text string) (Message, error) {
	atoms := ParseAtoms(text)
	if len(atoms) == 0 {
		return Message{}, ErrEmptyMessage
	}

	return FromAtoms(atoms), nil
}

// ParseAtoms converts every white-space separated token of text to an atom.
func ParseAtoms(text string) []Atom {
	fields := strings.Fields(text)
	out := make([]Atom, 0, len(fields))
	for _, tok := range fields {
		out = append(out, ParseAtom(tok))
	}

	return out
}

// ParseAtom converts one token. Tokens that do not start like a number are
// symbols, so "inf" and "nan" stay symbolic.
func ParseAtom(tok string) Atom {
	if !looksNumeric(tok) {
		return Sym(Symbol(tok))
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f)
	}

	return Sym(Symbol(tok))
}

func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	if c == '-' || c == '+' || c == '.' {
		if len(tok) == 1 {
			return false
		}
		c = tok[1]
		if c == '.' && len(tok) > 2 {
			c = tok[2]
		}
	}

	return c >= '0' && c <= '9'
}

func cloneAtoms(in []Atom) []Atom {
	if len(in) == 0 {
		return nil
	}
	out := make([]Atom, len(in))
	copy(out, in)

	return out
}
