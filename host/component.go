package host

import (
	"sort"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/extremum"
)

// Component is the behavior an Object hosts. Inlet numbers are zero-based
// and always below Inlets(); the Object checks them before dispatch.
//
// Data methods report bad input through the Env emitter and return an
// error only when the component itself cannot operate.
type Component interface {
	Inlets() int
	Outlets() int

	// Resize reallocates storage for a new maxlen and restores defaults.
	Resize(capacity int) error

	// Preset applies positional creation arguments.
	Preset(args []atom.Atom) error

	Bang()
	Int(inlet int, n int64) error
	Float(inlet int, f float64) error
	List(inlet int, args []atom.Atom) error
	Anything(inlet int, sel atom.Symbol, args []atom.Atom) error
	Clear()

	// Describe renders the post text.
	Describe(a Attrs) string
}

// Resetter is implemented by components that understand "reset".
type Resetter interface {
	Reset()
}

// Locker is implemented by components with a "lock" attribute.
type Locker interface {
	Locked() bool
	SetLocked(locked bool)
}

// Attrs are the host-owned attribute values shown in post texts.
type Attrs struct {
	Maxlen   int
	Warnings bool
}

// Env is what a component sees of its host object.
type Env struct {
	// Emit reports diagnostics under the object's name.
	Emit *diag.Emitter

	send func(outlet int, msg atom.Message)
}

// Send forwards msg out of the given outlet.
func (e *Env) Send(outlet int, msg atom.Message) {
	if e.send != nil {
		e.send(outlet, msg)
	}
}

// Factory builds a component allocated with the default capacity.
type Factory func(env *Env) (Component, error)

var registry = map[string]Factory{
	"Lchange": newChangeObject,
	"Lfind":   newFindObject,
	"Lmax":    extremumFactory(extremum.Max),
	"Lmin":    extremumFactory(extremum.Min),
	"Lpad":    newPadObject,
	"Ltoset":  newTosetObject,
}

// Kinds returns the registered object kinds in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
