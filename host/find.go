package host

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/find"
	"github.com/katalvlaran/lobjects/mess"
)

// findObject: inlet 0 searches, inlet 1 sets the reference. The single
// outlet carries the position found.
type findObject struct {
	f   *find.Finder
	env *Env
}

func newFindObject(env *Env) (Component, error) {
	f, err := find.New(mess.DefaultCapacity, find.WithEmitter(env.Emit))
	if err != nil {
		return nil, err
	}

	return &findObject{f: f, env: env}, nil
}

func (c *findObject) Inlets() int  { return 2 }
func (c *findObject) Outlets() int { return 1 }

func (c *findObject) Resize(capacity int) error { return c.f.Resize(capacity) }

func (c *findObject) Preset(args []atom.Atom) error {
	c.f.Preset(args)

	return nil
}

func (c *findObject) Bang() {
	c.env.Send(0, atom.FloatMessage(c.f.Restate()))
}

func (c *findObject) Int(inlet int, n int64) error {
	return c.Float(inlet, float64(n))
}

func (c *findObject) Float(inlet int, f float64) error {
	if inlet == 1 {
		c.f.SetConstant(f)

		return nil
	}
	c.emit(c.f.Query(f))

	return nil
}

func (c *findObject) List(inlet int, args []atom.Atom) error {
	if inlet == 1 {
		c.f.SetReference(args)

		return nil
	}
	c.emit(c.f.Search(args))

	return nil
}

func (c *findObject) Anything(int, atom.Symbol, []atom.Atom) error {
	c.env.Emit.Warn(diag.TypeMismatch, "Invalid input: int or list expected.")

	return nil
}

func (c *findObject) emit(pos float64, ok bool) {
	if ok {
		c.env.Send(0, atom.FloatMessage(pos))
	}
}

func (c *findObject) Clear() { c.f.Clear() }

func (c *findObject) Describe(a Attrs) string {
	return fmt.Sprintf("Max length: %d - Warnings: %d - Position found: %f\n%s",
		a.Maxlen, boolInt(a.Warnings), c.f.Last(), c.f.Describe())
}
