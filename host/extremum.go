package host

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/extremum"
	"github.com/katalvlaran/lobjects/mess"
)

// extremumObject: inlet 0 sets the left list and outputs, inlet 1 sets
// the right list silently.
type extremumObject struct {
	x   *extremum.Extremum
	env *Env
}

func extremumFactory(op extremum.Op) Factory {
	return func(env *Env) (Component, error) {
		x, err := extremum.New(op, mess.DefaultCapacity, extremum.WithEmitter(env.Emit))
		if err != nil {
			return nil, err
		}

		return &extremumObject{x: x, env: env}, nil
	}
}

func (c *extremumObject) Inlets() int  { return 2 }
func (c *extremumObject) Outlets() int { return 1 }

func (c *extremumObject) Resize(capacity int) error { return c.x.Resize(capacity) }

func (c *extremumObject) Preset(args []atom.Atom) error {
	if len(args) == 0 {
		return nil
	}

	return c.x.Preset(args)
}

func (c *extremumObject) Bang() {
	if msg, ok := c.x.Restate(); ok {
		c.env.Send(0, msg)
	}
}

func (c *extremumObject) Int(inlet int, n int64) error {
	return c.route(inlet, atom.IntMessage(n))
}

func (c *extremumObject) Float(inlet int, f float64) error {
	return c.route(inlet, atom.FloatMessage(f))
}

func (c *extremumObject) List(inlet int, args []atom.Atom) error {
	return c.route(inlet, atom.ListMessage(args...))
}

func (c *extremumObject) Anything(inlet int, sel atom.Symbol, args []atom.Atom) error {
	return c.route(inlet, atom.AnyMessage(sel, args...))
}

func (c *extremumObject) route(inlet int, msg atom.Message) error {
	if inlet == 1 {
		return c.x.SetRight(msg)
	}
	out, ok, err := c.x.SetLeft(msg)
	if err != nil {
		return err
	}
	if ok {
		c.env.Send(0, out)
	}

	return nil
}

func (c *extremumObject) Clear() { c.x.Clear() }

func (c *extremumObject) Describe(a Attrs) string {
	return fmt.Sprintf("Max length: %d - Warnings: %d\n%s",
		a.Maxlen, boolInt(a.Warnings), c.x.Describe())
}
