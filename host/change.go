package host

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/change"
	"github.com/katalvlaran/lobjects/mess"
)

// Lchange outlets.
const (
	outDifferent = 0
	outSame      = 1
)

// changeObject: inlet 0 compares, inlet 1 sets the baseline.
type changeObject struct {
	d   *change.Detector
	env *Env
}

func newChangeObject(env *Env) (Component, error) {
	d, err := change.New(mess.DefaultCapacity, change.WithEmitter(env.Emit))
	if err != nil {
		return nil, err
	}

	return &changeObject{d: d, env: env}, nil
}

func (c *changeObject) Inlets() int  { return 2 }
func (c *changeObject) Outlets() int { return 2 }

func (c *changeObject) Resize(capacity int) error { return c.d.Resize(capacity) }

func (c *changeObject) Preset(args []atom.Atom) error {
	if len(args) == 0 {
		return nil
	}

	return c.d.Preset(args)
}

func (c *changeObject) Locked() bool          { return c.d.Locked() }
func (c *changeObject) SetLocked(locked bool) { c.d.SetLocked(locked) }

func (c *changeObject) Bang() {
	if msg, ok := c.d.Restate(); ok {
		c.env.Send(outDifferent, msg)
	}
}

func (c *changeObject) Int(inlet int, n int64) error {
	return c.route(inlet, atom.IntMessage(n))
}

func (c *changeObject) Float(inlet int, f float64) error {
	return c.route(inlet, atom.FloatMessage(f))
}

func (c *changeObject) List(inlet int, args []atom.Atom) error {
	return c.route(inlet, atom.ListMessage(args...))
}

func (c *changeObject) Anything(inlet int, sel atom.Symbol, args []atom.Atom) error {
	return c.route(inlet, atom.AnyMessage(sel, args...))
}

func (c *changeObject) route(inlet int, msg atom.Message) error {
	if inlet == 1 {
		return c.d.SetBaseline(msg)
	}
	res, err := c.d.Compare(msg)
	if err != nil {
		return err
	}
	if res.Verdict == change.Same {
		c.env.Send(outSame, res.Message)
	} else {
		c.env.Send(outDifferent, res.Message)
	}

	return nil
}

func (c *changeObject) Clear() { c.d.Clear() }

func (c *changeObject) Describe(a Attrs) string {
	return fmt.Sprintf("Max length: %d - Warnings: %d - Lock: %d\n%s",
		a.Maxlen, boolInt(a.Warnings), boolInt(c.d.Locked()), c.d.Describe())
}
