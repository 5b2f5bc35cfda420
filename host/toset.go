package host

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
	"github.com/katalvlaran/lobjects/toset"
)

// Ltoset inlets. The mark and length inlets take integers only; floats
// are truncated.
const (
	tosetInIndex = iota
	tosetInMark
	tosetInLength
)

type tosetObject struct {
	b   *toset.Builder
	env *Env
}

func newTosetObject(env *Env) (Component, error) {
	b, err := toset.New(mess.DefaultCapacity, toset.WithEmitter(env.Emit))
	if err != nil {
		return nil, err
	}

	return &tosetObject{b: b, env: env}, nil
}

func (c *tosetObject) Inlets() int  { return 3 }
func (c *tosetObject) Outlets() int { return 1 }

func (c *tosetObject) Resize(capacity int) error { return c.b.Resize(capacity) }

func (c *tosetObject) Preset(args []atom.Atom) error { return c.b.Preset(args) }

func (c *tosetObject) Bang() {
	if msg, ok := c.b.Restate(); ok {
		c.env.Send(0, msg)
	}
}

func (c *tosetObject) Int(inlet int, n int64) error {
	switch inlet {
	case tosetInIndex:
		return c.output(c.b.BuildIndex(n))
	case tosetInMark:
		c.b.SetMark(n)
	case tosetInLength:
		c.b.SetLength(int(n))
	}

	return nil
}

func (c *tosetObject) Float(inlet int, f float64) error {
	return c.Int(inlet, int64(f))
}

func (c *tosetObject) List(inlet int, args []atom.Atom) error {
	if inlet != tosetInIndex {
		c.env.Emit.Error(diag.InvalidInlet, "List inputs should go into the first inlet.")

		return nil
	}

	return c.output(c.b.Build(args))
}

func (c *tosetObject) Anything(inlet int, _ atom.Symbol, args []atom.Atom) error {
	if inlet != tosetInIndex {
		c.env.Emit.Error(diag.InvalidInlet, "The inlet expects a number.")

		return nil
	}
	c.env.Emit.Warn(diag.TypeMismatch, "Symbol in list. The object expects integers only.")

	return c.output(c.b.Build(args))
}

func (c *tosetObject) output(msg atom.Message, ok bool, err error) error {
	if err != nil {
		return err
	}
	if ok {
		c.env.Send(0, msg)
	}

	return nil
}

func (c *tosetObject) Clear() { c.b.Clear() }

func (c *tosetObject) Describe(a Attrs) string {
	return fmt.Sprintf("Max length: %d - Warnings: %d - %s",
		a.Maxlen, boolInt(a.Warnings), c.b.Describe())
}
