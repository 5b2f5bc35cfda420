package host

import (
	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
	"github.com/katalvlaran/lobjects/pad"
)

// Lpad inlets.
const (
	padInData = iota
	padInLeft
	padInValue
	padInLength
)

type padObject struct {
	p   *pad.Padder
	env *Env
}

func newPadObject(env *Env) (Component, error) {
	p, err := pad.New(mess.DefaultCapacity, pad.WithEmitter(env.Emit))
	if err != nil {
		return nil, err
	}

	return &padObject{p: p, env: env}, nil
}

func (c *padObject) Inlets() int  { return 4 }
func (c *padObject) Outlets() int { return 1 }

func (c *padObject) Resize(capacity int) error { return c.p.Resize(capacity) }

func (c *padObject) Preset(args []atom.Atom) error { return c.p.Preset(args) }

func (c *padObject) Bang() {
	if msg, ok := c.p.Restate(); ok {
		c.env.Send(0, msg)
	}
}

func (c *padObject) Int(inlet int, n int64) error {
	switch inlet {
	case padInData:
		return c.apply(atom.IntMessage(n))
	case padInLeft:
		c.p.SetLeftPad(int(n))
	case padInValue:
		c.p.SetPadValue(atom.Int(n))
	case padInLength:
		c.p.SetOutputLength(int(n))
	}

	return nil
}

func (c *padObject) Float(inlet int, f float64) error {
	switch inlet {
	case padInData:
		return c.apply(atom.FloatMessage(f))
	case padInLeft:
		c.p.SetLeftPad(int(f))
	case padInValue:
		c.p.SetPadValue(atom.Float(f))
	case padInLength:
		c.p.SetOutputLength(int(f))
	}

	return nil
}

func (c *padObject) List(inlet int, args []atom.Atom) error {
	if inlet != padInData {
		c.env.Emit.Error(diag.InvalidInlet, "List inputs should go into the first inlet.")

		return nil
	}

	return c.apply(atom.ListMessage(args...))
}

func (c *padObject) Anything(inlet int, sel atom.Symbol, args []atom.Atom) error {
	switch inlet {
	case padInData:
		return c.apply(atom.AnyMessage(sel, args...))
	case padInValue:
		c.p.SetPadValue(atom.Sym(sel))
		if len(args) > 0 {
			c.env.Emit.Warn(diag.TypeMismatch, "Use a single number or symbol to set the padding value.")
		}
	default:
		c.env.Emit.Error(diag.InvalidInlet, "The inlet expects a number.")
	}

	return nil
}

func (c *padObject) apply(msg atom.Message) error {
	out, ok, err := c.p.Apply(msg)
	if err != nil {
		return err
	}
	if ok {
		c.env.Send(0, out)
	}

	return nil
}

func (c *padObject) Clear() { c.p.Clear() }
func (c *padObject) Reset() { c.p.Reset() }

func (c *padObject) Describe(Attrs) string { return c.p.Describe() }
