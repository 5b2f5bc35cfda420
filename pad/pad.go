package pad

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
)

// ErrNotAllocated is returned when the output has no storage.
var ErrNotAllocated = errors.New("pad: padder is not allocated")

// Option configures a Padder.
type Option func(*Padder)

// WithEmitter routes warnings to e.
func WithEmitter(e *diag.Emitter) Option {
	return func(p *Padder) { p.emit = e }
}

// Padder holds the padding configuration and the padded output.
type Padder struct {
	out      *mess.List
	leftPad  int
	padValue atom.Atom
	emit     *diag.Emitter
}

// New returns a Padder with the given capacity and default settings.
func New(capacity int, opts ...Option) (*Padder, error) {
	p := &Padder{out: mess.New()}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Resize(capacity); err != nil {
		return p, err
	}

	return p, nil
}

// Resize reallocates the output, restores the defaults and pads an empty
// message.
func (p *Padder) Resize(capacity int) error {
	if err := p.out.Allocate(capacity); err != nil {
		return fmt.Errorf("pad: %w", err)
	}
	p.leftPad = 0
	p.padValue = atom.Int(0)
	p.out.SetLen(p.out.Cap())
	p.apply(atom.SymEmpty, nil, false)

	return nil
}

// Output returns the padded list.
func (p *Padder) Output() *mess.List { return p.out }

// LeftPad returns the number of leading pad slots.
func (p *Padder) LeftPad() int { return p.leftPad }

// PadValue returns the pad value.
func (p *Padder) PadValue() atom.Atom { return p.padValue }

// OutputLength returns the configured output length.
func (p *Padder) OutputLength() int { return p.out.Len() }

// SetLeftPad sets the number of leading pad slots, clamped to [0, capacity].
// It takes effect on the next Apply.
func (p *Padder) SetLeftPad(n int) {
	p.leftPad = clamp(n, 0, p.out.Cap())
}

// SetPadValue sets the pad value. It takes effect on the next Apply.
func (p *Padder) SetPadValue(v atom.Atom) {
	p.padValue = v
}

// SetOutputLength sets the output length, clamped to [0, capacity].
// The current content is kept, so slots beyond the old length show.
func (p *Padder) SetOutputLength(n int) {
	p.out.SetLen(n)
}

// Apply pads msg and returns the output message. ok is false when the
// output length is zero.
//
// Implementation:
//   - Stage 1: warn when leftPad plus the message exceeds the capacity.
//   - Stage 2: write the pad prefix, the lead tag and the payload.
//   - Stage 3: fill the rest of the capacity with the pad value.
//   - Stage 4: classify at the configured output length.
//
// Complexity: O(capacity).
func (p *Padder) Apply(msg atom.Message) (out atom.Message, ok bool, err error) {
	if p.out.IsNull() {
		return atom.Message{}, false, ErrNotAllocated
	}
	p.apply(msg.Selector, msg.Args, msg.HasLead())
	out, ok = p.out.Message()

	return out, ok, nil
}

func (p *Padder) apply(sel atom.Symbol, args []atom.Atom, withLead bool) {
	capacity := p.out.Cap()
	offset := 0
	if withLead {
		offset = 1
	}
	if n := len(args) + offset; n+p.leftPad > capacity {
		p.emit.Warn(diag.Truncated, "The input message is clipped from length %d to %d.", n, capacity-p.leftPad)
	}

	pos := 0
	for ; pos < min(p.leftPad, capacity); pos++ {
		p.out.Put(pos, p.padValue)
	}
	if withLead && pos < capacity {
		p.out.Put(pos, atom.Sym(sel))
		pos++
	}
	for _, v := range args[:min(len(args), capacity-pos)] {
		p.out.Put(pos, v)
		pos++
	}
	for ; pos < capacity; pos++ {
		p.out.Put(pos, p.padValue)
	}
	p.out.Classify()
}

// Preset applies creation arguments, then pads an empty message:
//
//	1 argument:   output length
//	2 arguments:  pad value, output length
//	3 or more:    left pad, pad value, output length
func (p *Padder) Preset(args []atom.Atom) error {
	if p.out.IsNull() {
		return ErrNotAllocated
	}
	switch len(args) {
	case 0:
	case 1:
		p.SetOutputLength(int(args[0].AsInt()))
	case 2:
		p.padValue = args[0]
		p.SetOutputLength(int(args[1].AsInt()))
	default:
		p.SetLeftPad(int(args[0].AsInt()))
		p.padValue = args[1]
		p.SetOutputLength(int(args[2].AsInt()))
	}
	p.apply(atom.SymEmpty, nil, false)

	return nil
}

// Restate returns the current output.
func (p *Padder) Restate() (atom.Message, bool) {
	return p.out.Message()
}

// Clear overwrites the output with zeros, keeping its length.
func (p *Padder) Clear() {
	p.out.FillInt(0, p.out.Len())
}

// Reset overwrites the output with the pad value, keeping its length.
func (p *Padder) Reset() {
	p.out.Fill(p.padValue, p.out.Len())
}

// Describe renders the settings and the padded list.
func (p *Padder) Describe() string {
	var val string
	switch p.padValue.Kind() {
	case atom.KindInt:
		val = fmt.Sprintf("%d", p.padValue.AsInt())
	case atom.KindFloat:
		val = fmt.Sprintf("%f", p.padValue.AsFloat())
	default:
		val = fmt.Sprintf("%q", string(p.padValue.AsSymbol()))
	}

	return fmt.Sprintf("Padding left: %d - Padding value: %s - Output length: %d\n%s",
		p.leftPad, val, p.out.Len(), p.out.Describe("Padded list"))
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
