package find

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
)

// Option configures a Finder.
type Option func(*Finder)

// WithEmitter routes warnings to e.
func WithEmitter(e *diag.Emitter) Option {
	return func(f *Finder) { f.emit = e }
}

// Finder keeps a reference list and the last position found.
type Finder struct {
	ref  *mess.List
	last float64
	emit *diag.Emitter
}

// New returns a Finder whose reference holds up to capacity values.
func New(capacity int, opts ...Option) (*Finder, error) {
	f := &Finder{ref: mess.New()}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.Resize(capacity); err != nil {
		return f, err
	}

	return f, nil
}

// Resize reallocates the reference, discarding its content.
func (f *Finder) Resize(capacity int) error {
	if err := f.ref.Allocate(capacity); err != nil {
		return fmt.Errorf("find: %w", err)
	}

	return nil
}

// Reference exposes the stored reference list.
func (f *Finder) Reference() *mess.List { return f.ref }

// Last returns the last position found.
func (f *Finder) Last() float64 { return f.last }

// Query locates value in the stored reference.
func (f *Finder) Query(value float64) (float64, bool) {
	return f.locate(value, f.ref.Floats())
}

// Search locates the first stored value inside args, clipped to the
// capacity. The stored reference is left untouched.
func (f *Finder) Search(args []atom.Atom) (float64, bool) {
	if n := f.ref.Cap(); len(args) > n {
		args = args[:n]
	}
	ref := make([]float64, len(args))
	for i, a := range args {
		ref[i] = a.AsFloat()
	}

	return f.locate(f.ref.At(0).AsFloat(), ref)
}

func (f *Finder) locate(value float64, ref []float64) (float64, bool) {
	pos, ok := Locate(value, ref)
	if ok {
		f.last = pos
	}

	return pos, ok
}

// SetReference stores args as the reference and zero-pads the rest.
func (f *Finder) SetReference(args []atom.Atom) {
	var te *mess.TruncatedError
	if err := f.ref.SetList(args); errors.As(err, &te) {
		f.emit.Warn(diag.Truncated, "Message truncated from length %d to %d.", te.From, te.To)
	}
	f.ref.ZeroPadTail()
}

// SetConstant fills every slot with value and sets the length to 1, so the
// reference reads as the constant level.
func (f *Finder) SetConstant(value float64) {
	f.ref.FillFloat(value, 1)
}

// Preset initialises the reference from creation arguments: one argument
// sets a constant, more set the list.
func (f *Finder) Preset(args []atom.Atom) {
	switch len(args) {
	case 0:
	case 1:
		f.SetConstant(args[0].AsFloat())
	default:
		f.SetReference(args)
		f.ref.Classify()
	}
}

// Restate returns the last position found.
func (f *Finder) Restate() float64 { return f.last }

// Clear resets the reference to a single zero.
func (f *Finder) Clear() {
	f.ref.SetEmpty()
	f.ref.SetLen(1)
}

// Describe renders the stored reference.
func (f *Finder) Describe() string {
	return f.ref.Describe("Stored input list")
}
