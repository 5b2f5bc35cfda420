package extremum

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
)

// ErrNotAllocated is returned when the lists have no storage.
var ErrNotAllocated = errors.New("extremum: lists are not allocated")

// Op selects the comparator direction.
type Op int

const (
	// Max keeps the larger value.
	Max Op = iota

	// Min keeps the smaller value.
	Min
)

// String returns "max" or "min".
func (o Op) String() string {
	if o == Min {
		return "min"
	}

	return "max"
}

// PickInt implements mess.Picker.
func (o Op) PickInt(a, b int64) int64 {
	if o == Min {
		if a < b {
			return a
		}

		return b
	}
	if a > b {
		return a
	}

	return b
}

// PickFloat implements mess.Picker.
func (o Op) PickFloat(a, b float64) float64 {
	if o == Min {
		if a < b {
			return a
		}

		return b
	}
	if a > b {
		return a
	}

	return b
}

// Option configures an Extremum.
type Option func(*Extremum)

// WithEmitter routes warnings to e.
func WithEmitter(e *diag.Emitter) Option {
	return func(x *Extremum) { x.emit = e }
}

// Extremum holds the two operands and the last output.
type Extremum struct {
	op    Op
	left  *mess.List
	right *mess.List
	out   *mess.List
	emit  *diag.Emitter
}

// New returns an Extremum for op with lists of the given capacity.
func New(op Op, capacity int, opts ...Option) (*Extremum, error) {
	x := &Extremum{op: op, left: mess.New(), right: mess.New(), out: mess.New()}
	for _, opt := range opts {
		opt(x)
	}
	if err := x.Resize(capacity); err != nil {
		return x, err
	}

	return x, nil
}

// Op returns the comparator direction.
func (x *Extremum) Op() Op { return x.op }

// Resize reallocates all three lists, discarding their content. On failure
// every list is released.
func (x *Extremum) Resize(capacity int) error {
	for _, l := range []*mess.List{x.left, x.right, x.out} {
		if err := l.Allocate(capacity); err != nil {
			x.left.Release()
			x.right.Release()
			x.out.Release()

			return fmt.Errorf("extremum: %w", err)
		}
	}

	return nil
}

// Left returns the left operand.
func (x *Extremum) Left() *mess.List { return x.left }

// Right returns the right operand.
func (x *Extremum) Right() *mess.List { return x.right }

// Output returns the last output list.
func (x *Extremum) Output() *mess.List { return x.out }

// SetLeft stores msg as the left operand, recomputes, and returns the output
// message. ok is false when the output is empty.
func (x *Extremum) SetLeft(msg atom.Message) (out atom.Message, ok bool, err error) {
	if x.out.IsNull() {
		return atom.Message{}, false, ErrNotAllocated
	}
	x.store(x.left, msg)
	if err := x.combine(); err != nil {
		return atom.Message{}, false, err
	}
	out, ok = x.out.Message()

	return out, ok, nil
}

// SetRight stores msg as the right operand, zero-pads it to the capacity
// and recomputes without producing output.
func (x *Extremum) SetRight(msg atom.Message) error {
	if x.out.IsNull() {
		return ErrNotAllocated
	}
	x.store(x.right, msg)
	x.right.ZeroPadTail()

	return x.combine()
}

// Preset stores creation arguments as the right operand and classifies it.
func (x *Extremum) Preset(args []atom.Atom) error {
	if x.right.IsNull() {
		return ErrNotAllocated
	}
	x.store(x.right, atom.ListMessage(args...))
	x.right.Classify()

	return nil
}

func (x *Extremum) store(l *mess.List, msg atom.Message) {
	var te *mess.TruncatedError
	if err := l.SetMessage(msg); errors.As(err, &te) {
		x.emit.Warn(diag.Truncated, "Message truncated from length %d to %d.", te.From, te.To)
	}
}

func (x *Extremum) combine() error {
	if err := mess.Combine(x.out, x.left, x.right, x.op); err != nil {
		return fmt.Errorf("extremum: %w", err)
	}

	return nil
}

// Restate returns the last output.
func (x *Extremum) Restate() (atom.Message, bool) {
	return x.out.Message()
}

// Clear empties the operands and the output.
func (x *Extremum) Clear() {
	x.left.SetEmpty()
	x.right.SetEmpty()
	x.out.SetEmpty()
}

// Describe renders the three lists, one per line.
func (x *Extremum) Describe() string {
	return x.left.Describe("Left input list") + "\n" +
		x.right.Describe("Right input list") + "\n" +
		x.out.Describe("Output list")
}
