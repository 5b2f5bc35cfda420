package change

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
)

// ErrNotAllocated is returned when the baseline has no storage, typically
// after a failed Resize.
var ErrNotAllocated = errors.New("change: detector is not allocated")

// Verdict tells which output a compared message goes to.
type Verdict int

const (
	// Different routes the message to the "different" output.
	Different Verdict = iota

	// Same routes the message to the "same" output.
	Same
)

// String returns "same" or "different".
func (v Verdict) String() string {
	if v == Same {
		return "same"
	}

	return "different"
}

// Result is the outcome of Compare.
type Result struct {
	Verdict Verdict

	// Message is the incoming message, unclipped.
	Message atom.Message
}

// Option configures a Detector.
type Option func(*Detector)

// WithLocked sets the initial lock state. Detectors start locked.
func WithLocked(locked bool) Option {
	return func(d *Detector) { d.locked = locked }
}

// WithEmitter routes warnings to e.
func WithEmitter(e *diag.Emitter) Option {
	return func(d *Detector) { d.emit = e }
}

// Detector compares messages against a stored baseline.
type Detector struct {
	baseline *mess.List
	locked   bool
	emit     *diag.Emitter
}

// New returns a Detector whose baseline holds up to capacity atoms.
func New(capacity int, opts ...Option) (*Detector, error) {
	d := &Detector{baseline: mess.New(), locked: true}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.Resize(capacity); err != nil {
		return d, err
	}

	return d, nil
}

// Resize reallocates the baseline, discarding its content.
func (d *Detector) Resize(capacity int) error {
	if err := d.baseline.Allocate(capacity); err != nil {
		return fmt.Errorf("change: %w", err)
	}

	return nil
}

// Locked reports the lock state.
func (d *Detector) Locked() bool { return d.locked }

// SetLocked locks or unlocks the baseline.
func (d *Detector) SetLocked(locked bool) { d.locked = locked }

// Baseline exposes the stored list for inspection.
func (d *Detector) Baseline() *mess.List { return d.baseline }

// Compare tests msg against the baseline.
//
// Implementation:
//   - Stage 1: warn when msg is longer than the capacity.
//   - Stage 2: lengths (lead tag included) must match, and the selectors
//     must match unless msg is a plain int or float.
//   - Stage 3: compare the payload positionally with atom.Equal.
//   - Stage 4: on a difference, replace an unlocked baseline.
//
// Complexity: O(len(msg.Args)).
func (d *Detector) Compare(msg atom.Message) (Result, error) {
	b := d.baseline
	if b.IsNull() {
		return Result{}, ErrNotAllocated
	}

	offset := msg.Offset()
	if msg.Len() > b.Cap() {
		d.emit.Warn(diag.Truncated, "The input message is clipped from length %d to %d.", msg.Len(), b.Cap())
	}

	if d.matches(msg, offset) {
		return Result{Verdict: Same, Message: msg}, nil
	}
	if !d.locked {
		d.store(msg)
	}

	return Result{Verdict: Different, Message: msg}, nil
}

func (d *Detector) matches(msg atom.Message, offset int) bool {
	b := d.baseline
	if msg.Len() != b.Len() {
		return false
	}
	if msg.Selector != b.Selector() && msg.Selector != atom.SymInt && msg.Selector != atom.SymFloat {
		return false
	}
	for i := 0; i < b.Len()-offset; i++ {
		if !atom.Equal(msg.Args[i], b.At(offset+i)) {
			return false
		}
	}

	return true
}

// SetBaseline stores msg as the baseline regardless of the lock.
// The selector is kept as delivered.
func (d *Detector) SetBaseline(msg atom.Message) error {
	if d.baseline.IsNull() {
		return ErrNotAllocated
	}
	d.store(msg)

	return nil
}

// Preset stores args as the baseline and classifies it, the way creation
// arguments initialise a detector.
func (d *Detector) Preset(args []atom.Atom) error {
	if err := d.SetBaseline(atom.ListMessage(args...)); err != nil {
		return err
	}
	d.baseline.Classify()

	return nil
}

func (d *Detector) store(msg atom.Message) {
	var te *mess.TruncatedError
	if err := d.baseline.SetMessage(msg); errors.As(err, &te) {
		d.emit.Warn(diag.Truncated, "Message truncated from length %d to %d.", te.From, te.To)
	}
}

// Restate returns the baseline in outlet form, for the "different" output.
// Nothing is returned for an empty baseline.
func (d *Detector) Restate() (atom.Message, bool) {
	return d.baseline.Message()
}

// Clear empties the baseline.
func (d *Detector) Clear() {
	d.baseline.SetEmpty()
}

// Describe renders the stored baseline.
func (d *Detector) Describe() string {
	return d.baseline.Describe("Stored list")
}
