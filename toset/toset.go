package toset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
)

// DefaultLength is the output length after allocation, capped by the capacity.
const DefaultLength = 12

// DefaultMark is the value written into the indexed slots.
const DefaultMark = 1

// ErrNotAllocated is returned when the output has no storage.
var ErrNotAllocated = errors.New("toset: builder is not allocated")

// Option configures a Builder.
type Option func(*Builder)

// WithEmitter routes warnings to e.
func WithEmitter(e *diag.Emitter) Option {
	return func(b *Builder) { b.emit = e }
}

// Builder produces indicator vectors.
type Builder struct {
	out  *mess.List
	mark int64
	emit *diag.Emitter
}

// New returns a Builder with the given capacity and default settings.
func New(capacity int, opts ...Option) (*Builder, error) {
	b := &Builder{out: mess.New()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.Resize(capacity); err != nil {
		return b, err
	}

	return b, nil
}

// Resize reallocates the output and restores the defaults. The output is
// empty until the next Build.
func (b *Builder) Resize(capacity int) error {
	if err := b.out.Allocate(capacity); err != nil {
		return fmt.Errorf("toset: %w", err)
	}
	b.mark = DefaultMark
	b.out.SetLen(min(DefaultLength, capacity))

	return nil
}

// Output returns the indicator list.
func (b *Builder) Output() *mess.List { return b.out }

// Mark returns the mark value.
func (b *Builder) Mark() int64 { return b.mark }

// Length returns the output length.
func (b *Builder) Length() int { return b.out.Len() }

// SetMark sets the value written for each index. It takes effect on the
// next Build.
func (b *Builder) SetMark(v int64) { b.mark = v }

// SetLength sets the output length, clamped to [1, capacity].
func (b *Builder) SetLength(n int) {
	b.out.SetLen(clamp(n, 1, b.out.Cap()))
}

// Build zeroes the output at its current length, then writes the mark at
// every index in [0, capacity). Symbols are skipped with a warning and
// floats are truncated.
//
// Complexity: O(capacity + len(indices)).
func (b *Builder) Build(indices []atom.Atom) (out atom.Message, ok bool, err error) {
	if b.out.IsNull() {
		return atom.Message{}, false, ErrNotAllocated
	}
	b.out.FillInt(0, b.out.Len())
	for _, v := range indices {
		if v.IsSymbol() {
			b.emit.Warn(diag.TypeMismatch, "Symbol in list. The object expects integers only.")

			continue
		}
		b.out.Put(int(v.AsInt()), atom.Int(b.mark))
	}
	b.out.Classify()
	out, ok = b.out.Message()

	return out, ok, nil
}

// BuildIndex builds a set with a single index, clamped to [0, length-1].
func (b *Builder) BuildIndex(i int64) (atom.Message, bool, error) {
	i = max(0, min(i, int64(b.out.Len()-1)))

	return b.Build([]atom.Atom{atom.Int(i)})
}

// Preset applies creation arguments: the output length, then the mark.
// Out-of-range lengths are clamped with a warning.
func (b *Builder) Preset(args []atom.Atom) error {
	if b.out.IsNull() {
		return ErrNotAllocated
	}
	if len(args) >= 1 {
		if !args[0].IsNumber() {
			b.emit.Error(diag.InvalidConfigValue, "Arg 1: List length: Invalid type (%s). Int expected.", args[0])
		} else {
			n := args[0].AsInt()
			b.SetLength(int(n))
			if n < 1 || n > int64(b.out.Cap()) {
				b.emit.Warn(diag.InvalidConfigValue, "Arg 1: List length: Out of range. Clipped to [1, %d].", b.out.Cap())
			}
		}
	}
	if len(args) >= 2 {
		if !args[1].IsNumber() {
			b.emit.Error(diag.InvalidConfigValue, "Arg 2: Value: Invalid type (%s). Int expected.", args[1])
		} else {
			b.mark = args[1].AsInt()
		}
	}

	return nil
}

// Restate returns the current output.
func (b *Builder) Restate() (atom.Message, bool) {
	return b.out.Message()
}

// Clear zeroes the output, keeping its length.
func (b *Builder) Clear() {
	b.out.FillInt(0, b.out.Len())
}

// Describe renders the settings and the output list.
func (b *Builder) Describe() string {
	return fmt.Sprintf("Set value: %d - Set length: %d\n%s",
		b.mark, b.out.Len(), b.out.Describe("Output list"))
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
