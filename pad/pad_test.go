package pad_test

import (
	"testing"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
	"github.com/katalvlaran/lobjects/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int64) []atom.Atom {
	out := make([]atom.Atom, len(vs))
	for i, v := range vs {
		out[i] = atom.Int(v)
	}

	return out
}

func newPadder(t *testing.T, capacity int) (*pad.Padder, *diag.Collector) {
	t.Helper()
	c := &diag.Collector{}
	p, err := pad.New(capacity, pad.WithEmitter(diag.NewEmitter("Lpad", c)))
	require.NoError(t, err)

	return p, c
}

// TestDefaults verifies a fresh Padder outputs capacity zeros.
func TestDefaults(t *testing.T) {
	p, _ := newPadder(t, 4)
	assert.Equal(t, 0, p.LeftPad())
	assert.Equal(t, atom.Int(0), p.PadValue())
	assert.Equal(t, 4, p.OutputLength())

	out, ok := p.Restate()
	require.True(t, ok)
	assert.Equal(t, ints(0, 0, 0, 0), out.Args)
}

// TestApply_LeftPad reproduces the documented example.
func TestApply_LeftPad(t *testing.T) {
	p, c := newPadder(t, 5)
	p.SetLeftPad(1)

	out, ok, err := p.Apply(atom.ListMessage(ints(7, 8)...))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, atom.SymList, out.Selector)
	assert.Equal(t, ints(0, 7, 8, 0, 0), out.Args)
	assert.Zero(t, c.Len())
}

// TestApply_PadValueAndLength covers a custom pad value and a short output.
func TestApply_PadValueAndLength(t *testing.T) {
	p, _ := newPadder(t, 6)
	p.SetLeftPad(2)
	p.SetPadValue(atom.Float(0.5))
	p.SetOutputLength(3)

	out, _, err := p.Apply(atom.IntMessage(4))
	require.NoError(t, err)
	assert.Equal(t, []atom.Atom{atom.Float(0.5), atom.Float(0.5), atom.Int(4)}, out.Args)

	p.SetOutputLength(5)
	out, _ = p.Restate()
	assert.Equal(t, []atom.Atom{atom.Float(0.5), atom.Float(0.5), atom.Int(4), atom.Float(0.5), atom.Float(0.5)},
		out.Args, "the padded tail shows when the length grows")
}

// TestApply_Clip warns and keeps what fits.
func TestApply_Clip(t *testing.T) {
	p, c := newPadder(t, 4)
	p.SetLeftPad(2)

	out, _, err := p.Apply(atom.ListMessage(ints(1, 2, 3)...))
	require.NoError(t, err)
	assert.Equal(t, ints(0, 0, 1, 2), out.Args)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, diag.Truncated, c.All()[0].Kind)
	assert.Equal(t, "The input message is clipped from length 3 to 2.", c.All()[0].Message)
}

// TestApply_LeadTag writes the tag after the padding.
func TestApply_LeadTag(t *testing.T) {
	p, _ := newPadder(t, 5)
	p.SetLeftPad(1)
	p.SetOutputLength(4)

	out, ok, err := p.Apply(atom.AnyMessage("foo", ints(1, 2)...))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, atom.SymList, out.Selector, "a numeric first slot keeps the data class")
	assert.Equal(t, []atom.Atom{atom.Int(0), atom.Sym("foo"), atom.Int(1), atom.Int(2)}, out.Args)

	p.SetLeftPad(0)
	out, _, _ = p.Apply(atom.AnyMessage("foo", ints(1)...))
	assert.Equal(t, atom.Symbol("foo"), out.Selector)
	assert.Equal(t, ints(1, 0, 0), out.Args)
}

// TestSymbolPadValue classifies a symbolic pad as a lead tag.
func TestSymbolPadValue(t *testing.T) {
	p, _ := newPadder(t, 3)
	p.SetPadValue(atom.Sym("x"))
	p.SetLeftPad(1)

	out, _, err := p.Apply(atom.IntMessage(5))
	require.NoError(t, err)
	assert.Equal(t, atom.Symbol("x"), out.Selector)
	assert.Equal(t, []atom.Atom{atom.Int(5), atom.Sym("x")}, out.Args)
}

// TestSetters_Clamp verifies clamping to the capacity.
func TestSetters_Clamp(t *testing.T) {
	p, _ := newPadder(t, 3)
	p.SetLeftPad(10)
	assert.Equal(t, 3, p.LeftPad())
	p.SetLeftPad(-2)
	assert.Equal(t, 0, p.LeftPad())
	p.SetOutputLength(9)
	assert.Equal(t, 3, p.OutputLength())
	p.SetOutputLength(-1)
	assert.Equal(t, 0, p.OutputLength())

	_, ok, err := p.Apply(atom.IntMessage(1))
	require.NoError(t, err)
	assert.False(t, ok, "a zero output length emits nothing")
}

// TestClearReset rewrites the output at its current length.
func TestClearReset(t *testing.T) {
	p, _ := newPadder(t, 4)
	p.SetPadValue(atom.Int(7))
	p.SetOutputLength(2)
	_, _, _ = p.Apply(atom.ListMessage(ints(1, 2)...))

	p.Reset()
	out, _ := p.Restate()
	assert.Equal(t, ints(7, 7), out.Args)

	p.Clear()
	out, _ = p.Restate()
	assert.Equal(t, ints(0, 0), out.Args)
	assert.Equal(t, 2, p.OutputLength())
}

// TestPreset covers the creation argument forms.
func TestPreset(t *testing.T) {
	cases := []struct {
		name string
		args []atom.Atom
		want []atom.Atom
	}{
		{"length", ints(2), ints(0, 0)},
		{"value and length", ints(3, 3), ints(3, 3, 3)},
		{"left, value, length", []atom.Atom{atom.Int(1), atom.Sym("z"), atom.Int(2)}, []atom.Atom{atom.Sym("z"), atom.Sym("z")}},
		{"length clamped", ints(50), ints(0, 0, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newPadder(t, 4)
			require.NoError(t, p.Preset(tc.args))
			assert.Equal(t, tc.want, p.Output().Values())
		})
	}
}

// TestResize restores defaults and survives failure.
func TestResize(t *testing.T) {
	p, _ := newPadder(t, 4)
	p.SetLeftPad(2)
	p.SetPadValue(atom.Int(9))

	require.NoError(t, p.Resize(2))
	assert.Equal(t, 0, p.LeftPad())
	assert.Equal(t, atom.Int(0), p.PadValue())
	assert.Equal(t, 2, p.OutputLength())

	assert.ErrorIs(t, p.Resize(mess.MaxCapacity+1), mess.ErrOutOfMemory)
	_, _, err := p.Apply(atom.IntMessage(1))
	assert.ErrorIs(t, err, pad.ErrNotAllocated)
	assert.ErrorIs(t, p.Preset(ints(1)), pad.ErrNotAllocated)
}

// TestDescribe covers the post text.
func TestDescribe(t *testing.T) {
	p, _ := newPadder(t, 2)
	assert.Equal(t,
		"Padding left: 0 - Padding value: 0 - Output length: 2\nPadded list (list - 2 / 2) :  0 0",
		p.Describe())

	p.SetPadValue(atom.Sym("a"))
	assert.Contains(t, p.Describe(), `Padding value: "a"`)
}
