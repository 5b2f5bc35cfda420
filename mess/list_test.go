// SPDX-License-Identifier: MIT

package mess_test

import (
	"testing"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/mess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common capacities used across list tests.
const (
	Cap1  = 1
	Cap3  = 3
	Cap5  = 5
	Cap10 = 10
)

// ints builds a slice of Int atoms.
func ints(vs ...int64) []atom.Atom {
	out := make([]atom.Atom, len(vs))
	for i, v := range vs {
		out[i] = atom.Int(v)
	}

	return out
}

// newList returns an allocated list or fails the test.
func newList(t *testing.T, capacity int) *mess.List {
	t.Helper()
	l := mess.New()
	require.NoError(t, l.Allocate(capacity))

	return l
}

// TestNew_IsNull verifies a fresh list is Null and inert.
func TestNew_IsNull(t *testing.T) {
	l := mess.New()
	assert.True(t, l.IsNull())
	assert.Equal(t, mess.ClassNull, l.Class())
	assert.Equal(t, 0, l.Cap())

	assert.ErrorIs(t, l.SetList(ints(1, 2)), mess.ErrNull)
	l.Fill(atom.Int(3), 2)
	l.SetEmpty()
	assert.Equal(t, mess.ClassNull, l.Class(), "mutations on a Null list are no-ops")
	assert.Equal(t, 0, l.Len())

	_, ok := l.Message()
	assert.False(t, ok)
}

// TestAllocate_ResetsToEmpty covers successful allocation and reallocation.
func TestAllocate_ResetsToEmpty(t *testing.T) {
	l := newList(t, Cap5)
	assert.Equal(t, mess.ClassEmpty, l.Class())
	assert.Equal(t, Cap5, l.Cap())
	assert.Equal(t, 0, l.Len())

	require.NoError(t, l.SetList(ints(1, 2, 3)))
	require.NoError(t, l.Allocate(Cap3))
	assert.Equal(t, Cap3, l.Cap())
	assert.Equal(t, 0, l.Len(), "reallocation discards contents")
	for i := 0; i < Cap3; i++ {
		assert.Equal(t, atom.Int(0), l.At(i))
	}
}

// TestAllocate_Failures covers invalid and oversized capacities.
func TestAllocate_Failures(t *testing.T) {
	l := newList(t, Cap3)
	assert.ErrorIs(t, l.Allocate(0), mess.ErrInvalidCapacity)
	assert.True(t, l.IsNull())

	require.NoError(t, l.Allocate(Cap3))
	assert.ErrorIs(t, l.Allocate(mess.MaxCapacity+1), mess.ErrOutOfMemory)
	assert.True(t, l.IsNull(), "a failed allocation leaves the list Null")
	assert.ErrorIs(t, l.SetInt(1), mess.ErrNull)

	require.NoError(t, l.Allocate(Cap3), "a valid capacity recovers the list")
	assert.NoError(t, l.SetInt(1))
}

// TestSet_Truncation verifies clipping is reported and applied.
func TestSet_Truncation(t *testing.T) {
	l := newList(t, Cap3)

	err := l.SetList(ints(1, 2, 3, 4, 5))
	require.ErrorIs(t, err, mess.ErrTruncated)
	var te *mess.TruncatedError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 5, te.From)
	assert.Equal(t, 3, te.To)
	assert.Equal(t, ints(1, 2, 3), l.Values())

	err = l.SetAny("foo", ints(1, 2, 3))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 4, te.From, "the lead tag counts toward the length")
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []atom.Atom{atom.Sym("foo"), atom.Int(1), atom.Int(2)}, l.Values())
	assert.Equal(t, 1, l.Offset())
}

// TestSet_KeepsSelector verifies Set does not reclassify.
func TestSet_KeepsSelector(t *testing.T) {
	l := newList(t, Cap5)
	require.NoError(t, l.SetList(ints(7)))
	assert.Equal(t, mess.ClassList, l.Class(), "a one-element list keeps the list selector")

	l.Classify()
	assert.Equal(t, mess.ClassInt, l.Class())
}

// TestSetScalar covers all three kinds.
func TestSetScalar(t *testing.T) {
	l := newList(t, Cap3)

	require.NoError(t, l.SetScalar(atom.Int(4)))
	assert.Equal(t, mess.ClassInt, l.Class())

	require.NoError(t, l.SetScalar(atom.Float(1.5)))
	assert.Equal(t, mess.ClassFloat, l.Class())

	require.NoError(t, l.SetScalar(atom.Sym("go")))
	assert.Equal(t, mess.ClassCustom, l.Class())
	assert.Equal(t, atom.Symbol("go"), l.Selector())
	assert.Equal(t, 1, l.Offset())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, atom.Sym("go"), l.At(0))
}

// TestSetFromValues covers the lead tag forms.
func TestSetFromValues(t *testing.T) {
	l := newList(t, Cap5)

	require.NoError(t, l.SetFromValues(ints(1, 2), nil))
	assert.Equal(t, atom.SymList, l.Selector())
	assert.Equal(t, 0, l.Offset())

	lead := atom.Sym("tag")
	require.NoError(t, l.SetFromValues(ints(1, 2), &lead))
	assert.Equal(t, atom.Symbol("tag"), l.Selector())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, ints(1, 2), l.Payload())

	num := atom.Int(9)
	require.NoError(t, l.SetFromValues(ints(1), &num))
	assert.Equal(t, ints(9, 1), l.Values(), "a numeric lead is plain data")
}

// TestClassify_Table checks every derivation rule.
func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name   string
		vals   []atom.Atom
		class  mess.Class
		offset int
	}{
		{"empty", nil, mess.ClassEmpty, 0},
		{"int", ints(1), mess.ClassInt, 0},
		{"float", []atom.Atom{atom.Float(1)}, mess.ClassFloat, 0},
		{"single symbol", []atom.Atom{atom.Sym("s")}, mess.ClassCustom, 1},
		{"numeric list", []atom.Atom{atom.Float(1), atom.Sym("x")}, mess.ClassList, 0},
		{"symbol list", []atom.Atom{atom.Sym("s"), atom.Int(1)}, mess.ClassCustom, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newList(t, Cap5)
			_ = l.SetList(tc.vals)
			l.Classify()
			assert.Equal(t, tc.class, l.Class())
			assert.Equal(t, tc.offset, l.Offset())
		})
	}
}

// TestFill covers constant fills across the whole capacity.
func TestFill(t *testing.T) {
	l := newList(t, Cap5)

	l.FillInt(3, 2)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, mess.ClassList, l.Class())
	assert.Equal(t, atom.Int(3), l.At(4), "fill writes past the length")

	l.FillFloat(0.5, 1)
	assert.Equal(t, mess.ClassFloat, l.Class())

	l.Fill(atom.Sym("z"), 3)
	assert.Equal(t, mess.ClassCustom, l.Class())
	assert.Equal(t, 1, l.Offset())

	l.Fill(atom.Sym("z"), 0)
	assert.Equal(t, mess.ClassEmpty, l.Class())
	assert.Equal(t, 0, l.Offset())

	l.FillInt(1, Cap10)
	assert.Equal(t, Cap5, l.Len(), "count is clamped to the capacity")
}

// TestZeroPadTail verifies the tail is cleared and the head kept.
func TestZeroPadTail(t *testing.T) {
	l := newList(t, Cap5)
	l.FillInt(9, 2)
	l.ZeroPadTail()
	assert.Equal(t, ints(9, 9), l.Values())
	for i := 2; i < Cap5; i++ {
		assert.Equal(t, atom.Int(0), l.At(i))
	}
	assert.Equal(t, mess.ClassList, l.Class())
}

// TestSetLen exposes slots written past the old length.
func TestSetLen(t *testing.T) {
	l := newList(t, Cap5)
	l.FillInt(0, 2)
	assert.True(t, l.Put(4, atom.Int(8)))
	assert.False(t, l.Put(Cap5, atom.Int(8)))

	l.SetLen(Cap5)
	assert.Equal(t, ints(0, 0, 0, 0, 8), l.Values())
	l.SetLen(-1)
	assert.Equal(t, 0, l.Len())
}

// TestMessage covers outlet form for each class.
func TestMessage(t *testing.T) {
	l := newList(t, Cap5)
	_, ok := l.Message()
	assert.False(t, ok, "empty lists produce nothing")

	require.NoError(t, l.SetAny("foo", ints(1, 2)))
	msg, ok := l.Message()
	require.True(t, ok)
	assert.Equal(t, atom.Symbol("foo"), msg.Selector)
	assert.Equal(t, ints(1, 2), msg.Args)

	require.NoError(t, l.SetInt(3))
	msg, _ = l.Message()
	assert.Equal(t, atom.IntMessage(3), msg)
}

// TestDescribe covers the console rendering.
func TestDescribe(t *testing.T) {
	l := mess.New()
	assert.Equal(t, "Stored list (null - 0 / 0) :  <NULL>", l.Describe("Stored list"))

	require.NoError(t, l.Allocate(Cap5))
	assert.Equal(t, "Stored list (empty - 0 / 5) :  <empty>", l.Describe("Stored list"))

	require.NoError(t, l.SetList([]atom.Atom{atom.Int(1), atom.Float(2.5), atom.Sym("a")}))
	assert.Equal(t, "Stored list (list - 3 / 5) :  1 2.500000 a", l.Describe("Stored list"))

	require.NoError(t, l.SetAny("foo", ints(1)))
	assert.Equal(t, "Out (mess - 2 / 5) :  foo 1", l.Describe("Out"))
}
