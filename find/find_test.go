package find_test

import (
	"testing"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/find"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocate_Table covers exact matches, brackets in both directions and
// the silent no-output cases.
func TestLocate_Table(t *testing.T) {
	cases := []struct {
		name  string
		query float64
		ref   []float64
		want  float64
		ok    bool
	}{
		{"increasing midpoint", 15, []float64{0, 10, 20, 30}, 1.5, true},
		{"increasing quarter", 2.5, []float64{0, 10, 20, 30}, 0.25, true},
		{"single exact", 5, []float64{5}, 0, true},
		{"exact first hit wins", 3, []float64{1, 3, 3}, 1, true},
		{"decreasing", 15, []float64{30, 20, 10, 0}, 1.5, true},
		{"empty", 1, nil, 0, false},
		{"all above", -1, []float64{0, 10}, 0, false},
		{"all below", 99, []float64{0, 10}, 0, false},
		{"single below", 9, []float64{5}, 0, false},
		{"peak forward", 5, []float64{0, 10, 0}, 0.5, true},
		{"backward walk", 5, []float64{10, 0, 2}, 1.25, true},
		{"valley has no bracket", 5, []float64{10, 0, 10}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := find.Locate(tc.query, tc.ref)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-12)
			}
		})
	}
}

// TestLocate_ForwardKeepsRunningMax verifies the forward walk keeps the
// latest maximum among values below the query.
func TestLocate_ForwardKeepsRunningMax(t *testing.T) {
	// Walk: 1 (best), 4 (best), 2 (kept 4), 8 stops. More from index 1 → 3.
	got, ok := find.Locate(6, []float64{1, 4, 2, 8})
	require.True(t, ok)
	assert.InDelta(t, 1+(6.0-4)/(8-4)*2, got, 1e-12)
}

// TestLocate_MoreSearchedBackward verifies the backward fallback for the
// upper end of the bracket.
func TestLocate_MoreSearchedBackward(t *testing.T) {
	// Forward less walk: 8 at 0 is not below 5, so walk back from 3: 1, 2 → index 2.
	// No value > 5 after index 2, backward finds 8 at 0.
	got, ok := find.Locate(5, []float64{8, 0, 2, 1})
	require.True(t, ok)
	assert.InDelta(t, 2+(5.0-2)/(8-2)*(0-2), got, 1e-12)
}

func newFinder(t *testing.T, capacity int) *find.Finder {
	t.Helper()
	f, err := find.New(capacity, find.WithEmitter(diag.NewEmitter("Lfind", diag.Discard)))
	require.NoError(t, err)

	return f
}

// TestFinder_QueryAndRestate covers the stored-reference path.
func TestFinder_QueryAndRestate(t *testing.T) {
	f := newFinder(t, 8)
	f.SetReference([]atom.Atom{atom.Int(0), atom.Int(10), atom.Int(20), atom.Int(30)})

	pos, ok := f.Query(15)
	require.True(t, ok)
	assert.InDelta(t, 1.5, pos, 1e-12)
	assert.InDelta(t, 1.5, f.Restate(), 1e-12)

	_, ok = f.Query(100)
	assert.False(t, ok)
	assert.InDelta(t, 1.5, f.Last(), 1e-12, "a miss keeps the last position")
}

// TestFinder_Search looks for the first stored value in an incoming list.
func TestFinder_Search(t *testing.T) {
	f := newFinder(t, 4)
	f.SetConstant(25)

	pos, ok := f.Search([]atom.Atom{atom.Int(0), atom.Int(10), atom.Int(20), atom.Int(30), atom.Int(25)})
	require.True(t, ok)
	assert.InDelta(t, 2.5, pos, 1e-12, "the incoming list is clipped to the capacity")
}

// TestFinder_SetConstant fills the whole capacity.
func TestFinder_SetConstant(t *testing.T) {
	f := newFinder(t, 4)
	f.SetConstant(7)
	assert.Equal(t, 1, f.Reference().Len())
	assert.Equal(t, atom.Float(7), f.Reference().At(3))

	pos, ok := f.Query(7)
	require.True(t, ok)
	assert.Equal(t, 0.0, pos)
}

// TestFinder_ClearLeavesSingleZero verifies clear semantics.
func TestFinder_ClearLeavesSingleZero(t *testing.T) {
	f := newFinder(t, 4)
	f.SetReference([]atom.Atom{atom.Int(3), atom.Int(4)})
	f.Clear()
	assert.Equal(t, 1, f.Reference().Len())

	pos, ok := f.Query(0)
	require.True(t, ok)
	assert.Equal(t, 0.0, pos)
}

// TestFinder_SetReferenceZeroPads verifies stale values are cleared.
func TestFinder_SetReferenceZeroPads(t *testing.T) {
	var c diag.Collector
	f, err := find.New(3, find.WithEmitter(diag.NewEmitter("Lfind", &c)))
	require.NoError(t, err)

	f.SetReference([]atom.Atom{atom.Int(9), atom.Int(9), atom.Int(9), atom.Int(9)})
	assert.True(t, c.Has(diag.Truncated))
	f.SetReference([]atom.Atom{atom.Int(1)})
	assert.Equal(t, atom.Int(0), f.Reference().At(1))
	assert.Equal(t, atom.Int(0), f.Reference().At(2))
}

// TestFinder_Preset covers creation arguments.
func TestFinder_Preset(t *testing.T) {
	f := newFinder(t, 8)
	f.Preset([]atom.Atom{atom.Int(3)})
	assert.Equal(t, atom.Float(3), f.Reference().At(0))

	f.Preset([]atom.Atom{atom.Int(1), atom.Int(2)})
	assert.Equal(t, "Stored input list (list - 2 / 8) :  1 2", f.Describe())
}
