package undo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestLog_BoundaryRoundTrip drives the log through random batches of
// edits separated by snapshots, then walks the whole history backward
// and forward again, checking the observable values at every boundary.
func TestLog_BoundaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewLog[*widget]()

		numWidgets := rapid.IntRange(1, 5).Draw(t, "widgets")
		widgets := make([]*widget, numWidgets)
		for i := range widgets {
			widgets[i] = &widget{id: i + 1, val: rapid.IntRange(-100, 100).Draw(t, "init")}
			l.Insert(widgets[i])
		}

		// live returns the current object for a widget id.
		live := func(id int) *widget {
			for _, e := range l.entries {
				if !e.removed && e.cur.id == id {
					return e.cur
				}
			}
			return nil
		}
		snapshotValues := func() []int {
			vals := make([]int, numWidgets)
			for i := range vals {
				vals[i] = live(i + 1).val
			}
			return vals
		}

		numBatches := rapid.IntRange(1, 6).Draw(t, "batches")
		history := [][]int{snapshotValues()}
		for b := 0; b < numBatches; b++ {
			l.GenerateSnapshot()
			numEdits := rapid.IntRange(1, 4).Draw(t, "edits")
			for e := 0; e < numEdits; e++ {
				w := live(rapid.IntRange(1, numWidgets).Draw(t, "target"))
				l.SaveForUndo(w)
				w.val = rapid.IntRange(-100, 100).Draw(t, "val")
			}
			history = append(history, snapshotValues())
		}

		// Walk backward through every boundary.
		for b := numBatches; b >= 1; b-- {
			require.Equal(t, history[b], snapshotValues())
			require.True(t, l.Undo(nil, nil))
		}
		require.Equal(t, history[0], snapshotValues())
		require.False(t, l.Undo(nil, nil), "creations predate the first boundary")

		// And forward again.
		for b := 1; b <= numBatches; b++ {
			require.True(t, l.Redo(nil, nil))
			require.Equal(t, history[b], snapshotValues())
		}
		require.False(t, l.Redo(nil, nil))
	})
}
