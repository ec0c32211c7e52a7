package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"placer/internal/geometry"
	"placer/internal/library"
)

type pose struct {
	location geometry.Point
	rotation float64
	onFront  bool
}

func poseOf(c *Component) pose {
	return pose{location: c.Location, rotation: c.RotationDeg, onFront: c.OnFront}
}

// TestComponents_UndoRedoRoundTripLaw checks the round-trip law: for any
// edit sequence between two boundaries, undo restores every edited
// component's pose to its pre-edit value bit-for-bit, and redo restores
// the post-edit values.
func TestComponents_UndoRedoRoundTripLaw(t *testing.T) {
	pkg, err := library.Standard().Get("DIP-8")
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		c := NewComponents()

		count := rapid.IntRange(1, 6).Draw(t, "count")
		for i := 0; i < count; i++ {
			c.Add(
				rapid.SampledFrom([]string{"U", "R", "C"}).Draw(t, "prefix"),
				geometry.NewPoint(
					rapid.Float64Range(-50, 50).Draw(t, "x"),
					rapid.Float64Range(-50, 50).Draw(t, "y"),
				),
				rapid.Float64Range(0, 359).Draw(t, "rot"),
				rapid.Bool().Draw(t, "front"),
				pkg, pkg,
				rapid.Bool().Draw(t, "fixed"),
			)
		}

		poses := func() []pose {
			out := make([]pose, c.Count())
			for i := range out {
				comp, err := c.Get(i + 1)
				require.NoError(t, err)
				out[i] = poseOf(comp)
			}
			return out
		}

		before := poses()
		c.GenerateSnapshot()

		edits := rapid.IntRange(1, 8).Draw(t, "edits")
		pole := geometry.NewPoint(
			rapid.Float64Range(-10, 10).Draw(t, "poleX"),
			rapid.Float64Range(-10, 10).Draw(t, "poleY"),
		)
		for i := 0; i < edits; i++ {
			number := rapid.IntRange(1, count).Draw(t, "target")
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				require.NoError(t, c.Move(number, geometry.NewVector(
					rapid.Float64Range(-5, 5).Draw(t, "dx"),
					rapid.Float64Range(-5, 5).Draw(t, "dy"),
				)))
			case 1:
				require.NoError(t, c.Turn90Degree(number, rapid.IntRange(-3, 3).Draw(t, "factor"), pole))
			case 2:
				require.NoError(t, c.Rotate(number, rapid.Float64Range(-180, 180).Draw(t, "deg"), pole))
			case 3:
				require.NoError(t, c.ChangeSide(number, pole))
			}
		}
		after := poses()

		require.True(t, c.Undo(nil))
		require.Equal(t, before, poses(), "undo restores pre-edit poses exactly")

		require.True(t, c.Redo(nil))
		require.Equal(t, after, poses(), "redo restores post-edit poses exactly")

		require.True(t, c.Undo(nil), "the boundary can be crossed again")
		require.False(t, c.Undo(nil), "creations predate the first boundary")
	})
}

// TestComponents_AddCountInvariant: after any sequence of adds, Count
// equals the number of adds and Get(i) yields the component numbered i.
func TestComponents_AddCountInvariant(t *testing.T) {
	pkg, err := library.Standard().Get("DIP-14")
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		c := NewComponents()
		adds := rapid.IntRange(0, 20).Draw(t, "adds")
		for i := 0; i < adds; i++ {
			if rapid.Bool().Draw(t, "generated") {
				c.AddGenerated(geometry.NewPoint(0, 0), 0, true, pkg)
			} else {
				c.Add("X", geometry.NewPoint(0, 0), 0, true, pkg, pkg, false)
			}
		}

		require.Equal(t, adds, c.Count())
		for i := 1; i <= adds; i++ {
			comp, err := c.Get(i)
			require.NoError(t, err)
			require.Equal(t, i, comp.Number())
		}
		require.Empty(t, c.CheckIndexConsistency())
	})
}
