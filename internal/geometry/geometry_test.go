package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPoint_AddSub(t *testing.T) {
	p := NewPoint(3, 4)
	v := NewVector(1, -2)

	moved := p.Add(v)

	assert.Equal(t, Point{X: 4, Y: 2}, moved)
	assert.Equal(t, v, moved.Sub(p))
}

func TestPoint_MirrorVertical(t *testing.T) {
	pole := NewPoint(10, 0)

	mirrored := NewPoint(3, 7).MirrorVertical(pole)

	assert.Equal(t, Point{X: 17, Y: 7}, mirrored)
	// Mirroring twice is the identity.
	assert.Equal(t, Point{X: 3, Y: 7}, mirrored.MirrorVertical(pole))
}

func TestPoint_Turn90Around(t *testing.T) {
	pole := NewPoint(1, 1)
	p := NewPoint(2, 1)

	tests := []struct {
		factor int
		want   Point
	}{
		{0, Point{X: 2, Y: 1}},
		{1, Point{X: 1, Y: 2}},
		{2, Point{X: 0, Y: 1}},
		{3, Point{X: 1, Y: 0}},
		{4, Point{X: 2, Y: 1}},
		{-1, Point{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Turn90Around(tt.factor, pole), "factor=%d", tt.factor)
	}
}

func TestPoint_RotateAround_QuarterTurnMatchesTurn90(t *testing.T) {
	pole := NewPoint(-2, 5)
	p := NewPoint(4, -1)

	rotated := p.RotateAround(90, pole)
	turned := p.Turn90Around(1, pole)

	require.InDelta(t, turned.X, rotated.X, 1e-9)
	require.InDelta(t, turned.Y, rotated.Y, 1e-9)
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 270.0, NormalizeDegrees(-90))
	assert.Equal(t, 90.0, NormalizeDegrees(450))
}

func TestTurn90Around_FourTurnsIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Point{
			X: rapid.Float64Range(-1e6, 1e6).Draw(t, "x"),
			Y: rapid.Float64Range(-1e6, 1e6).Draw(t, "y"),
		}
		pole := Point{
			X: rapid.Float64Range(-1e6, 1e6).Draw(t, "px"),
			Y: rapid.Float64Range(-1e6, 1e6).Draw(t, "py"),
		}
		factor := rapid.IntRange(-8, 8).Draw(t, "factor")

		back := p.Turn90Around(factor, pole).Turn90Around(-factor, pole)

		require.InDelta(t, p.X, back.X, 1e-6)
		require.InDelta(t, p.Y, back.Y, 1e-6)
	})
}
