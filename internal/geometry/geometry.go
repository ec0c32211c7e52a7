// Package geometry provides the 2D value types used by component placement.
package geometry

import "math"

// Point represents a location on the board in board coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewPoint creates a new Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{DX: p.X - other.X, DY: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MirrorVertical mirrors the point at the vertical line through pole.
func (p Point) MirrorVertical(pole Point) Point {
	return Point{X: 2*pole.X - p.X, Y: p.Y}
}

// RotateAround rotates the point by deg degrees counterclockwise around pole.
func (p Point) RotateAround(deg float64, pole Point) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - pole.X
	dy := p.Y - pole.Y
	return Point{
		X: pole.X + dx*cos - dy*sin,
		Y: pole.Y + dx*sin + dy*cos,
	}
}

// Turn90Around rotates the point by factor quarter turns counterclockwise
// around pole. Exact for any factor, no trigonometry involved.
func (p Point) Turn90Around(factor int, pole Point) Point {
	dx := p.X - pole.X
	dy := p.Y - pole.Y
	switch ((factor % 4) + 4) % 4 {
	case 1:
		dx, dy = -dy, dx
	case 2:
		dx, dy = -dx, -dy
	case 3:
		dx, dy = dy, -dx
	}
	return Point{X: pole.X + dx, Y: pole.Y + dy}
}

// Vector represents a translation in board coordinates.
type Vector struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// NewVector creates a new Vector.
func NewVector(dx, dy float64) Vector {
	return Vector{DX: dx, DY: dy}
}

// Negate returns the opposite vector.
func (v Vector) Negate() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// NormalizeDegrees maps an angle to the half-open interval [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
