package board

import (
	"fmt"

	"placer/internal/geometry"
	"placer/internal/library"
)

// Component is a placed instance of a package on the board. Identity
// (name and number) is assigned at creation and never changes; the pose
// fields are mutated in place exclusively through Components operations
// so every edit is captured by the undo list first.
type Component struct {
	name   string
	number int

	Location      geometry.Point
	RotationDeg   float64
	OnFront       bool
	PositionFixed bool

	// Footprints for front and back side placement. Opaque references;
	// the registry never inspects them.
	FrontPackage *library.Package
	BackPackage  *library.Package
}

func newComponent(name string, location geometry.Point, rotationDeg float64, onFront bool,
	frontPkg, backPkg *library.Package, number int, positionFixed bool) *Component {
	return &Component{
		name:          name,
		number:        number,
		Location:      location,
		RotationDeg:   geometry.NormalizeDegrees(rotationDeg),
		OnFront:       onFront,
		PositionFixed: positionFixed,
		FrontPackage:  frontPkg,
		BackPackage:   backPkg,
	}
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// Number returns the 1-based component number, also the basis of the
// component's slot in the registry array.
func (c *Component) Number() int {
	return c.number
}

// Package returns the footprint for the side the component is placed on.
func (c *Component) Package() *library.Package {
	if c.OnFront {
		return c.FrontPackage
	}
	return c.BackPackage
}

// TranslateBy moves the component by the given vector.
func (c *Component) TranslateBy(v geometry.Vector) {
	c.Location = c.Location.Add(v)
}

// Turn90Degree turns the component by factor quarter turns counterclockwise
// around pole.
func (c *Component) Turn90Degree(factor int, pole geometry.Point) {
	c.Location = c.Location.Turn90Around(factor, pole)
	c.RotationDeg = geometry.NormalizeDegrees(c.RotationDeg + 90*float64(factor))
}

// Rotate rotates the component by deg degrees counterclockwise around pole.
// For components on the back side the rotation field runs against the
// turn angle when the flip style is mirror-first.
func (c *Component) Rotate(deg float64, pole geometry.Point, flipStyleRotateFirst bool) {
	turn := deg
	if !flipStyleRotateFirst && !c.OnFront {
		turn = 360 - deg
	}
	c.Location = c.Location.RotateAround(deg, pole)
	c.RotationDeg = geometry.NormalizeDegrees(c.RotationDeg + turn)
}

// ChangeSide moves the component to the other board side, mirroring it
// at the vertical line through pole.
func (c *Component) ChangeSide(pole geometry.Point) {
	c.OnFront = !c.OnFront
	c.Location = c.Location.MirrorVertical(pole)
	c.RotationDeg = geometry.NormalizeDegrees(360 - c.RotationDeg)
}

// CloneForUndo returns a copy of the component for the undo list.
// Package references are shared: footprints are immutable.
func (c *Component) CloneForUndo() *Component {
	clone := *c
	return &clone
}

func (c *Component) String() string {
	side := "front"
	if !c.OnFront {
		side = "back"
	}
	return fmt.Sprintf("%s#%d(%.2f,%.2f %s %.1f°)", c.name, c.number, c.Location.X, c.Location.Y, side, c.RotationDeg)
}
