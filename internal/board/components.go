package board

import (
	"errors"
	"fmt"

	"placer/internal/geometry"
	"placer/internal/library"
	"placer/internal/log"
	"placer/internal/undo"
)

// Registry errors
var (
	// ErrComponentOutOfRange reports a number lookup outside 1..Count().
	// This is a contract violation by the caller, never recovered
	// internally.
	ErrComponentOutOfRange = errors.New("component number out of range")
)

// Components is the registry of placed components on a board. It owns a
// dense array of component references where slot i holds the component
// numbered i+1, and an undo list that tracks every creation and edit.
//
// Components is not safe for concurrent use; one editor session owns it.
type Components struct {
	undoList *undo.Log[*Component]
	arr      []*Component

	// If true, components on the back side are rotated before mirroring,
	// else they are mirrored before rotating. Affects only Rotate calls
	// made after the flag is set.
	flipStyleRotateFirst bool
}

// NewComponents creates an empty registry.
func NewComponents() *Components {
	return &Components{
		undoList: undo.NewLog[*Component](),
	}
}

// Add inserts a component into the registry, assigning the next
// sequential number. If onFront is false the component is placed on the
// back side and backPkg is the active footprint.
//
// Names are not checked for uniqueness; GetByName returns the first match.
func (c *Components) Add(name string, location geometry.Point, rotationDeg float64, onFront bool,
	frontPkg, backPkg *library.Package, positionFixed bool) *Component {
	comp := newComponent(name, location, rotationDeg, onFront, frontPkg, backPkg, len(c.arr)+1, positionFixed)
	c.arr = append(c.arr, comp)
	c.undoList.Insert(comp)
	log.Debug(log.CatBoard, "component added", "name", name, "number", comp.Number())
	return comp
}

// AddGenerated inserts a component with an internally generated name,
// the same package on both sides, and the position not fixed.
func (c *Components) AddGenerated(location geometry.Point, rotationDeg float64, onFront bool, pkg *library.Package) *Component {
	name := fmt.Sprintf("Component#%d", len(c.arr)+1)
	return c.Add(name, location, rotationDeg, onFront, pkg, pkg, false)
}

// GetByName returns the first component with the given name, or nil if
// no such component exists. Name lookup is a search, not an addressing
// operation: a miss is a normal outcome.
func (c *Components) GetByName(name string) *Component {
	for _, comp := range c.arr {
		if comp.Name() == name {
			return comp
		}
	}
	return nil
}

// Get returns the component with the given number. Component numbers run
// from 1 to Count(); a number outside that range is a contract violation
// reported as ErrComponentOutOfRange.
//
// If the stored component's own number disagrees with the requested one
// the mismatch is logged, but the stored component is still returned.
func (c *Components) Get(number int) (*Component, error) {
	if number < 1 || number > len(c.arr) {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrComponentOutOfRange, number, len(c.arr))
	}
	comp := c.arr[number-1]
	if comp != nil && comp.Number() != number {
		log.Warn(log.CatBoard, "inconsistent component number", "requested", number, "stored", comp.Number())
	}
	return comp, nil
}

// Count returns the number of component slots on the board. Slots are
// never reclaimed, so the count is monotonically non-decreasing across
// creates and unaffected by undo of edits.
func (c *Components) Count() int {
	return len(c.arr)
}

// List returns a copy of the component array in number order.
func (c *Components) List() []*Component {
	out := make([]*Component, len(c.arr))
	copy(out, c.arr)
	return out
}

// Move translates the component with the given number. Unlike
// Component.TranslateBy, the pre-move state is captured for undo first.
func (c *Components) Move(number int, v geometry.Vector) error {
	comp, err := c.Get(number)
	if err != nil {
		return err
	}
	c.undoList.SaveForUndo(comp)
	comp.TranslateBy(v)
	return nil
}

// Turn90Degree turns the component with the given number by factor
// quarter turns around pole, capturing the pre-turn state for undo.
func (c *Components) Turn90Degree(number, factor int, pole geometry.Point) error {
	comp, err := c.Get(number)
	if err != nil {
		return err
	}
	c.undoList.SaveForUndo(comp)
	comp.Turn90Degree(factor, pole)
	return nil
}

// Rotate rotates the component with the given number by deg degrees
// around pole, honoring the current flip style. The pre-rotation state
// is captured for undo.
func (c *Components) Rotate(number int, deg float64, pole geometry.Point) error {
	comp, err := c.Get(number)
	if err != nil {
		return err
	}
	c.undoList.SaveForUndo(comp)
	comp.Rotate(deg, pole, c.flipStyleRotateFirst)
	return nil
}

// ChangeSide changes the placement side of the component with the given
// number, mirroring it at the vertical line through pole, capturing the
// pre-flip state for undo.
func (c *Components) ChangeSide(number int, pole geometry.Point) error {
	comp, err := c.Get(number)
	if err != nil {
		return err
	}
	c.undoList.SaveForUndo(comp)
	comp.ChangeSide(pole)
	return nil
}

// GenerateSnapshot closes the current undo boundary, making the edits
// since the previous boundary undoable as one unit.
func (c *Components) GenerateSnapshot() {
	c.undoList.GenerateSnapshot()
	log.Debug(log.CatBoard, "snapshot generated")
}

// Undo restores the situation at the previous snapshot. Returns false if
// no more undo is possible; the registry is unchanged in that case.
// Every component replayed by the undo list is written back into its
// slot and reported to observers, in replay order.
func (c *Components) Undo(observers Observers) bool {
	if !c.undoList.Undo(nil, nil) {
		return false
	}
	c.restoreFromUndoList(observers)
	return true
}

// Redo restores the situation before the last undo. Returns false if no
// more redo is possible.
func (c *Components) Redo(observers Observers) bool {
	if !c.undoList.Redo(nil, nil) {
		return false
	}
	c.restoreFromUndoList(observers)
	return true
}

// CanUndo reports whether a closed snapshot boundary exists.
func (c *Components) CanUndo() bool {
	return c.undoList.CanUndo()
}

// CanRedo reports whether an undone boundary can be replayed.
func (c *Components) CanRedo() bool {
	return c.undoList.CanRedo()
}

// restoreFromUndoList re-synchronizes the component array from the undo
// list's replay set. Slots are addressed by component number, never by
// position shifting.
func (c *Components) restoreFromUndoList(observers Observers) {
	it := c.undoList.StartReadObject()
	for {
		comp, ok := c.undoList.ReadObject(it)
		if !ok {
			break
		}
		c.arr[comp.Number()-1] = comp
		if observers != nil {
			observers.NotifyMoved(comp)
		}
	}
}

// FlipStyleRotateFirst reports whether back-side components are rotated
// before mirroring.
func (c *Components) FlipStyleRotateFirst() bool {
	return c.flipStyleRotateFirst
}

// SetFlipStyleRotateFirst sets the flip style. The flag never
// reinterprets rotations already applied; it affects only later Rotate
// calls.
func (c *Components) SetFlipStyleRotateFirst(value bool) {
	c.flipStyleRotateFirst = value
}

// IndexDrift describes a slot whose stored component number disagrees
// with the slot position.
type IndexDrift struct {
	Slot   int // 0-based array slot
	Number int // number stored in the component at that slot
}

// CheckIndexConsistency verifies the soft invariant that slot i holds
// the component numbered i+1. Drift is reported, never auto-corrected.
func (c *Components) CheckIndexConsistency() []IndexDrift {
	var drift []IndexDrift
	for i, comp := range c.arr {
		if comp == nil || comp.Number() != i+1 {
			number := 0
			if comp != nil {
				number = comp.Number()
			}
			drift = append(drift, IndexDrift{Slot: i, Number: number})
		}
	}
	if len(drift) > 0 {
		log.Warn(log.CatBoard, "component index drift detected", "slots", len(drift))
	}
	return drift
}
