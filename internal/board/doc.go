// Package board implements the versioned registry of placed components
// on a circuit-board layout.
//
// # Core Types
//
// Component is a placed package instance with immutable identity (name,
// 1-based number) and a mutable pose (location, rotation, side, fixed
// flag). Components is the registry: it owns a dense array where slot i
// holds the component numbered i+1, plus the undo list that tracks all
// placement history.
//
// # Editing Protocol
//
// Every edit goes through the registry and follows the same two steps:
// resolve the component by number, ask the undo list to capture the
// pre-mutation state, then mutate the component in place. The capture
// must happen strictly before the mutation or rollback would be unsound.
//
// # Undo/Redo
//
// GenerateSnapshot closes the open boundary in the undo list. Undo and
// Redo delegate to the list and, on success, re-synchronize the array
// from the list's replay set: each replayed component is written back
// into the slot derived from its number and reported to the supplied
// Observers exactly once, in replay order. Both return false when no
// history remains in that direction - a normal outcome, not an error.
//
// # Lookup Shapes
//
// Name lookup is a search: GetByName returns nil on a miss. Number
// lookup is addressing: Get returns ErrComponentOutOfRange when the
// number is outside 1..Count(), because that is a caller bug. A slot
// whose stored number disagrees with the requested one is logged and
// returned as-is; CheckIndexConsistency reports such drift explicitly.
//
// # Concurrency
//
// A Components instance is owned by a single editor session and performs
// no locking. Interleaving edits and replay from different goroutines is
// undefined behavior.
package board
