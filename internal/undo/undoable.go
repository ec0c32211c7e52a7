// Package undo implements a generic snapshot/undo/redo store for mutable
// objects. Objects are registered once with Insert and must have their
// pre-mutation state captured with SaveForUndo before every in-place edit.
// GenerateSnapshot closes the current boundary; Undo rolls all changes made
// since the last closed boundary back, Redo replays them forward.
//
// The log never reuses or reassigns object identity: rolling an edit back
// replaces the live object with the saved copy, so callers that index
// objects by position must re-synchronize from the replay set after every
// successful Undo or Redo (see StartReadObject/ReadObject).
package undo

import "placer/internal/log"

// Undoable is implemented by objects tracked by a Log. CloneForUndo
// returns a deep copy used as the saved pre-mutation state; the copy
// must preserve the object's identity fields.
type Undoable[T any] interface {
	comparable
	CloneForUndo() T
}

type save[T Undoable[T]] struct {
	state T
	level int
}

// entry tracks one object across its whole history. Entries are kept in
// insertion order and never removed, so replay order is deterministic.
type entry[T Undoable[T]] struct {
	cur        T
	insertedAt int
	saves      []save[T]
	removed    bool
}

type recordKind int

const (
	insertRecord recordKind = iota
	editRecord
)

// record remembers how to roll one entry forward again after an undo.
type record[T Undoable[T]] struct {
	e       *entry[T]
	kind    recordKind
	forward T
}

type frame[T Undoable[T]] struct {
	records []record[T]
}

// Log is a snapshot/undo/redo store. The zero value is not usable;
// create instances with NewLog. A Log is not safe for concurrent use.
type Log[T Undoable[T]] struct {
	entries []*entry[T]
	index   map[T]*entry[T]
	level   int
	changes map[int]int // inserts+saves recorded per open level
	redo    []frame[T]
	replay  []T
}

// NewLog creates an empty log with no closed boundary.
func NewLog[T Undoable[T]]() *Log[T] {
	return &Log[T]{
		index:   make(map[T]*entry[T]),
		changes: make(map[int]int),
	}
}

// Insert registers a newly created object with the log. Undoing across
// the boundary below the current level cancels the creation.
// Inserting invalidates any redo history.
func (l *Log[T]) Insert(obj T) {
	if _, ok := l.index[obj]; ok {
		log.Warn(log.CatUndo, "insert of already tracked object ignored")
		return
	}
	e := &entry[T]{cur: obj, insertedAt: l.level}
	l.entries = append(l.entries, e)
	l.index[obj] = e
	l.changes[l.level]++
	l.redo = nil
}

// SaveForUndo captures the object's current state so a following Undo can
// restore it. Must be called strictly before the mutation. Only the first
// call per object and boundary stores a copy; objects created since the
// last boundary need no copy because undo cancels them outright.
// Saving invalidates any redo history.
func (l *Log[T]) SaveForUndo(obj T) {
	e, ok := l.index[obj]
	if !ok {
		log.Warn(log.CatUndo, "save_for_undo on untracked object ignored")
		return
	}
	l.redo = nil
	if e.insertedAt == l.level {
		return
	}
	if n := len(e.saves); n > 0 && e.saves[n-1].level == l.level {
		return
	}
	e.saves = append(e.saves, save[T]{state: obj.CloneForUndo(), level: l.level})
	l.changes[l.level]++
}

// GenerateSnapshot closes the current boundary, making the changes since
// the previous boundary undoable as one unit. A no-op when nothing was
// inserted or saved since the previous boundary, so a successful Undo
// always rolls back at least one change. Snapshots taken after an undo
// drop the remaining redo history.
func (l *Log[T]) GenerateSnapshot() {
	if l.changes[l.level] == 0 {
		return
	}
	l.level++
	l.changes[l.level] = 0
	l.redo = nil
}

// CanUndo reports whether a closed boundary exists to roll back to.
func (l *Log[T]) CanUndo() bool {
	return l.level > 0
}

// CanRedo reports whether an undone boundary can be replayed forward.
func (l *Log[T]) CanRedo() bool {
	return len(l.redo) > 0
}

// Undo restores the situation at the last closed boundary. Returns false
// if no boundary exists; the log is unchanged in that case.
//
// Objects whose creation is cancelled are passed to the optional cancelled
// callback; objects whose state was rolled back to a saved copy are passed
// to the optional restored callback. Rolled-back objects form the replay
// set readable through StartReadObject until the next Undo or Redo.
func (l *Log[T]) Undo(cancelled, restored func(T)) bool {
	if l.level == 0 {
		return false
	}
	lv := l.level
	var fr frame[T]
	l.replay = l.replay[:0]
	for _, e := range l.entries {
		if e.removed {
			continue
		}
		if e.insertedAt == lv {
			e.removed = true
			delete(l.index, e.cur)
			fr.records = append(fr.records, record[T]{e: e, kind: insertRecord})
			if cancelled != nil {
				cancelled(e.cur)
			}
			continue
		}
		if n := len(e.saves); n > 0 && e.saves[n-1].level == lv {
			saved := e.saves[n-1]
			e.saves = e.saves[:n-1]
			forward := e.cur
			delete(l.index, forward)
			e.cur = saved.state
			l.index[e.cur] = e
			fr.records = append(fr.records, record[T]{e: e, kind: editRecord, forward: forward})
			l.replay = append(l.replay, e.cur)
			if restored != nil {
				restored(e.cur)
			}
		}
	}
	l.redo = append(l.redo, fr)
	l.level--
	return true
}

// Redo replays the most recently undone boundary forward. Returns false
// if there is nothing to redo. Re-created objects are passed to the
// optional restored callback; the cancelled callback is unused and kept
// for symmetry with Undo.
func (l *Log[T]) Redo(cancelled, restored func(T)) bool {
	_ = cancelled
	if len(l.redo) == 0 {
		return false
	}
	fr := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.level++
	l.changes[l.level] = len(fr.records)
	l.replay = l.replay[:0]
	for _, rec := range fr.records {
		switch rec.kind {
		case insertRecord:
			rec.e.removed = false
			l.index[rec.e.cur] = rec.e
			if restored != nil {
				restored(rec.e.cur)
			}
		case editRecord:
			rec.e.saves = append(rec.e.saves, save[T]{state: rec.e.cur, level: l.level})
			delete(l.index, rec.e.cur)
			rec.e.cur = rec.forward
			l.index[rec.e.cur] = rec.e
			l.replay = append(l.replay, rec.e.cur)
			if restored != nil {
				restored(rec.e.cur)
			}
		}
	}
	return true
}

// ReadIterator walks the replay set produced by the last Undo or Redo.
type ReadIterator[T Undoable[T]] struct {
	items []T
	pos   int
}

// StartReadObject begins iteration over the replay set of the last
// completed Undo or Redo, in insertion order of the underlying objects.
func (l *Log[T]) StartReadObject() *ReadIterator[T] {
	items := make([]T, len(l.replay))
	copy(items, l.replay)
	return &ReadIterator[T]{items: items}
}

// ReadObject returns the next replayed object, or the zero value and
// false once the iterator is exhausted.
func (l *Log[T]) ReadObject(it *ReadIterator[T]) (T, bool) {
	var zero T
	if it == nil || it.pos >= len(it.items) {
		return zero, false
	}
	obj := it.items[it.pos]
	it.pos++
	return obj, true
}

// IsLive reports whether the object is currently tracked and not
// cancelled by an undo of its creation.
func (l *Log[T]) IsLive(obj T) bool {
	_, ok := l.index[obj]
	return ok
}
