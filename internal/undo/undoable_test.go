package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widget is a minimal undoable object for the tests.
type widget struct {
	id  int
	val int
}

func (w *widget) CloneForUndo() *widget {
	c := *w
	return &c
}

func collect(l *Log[*widget]) []*widget {
	var out []*widget
	it := l.StartReadObject()
	for {
		w, ok := l.ReadObject(it)
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

func TestLog_UndoWithoutBoundary(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 10}
	l.Insert(w)

	require.False(t, l.CanUndo())
	require.False(t, l.Undo(nil, nil))
	require.True(t, l.IsLive(w))
	assert.Equal(t, 10, w.val)
}

func TestLog_EditRoundTrip(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 10}
	l.Insert(w)
	l.GenerateSnapshot()

	l.SaveForUndo(w)
	w.val = 99

	require.True(t, l.Undo(nil, nil))

	replayed := collect(l)
	require.Len(t, replayed, 1)
	assert.Equal(t, 1, replayed[0].id)
	assert.Equal(t, 10, replayed[0].val, "state restored to pre-edit value")
	assert.NotSame(t, w, replayed[0], "restored object is the saved copy")
	assert.False(t, l.IsLive(w))
	assert.True(t, l.IsLive(replayed[0]))

	require.True(t, l.CanRedo())
	require.True(t, l.Redo(nil, nil))

	forward := collect(l)
	require.Len(t, forward, 1)
	assert.Same(t, w, forward[0], "redo restores the post-edit object")
	assert.Equal(t, 99, forward[0].val)
}

func TestLog_UndoCancelsCreation(t *testing.T) {
	l := NewLog[*widget]()
	a := &widget{id: 1}
	l.Insert(a)
	l.GenerateSnapshot()

	b := &widget{id: 2}
	l.Insert(b)

	var cancelled []*widget
	require.True(t, l.Undo(func(w *widget) { cancelled = append(cancelled, w) }, nil))

	require.Len(t, cancelled, 1)
	assert.Same(t, b, cancelled[0])
	assert.False(t, l.IsLive(b))
	assert.True(t, l.IsLive(a))
	assert.Empty(t, collect(l), "cancelled creations are not part of the replay set")

	var restored []*widget
	require.True(t, l.Redo(nil, func(w *widget) { restored = append(restored, w) }))
	require.Len(t, restored, 1)
	assert.Same(t, b, restored[0])
	assert.True(t, l.IsLive(b))
}

func TestLog_OneSavePerBoundary(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 1}
	l.Insert(w)
	l.GenerateSnapshot()

	l.SaveForUndo(w)
	w.val = 2
	l.SaveForUndo(w)
	w.val = 3

	require.True(t, l.Undo(nil, nil))
	replayed := collect(l)
	require.Len(t, replayed, 1)
	assert.Equal(t, 1, replayed[0].val, "undo reverts both edits to the boundary state")
}

func TestLog_EmptySnapshotIsNoOp(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 1}
	l.Insert(w)
	l.GenerateSnapshot()
	l.GenerateSnapshot()
	l.GenerateSnapshot()

	require.True(t, l.Undo(nil, nil), "one boundary was closed")
	require.False(t, l.CanUndo(), "repeated snapshots without edits close no further boundaries")
}

func TestLog_MultiLevelUndoRedo(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 0}
	l.Insert(w)
	l.GenerateSnapshot()

	l.SaveForUndo(w)
	w.val = 1
	l.GenerateSnapshot()

	cur := func() *widget {
		// After rollbacks the live object may be a restored copy.
		for _, e := range l.entries {
			if !e.removed {
				return e.cur
			}
		}
		return nil
	}

	l.SaveForUndo(cur())
	cur().val = 2

	require.True(t, l.Undo(nil, nil))
	assert.Equal(t, 1, cur().val)
	require.True(t, l.Undo(nil, nil))
	assert.Equal(t, 0, cur().val)
	require.False(t, l.Undo(nil, nil), "creation happened before the first boundary")

	require.True(t, l.Redo(nil, nil))
	assert.Equal(t, 1, cur().val)
	require.True(t, l.Redo(nil, nil))
	assert.Equal(t, 2, cur().val)
	require.False(t, l.Redo(nil, nil))
}

func TestLog_NewEditInvalidatesRedo(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1, val: 0}
	l.Insert(w)
	l.GenerateSnapshot()

	l.SaveForUndo(w)
	w.val = 1

	require.True(t, l.Undo(nil, nil))
	require.True(t, l.CanRedo())

	restored := collect(l)[0]
	l.SaveForUndo(restored)
	restored.val = 7

	require.False(t, l.CanRedo(), "a new edit discards the redo branch")
	require.False(t, l.Redo(nil, nil))
}

func TestLog_UntrackedObjectIgnored(t *testing.T) {
	l := NewLog[*widget]()
	w := &widget{id: 1}

	l.SaveForUndo(w) // never inserted: ignored

	require.False(t, l.IsLive(w))
	l.Insert(w)
	l.Insert(w) // duplicate insert ignored
	require.True(t, l.IsLive(w))
}
