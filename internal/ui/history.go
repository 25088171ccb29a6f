package ui

import "github.com/lstephensFederation/lolTasks/internal/storage"

// maxUndoDepth bounds the global snapshot ring.
const maxUndoDepth = 20

// boardHistory is the global undo/redo stack: whole-snapshot clones taken
// after every committed mutation. It is independent of the line editor's
// local history and untouched by an edit cancel.
type boardHistory struct {
	snaps []storage.Snapshot
	pos   int
}

// newBoardHistory seeds the ring with the snapshot loaded at startup.
func newBoardHistory(initial storage.Snapshot) *boardHistory {
	return &boardHistory{snaps: []storage.Snapshot{initial.Clone()}}
}

// Push records the post-mutation snapshot, discarding any redo tail. The
// ring keeps the current snapshot plus up to maxUndoDepth undo steps; the
// oldest step is dropped beyond that and the pointer shifts with it.
func (h *boardHistory) Push(snap storage.Snapshot) {
	h.snaps = append(h.snaps[:h.pos+1], snap.Clone())
	h.pos = len(h.snaps) - 1
	if len(h.snaps) > maxUndoDepth+1 {
		h.snaps = h.snaps[1:]
		h.pos--
	}
}

// Current clones the snapshot at the history pointer, the last state that
// was successfully recorded.
func (h *boardHistory) Current() storage.Snapshot {
	return h.snaps[h.pos].Clone()
}

// Undo steps back one snapshot; ok=false at the boundary.
func (h *boardHistory) Undo() (storage.Snapshot, bool) {
	if h.pos == 0 {
		return nil, false
	}
	h.pos--
	return h.snaps[h.pos].Clone(), true
}

// Redo steps forward one snapshot; ok=false at the boundary.
func (h *boardHistory) Redo() (storage.Snapshot, bool) {
	if h.pos >= len(h.snaps)-1 {
		return nil, false
	}
	h.pos++
	return h.snaps[h.pos].Clone(), true
}
