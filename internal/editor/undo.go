//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import gt "github.com/AMS21/dlxedit/internal/types"

// CursorState is the cursor plus selection endpoints at a point in time.
type CursorState struct {
	Cursor         gt.Coordinate
	SelectionStart gt.Coordinate
	SelectionEnd   gt.Coordinate
}

// UndoRecord is a single reversible edit: the text added and/or removed,
// the coordinates of each, and the cursor state before and after. Either
// patch may be empty. Coordinates are stored with Column as a byte index
// into their line, not a visual column, so a later tab-size change can't
// invalidate replay (spec.md §3 UndoRecord, §4.5).
type UndoRecord struct {
	Added      []byte
	AddedStart gt.Coordinate
	AddedEnd   gt.Coordinate

	Removed      []byte
	RemovedStart gt.Coordinate
	RemovedEnd   gt.Coordinate

	Before CursorState
	After  CursorState
}

// undoHistory is an ordered list of records plus the boundary between
// undone and current (spec.md §3 UndoHistory).
type undoHistory struct {
	records []UndoRecord
	index   int // 0 = fully undone, len(records) = current
}

func (h *undoHistory) canUndo() bool { return h.index > 0 }
func (h *undoHistory) canRedo() bool { return h.index < len(h.records) }

// push truncates any redo tail and appends rec as the new current record.
func (h *undoHistory) push(rec UndoRecord) {
	h.records = append(h.records[:h.index], rec)
	h.index++
}

func (h *undoHistory) clear() {
	h.records = nil
	h.index = 0
}

// toByteCoord converts a visual-column coordinate to a byte-index
// coordinate on the same line.
func (e *Editor) toByteCoord(c gt.Coordinate) gt.Coordinate {
	return gt.Coordinate{Line: c.Line, Column: e.charIndexOf(c)}
}

// toVisualCoord converts a byte-index coordinate back to a visual column
// at the current tab size.
func (e *Editor) toVisualCoord(c gt.Coordinate) gt.Coordinate {
	return gt.Coordinate{Line: c.Line, Column: e.columnOf(c.Line, c.Column)}
}

func (e *Editor) toByteState(s CursorState) CursorState {
	return CursorState{
		Cursor:         e.toByteCoord(s.Cursor),
		SelectionStart: e.toByteCoord(s.SelectionStart),
		SelectionEnd:   e.toByteCoord(s.SelectionEnd),
	}
}

func (e *Editor) toVisualState(s CursorState) CursorState {
	return CursorState{
		Cursor:         e.toVisualCoord(s.Cursor),
		SelectionStart: e.toVisualCoord(s.SelectionStart),
		SelectionEnd:   e.toVisualCoord(s.SelectionEnd),
	}
}

// addUndo records rec, unless the editor is read-only (undo is disabled
// entirely then). rec's coordinates must already be expressed as byte
// indices: callers convert each one (via toByteCoord/toByteState, or by
// constructing it directly from a byte index already in hand) at the
// moment it is still valid against the buffer, before any mutation that
// would shift lines out from under it — addUndo itself runs after the
// mutation and must not try to reinterpret stale coordinates against
// the post-mutation buffer.
func (e *Editor) addUndo(rec UndoRecord) {
	if e.opts.ReadOnly {
		return
	}
	e.history.push(rec)
}

// CanUndo reports whether Undo would do anything.
func (e *Editor) CanUndo() bool {
	return !e.opts.ReadOnly && e.history.canUndo()
}

// CanRedo reports whether Redo would do anything.
func (e *Editor) CanRedo() bool {
	return !e.opts.ReadOnly && e.history.canRedo()
}

// Undo reverses up to steps records (spec.md §4.5). Each reversal deletes
// the record's added patch, re-inserts its removed patch, and restores
// the saved "before" cursor state.
func (e *Editor) Undo(steps int) {
	if e.opts.ReadOnly {
		return
	}
	for ; steps > 0 && e.history.canUndo(); steps-- {
		e.history.index--
		rec := e.history.records[e.history.index]
		e.applyInverse(rec)
		e.cursor = e.toVisualCoord(rec.Before.Cursor)
		e.selStart = e.toVisualCoord(rec.Before.SelectionStart)
		e.selEnd = e.toVisualCoord(rec.Before.SelectionEnd)
		e.markDirty(rec.AddedStart.Line, rec.RemovedStart.Line)
	}
}

// Redo re-applies up to steps previously undone records.
func (e *Editor) Redo(steps int) {
	if e.opts.ReadOnly {
		return
	}
	for ; steps > 0 && e.history.canRedo(); steps-- {
		rec := e.history.records[e.history.index]
		e.applyForward(rec)
		e.cursor = e.toVisualCoord(rec.After.Cursor)
		e.selStart = e.toVisualCoord(rec.After.SelectionStart)
		e.selEnd = e.toVisualCoord(rec.After.SelectionEnd)
		e.history.index++
		e.markDirty(rec.AddedStart.Line, rec.RemovedStart.Line)
	}
}

// applyForward replays rec in the direction it was originally performed:
// remove the removed patch (if any), then insert the added patch.
func (e *Editor) applyForward(rec UndoRecord) {
	if len(rec.Removed) > 0 {
		e.deleteByteRange(rec.RemovedStart, rec.RemovedEnd)
	}
	if len(rec.Added) > 0 {
		e.insertBytesAtByteCoord(rec.AddedStart, rec.Added)
	}
}

// applyInverse undoes rec: remove the added patch, then re-insert the
// removed patch.
func (e *Editor) applyInverse(rec UndoRecord) {
	if len(rec.Added) > 0 {
		e.deleteByteRange(rec.AddedStart, rec.AddedEnd)
	}
	if len(rec.Removed) > 0 {
		e.insertBytesAtByteCoord(rec.RemovedStart, rec.Removed)
	}
}
