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

// Package editor implements the DLX code editor's text-buffer state
// machine: the glyph/line/buffer model, the visual-column/byte-index
// coordinate system, editing primitives, cursor/selection handling, an
// undo/redo engine, line annotations, and a colorizer driver. It owns
// all editing state; the host GUI and the DLX parser are consumed only
// through the Host and Parser interfaces in this package.
package editor

import (
	gt "github.com/AMS21/dlxedit/internal/types"
)

// Editor is the single stateful object spec.md describes: one buffer,
// one cursor, one selection, one undo history, one annotation set. There
// is no multi-window or multi-buffer concept (spec.md §3, Non-goals).
type Editor struct {
	buffer *Buffer
	opts   gt.Options

	cursor   gt.Coordinate
	selStart gt.Coordinate
	selEnd   gt.Coordinate
	selMode  gt.SelectionMode
	anchor   gt.Coordinate // fixed end of a selection being extended by movement/drag

	history undoHistory

	errorMarkers map[int]string
	breakpoints  map[int]struct{}

	colorRangeMin int
	colorRangeMax int
	checkComments bool

	parser Parser
}

// NewEditor constructs an empty Editor with the given options.
func NewEditor(opts gt.Options) *Editor {
	opts.TabSize = gt.ClampTabSize(opts.TabSize)
	e := &Editor{
		buffer:        NewBuffer(),
		opts:          opts,
		errorMarkers:  map[int]string{},
		breakpoints:   map[int]struct{}{},
		checkComments: true,
	}
	e.colorRangeMin = 0
	e.colorRangeMax = 0
	return e
}

// SetParser installs the token-stream collaborator used by the
// colorizer driver (spec.md §6 Parser).
func (e *Editor) SetParser(p Parser) { e.parser = p }

func (e *Editor) tabSize() int { return e.opts.TabSize }

// Options returns a copy of the current options.
func (e *Editor) Options() gt.Options { return e.opts }

// SetOptions replaces the editor's options, clamping TabSize to [1,32]
// (spec.md §3 C2) and re-snapping the cursor/selection so neither lands
// mid-tab under the new tab size.
func (e *Editor) SetOptions(opts gt.Options) {
	opts.TabSize = gt.ClampTabSize(opts.TabSize)
	e.opts = opts
	e.cursor = e.sanitize(e.cursor)
	e.selStart = e.sanitize(e.selStart)
	e.selEnd = e.sanitize(e.selEnd)
	e.markDirty(0, e.buffer.LineCount()-1)
}

// SetReadOnly toggles read-only mode; undo history is left intact but
// inert (CanUndo/CanRedo report false, per spec.md §4.5).
func (e *Editor) SetReadOnly(v bool) {
	e.opts.ReadOnly = v
	e.buffer.SetReadOnly(v)
}

func (e *Editor) ReadOnly() bool { return e.opts.ReadOnly }

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() int { return e.buffer.LineCount() }

// currentState captures cursor+selection as a CursorState, in visual
// columns. Callers convert it to byte indices with toByteState at the
// moment it's captured, before any mutation invalidates it.
func (e *Editor) currentState() CursorState {
	return CursorState{
		Cursor:         e.cursor,
		SelectionStart: e.selStart,
		SelectionEnd:   e.selEnd,
	}
}

// clearSelection collapses the selection to the cursor and resets the
// extension anchor to it too.
func (e *Editor) clearSelection() {
	e.selStart = e.cursor
	e.selEnd = e.cursor
	e.selMode = gt.SelectionNormal
	e.anchor = e.cursor
}

// normalizeSelection reorders selStart/selEnd so selStart <= selEnd.
func (e *Editor) normalizeSelection() {
	if e.selEnd.Less(e.selStart) {
		e.selStart, e.selEnd = e.selEnd, e.selStart
	}
}

// afterMutation marks [fromLine, toLine] dirty for the colorizer and
// clamps it to the buffer's current bounds.
func (e *Editor) afterMutation(fromLine, toLine int) {
	e.markDirty(fromLine, toLine)
}

// SetText replaces the whole buffer (spec.md §4.1 set_text), resets
// cursor/selection/annotations, and clears undo history.
func (e *Editor) SetText(data []byte) {
	e.buffer.SetText(data)
	e.cursor = gt.Coordinate{}
	e.selStart = gt.Coordinate{}
	e.selEnd = gt.Coordinate{}
	e.errorMarkers = map[int]string{}
	e.breakpoints = map[int]struct{}{}
	e.history.clear()
	e.markDirty(0, e.buffer.LineCount()-1)
}

// GetText returns the whole buffer as a single `\n`-joined byte string
// (spec.md §4.1 get_text).
func (e *Editor) GetText() []byte { return e.buffer.Bytes() }

// SetTextLines replaces the buffer with one line per element of lines
// (spec.md §4.1 set_text_lines).
func (e *Editor) SetTextLines(lines []string) {
	joined := make([]byte, 0)
	for i, l := range lines {
		if i > 0 {
			joined = append(joined, '\n')
		}
		joined = append(joined, l...)
	}
	e.SetText(joined)
}

// GetTextLines returns the buffer as one string per line.
func (e *Editor) GetTextLines() []string {
	out := make([]string, e.buffer.LineCount())
	for i := 0; i < e.buffer.LineCount(); i++ {
		out[i] = string(e.buffer.Line(i).Bytes())
	}
	return out
}

// GetCurrentLineText returns the text of the cursor's current line.
func (e *Editor) GetCurrentLineText() string {
	return string(e.buffer.Line(e.cursor.Line).Bytes())
}

// GetSelectedText returns the bytes currently selected, or nil if there
// is no selection.
func (e *Editor) GetSelectedText() []byte {
	if !e.HasSelection() {
		return nil
	}
	return e.textRange(e.selStart, e.selEnd)
}
