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

// Cursor, SelectionStart, and SelectionEnd return the current
// visual-column coordinates.
func (e *Editor) Cursor() gt.Coordinate         { return e.cursor }
func (e *Editor) SelectionStart() gt.Coordinate { return e.selStart }
func (e *Editor) SelectionEnd() gt.Coordinate   { return e.selEnd }
func (e *Editor) SelectionMode() gt.SelectionMode { return e.selMode }

// HasSelection reports whether selStart != selEnd.
func (e *Editor) HasSelection() bool { return e.selStart != e.selEnd }

// SetCursorPosition moves the cursor (clamped) and collapses the
// selection to it.
func (e *Editor) SetCursorPosition(c gt.Coordinate) {
	e.cursor = e.sanitize(c)
	e.clearSelection()
}

// SetSelection sets the selection to [start, end) and records mode,
// sanitizing both endpoints and placing the cursor at end (spec.md §4.4).
// The endpoints are not widened to word or line bounds by mode.
func (e *Editor) SetSelection(start, end gt.Coordinate, mode gt.SelectionMode) {
	start, end = e.sanitize(start), e.sanitize(end)
	if end.Less(start) {
		start, end = end, start
	}
	e.selStart, e.selEnd, e.selMode = start, end, mode
	e.cursor = end
	e.anchor = start
}

// SelectAll selects the entire buffer.
func (e *Editor) SelectAll() {
	last := e.buffer.LineCount() - 1
	e.SetSelection(gt.Coordinate{}, gt.Coordinate{Line: last, Column: e.lineMaxColumn(last)}, gt.SelectionNormal)
}

// isAlnum reports whether b is part of a plain identifier-style word
// when no colorizer tags are available.
func isAlnum(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// sameWordClass reports whether glyphs at byte indices i and j on line
// belong to the same word. When the colorizer is enabled, a run's color
// tag defines the boundary (so a whole highlighted token, e.g. a string
// literal or opcode, is one word); otherwise a plain alnum/non-alnum
// split is used (spec.md §4.4 word-boundary rule).
func (e *Editor) sameWordClass(line Line, i, j int) bool {
	if i < 0 || j < 0 || i >= len(line) || j >= len(line) {
		return false
	}
	gi, gj := line[i], line[j]
	if isSpace(gi.Char) || isSpace(gj.Char) {
		return false
	}
	if e.opts.ColorizerEnabled {
		return gi.Color == gj.Color
	}
	return isAlnum(gi.Char) == isAlnum(gj.Char)
}

// wordStartFrom walks backward from idx (inclusive) while glyphs share
// idx's word class, returning the byte index of the word's first byte.
func wordStartFrom(e *Editor, line Line, idx int) int {
	i := idx
	for i > 0 && e.sameWordClass(line, i-1, idx) {
		i--
	}
	return i
}

// findWordEnd walks forward from byte index idx (inclusive) to one past
// the last byte of the word idx belongs to.
func findWordEnd(e *Editor, line Line, idx int) int {
	i := idx
	for i+1 < len(line) && e.sameWordClass(line, i, i+1) {
		i++
	}
	if i < len(line) {
		i++
	}
	return i
}

// GetWordAt returns the word (if any) touching coord, as raw bytes.
func (e *Editor) GetWordAt(coord gt.Coordinate) []byte {
	coord = e.sanitize(coord)
	line := e.buffer.Line(coord.Line)
	idx := e.charIndexOf(coord)
	if idx >= len(line) || isSpace(line[idx].Char) {
		if idx > 0 && !isSpace(line[idx-1].Char) {
			idx--
		} else {
			return nil
		}
	}
	start := wordStartFrom(e, line, idx)
	end := findWordEnd(e, line, idx)
	return line[start:end].Bytes()
}

// GetWordUnderCursor returns the word touching the current cursor.
func (e *Editor) GetWordUnderCursor() []byte {
	return e.GetWordAt(e.cursor)
}

// SelectWordUnderCursor extends the selection to the full word touching
// the cursor and switches to Word selection mode (spec.md §4.4).
func (e *Editor) SelectWordUnderCursor() {
	line := e.buffer.Line(e.cursor.Line)
	idx := e.charIndexOf(e.cursor)
	if idx >= len(line) {
		if idx == 0 {
			return
		}
		idx--
	}
	if isSpace(line[idx].Char) {
		return
	}
	start := wordStartFrom(e, line, idx)
	end := findWordEnd(e, line, idx)
	e.SetSelection(
		gt.Coordinate{Line: e.cursor.Line, Column: e.columnOf(e.cursor.Line, start)},
		gt.Coordinate{Line: e.cursor.Line, Column: e.columnOf(e.cursor.Line, end)},
		gt.SelectionWord,
	)
}

// SelectLine selects the whole line (including its trailing newline
// conceptually, i.e. end is the start of the next line, or end of
// buffer for the last line) and switches to Line selection mode.
func (e *Editor) SelectLine(line int) {
	if line < 0 {
		line = 0
	}
	if line >= e.buffer.LineCount() {
		line = e.buffer.LineCount() - 1
	}
	start := gt.Coordinate{Line: line, Column: 0}
	var end gt.Coordinate
	if line+1 < e.buffer.LineCount() {
		end = gt.Coordinate{Line: line + 1, Column: 0}
	} else {
		end = gt.Coordinate{Line: line, Column: e.lineMaxColumn(line)}
	}
	e.SetSelection(start, end, gt.SelectionLine)
}

// --- Movement -------------------------------------------------------

// moveCursor moves the cursor to c. When extend is set, the selection is
// re-anchored at e.anchor (the fixed point of the extension gesture) and
// stretched to the new cursor position, rather than just replacing
// selEnd — so repeated shift+arrow presses extend from the original
// start, not from wherever the selection last ended up after sorting.
func (e *Editor) moveCursor(c gt.Coordinate, extend bool) {
	c = e.sanitize(c)
	e.cursor = c
	if extend {
		if c.Less(e.anchor) {
			e.selStart, e.selEnd = c, e.anchor
		} else {
			e.selStart, e.selEnd = e.anchor, c
		}
	} else {
		e.clearSelection()
	}
}

// leftTarget returns the coordinate one unit left of c, without touching
// the cursor.
func (e *Editor) leftTarget(c gt.Coordinate) gt.Coordinate {
	if c.Column > 0 {
		idx := e.charIndexOf(c)
		line := e.buffer.Line(c.Line)
		start := idx - line.utf8SeqLength(precedingLeadIndex(line, idx))
		return gt.Coordinate{Line: c.Line, Column: e.columnOf(c.Line, start)}
	}
	if c.Line > 0 {
		return gt.Coordinate{Line: c.Line - 1, Column: e.lineMaxColumn(c.Line - 1)}
	}
	return c
}

// snapWordBoundaryLeft walks c left past any whitespace and then to the
// start of the word behind it, implementing the word_mode snap described
// in spec.md §4.4 for leftward motion.
func (e *Editor) snapWordBoundaryLeft(c gt.Coordinate) gt.Coordinate {
	line := e.buffer.Line(c.Line)
	idx := e.charIndexOf(c)
	for idx > 0 && isSpace(line[idx-1].Char) {
		idx--
	}
	if idx > 0 {
		idx = wordStartFrom(e, line, idx-1)
	}
	return gt.Coordinate{Line: c.Line, Column: e.columnOf(c.Line, idx)}
}

// snapWordBoundaryRight walks c right past any whitespace and then to the
// end of the word ahead of it, implementing the word_mode snap described
// in spec.md §4.4 for rightward motion.
func (e *Editor) snapWordBoundaryRight(c gt.Coordinate) gt.Coordinate {
	line := e.buffer.Line(c.Line)
	idx := e.charIndexOf(c)
	for idx < len(line) && isSpace(line[idx].Char) {
		idx++
	}
	if idx < len(line) {
		idx = findWordEnd(e, line, idx)
	}
	return gt.Coordinate{Line: c.Line, Column: e.columnOf(c.Line, idx)}
}

// MoveLeft moves the cursor left by amount unit steps (amount<=0 is a
// complete no-op, not even clearing the selection). When wordMode is set,
// each unit step is followed by a snap to the next word boundary in the
// direction of motion (spec.md §4.4, §4.7).
func (e *Editor) MoveLeft(amount int, extend, wordMode bool) {
	if amount <= 0 {
		return
	}
	c := e.cursor
	for i := 0; i < amount; i++ {
		c = e.leftTarget(c)
		if wordMode {
			c = e.snapWordBoundaryLeft(c)
		}
	}
	e.moveCursor(c, extend)
}

// MoveRight moves the cursor right by amount unit steps (amount<=0 is a
// complete no-op). See MoveLeft for wordMode semantics.
func (e *Editor) MoveRight(amount int, extend, wordMode bool) {
	if amount <= 0 {
		return
	}
	c := e.cursor
	for i := 0; i < amount; i++ {
		c = e.advance(c)
		if wordMode {
			c = e.snapWordBoundaryRight(c)
		}
	}
	e.moveCursor(c, extend)
}

// MoveUp moves the cursor up by amount lines, holding its column steady
// (amount<=0 is a complete no-op).
func (e *Editor) MoveUp(amount int, extend bool) {
	if amount <= 0 {
		return
	}
	c := e.cursor
	for i := 0; i < amount; i++ {
		if c.Line == 0 {
			c = gt.Coordinate{Line: 0, Column: 0}
			break
		}
		c = gt.Coordinate{Line: c.Line - 1, Column: c.Column}
	}
	e.moveCursor(c, extend)
}

// MoveDown moves the cursor down by amount lines, holding its column
// steady (amount<=0 is a complete no-op).
func (e *Editor) MoveDown(amount int, extend bool) {
	if amount <= 0 {
		return
	}
	c := e.cursor
	last := e.buffer.LineCount() - 1
	for i := 0; i < amount; i++ {
		if c.Line >= last {
			c = gt.Coordinate{Line: last, Column: e.lineMaxColumn(last)}
			break
		}
		c = gt.Coordinate{Line: c.Line + 1, Column: c.Column}
	}
	e.moveCursor(c, extend)
}

func (e *Editor) MoveHome(extend bool) {
	e.moveCursor(gt.Coordinate{Line: e.cursor.Line, Column: 0}, extend)
}

func (e *Editor) MoveEnd(extend bool) {
	e.moveCursor(gt.Coordinate{Line: e.cursor.Line, Column: e.lineMaxColumn(e.cursor.Line)}, extend)
}

func (e *Editor) MoveTop(extend bool) {
	e.moveCursor(gt.Coordinate{Line: 0, Column: 0}, extend)
}

func (e *Editor) MoveBottom(extend bool) {
	last := e.buffer.LineCount() - 1
	e.moveCursor(gt.Coordinate{Line: last, Column: e.lineMaxColumn(last)}, extend)
}

func (e *Editor) MovePageUp(rows int, extend bool) {
	target := e.cursor.Line - rows
	if target < 0 {
		target = 0
	}
	e.moveCursor(gt.Coordinate{Line: target, Column: e.cursor.Column}, extend)
}

func (e *Editor) MovePageDown(rows int, extend bool) {
	last := e.buffer.LineCount() - 1
	target := e.cursor.Line + rows
	if target > last {
		target = last
	}
	e.moveCursor(gt.Coordinate{Line: target, Column: e.cursor.Column}, extend)
}
