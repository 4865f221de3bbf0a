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

import (
	"unicode/utf8"

	gt "github.com/AMS21/dlxedit/internal/types"
)

// insertLineAt inserts an empty line at the 0-based index and shifts
// annotations accordingly (spec.md §4.1 insert_line).
func (e *Editor) insertLineAt(index int) {
	e.buffer.InsertLine(index)
	e.shiftAnnotationsForInsert(index)
}

// adjustCoordForRemoval implements the selection-endpoint adjustment rule
// of spec.md §4.1 remove_line/remove_lines.
func adjustCoordForRemoval(c gt.Coordinate, start, endExclusive int) gt.Coordinate {
	removed := endExclusive - start
	switch {
	case c.Line >= start && c.Line < endExclusive:
		return gt.Coordinate{Line: start, Column: 0}
	case c.Line >= endExclusive:
		return gt.Coordinate{Line: c.Line - removed, Column: c.Column}
	default:
		return c
	}
}

// removeLinesAt removes 0-based lines [start, endExclusive), dropping
// annotations on them, shifting annotations after them, and adjusting
// cursor/selection coordinates (spec.md §4.1 remove_lines).
func (e *Editor) removeLinesAt(start, endExclusive int) {
	e.shiftAnnotationsForRemove(start, endExclusive)
	e.buffer.RemoveLines(start, endExclusive)

	e.cursor = adjustCoordForRemoval(e.cursor, start, endExclusive)
	e.selStart = adjustCoordForRemoval(e.selStart, start, endExclusive)
	e.selEnd = adjustCoordForRemoval(e.selEnd, start, endExclusive)
	e.normalizeSelection()
	e.cursor = e.sanitize(e.cursor)
	e.selStart = e.sanitize(e.selStart)
	e.selEnd = e.sanitize(e.selEnd)
}

// insertBytesAtIndex inserts data (raw bytes, byte-index positioned) at
// (lineIdx, idx) and returns the byte-index position just after it. A
// '\n' byte splits the line it's written into; every other byte
// (including '\t') becomes exactly one Default-colored glyph.
func (e *Editor) insertBytesAtIndex(lineIdx, idx int, data []byte) (int, int) {
	for _, c := range data {
		if c == '\n' {
			line := e.buffer.Line(lineIdx)
			tail := append(Line(nil), line[idx:]...)
			e.buffer.ReplaceLine(lineIdx, append(Line(nil), line[:idx]...))
			e.insertLineAt(lineIdx + 1)
			e.buffer.ReplaceLine(lineIdx+1, tail)
			lineIdx++
			idx = 0
			continue
		}
		line := e.buffer.Line(lineIdx)
		newLine := make(Line, 0, len(line)+1)
		newLine = append(newLine, line[:idx]...)
		newLine = append(newLine, Glyph{Char: c, Color: gt.Default})
		newLine = append(newLine, line[idx:]...)
		e.buffer.ReplaceLine(lineIdx, newLine)
		idx++
	}
	return lineIdx, idx
}

// deleteByteIndexRange removes the byte-index range
// [(startLine,startIdx), (endLine,endIdx)) (spec.md §4.3 DeleteRange).
func (e *Editor) deleteByteIndexRange(startLine, startIdx, endLine, endIdx int) {
	if startLine == endLine {
		line := e.buffer.Line(startLine)
		newLine := append(append(Line(nil), line[:startIdx]...), line[endIdx:]...)
		e.buffer.ReplaceLine(startLine, newLine)
		return
	}
	first := e.buffer.Line(startLine)
	last := e.buffer.Line(endLine)
	merged := append(append(Line(nil), first[:startIdx]...), last[endIdx:]...)
	e.buffer.ReplaceLine(startLine, merged)
	e.removeLinesAt(startLine+1, endLine+1)
}

// insertBytesAtByteCoord and deleteByteRange operate directly on
// byte-index coordinates (Column already a byte offset); they back undo
// replay, which stores byte indices precisely so it never needs to
// re-sanitize against the current tab size.
func (e *Editor) insertBytesAtByteCoord(c gt.Coordinate, data []byte) {
	e.insertBytesAtIndex(c.Line, c.Column, data)
}

func (e *Editor) deleteByteRange(start, end gt.Coordinate) {
	e.deleteByteIndexRange(start.Line, start.Column, end.Line, end.Column)
}

// InsertAt writes bytes at coord and returns the coordinate immediately
// after the inserted text (spec.md §4.3 InsertAt). It is a no-op (save
// for returning the sanitized coord unchanged) when the editor is
// read-only.
func (e *Editor) InsertAt(coord gt.Coordinate, data []byte) gt.Coordinate {
	if e.opts.ReadOnly || len(data) == 0 {
		return e.sanitize(coord)
	}
	coord = e.sanitize(coord)
	before := e.toByteState(e.currentState())
	idx := e.charIndexOf(coord)
	addedStart := gt.Coordinate{Line: coord.Line, Column: idx}
	endLine, endIdx := e.insertBytesAtIndex(coord.Line, idx, data)
	addedEnd := gt.Coordinate{Line: endLine, Column: endIdx}
	result := gt.Coordinate{Line: endLine, Column: e.columnOf(endLine, endIdx)}

	e.cursor = result
	e.clearSelection()

	rec := UndoRecord{
		Added:      append([]byte(nil), data...),
		AddedStart: addedStart,
		AddedEnd:   addedEnd,
		Before:     before,
		After:      e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(coord.Line, result.Line)
	return result
}

// DeleteRange removes [start, end) (spec.md §4.3 DeleteRange), recording
// a single undo entry for the removed text.
func (e *Editor) DeleteRange(start, end gt.Coordinate) {
	if e.opts.ReadOnly {
		return
	}
	start, end = e.sanitize(start), e.sanitize(end)
	if end.Less(start) {
		start, end = end, start
	}
	if start == end {
		return
	}
	removed := e.textRange(start, end)
	before := e.toByteState(e.currentState())

	startIdx, endIdx := e.charIndexOf(start), e.charIndexOf(end)
	removedStart := gt.Coordinate{Line: start.Line, Column: startIdx}
	removedEnd := gt.Coordinate{Line: end.Line, Column: endIdx}
	e.deleteByteIndexRange(start.Line, startIdx, end.Line, endIdx)

	e.cursor = start
	e.clearSelection()
	rec := UndoRecord{
		Removed:      removed,
		RemovedStart: removedStart,
		RemovedEnd:   removedEnd,
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(start.Line, start.Line)
}

// textRange returns the byte string between two visual coordinates.
func (e *Editor) textRange(start, end gt.Coordinate) []byte {
	startIdx, endIdx := e.charIndexOf(start), e.charIndexOf(end)
	return e.buffer.TextRange(start.Line, startIdx, end.Line, endIdx)
}

// Text returns the byte string in [start, end) after sanitizing both
// endpoints and reordering them if necessary.
func (e *Editor) Text(start, end gt.Coordinate) []byte {
	start, end = e.sanitize(start), e.sanitize(end)
	if end.Less(start) {
		start, end = end, start
	}
	return e.textRange(start, end)
}

// deleteSelection removes the current selection (if any) and returns the
// removed bytes, leaving the cursor at the selection start.
func (e *Editor) deleteSelection() []byte {
	removed := e.textRange(e.selStart, e.selEnd)
	startIdx, endIdx := e.charIndexOf(e.selStart), e.charIndexOf(e.selEnd)
	e.deleteByteIndexRange(e.selStart.Line, startIdx, e.selEnd.Line, endIdx)
	e.cursor = e.selStart
	e.clearSelection()
	return removed
}

// leadingWhitespacePrefix returns the run of space/tab glyphs at the start of
// line, up to (but not exceeding) upToColumn visual columns.
func leadingWhitespacePrefix(line Line, tabSize, upToColumn int) []byte {
	col := 0
	i := 0
	for i < len(line) && col < upToColumn {
		c := line[i].Char
		if c != ' ' && c != '\t' {
			break
		}
		if c == '\t' {
			col += tabWidthAt(col, tabSize)
		} else {
			col++
		}
		i++
	}
	return line[:i].Bytes()
}

// EnterCharacter is the main printable/newline/tab editing path of
// spec.md §4.3. ch may be any Unicode code point up to U+10FFFF; lone
// surrogates (U+D800..U+DFFF) and NUL are rejected as a silent no-op.
func (e *Editor) EnterCharacter(ch rune, shift bool) {
	if e.opts.ReadOnly || ch == 0 || (ch >= 0xD800 && ch <= 0xDFFF) {
		return
	}

	// Converted to byte coordinates now, before any of the branches
	// below mutate the buffer and invalidate the visual-column mapping.
	before := e.toByteState(e.currentState())

	if e.HasSelection() {
		if ch == '\t' && (e.selStart.Column == 0 || e.selStart.Line != e.selEnd.Line) {
			e.blockIndent(shift, before)
			return
		}
		removed := e.deleteSelection()
		if ch == '\n' {
			e.enterNewline(removed, before)
			return
		}
		e.insertSingleChar(ch, removed, before)
		return
	}

	if ch == '\n' {
		e.enterNewline(nil, before)
		return
	}
	e.insertSingleChar(ch, nil, before)
}

// blockIndent implements the selection-is-active Tab/Shift-Tab path:
// indent or outdent every touched line as a whole (spec.md §4.3 step 1).
func (e *Editor) blockIndent(shift bool, before CursorState) {
	start, end := e.selStart, e.selEnd
	originalEndCol := end.Column

	endLine := end.Line
	if end.Column == 0 && end.Line > 0 {
		endLine--
	}
	if endLine >= e.buffer.LineCount() {
		endLine = e.buffer.LineCount() - 1
	}
	removedStart := gt.Coordinate{Line: start.Line, Column: 0}
	removedEnd := gt.Coordinate{Line: endLine, Column: e.lineMaxColumn(endLine)}
	removed := e.textRange(removedStart, removedEnd)
	removedStartByte := e.toByteCoord(removedStart)
	removedEndByte := e.toByteCoord(removedEnd)

	modified := false
	for line := start.Line; line <= endLine; line++ {
		l := e.buffer.Line(line)
		if shift {
			if len(l) == 0 {
				continue
			}
			if l[0].Char == '\t' {
				e.buffer.ReplaceLine(line, l[1:])
				modified = true
			} else {
				n := 0
				for n < e.tabSize() && n < len(l) && l[n].Char == ' ' {
					n++
				}
				if n > 0 {
					e.buffer.ReplaceLine(line, l[n:])
					modified = true
				}
			}
		} else {
			newLine := make(Line, 0, len(l)+1)
			newLine = append(newLine, Glyph{Char: '\t', Color: gt.Background})
			newLine = append(newLine, l...)
			e.buffer.ReplaceLine(line, newLine)
			modified = true
		}
	}

	if !modified {
		return
	}

	var newEnd gt.Coordinate
	var added []byte
	if originalEndCol != 0 {
		newEnd = gt.Coordinate{Line: endLine, Column: e.lineMaxColumn(endLine)}
		added = e.textRange(removedStart, newEnd)
	} else {
		newEnd = gt.Coordinate{Line: endLine + 1, Column: 0}
		rangeEnd := gt.Coordinate{Line: endLine, Column: e.lineMaxColumn(endLine)}
		added = e.textRange(removedStart, rangeEnd)
	}

	e.selStart = removedStart
	e.selEnd = newEnd
	e.cursor = newEnd

	rec := UndoRecord{
		Removed:      removed,
		RemovedStart: removedStartByte,
		RemovedEnd:   removedEndByte,
		Added:        added,
		AddedStart:   e.toByteCoord(removedStart),
		AddedEnd:     e.toByteCoord(newEnd),
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(start.Line, endLine)
}

// enterNewline splits the current line at the cursor and auto-indents
// the new line by copying the leading whitespace prefix of the original
// line up to the cursor column (spec.md §4.3 step 2).
func (e *Editor) enterNewline(removedBySelection []byte, before CursorState) {
	coord := e.cursor
	line := e.buffer.Line(coord.Line)
	prefix := leadingWhitespacePrefix(line, e.tabSize(), coord.Column)
	cindex := e.charIndexOf(coord)
	addedStart := gt.Coordinate{Line: coord.Line, Column: cindex}

	e.insertLineAt(coord.Line + 1)
	cur := e.buffer.Line(coord.Line)
	tail := append(Line(nil), cur[cindex:]...)
	e.buffer.ReplaceLine(coord.Line, cur[:cindex])

	newLine := append(Line(nil), newLineFromBytes(prefix, gt.Default)...)
	newLine = append(newLine, tail...)
	e.buffer.ReplaceLine(coord.Line+1, newLine)

	added := append([]byte{'\n'}, prefix...)
	addedEnd := gt.Coordinate{Line: coord.Line + 1, Column: len(prefix)}
	resultCol := e.columnOf(coord.Line+1, len(prefix))
	result := gt.Coordinate{Line: coord.Line + 1, Column: resultCol}

	e.cursor = result
	e.clearSelection()

	rec := UndoRecord{
		Removed:      removedBySelection,
		RemovedStart: before.SelectionStart,
		RemovedEnd:   before.SelectionEnd,
		Added:        added,
		AddedStart:   addedStart,
		AddedEnd:     addedEnd,
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(coord.Line, result.Line)
}

// insertSingleChar inserts ch (UTF-8 encoded) at the cursor. If overwrite
// is set and the cursor isn't at end of line, the existing character is
// first removed and folded into the undo record's removed patch
// (spec.md §4.3 step 3, scenario 6).
func (e *Editor) insertSingleChar(ch rune, removedBySelection []byte, before CursorState) {
	coord := e.cursor
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	encoded := buf[:n]

	line := e.buffer.Line(coord.Line)
	cindex := e.charIndexOf(coord)

	removed := removedBySelection
	removedStart := before.SelectionStart
	removedEnd := before.SelectionEnd

	if e.opts.Overwrite && cindex < len(line) {
		charLen := line.utf8SeqLength(cindex)
		removedStart = gt.Coordinate{Line: coord.Line, Column: cindex}
		removedEnd = gt.Coordinate{Line: coord.Line, Column: cindex + charLen}
		overwritten := append([]byte(nil), line[cindex:cindex+charLen].Bytes()...)
		if removed == nil {
			removed = overwritten
		} else {
			removed = append(removed, overwritten...)
		}
		newLine := append(append(Line(nil), line[:cindex]...), line[cindex+charLen:]...)
		e.buffer.ReplaceLine(coord.Line, newLine)
		line = e.buffer.Line(coord.Line)
	}

	newLine := make(Line, 0, len(line)+n)
	newLine = append(newLine, line[:cindex]...)
	newLine = append(newLine, newLineFromBytes(encoded, gt.Default)...)
	newLine = append(newLine, line[cindex:]...)
	e.buffer.ReplaceLine(coord.Line, newLine)

	addedStart := gt.Coordinate{Line: coord.Line, Column: cindex}
	addedEnd := gt.Coordinate{Line: coord.Line, Column: cindex + n}
	result := gt.Coordinate{Line: coord.Line, Column: e.columnOf(coord.Line, cindex+n)}
	e.cursor = result
	e.clearSelection()

	rec := UndoRecord{
		Removed:      removed,
		RemovedStart: removedStart,
		RemovedEnd:   removedEnd,
		Added:        encoded,
		AddedStart:   addedStart,
		AddedEnd:     addedEnd,
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(coord.Line, result.Line)
}

// Backspace implements spec.md §4.3 Backspace.
func (e *Editor) Backspace() {
	if e.opts.ReadOnly {
		return
	}
	// Converted to byte coordinates now, before any mutation below
	// shifts or shrinks the buffer out from under them.
	before := e.toByteState(e.currentState())

	if e.HasSelection() {
		removed := e.deleteSelection()
		e.finishSimpleEdit(removed, before.SelectionStart, before.SelectionEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
		return
	}
	if e.cursor.Line == 0 && e.cursor.Column == 0 {
		return
	}
	if e.cursor.Column == 0 {
		prevLine := e.cursor.Line - 1
		joinCol := e.lineMaxColumn(prevLine)
		prev := e.buffer.Line(prevLine)
		cur := e.buffer.Line(e.cursor.Line)
		// The removed patch is the conceptual newline joining prevLine
		// to the line being merged away; byte index len(prev) is the
		// boundary between them both before and after the merge, so
		// these coordinates need no further conversion, and the line
		// index prevLine+1 only needs to be valid again once a later
		// Redo has re-split prevLine back into two lines via the '\n'
		// in Added/Removed — never dereferenced against the buffer as
		// it stands right after this join.
		removedStart := gt.Coordinate{Line: prevLine, Column: len(prev)}
		removedEnd := gt.Coordinate{Line: prevLine + 1, Column: 0}
		merged := append(append(Line(nil), prev...), cur...)
		e.buffer.ReplaceLine(prevLine, merged)
		e.migrateAnnotationsLine(e.cursor.Line, prevLine)
		e.removeLinesAt(e.cursor.Line, e.cursor.Line+1)
		e.cursor = gt.Coordinate{Line: prevLine, Column: joinCol}
		e.clearSelection()
		e.finishSimpleEdit([]byte("\n"), removedStart, removedEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
		e.afterMutation(prevLine, prevLine)
		return
	}

	line := e.buffer.Line(e.cursor.Line)
	idx := e.charIndexOf(e.cursor)
	if idx > 0 && line[idx-1].Char == '\t' {
		removed := []byte{'\t'}
		startVisual := gt.Coordinate{Line: e.cursor.Line, Column: e.columnOf(e.cursor.Line, idx-1)}
		removedStart := gt.Coordinate{Line: e.cursor.Line, Column: idx - 1}
		removedEnd := gt.Coordinate{Line: e.cursor.Line, Column: idx}
		newLine := append(append(Line(nil), line[:idx-1]...), line[idx:]...)
		e.buffer.ReplaceLine(e.cursor.Line, newLine)
		e.cursor = startVisual
		e.clearSelection()
		e.finishSimpleEdit(removed, removedStart, removedEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
		return
	}

	start := idx - line.utf8SeqLength(precedingLeadIndex(line, idx))
	removed := append([]byte(nil), line[start:idx].Bytes()...)
	startVisual := gt.Coordinate{Line: e.cursor.Line, Column: e.columnOf(e.cursor.Line, start)}
	removedStart := gt.Coordinate{Line: e.cursor.Line, Column: start}
	removedEnd := gt.Coordinate{Line: e.cursor.Line, Column: idx}
	newLine := append(append(Line(nil), line[:start]...), line[idx:]...)
	e.buffer.ReplaceLine(e.cursor.Line, newLine)
	e.cursor = startVisual
	e.clearSelection()
	e.finishSimpleEdit(removed, removedStart, removedEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
}

// precedingLeadIndex walks back from idx to the start of the multibyte
// sequence that ends at idx (i.e. skips continuation bytes).
func precedingLeadIndex(line Line, idx int) int {
	i := idx - 1
	for i > 0 && isContinuationByte(line[i].Char) {
		i--
	}
	return i
}

// finishSimpleEdit is a small helper shared by Backspace/Delete to build
// and record a one-shot undo entry. removedStart/removedEnd/addedStart/
// addedEnd and before must already be expressed in byte-index
// coordinates, captured by the caller at the point each one was still
// valid against the buffer — finishSimpleEdit runs after the mutation
// and does no conversion of its own.
func (e *Editor) finishSimpleEdit(removed []byte, removedStart, removedEnd gt.Coordinate, added []byte, addedStart, addedEnd gt.Coordinate, before CursorState) {
	rec := UndoRecord{
		Removed:      removed,
		RemovedStart: removedStart,
		RemovedEnd:   removedEnd,
		Added:        added,
		AddedStart:   addedStart,
		AddedEnd:     addedEnd,
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(removedStart.Line, removedEnd.Line)
}

// Delete implements spec.md §4.3 Delete (forward delete).
func (e *Editor) Delete() {
	if e.opts.ReadOnly {
		return
	}
	before := e.toByteState(e.currentState())

	if e.HasSelection() {
		removed := e.deleteSelection()
		e.finishSimpleEdit(removed, before.SelectionStart, before.SelectionEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
		return
	}

	line := e.buffer.Line(e.cursor.Line)
	idx := e.charIndexOf(e.cursor)
	if idx >= len(line) {
		if e.cursor.Line+1 >= e.buffer.LineCount() {
			return
		}
		nextLine := e.cursor.Line + 1
		next := e.buffer.Line(nextLine)
		removedStart := gt.Coordinate{Line: e.cursor.Line, Column: idx}
		removedEnd := gt.Coordinate{Line: e.cursor.Line + 1, Column: 0}
		merged := append(append(Line(nil), line...), next...)
		e.buffer.ReplaceLine(e.cursor.Line, merged)
		e.migrateAnnotationsLine(nextLine, e.cursor.Line)
		e.removeLinesAt(nextLine, nextLine+1)
		e.finishSimpleEdit([]byte("\n"), removedStart, removedEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
		return
	}

	seqLen := line.utf8SeqLength(idx)
	removed := append([]byte(nil), line[idx:idx+seqLen].Bytes()...)
	removedStart := gt.Coordinate{Line: e.cursor.Line, Column: idx}
	removedEnd := gt.Coordinate{Line: e.cursor.Line, Column: idx + seqLen}
	newLine := append(append(Line(nil), line[:idx]...), line[idx+seqLen:]...)
	e.buffer.ReplaceLine(e.cursor.Line, newLine)
	e.finishSimpleEdit(removed, removedStart, removedEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
}

// ClearText removes every line, leaving one empty line, and resets
// cursor/selection to (0,0) (spec.md §4.3 ClearText).
func (e *Editor) ClearText() {
	if e.opts.ReadOnly {
		return
	}
	before := e.toByteState(e.currentState())
	last := e.buffer.LineCount() - 1
	// The removed patch's end is the byte length of the last line,
	// computed directly rather than via columnOf/len(removed) (which
	// is the joined multi-line text's total length, not a position on
	// a single line) and before RemoveLines below makes last an
	// out-of-range index.
	removedEnd := gt.Coordinate{Line: last, Column: len(e.buffer.Line(last))}
	removed := e.textRange(gt.Coordinate{Line: 0, Column: 0}, gt.Coordinate{Line: last, Column: e.lineMaxColumn(last)})

	e.buffer.RemoveLines(0, e.buffer.LineCount())
	e.errorMarkers = map[int]string{}
	e.breakpoints = map[int]struct{}{}
	e.cursor = gt.Coordinate{}
	e.selStart = gt.Coordinate{}
	e.selEnd = gt.Coordinate{}

	rec := UndoRecord{
		Removed:      removed,
		RemovedStart: gt.Coordinate{Line: 0, Column: 0},
		RemovedEnd:   removedEnd,
		Before:       before,
		After:        e.toByteState(e.currentState()),
	}
	e.addUndo(rec)
	e.afterMutation(0, 0)
}
