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

// tabWidthAt returns how many columns a tab at visual column col consumes
// before reaching the next tab stop.
func tabWidthAt(col, tabSize int) int {
	return tabSize - (col % tabSize)
}

// charIndexOf walks line expanding tabs and multibyte sequences until the
// visual column reaches target, returning the byte offset at which that
// happens (spec.md §4.2 char_index_of). A target that falls inside a tab
// yields the tab's own byte offset, so the result never maps back past
// target.
func charIndexOf(line Line, tabSize, target int) int {
	column := 0
	i := 0
	for i < len(line) {
		if column >= target {
			break
		}
		if line[i].Char == '\t' {
			w := tabWidthAt(column, tabSize)
			if column+w > target {
				break
			}
			column += w
			i++
		} else {
			column++
			i += line.utf8SeqLength(i)
		}
	}
	return i
}

// columnOf is the inverse walk: the visual column reached after consuming
// byteOffset bytes of line (spec.md §4.2 column_of).
func columnOf(line Line, tabSize, byteOffset int) int {
	column := 0
	i := 0
	for i < len(line) && i < byteOffset {
		if line[i].Char == '\t' {
			column += tabWidthAt(column, tabSize)
			i++
		} else {
			column++
			i += line.utf8SeqLength(i)
		}
	}
	return column
}

// lineMaxColumn returns the visual width of line.
func lineMaxColumn(line Line, tabSize int) int {
	return columnOf(line, tabSize, len(line))
}

// sanitize projects an arbitrary coordinate onto a valid cursor position:
// the line is clamped to [0, lines-1], the column is clamped to the
// line's max column, and a column landing inside a tab is snapped back to
// the tab's starting column (spec.md §3 C1/C2, §4.2 sanitize).
func (e *Editor) sanitize(c gt.Coordinate) gt.Coordinate {
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line >= e.buffer.LineCount() {
		c.Line = e.buffer.LineCount() - 1
		c.Column = lineMaxColumn(e.buffer.Line(c.Line), e.tabSize())
		return c
	}
	line := e.buffer.Line(c.Line)
	tabSize := e.tabSize()
	if c.Column < 0 {
		c.Column = 0
	}
	idx := charIndexOf(line, tabSize, c.Column)
	snapped := columnOf(line, tabSize, idx)
	return gt.Coordinate{Line: c.Line, Column: snapped}
}

func (e *Editor) charIndexOf(c gt.Coordinate) int {
	return charIndexOf(e.buffer.Line(c.Line), e.tabSize(), c.Column)
}

func (e *Editor) columnOf(line, byteOffset int) int {
	return columnOf(e.buffer.Line(line), e.tabSize(), byteOffset)
}

func (e *Editor) lineMaxColumn(line int) int {
	return lineMaxColumn(e.buffer.Line(line), e.tabSize())
}

// advance moves a coordinate one character forward, crossing into the
// next line at end-of-line but never past the last line.
func (e *Editor) advance(c gt.Coordinate) gt.Coordinate {
	line := e.buffer.Line(c.Line)
	idx := e.charIndexOf(c)
	if idx < len(line) {
		step := line.utf8SeqLength(idx)
		idx += step
		if idx > len(line) {
			idx = len(line)
		}
		return gt.Coordinate{Line: c.Line, Column: e.columnOf(c.Line, idx)}
	}
	if c.Line+1 < e.buffer.LineCount() {
		return gt.Coordinate{Line: c.Line + 1, Column: 0}
	}
	return c
}
