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
	"bytes"
	"errors"

	gt "github.com/AMS21/dlxedit/internal/types"
)

// ErrReadOnly is returned by Buffer mutators when the buffer is read-only.
// It is never surfaced through Editor's public API (§7: read-only
// mutations are silent no-ops there), but Buffer itself reports it so
// that callers composing several buffer operations can tell whether any
// of them actually ran.
var ErrReadOnly = errors.New("dlxedit: buffer is read-only")

// A Buffer is a non-empty ordered sequence of Lines (spec.md invariant B1).
type Buffer struct {
	lines    []Line
	readOnly bool
}

// NewBuffer returns a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []Line{{}}}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index i. The caller must not retain the
// returned slice across a mutating call.
func (b *Buffer) Line(i int) Line {
	return b.lines[i]
}

// SetReadOnly toggles whether mutating methods are rejected.
func (b *Buffer) SetReadOnly(v bool) {
	b.readOnly = v
}

// ReadOnly reports the buffer's read-only flag.
func (b *Buffer) ReadOnly() bool {
	return b.readOnly
}

// InsertLine inserts a new empty line at index (0 <= index <= LineCount()).
func (b *Buffer) InsertLine(index int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[index+1:], b.lines[index:])
	b.lines[index] = Line{}
	return nil
}

// RemoveLines removes lines [start, endExclusive). The buffer is never
// left with zero lines: if the whole buffer would be emptied, a single
// blank line is kept (invariant B1).
func (b *Buffer) RemoveLines(start, endExclusive int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.lines = append(b.lines[:start], b.lines[endExclusive:]...)
	if len(b.lines) == 0 {
		b.lines = []Line{{}}
	}
	return nil
}

// ReplaceLine overwrites the line at index.
func (b *Buffer) ReplaceLine(index int, l Line) {
	b.lines[index] = l
}

// Bytes returns the full buffer content: lines joined by '\n', no
// trailing newline.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, l := range b.lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(l.Bytes())
	}
	return buf.Bytes()
}

// TextRange returns the byte string between (startLine, startIdx) and
// (endLine, endIdx), both byte indices into their respective lines, with
// '\n' joining intermediate lines.
func (b *Buffer) TextRange(startLine, startIdx, endLine, endIdx int) []byte {
	if startLine == endLine {
		return append([]byte(nil), b.lines[startLine][startIdx:endIdx].Bytes()...)
	}
	var buf bytes.Buffer
	buf.Write(b.lines[startLine][startIdx:].Bytes())
	for line := startLine + 1; line < endLine; line++ {
		buf.WriteByte('\n')
		buf.Write(b.lines[line].Bytes())
	}
	buf.WriteByte('\n')
	buf.Write(b.lines[endLine][:endIdx].Bytes())
	return buf.Bytes()
}

// SetText replaces the whole buffer with the parsed content of data.
// Carriage returns and control bytes other than '\n' and '\t' are
// discarded; '\n' starts a new line. The result always has at least one
// line (invariant B1).
func (b *Buffer) SetText(data []byte) {
	lines := make([]Line, 0, 1)
	cur := Line{}
	for _, c := range data {
		switch {
		case c == '\n':
			lines = append(lines, cur)
			cur = Line{}
		case c == '\r':
			// normalize CRLF/CR to LF by dropping the CR
		case c == '\t':
			cur = append(cur, Glyph{Char: c, Color: gt.Default})
		case c < 0x20 || c == 0x7f:
			// drop other control bytes
		default:
			cur = append(cur, Glyph{Char: c, Color: gt.Default})
		}
	}
	lines = append(lines, cur)
	b.lines = lines
}
