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

// A Glyph is a single byte with an attached color tag. Lines are built
// from Glyphs rather than runes so that a partially-written multibyte
// sequence is still representable mid-edit (spec.md §3).
type Glyph struct {
	Char  byte
	Color gt.PaletteIndex
}

// A Line is an ordered sequence of Glyphs. It never stores the newline
// that separates it from the next line.
type Line []Glyph

// Bytes returns the raw byte content of the line.
func (l Line) Bytes() []byte {
	b := make([]byte, len(l))
	for i, g := range l {
		b[i] = g.Char
	}
	return b
}

func newLineFromBytes(b []byte, color gt.PaletteIndex) Line {
	l := make(Line, len(b))
	for i, c := range b {
		l[i] = Glyph{Char: c, Color: color}
	}
	return l
}

func isLeadByte(b byte) bool {
	return b&0xC0 != 0x80
}

func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

// utf8SeqLength returns the number of bytes in the UTF-8 sequence that
// starts with lead, clamped to what's actually present in the line from
// index i onward (a malformed/truncated sequence never reads past the end).
func (l Line) utf8SeqLength(i int) int {
	if i >= len(l) {
		return 0
	}
	n := 1
	for n < 4 && i+n < len(l) && isContinuationByte(l[i+n].Char) {
		n++
	}
	return n
}
