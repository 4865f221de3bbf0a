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

// The colorizer driver keeps a dirty line range [colorRangeMin,
// colorRangeMax] and re-tokenizes+repaints only when asked and only if
// that range is non-empty, rather than on every keystroke (spec.md §4.6). markDirty widens the
// range; Colorize (or Refresh) narrows it back to empty once it has
// repainted.

// markDirty widens the dirty range to cover [fromLine, toLine], clamped
// to the buffer's current bounds.
func (e *Editor) markDirty(fromLine, toLine int) {
	if fromLine > toLine {
		fromLine, toLine = toLine, fromLine
	}
	if fromLine < 0 {
		fromLine = 0
	}
	last := e.buffer.LineCount() - 1
	if toLine > last {
		toLine = last
	}
	if e.colorRangeMax < e.colorRangeMin {
		// range was empty; start fresh
		e.colorRangeMin, e.colorRangeMax = fromLine, toLine
		return
	}
	if fromLine < e.colorRangeMin {
		e.colorRangeMin = fromLine
	}
	if toLine > e.colorRangeMax {
		e.colorRangeMax = toLine
	}
}

// DirtyRange reports the current dirty line range. When nothing is
// dirty, ok is false.
func (e *Editor) DirtyRange() (min, max int, ok bool) {
	if e.colorRangeMax < e.colorRangeMin {
		return 0, 0, false
	}
	return e.colorRangeMin, e.colorRangeMax, true
}

// Colorize re-tokenizes the whole buffer through the installed Parser
// and repaints glyph colors, then clears the dirty range. It is a no-op
// if the colorizer is disabled, no Parser is installed, or nothing is
// dirty. The colorizer always tokenizes the whole buffer rather than
// just the dirty range, since DLX has no incremental/resumable lexer
// state to restart from mid-buffer; the dirty range only gates whether
// a repaint is worth doing at all.
func (e *Editor) Colorize() {
	if !e.opts.ColorizerEnabled || e.parser == nil {
		return
	}
	if _, _, dirty := e.DirtyRange(); !dirty {
		return
	}
	e.Refresh()
}

// Refresh forces a full re-tokenize and repaint regardless of the dirty
// range, for tests and for an explicit "recolor now" host command.
func (e *Editor) Refresh() {
	if e.parser == nil {
		return
	}
	source := e.buffer.Bytes()
	tokens, errs := e.parser.Tokenize(source)

	offsets := e.lineByteOffsets()
	for _, tok := range tokens {
		e.paintRange(offsets, tok.Start, tok.End, PaletteIndexForToken(tok.Kind))
	}

	if e.checkComments {
		e.ClearErrorMarkers()
		for _, pe := range errs {
			e.AddErrorMarker(pe.Line, pe.Message)
		}
	}

	e.colorRangeMin, e.colorRangeMax = 1, 0 // empty range
}

// lineByteOffsets returns, for each line, the byte offset its first byte
// would occupy in buffer.Bytes()'s '\n'-joined representation.
func (e *Editor) lineByteOffsets() []int {
	offsets := make([]int, e.buffer.LineCount())
	acc := 0
	for i := 0; i < e.buffer.LineCount(); i++ {
		offsets[i] = acc
		acc += len(e.buffer.Line(i)) + 1 // +1 for the '\n' joiner
	}
	return offsets
}

// paintRange sets the color of every glyph whose offset in the joined
// buffer falls in [start, end) to color, translating back from the flat
// offset to (line, byte index) via offsets (which is sorted ascending).
func (e *Editor) paintRange(offsets []int, start, end int, color gt.PaletteIndex) {
	line := lineForOffset(offsets, start)
	for line < len(offsets) {
		lineStart := offsets[line]
		l := e.buffer.Line(line)
		lineEnd := lineStart + len(l)
		if lineStart >= end {
			break
		}
		loByte := 0
		if start > lineStart {
			loByte = start - lineStart
		}
		hiByte := len(l)
		if end < lineEnd {
			hiByte = end - lineStart
		}
		if loByte < hiByte {
			for i := loByte; i < hiByte && i < len(l); i++ {
				l[i].Color = color
			}
		}
		line++
	}
}

// lineForOffset returns the index of the last line whose starting
// offset is <= target.
func lineForOffset(offsets []int, target int) int {
	lo, hi := 0, len(offsets)-1
	result := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if offsets[mid] <= target {
			result = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}
