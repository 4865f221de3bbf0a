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
	"fmt"
	"sort"
	"strings"
)

// GetEditorDump returns a deterministic, human-readable dump of the
// buffer, cursor, selection, breakpoints, and error markers, grounded on
// the original CodeEditor::GetEditorDump (spec.md §5 SUPPLEMENTED
// FEATURES). It is meant for tests and debugging, not for display.
func (e *Editor) GetEditorDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cursor=%d:%d\n", e.cursor.Line, e.cursor.Column)
	fmt.Fprintf(&b, "selection=%d:%d..%d:%d\n", e.selStart.Line, e.selStart.Column, e.selEnd.Line, e.selEnd.Column)
	fmt.Fprintf(&b, "lines=%d\n", e.buffer.LineCount())
	for i := 0; i < e.buffer.LineCount(); i++ {
		fmt.Fprintf(&b, "%4d: %q\n", i, e.buffer.Line(i).Bytes())
	}

	bps := make([]int, 0, len(e.breakpoints))
	for line := range e.breakpoints {
		bps = append(bps, line)
	}
	sort.Ints(bps)
	fmt.Fprintf(&b, "breakpoints=%v\n", bps)

	errLines := make([]int, 0, len(e.errorMarkers))
	for line := range e.errorMarkers {
		errLines = append(errLines, line)
	}
	sort.Ints(errLines)
	for _, line := range errLines {
		fmt.Fprintf(&b, "error[%d]=%q\n", line, e.errorMarkers[line])
	}
	return b.String()
}

// EnsureCursorVisible computes a new scroll offset (first visible line)
// given the current one and a viewport height, so the cursor's line
// stays on screen (spec.md §5, ported from window.go's
// adjustDisplayOffsetForScrolling).
func (e *Editor) EnsureCursorVisible(currentOffset, viewportRows int) int {
	if viewportRows <= 0 {
		return currentOffset
	}
	if e.cursor.Line < currentOffset {
		return e.cursor.Line
	}
	if e.cursor.Line >= currentOffset+viewportRows {
		return e.cursor.Line - viewportRows + 1
	}
	return currentOffset
}
