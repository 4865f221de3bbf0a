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

// Named regression tests for specific mutation sequences that crashed
// earlier iterations of this editor during development, in the spirit
// of original_source/tests/DLXEmuTest/src/CodeEditorCrashes.test.cpp
// (spec.md §8, SPEC_FULL §5). Each test is a single repro, not a
// table — keeping them separate makes `go test -run TestCrash7` useful.

package editor

import (
	"testing"

	gt "github.com/AMS21/dlxedit/internal/types"
)

func TestCrash1EmptyBufferDeleteRange(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.DeleteRange(gt.Coordinate{Line: 0, Column: 0}, gt.Coordinate{Line: 0, Column: 0})
	if got := string(e.GetText()); got != "" {
		t.Fatalf("GetText() = %q, want empty", got)
	}
}

func TestCrash2BackspaceAtBufferOrigin(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.Backspace()
	e.Backspace()
	if e.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", e.LineCount())
	}
}

func TestCrash3TabSanitizeThenDelete(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("\t\tx"))
	mid := e.sanitize(gt.Coordinate{Line: 0, Column: 5}) // lands inside the second tab
	e.SetCursorPosition(mid)
	e.Delete()
	e.Backspace()
}

func TestCrash4UndoPastBufferStart(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	for i := 0; i < 10; i++ {
		e.Undo(1)
	}
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestCrash5DeleteRangeSpanningEntireBuffer(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("one\ntwo\nthree"))
	last := e.LineCount() - 1
	e.DeleteRange(gt.Coordinate{Line: 0, Column: 0}, gt.Coordinate{Line: last, Column: e.lineMaxColumn(last)})
	if e.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1 (invariant B1)", e.LineCount())
	}
	e.Undo(1)
	if got, want := string(e.GetText()), "one\ntwo\nthree"; got != want {
		t.Fatalf("GetText() after undo = %q, want %q", got, want)
	}
}

func TestCrash6BlockIndentOnEmptySelection(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("x"))
	e.EnterCharacter('\t', false) // no selection: plain tab insert, not block indent
	if got, want := string(e.GetText()), "\tx"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestCrash7AnnotationOnLastLineAfterRemoveLines(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb\nc"))
	e.AddErrorMarker(3, "marker on last line")
	e.SetSelection(gt.Coordinate{Line: 1, Column: 0}, gt.Coordinate{Line: 2, Column: 1}, gt.SelectionNormal)
	e.Delete()
	_ = e.ErrorMarkers() // must not panic walking a shrunk buffer
}
