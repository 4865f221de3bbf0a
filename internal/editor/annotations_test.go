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
	"testing"

	gt "github.com/AMS21/dlxedit/internal/types"
)

func TestAddBreakpointRejectsOutOfRange(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb\nc"))
	if e.AddBreakpoint(0) {
		t.Fatalf("AddBreakpoint(0) should be rejected (1-based, invariant A2)")
	}
	if e.AddBreakpoint(4) {
		t.Fatalf("AddBreakpoint(4) should be rejected: only 3 lines")
	}
	if !e.AddBreakpoint(2) {
		t.Fatalf("AddBreakpoint(2) should succeed")
	}
}

func TestToggleBreakpoint(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb"))
	e.ToggleBreakpoint(1)
	if _, ok := e.Breakpoints()[1]; !ok {
		t.Fatalf("expected breakpoint on line 1 after toggle")
	}
	e.ToggleBreakpoint(1)
	if _, ok := e.Breakpoints()[1]; ok {
		t.Fatalf("expected breakpoint cleared after second toggle")
	}
}

func TestErrorMarkersShiftOnLineInsert(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb\nc"))
	e.AddErrorMarker(2, "bad line")
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 1})
	e.EnterCharacter('\n', false) // splits line 0, pushing old line 1 ("b") down to line 2
	if _, ok := e.ErrorMarkers()[2]; ok {
		t.Fatalf("marker should have shifted off line 2")
	}
	if _, ok := e.ErrorMarkers()[3]; !ok {
		t.Fatalf("marker should now be on line 3")
	}
}

func TestErrorMarkerMigratesOnLineJoin(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb\nc"))
	e.AddErrorMarker(3, "bad line") // on "c" (0-based line 2), which Backspace below merges away
	e.SetCursorPosition(gt.Coordinate{Line: 2, Column: 0})
	e.Backspace() // joins "c" into "b" (0-based line 1, 1-based line 2)
	if _, ok := e.ErrorMarkers()[3]; ok {
		t.Fatalf("marker should no longer be on line 3, the buffer only has %d lines", e.LineCount())
	}
	if _, ok := e.ErrorMarkers()[2]; !ok {
		t.Fatalf("marker should have migrated onto line 2 (the merge target), got %v", e.ErrorMarkers())
	}
}

func TestSetErrorMarkersAtomicRejection(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb"))
	e.AddErrorMarker(1, "first")
	ok := e.SetErrorMarkers(map[int]string{1: "x", 99: "out of range"})
	if ok {
		t.Fatalf("SetErrorMarkers should reject the whole call on any out-of-range key")
	}
	if got := e.ErrorMarkers()[1]; got != "first" {
		t.Fatalf("rejected SetErrorMarkers must not have partially applied; marker[1] = %q", got)
	}
}
