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

func TestUndoRedoRoundTripsInsert(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.InsertAt(gt.Coordinate{Line: 0, Column: 1}, []byte("XYZ"))
	if got, want := string(e.GetText()), "aXYZbc"; got != want {
		t.Fatalf("after insert: GetText() = %q, want %q", got, want)
	}
	e.Undo(1)
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("after undo: GetText() = %q, want %q", got, want)
	}
	e.Redo(1)
	if got, want := string(e.GetText()), "aXYZbc"; got != want {
		t.Fatalf("after redo: GetText() = %q, want %q", got, want)
	}
}

func TestUndoRestoresCursor(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 1})
	e.EnterCharacter('Z', false)
	e.Undo(1)
	if got, want := e.Cursor(), (gt.Coordinate{Line: 0, Column: 1}); got != want {
		t.Fatalf("cursor after undo = %+v, want %+v", got, want)
	}
}

func TestUndoSurvivesTabSizeChange(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("\tabc"))
	e.InsertAt(gt.Coordinate{Line: 0, Column: e.lineMaxColumn(0)}, []byte("X"))
	before := string(e.GetText())

	opts := e.Options()
	opts.TabSize = 8
	e.SetOptions(opts)

	e.Undo(1)
	opts.TabSize = 4
	e.SetOptions(opts)
	e.Redo(1)
	if got := string(e.GetText()); got != before {
		t.Fatalf("GetText() after tab-size churn = %q, want %q", got, before)
	}
}

func TestCanUndoCanRedo(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	if e.CanUndo() || e.CanRedo() {
		t.Fatalf("fresh editor should not have undo/redo available")
	}
	e.EnterCharacter('x', false)
	if !e.CanUndo() || e.CanRedo() {
		t.Fatalf("after one edit: CanUndo=%v CanRedo=%v, want true/false", e.CanUndo(), e.CanRedo())
	}
	e.Undo(1)
	if e.CanUndo() || !e.CanRedo() {
		t.Fatalf("after undo: CanUndo=%v CanRedo=%v, want false/true", e.CanUndo(), e.CanRedo())
	}
}

func TestUndoPastStartIsNoOp(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.Undo(5)
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestReadOnlyDisablesUndo(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.EnterCharacter('x', false)
	e.SetReadOnly(true)
	if e.CanUndo() {
		t.Fatalf("CanUndo() should be false while read-only")
	}
}
