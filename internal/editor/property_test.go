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

// A table-driven property check over a fixed mutation alphabet
// (spec.md §8): after every step, invariants B1/C1/C2/A1/A2 must hold.
// The corpus never reaches for testing/quick or a property-testing
// library (SPEC_FULL §3), so this is plain table-driven testing.T, not
// a fuzz harness.

package editor

import (
	"testing"

	gt "github.com/AMS21/dlxedit/internal/types"
)

type mutation func(e *Editor)

func mutationAlphabet() []mutation {
	return []mutation{
		func(e *Editor) { e.EnterCharacter('x', false) },
		func(e *Editor) { e.EnterCharacter('\n', false) },
		func(e *Editor) { e.EnterCharacter('\t', false) },
		func(e *Editor) { e.MoveRight(1, false, false) },
		func(e *Editor) { e.MoveLeft(1, true, false) },
		func(e *Editor) { e.MoveDown(1, false) },
		func(e *Editor) { e.MoveUp(1, true) },
		func(e *Editor) { e.Backspace() },
		func(e *Editor) { e.Delete() },
		func(e *Editor) { e.Undo(1) },
		func(e *Editor) { e.Redo(1) },
		func(e *Editor) {
			opts := e.Options()
			opts.TabSize = gt.ClampTabSize(opts.TabSize + 3)
			e.SetOptions(opts)
		},
		func(e *Editor) { e.AddBreakpoint(e.Cursor().Line + 1) },
		func(e *Editor) { e.AddErrorMarker(e.Cursor().Line+1, "x") },
		func(e *Editor) { e.SelectWordUnderCursor() },
	}
}

func checkInvariants(t *testing.T, e *Editor, step int) {
	t.Helper()
	if e.LineCount() < 1 {
		t.Fatalf("step %d: invariant B1 violated: LineCount() = %d", step, e.LineCount())
	}
	cur := e.Cursor()
	if cur.Line < 0 || cur.Line >= e.LineCount() {
		t.Fatalf("step %d: invariant C1 violated: cursor line %d out of [0,%d)", step, cur.Line, e.LineCount())
	}
	if cur.Column < 0 || cur.Column > e.lineMaxColumn(cur.Line) {
		t.Fatalf("step %d: invariant C1 violated: cursor column %d out of [0,%d]", step, cur.Column, e.lineMaxColumn(cur.Line))
	}
	snapped := e.sanitize(cur)
	if snapped != cur {
		t.Fatalf("step %d: invariant C2 violated: cursor %+v isn't a sanitize fixed point (got %+v)", step, cur, snapped)
	}
	for line := range e.ErrorMarkers() {
		if !e.lineInRange(line) {
			t.Fatalf("step %d: invariant A1 violated: error marker on out-of-range line %d", step, line)
		}
	}
	for line := range e.Breakpoints() {
		if !e.lineInRange(line) {
			t.Fatalf("step %d: invariant A2 violated: breakpoint on out-of-range line %d", step, line)
		}
	}
}

func TestInvariantsHoldAcrossMutationSequence(t *testing.T) {
	seeds := []string{
		"",
		"x",
		"abc\ndef\nghi",
		"\t\tindented\nplain",
		"line with trailing\n",
	}
	alphabet := mutationAlphabet()

	for _, seed := range seeds {
		e := NewEditor(gt.DefaultOptions())
		e.SetText([]byte(seed))
		for step, m := range alphabet {
			for repeat := 0; repeat < 3; repeat++ {
				m(e)
				checkInvariants(t, e, step)
			}
		}
	}
}
