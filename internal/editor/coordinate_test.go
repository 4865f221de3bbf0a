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

func TestTabExpandsToNextStop(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("\tx"))
	// tab_size is 4: the tab consumes columns 0..3, 'x' lands at column 4.
	if got, want := e.columnOf(0, 2), 5; got != want {
		t.Fatalf("columnOf after tab+char = %d, want %d", got, want)
	}
}

func TestCharIndexOfRoundTrip(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("ab\tcd"))
	for col := 0; col <= e.lineMaxColumn(0); col++ {
		idx := e.charIndexOf(gt.Coordinate{Line: 0, Column: col})
		back := e.columnOf(0, idx)
		if back > col {
			t.Fatalf("columnOf(charIndexOf(%d)) = %d, overshoots", col, back)
		}
	}
}

func TestSanitizeSnapsInsideTab(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("\tx"))
	// Column 2 is inside the tab's [0,4) span; sanitize should snap to 0.
	got := e.sanitize(gt.Coordinate{Line: 0, Column: 2})
	if got.Column != 0 {
		t.Fatalf("sanitize snapped to column %d, want 0", got.Column)
	}
}

func TestSanitizeClampsOutOfRangeLine(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc\ndef"))
	got := e.sanitize(gt.Coordinate{Line: 99, Column: 0})
	if got.Line != 1 {
		t.Fatalf("sanitize clamped line to %d, want 1", got.Line)
	}
	if got.Column != e.lineMaxColumn(1) {
		t.Fatalf("sanitize clamped column to %d, want line max %d", got.Column, e.lineMaxColumn(1))
	}
}

func TestMultibyteCharCountsAsOneColumn(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\xc3\xa9b")) // "a", U+00E9, "b"
	if got, want := e.lineMaxColumn(0), 3; got != want {
		t.Fatalf("lineMaxColumn = %d, want %d (one column per multibyte char)", got, want)
	}
}

func TestAdvanceCrossesLineBoundary(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("ab\ncd"))
	c := e.advance(gt.Coordinate{Line: 0, Column: 2})
	if c.Line != 1 || c.Column != 0 {
		t.Fatalf("advance at end of line 0 = %+v, want {1 0}", c)
	}
}
