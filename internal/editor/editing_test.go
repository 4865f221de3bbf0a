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

func TestInsertAtSplitsLineOnNewline(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abcd"))
	e.InsertAt(gt.Coordinate{Line: 0, Column: 2}, []byte("X\nY"))
	if got, want := string(e.GetText()), "abX\nYcd"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestDeleteRangeAcrossLines(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("hello\nworld"))
	e.DeleteRange(gt.Coordinate{Line: 0, Column: 3}, gt.Coordinate{Line: 1, Column: 2})
	if got, want := string(e.GetText()), "helrld"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("foo\nbar"))
	e.SetCursorPosition(gt.Coordinate{Line: 1, Column: 0})
	e.Backspace()
	if got, want := string(e.GetText()), "foobar"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
	if e.Cursor().Line != 0 || e.Cursor().Column != 3 {
		t.Fatalf("cursor after join = %+v, want {0 3}", e.Cursor())
	}
}

func TestBackspaceAtOriginIsNoOp(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 0})
	e.Backspace()
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestDeleteAtEndOfBufferIsNoOp(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 3})
	e.Delete()
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestEnterCharacterAutoIndent(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("  abc"))
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 5})
	e.EnterCharacter('\n', false)
	if got, want := string(e.GetText()), "  abc\n  "; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestEnterCharacterReplacesSelection(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abcdef"))
	e.SetSelection(gt.Coordinate{Line: 0, Column: 1}, gt.Coordinate{Line: 0, Column: 4}, gt.SelectionNormal)
	e.EnterCharacter('Z', false)
	if got, want := string(e.GetText()), "aZef"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestEnterCharacterOverwriteMode(t *testing.T) {
	opts := gt.DefaultOptions()
	opts.Overwrite = true
	e := NewEditor(opts)
	e.SetText([]byte("abcdef"))
	e.SetCursorPosition(gt.Coordinate{Line: 0, Column: 1})
	e.EnterCharacter('Z', false)
	if got, want := string(e.GetText()), "aZcdef"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestClearTextLeavesOneEmptyLine(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("a\nb\nc"))
	e.ClearText()
	if got, want := e.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if got := string(e.GetText()); got != "" {
		t.Fatalf("GetText() = %q, want empty", got)
	}
}

func TestReadOnlyRejectsAllMutation(t *testing.T) {
	opts := gt.DefaultOptions()
	opts.ReadOnly = true
	e := NewEditor(opts)
	e.SetText([]byte("abc"))
	e.SetReadOnly(true)
	e.EnterCharacter('x', false)
	e.Backspace()
	e.Delete()
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q (read-only mutations must be silent no-ops)", got, want)
	}
}

func TestBlockIndentWithSelection(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("foo\nbar"))
	e.SetSelection(gt.Coordinate{Line: 0, Column: 0}, gt.Coordinate{Line: 1, Column: 3}, gt.SelectionNormal)
	e.EnterCharacter('\t', false)
	if got, want := string(e.GetText()), "\tfoo\n\tbar"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}

func TestLoneSurrogateIsSilentlyIgnored(t *testing.T) {
	e := NewEditor(gt.DefaultOptions())
	e.SetText([]byte("abc"))
	e.EnterCharacter(0xD800, false)
	if got, want := string(e.GetText()), "abc"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}
