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

// macOS controls whether Ctrl-like bindings key off Ctrl or Super
// (Cmd); the host sets this once at startup (spec.md §4.7).
var macOS = false

// SetHostIsMacOS selects which modifier key counts as "Ctrl-like" for
// keybinding purposes.
func SetHostIsMacOS(v bool) { macOS = v }

// HandleKeyEvent dispatches one keyboard event to the matching editor
// operation (spec.md §4.7 input dispatch). pageRows is the viewport
// height used for PageUp/PageDown.
func (e *Editor) HandleKeyEvent(ev gt.KeyEvent, pageRows int) {
	ctrl := ev.Mods.CtrlLike(macOS)
	shift := ev.Mods.Shift

	switch ev.Key {
	case gt.KeyArrowLeft:
		e.MoveLeft(1, shift, ctrl)
		return
	case gt.KeyArrowRight:
		e.MoveRight(1, shift, ctrl)
		return
	case gt.KeyArrowUp:
		e.MoveUp(1, shift)
		return
	case gt.KeyArrowDown:
		e.MoveDown(1, shift)
		return
	case gt.KeyHome:
		if ctrl {
			e.MoveTop(shift)
		} else {
			e.MoveHome(shift)
		}
		return
	case gt.KeyEnd:
		if ctrl {
			e.MoveBottom(shift)
		} else {
			e.MoveEnd(shift)
		}
		return
	case gt.KeyPageUp:
		e.MovePageUp(pageRows, shift)
		return
	case gt.KeyPageDown:
		e.MovePageDown(pageRows, shift)
		return
	case gt.KeyBackspace:
		e.Backspace()
		return
	case gt.KeyDelete:
		e.Delete()
		return
	case gt.KeyEnter, gt.KeyKeypadEnter:
		e.EnterCharacter('\n', shift)
		return
	case gt.KeyTab:
		e.EnterCharacter('\t', shift)
		return
	case gt.KeyInsert:
		e.SetOptions(toggledOverwrite(e.opts))
		return
	case gt.KeyEsc:
		e.clearSelection()
		return
	}

	if ctrl {
		switch ev.Char {
		case 'a', 'A':
			e.SelectAll()
		case 'z', 'Z':
			e.Undo(1)
		case 'y', 'Y':
			e.Redo(1)
		case 'c', 'C':
			e.copyToClipboard(nil)
		case 'x', 'X':
			e.cutToClipboard(nil)
		case 'v', 'V':
			e.pasteFromClipboard(nil)
		}
		return
	}

	if ev.Char != 0 {
		e.EnterCharacter(ev.Char, shift)
	}
}

func toggledOverwrite(opts gt.Options) gt.Options {
	opts.Overwrite = !opts.Overwrite
	return opts
}

// copyToClipboard/cutToClipboard/pasteFromClipboard use the given
// Clipboard, or a package-level in-process one shared by every Editor if
// nil — letting callers without
// a Host still exercise clipboard-driven ops in tests.
func (e *Editor) copyToClipboard(c Clipboard) {
	if !e.HasSelection() {
		return
	}
	if c == nil {
		c = e.inlineClipboard()
	}
	c.SetClipboardText(string(e.GetSelectedText()))
}

func (e *Editor) cutToClipboard(c Clipboard) {
	if !e.HasSelection() {
		return
	}
	if c == nil {
		c = e.inlineClipboard()
	}
	c.SetClipboardText(string(e.GetSelectedText()))
	if e.opts.ReadOnly {
		return
	}
	before := e.toByteState(e.currentState())
	removed := e.deleteSelection()
	e.finishSimpleEdit(removed, before.SelectionStart, before.SelectionEnd, nil, gt.Coordinate{}, gt.Coordinate{}, before)
}

func (e *Editor) pasteFromClipboard(c Clipboard) {
	if e.opts.ReadOnly {
		return
	}
	if c == nil {
		c = e.inlineClipboard()
	}
	text := c.GetClipboardText()
	if text == "" {
		return
	}
	if e.HasSelection() {
		e.deleteSelection()
	}
	e.InsertAt(e.cursor, []byte(text))
}

var sharedClipboard = NewInProcessClipboard()

func (e *Editor) inlineClipboard() Clipboard { return sharedClipboard }

// HandleMouseEvent dispatches a mouse event: press places the cursor (or
// begins a drag-selection), dragging extends the selection, and
// double/triple click (detected by the caller via clickCount, since
// timing needs a Clock) select a word or a line (spec.md §4.7 mouse
// input).
func (e *Editor) HandleMouseEvent(ev gt.MouseEvent, clickCount int) {
	if ev.Button != gt.MouseLeft {
		return
	}
	pos := e.sanitize(ev.Position)

	if ev.Dragging {
		e.cursor = pos
		if pos.Less(e.anchor) {
			e.selStart, e.selEnd = pos, e.anchor
		} else {
			e.selStart, e.selEnd = e.anchor, pos
		}
		return
	}

	if !ev.Pressed {
		return
	}

	switch {
	case clickCount >= 3:
		e.SelectLine(pos.Line)
	case clickCount == 2:
		e.cursor = pos
		e.SelectWordUnderCursor()
	default:
		e.SetCursorPosition(pos)
	}
}
