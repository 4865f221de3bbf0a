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

// Host is the external collaborator (spec.md §6) a concrete GUI
// implements: screen drawing, clipboard access, font metrics, and a
// clock. Keyboard and mouse input is not part of Host; the caller passes
// events to HandleKeyEvent and HandleMouseEvent. The editor core never imports a UI
// library directly; internal/term implements this against termbox-go.
type Host interface {
	Display
	Clipboard
	Font
	Clock
}

// Display draws glyph cells; the editor core tells it what to draw, the
// host decides how.
type Display interface {
	Size() gt.Size
	SetCell(row, col int, ch byte, color gt.PaletteIndex)
	Flush() error
}

// Clipboard is a minimal cut/copy/paste surface. No example repo in the
// corpus wires an OS clipboard library, and the teacher itself only
// keeps a single in-process paste buffer field — so Clipboard is an
// interface with an in-process default (see NewInProcessClipboard),
// leaving a real OS clipboard to whatever Host the caller supplies.
type Clipboard interface {
	SetClipboardText(text string)
	GetClipboardText() string
}

// Font reports glyph advance widths, letting the host's Display
// translate visual columns into pixel or cell widths when it isn't a
// fixed-width terminal cell grid.
type Font interface {
	AdvanceWidth(ch rune) float64
}

// Clock is injected so tests can control "now" deterministically. The
// editor core does not read it: double/triple-click timing is done by the
// caller, which passes the click count to HandleMouseEvent (spec.md §4.7
// mouse input).
type Clock interface {
	NowMillis() int64
}

// InProcessClipboard is a Clipboard backed by a single in-memory string,
// modeled on the teacher's Editor.pasteText field.
type InProcessClipboard struct {
	text string
}

func NewInProcessClipboard() *InProcessClipboard { return &InProcessClipboard{} }

func (c *InProcessClipboard) SetClipboardText(text string) { c.text = text }
func (c *InProcessClipboard) GetClipboardText() string     { return c.text }
