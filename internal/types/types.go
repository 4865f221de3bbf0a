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

// Package types holds the value types shared between the editor core and
// its external collaborators (the host GUI and the DLX parser).
package types

// PaletteIndex is a color tag attached to a glyph or used to paint chrome.
type PaletteIndex int

const (
	Default PaletteIndex = iota
	OpCode
	Register
	IntegerLiteral
	Comment
	Background
	Cursor
	Selection
	ErrorMarker
	Breakpoint
	LineNumber
	CurrentLineFill
	CurrentLineFillInactive
	CurrentLineEdge
	paletteMax
)

// PaletteSize is the number of entries a Palette array must hold.
const PaletteSize = int(paletteMax)

// Palette maps a PaletteIndex to a displayable color. The host is
// responsible for turning each entry into whatever its draw list expects;
// the editor core only ever looks entries up by index.
type Palette [PaletteSize]uint32

// Coordinate is a (line, visual column) pair. Line indexes into the
// buffer; Column is a visual column with tabs expanded (see spec C1/C2).
type Coordinate struct {
	Line   int
	Column int
}

// Less reports whether c sorts before o using (line, column) lexicographic order.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Column < o.Column
}

// LessEq reports c <= o.
func (c Coordinate) LessEq(o Coordinate) bool {
	return c == o || c.Less(o)
}

// Size is a rectangular extent measured in character cells.
type Size struct {
	Rows int
	Cols int
}

// SelectionMode records how a selection was made. SetSelection stores it
// as given and does not expand the endpoints by mode; SelectWordUnderCursor
// and SelectLine compute word and line bounds before calling it.
type SelectionMode int

const (
	SelectionNormal SelectionMode = iota
	SelectionWord
	SelectionLine
)

// Options holds the editor-wide settings of spec.md §3.
type Options struct {
	TabSize           int
	Overwrite         bool
	ReadOnly          bool
	ColorizerEnabled  bool
	ShowWhitespaces   bool
	LineSpacing       float64
}

// DefaultOptions returns the spec's default option set.
func DefaultOptions() Options {
	return Options{
		TabSize:          4,
		Overwrite:        false,
		ReadOnly:         false,
		ColorizerEnabled: true,
		ShowWhitespaces:  false,
		LineSpacing:      1.0,
	}
}

// ClampTabSize enforces the [1, 32] bound from spec.md §3.
func ClampTabSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 32 {
		return 32
	}
	return size
}

// Key identifies a non-printable key reported by the host.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyKeypadEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEsc
)

// Modifiers captures the modifier-key state reported by the host alongside
// a keyboard or mouse event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Super bool
}

// CtrlLike reports whether the platform's "command" modifier is held: Ctrl
// everywhere, Super (Cmd) instead of Ctrl on macOS (spec.md §4.7).
func (m Modifiers) CtrlLike(macOS bool) bool {
	if macOS {
		return m.Super
	}
	return m.Ctrl
}

// MouseButton identifies which mouse button an event concerns.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
)

// KeyEvent is a single keyboard input handed to the editor by the host.
type KeyEvent struct {
	Key  Key
	Char rune // set for printable input; 0 for non-printable Key events
	Mods Modifiers
}

// MouseEvent is a single mouse input handed to the editor by the host.
type MouseEvent struct {
	Position Coordinate // sanitized text-area coordinate, gutter clicks excluded upstream
	Button   MouseButton
	Pressed  bool
	Dragging bool
	Mods     Modifiers
}
