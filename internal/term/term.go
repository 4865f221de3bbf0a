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

// Package term implements internal/editor's Host interface against a
// real terminal, using termbox-go for the screen/keyboard surface
// (mouse events are not translated), go-runewidth for font-advance metrics, and lipgloss to turn
// a palette entry into a terminal attribute. Grounded on
// screen/screen.go and commander/commander.go's termbox usage in the
// teacher repo.
package term

import (
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gt "github.com/AMS21/dlxedit/internal/types"
)

// Screen is a termbox-backed Display + Clipboard + Font + Clock,
// together implementing editor.Host.
type Screen struct {
	palette  gt.Palette
	styles   [gt.PaletteSize]lipgloss.Style
	paste    string
	size     gt.Size
}

// NewScreen opens the terminal and switches it into 256-color mode,
// mirroring screen.NewScreen in the teacher repo. It returns nil (and
// logs) if termbox can't be initialized, the same failure style the
// teacher uses.
func NewScreen(palette gt.Palette) *Screen {
	if err := termbox.Init(); err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	s := &Screen{palette: palette}
	for i := 0; i < gt.PaletteSize; i++ {
		s.styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(palette[i])))
	}
	return s
}

// Close releases the terminal.
func (s *Screen) Close() { termbox.Close() }

func hexColor(rgb uint32) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 7)
	b[0] = '#'
	for i := 0; i < 6; i++ {
		shift := uint(20 - 4*i)
		b[i+1] = hexDigits[(rgb>>shift)&0xF]
	}
	return string(b)
}

// Size reports the current terminal size in character cells.
func (s *Screen) Size() gt.Size {
	cols, rows := termbox.Size()
	s.size = gt.Size{Rows: rows, Cols: cols}
	return s.size
}

// SetCell paints one cell using the lipgloss-derived style for color.
func (s *Screen) SetCell(row, col int, ch byte, color gt.PaletteIndex) {
	style := s.styles[color]
	fg := style.GetForeground()
	termbox.SetCell(col, row, rune(ch), termboxAttribute(fg), termbox.ColorDefault)
}

// termboxAttribute converts a lipgloss terminal color into a termbox
// attribute close enough for a 256-color terminal; lipgloss's own
// renderer targets ANSI escape sequences, but SetCell needs a raw
// termbox.Attribute, so the color index is carried through directly.
func termboxAttribute(c lipgloss.TerminalColor) termbox.Attribute {
	switch v := c.(type) {
	case lipgloss.Color:
		return termbox.Attribute(parseColorIndex(string(v))) + 1
	default:
		return termbox.ColorDefault
	}
}

func parseColorIndex(hex string) int {
	// Best-effort: fold the hex color down into the 256-color cube rather
	// than doing an exact distance search; precise color matching is a
	// terminal-rendering concern, not an editor-core one.
	if len(hex) != 7 {
		return 0
	}
	var r, g, b int
	for i := 0; i < 2; i++ {
		r = r*16 + hexDigit(hex[1+i])
	}
	for i := 0; i < 2; i++ {
		g = g*16 + hexDigit(hex[3+i])
	}
	for i := 0; i < 2; i++ {
		b = b*16 + hexDigit(hex[5+i])
	}
	return 16 + 36*(r/43) + 6*(g/43) + (b / 43)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// Flush pushes pending cell writes to the terminal.
func (s *Screen) Flush() error { return termbox.Flush() }

// SetClipboardText / GetClipboardText implement editor.Clipboard with a
// process-local buffer; no terminal clipboard protocol is wired since
// none of the retrieved examples do OSC-52 or a system clipboard from
// inside an editor core (DESIGN.md).
func (s *Screen) SetClipboardText(text string) { s.paste = text }
func (s *Screen) GetClipboardText() string     { return s.paste }

// AdvanceWidth reports how many terminal cells ch occupies, via
// go-runewidth — this is purely a rendering concern and is deliberately
// kept out of internal/editor's own visual-column math (SPEC_FULL §4).
func (s *Screen) AdvanceWidth(ch rune) float64 {
	return float64(runewidth.RuneWidth(ch))
}

// NowMillis implements editor.Clock.
func (s *Screen) NowMillis() int64 { return time.Now().UnixMilli() }

// PollKeyEvent blocks for the next termbox key event and translates it
// into a gt.KeyEvent, or reports ok=false for a non-key event (resize,
// mouse, error).
func PollKeyEvent() (gt.KeyEvent, bool) {
	ev := termbox.PollEvent()
	if ev.Type != termbox.EventKey {
		return gt.KeyEvent{}, false
	}
	return gt.KeyEvent{
		Key:  translateKey(ev.Key),
		Char: ev.Ch,
		Mods: gt.Modifiers{
			Ctrl:  ev.Key >= termbox.KeyCtrlA && ev.Key <= termbox.KeyCtrlZ,
			Alt:   ev.Mod&termbox.ModAlt != 0,
		},
	}, true
}

func translateKey(k termbox.Key) gt.Key {
	switch k {
	case termbox.KeyArrowUp:
		return gt.KeyArrowUp
	case termbox.KeyArrowDown:
		return gt.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gt.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gt.KeyArrowRight
	case termbox.KeyEnter:
		return gt.KeyEnter
	case termbox.KeyTab:
		return gt.KeyTab
	case termbox.KeyBackspace2, termbox.KeyBackspace:
		return gt.KeyBackspace
	case termbox.KeyDelete:
		return gt.KeyDelete
	case termbox.KeyInsert:
		return gt.KeyInsert
	case termbox.KeyHome:
		return gt.KeyHome
	case termbox.KeyEnd:
		return gt.KeyEnd
	case termbox.KeyPgup:
		return gt.KeyPageUp
	case termbox.KeyPgdn:
		return gt.KeyPageDown
	case termbox.KeyEsc:
		return gt.KeyEsc
	default:
		return gt.KeyUnsupported
	}
}
