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

// dlxedit is a terminal host for the DLX code editor core: it wires a
// termbox screen and a DLX tokenizer to internal/editor.Editor and runs
// the input/render loop, mirroring the teacher's gott.go main loop.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/AMS21/dlxedit/internal/config"
	"github.com/AMS21/dlxedit/internal/dlx"
	"github.com/AMS21/dlxedit/internal/editor"
	"github.com/AMS21/dlxedit/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a dlxedit.toml config file")
	logPath := flag.String("log", "", "path to a log file (defaults to $HOME/.dlxeditlog)")
	flag.Parse()

	if *logPath == "" {
		*logPath = os.Getenv("HOME") + "/.dlxeditlog"
	}
	f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	opts, palette, err := config.Load(*configPath)
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	e := editor.NewEditor(opts)
	e.SetParser(dlx.New())

	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Output(1, err.Error())
		} else {
			e.SetText(data)
		}
	}

	screen := term.NewScreen(palette)
	if screen == nil {
		return
	}
	defer screen.Close()

	runLoop(e, screen)
}

// runLoop renders the editor, reads one key event, dispatches it, and
// repeats, matching the teacher's gott.go loop shape.
func runLoop(e *editor.Editor, screen *term.Screen) {
	offset := 0
	for {
		size := screen.Size()
		viewportRows := size.Rows - 2
		offset = e.EnsureCursorVisible(offset, viewportRows)
		renderFrame(e, screen, offset, viewportRows)

		ev, ok := term.PollKeyEvent()
		if !ok {
			continue
		}
		if ev.Key == 0 && ev.Char == 'q' && ev.Mods.Ctrl {
			return
		}
		e.Colorize()
		e.HandleKeyEvent(ev, viewportRows)
	}
}

func renderFrame(e *editor.Editor, screen *term.Screen, offset, viewportRows int) {
	size := screen.Size()
	lines := e.GetTextLines()
	for row := 0; row < viewportRows && row < size.Rows; row++ {
		lineIdx := offset + row
		if lineIdx >= len(lines) {
			break
		}
		line := lines[lineIdx]
		for col := 0; col < len(line) && col < size.Cols; col++ {
			screen.SetCell(row, col, line[col], 0)
		}
	}
	screen.Flush()
}
