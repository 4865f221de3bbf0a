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

// Package config loads editor Options and a color Palette from an
// optional TOML file. The teacher has no config file of its own (its
// options are command-line flags and editor-mode state); this is new,
// added per SPEC_FULL §3 Configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	gt "github.com/AMS21/dlxedit/internal/types"
)

// File is the on-disk shape of a dlxedit config file.
type File struct {
	TabSize          int            `toml:"tab_size"`
	Overwrite        bool           `toml:"overwrite"`
	ReadOnly         bool           `toml:"read_only"`
	ColorizerEnabled *bool          `toml:"colorizer_enabled"`
	ShowWhitespaces  bool           `toml:"show_whitespaces"`
	LineSpacing      float64        `toml:"line_spacing"`
	Palette          map[string]string `toml:"palette"`
}

// Load reads path (if it exists) and returns Options overlaid on
// gt.DefaultOptions, plus a Palette overlaid on DefaultPalette. A
// missing file is not an error: defaults are returned unchanged,
// matching the teacher's own tolerance for a missing/empty buffer.
func Load(path string) (gt.Options, gt.Palette, error) {
	opts := gt.DefaultOptions()
	pal := DefaultPalette()

	if path == "" {
		return opts, pal, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, pal, nil
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return opts, pal, fmt.Errorf("dlxedit: loading config %q: %w", path, err)
	}

	if f.TabSize != 0 {
		opts.TabSize = gt.ClampTabSize(f.TabSize)
	}
	opts.Overwrite = f.Overwrite
	opts.ReadOnly = f.ReadOnly
	if f.ColorizerEnabled != nil {
		opts.ColorizerEnabled = *f.ColorizerEnabled
	}
	opts.ShowWhitespaces = f.ShowWhitespaces
	if f.LineSpacing != 0 {
		opts.LineSpacing = f.LineSpacing
	}

	for name, hex := range f.Palette {
		idx, ok := paletteIndexByName[name]
		if !ok {
			continue
		}
		v, err := parseHexColor(hex)
		if err != nil {
			return opts, pal, fmt.Errorf("dlxedit: config %q: palette.%s: %w", path, name, err)
		}
		pal[idx] = v
	}

	return opts, pal, nil
}

var paletteIndexByName = map[string]gt.PaletteIndex{
	"default":                    gt.Default,
	"opcode":                     gt.OpCode,
	"register":                   gt.Register,
	"integer_literal":            gt.IntegerLiteral,
	"comment":                    gt.Comment,
	"background":                 gt.Background,
	"cursor":                     gt.Cursor,
	"selection":                  gt.Selection,
	"error_marker":               gt.ErrorMarker,
	"breakpoint":                 gt.Breakpoint,
	"line_number":                gt.LineNumber,
	"current_line_fill":          gt.CurrentLineFill,
	"current_line_fill_inactive": gt.CurrentLineFillInactive,
	"current_line_edge":          gt.CurrentLineEdge,
}

func parseHexColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("want #rrggbb, got %q", s)
	}
	var v uint32
	for i := 1; i < 7; i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, fmt.Errorf("want #rrggbb, got %q", s)
		}
		v = v<<4 | d
	}
	return v, nil
}

// DefaultPalette returns a readable default color set, a dark-background
// 256-color-friendly scheme.
func DefaultPalette() gt.Palette {
	var p gt.Palette
	p[gt.Default] = 0xd4d4d4
	p[gt.OpCode] = 0x569cd6
	p[gt.Register] = 0x9cdcfe
	p[gt.IntegerLiteral] = 0xb5cea8
	p[gt.Comment] = 0x6a9955
	p[gt.Background] = 0x1e1e1e
	p[gt.Cursor] = 0xffffff
	p[gt.Selection] = 0x264f78
	p[gt.ErrorMarker] = 0xf44747
	p[gt.Breakpoint] = 0xe51400
	p[gt.LineNumber] = 0x858585
	p[gt.CurrentLineFill] = 0x2a2a2a
	p[gt.CurrentLineFillInactive] = 0x242424
	p[gt.CurrentLineEdge] = 0x3a3a3a
	return p
}
