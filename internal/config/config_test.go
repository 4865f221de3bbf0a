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

package config

import (
	"os"
	"path/filepath"
	"testing"

	gt "github.com/AMS21/dlxedit/internal/types"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, pal, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts != gt.DefaultOptions() {
		t.Fatalf("opts = %+v, want defaults", opts)
	}
	if pal != DefaultPalette() {
		t.Fatalf("palette should be the default when no file exists")
	}
}

func TestLoadOverridesTabSizeAndClamps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dlxedit.toml")
	if err := os.WriteFile(path, []byte("tab_size = 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	opts, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.TabSize != 32 {
		t.Fatalf("TabSize = %d, want clamped to 32", opts.TabSize)
	}
}

func TestLoadPaletteOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dlxedit.toml")
	content := "[palette]\ncomment = \"#112233\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	_, pal, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pal[gt.Comment] != 0x112233 {
		t.Fatalf("palette[Comment] = %#x, want 0x112233", pal[gt.Comment])
	}
}

func TestLoadRejectsMalformedColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dlxedit.toml")
	content := "[palette]\ncomment = \"not-a-color\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("Load should reject a malformed palette color")
	}
}
