// This file is part of romprops.
//
// romprops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romprops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romprops.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/romprops/formats/snes"
	"github.com/jetsetilly/romprops/formats/spc"
	"github.com/jetsetilly/romprops/formats/xpr0"
	"github.com/jetsetilly/romprops/test"
)

// preferences are written to a temporary config directory
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func snesROM() []byte {
	b := make([]byte, 0x8000)
	hdr := b[snes.LoROMHeaderAddr:]
	for i := 0; i < 21; i++ {
		hdr[0x10+i] = ' '
	}
	copy(hdr[0x10:], "COMMAND LINE")
	hdr[0x25] = snes.MappingLoROM
	hdr[0x29] = 0x01
	hdr[0x2a] = 0x01
	return b
}

func xpr0File() []byte {
	b := make([]byte, 0x48)
	copy(b, xpr0.Magic)
	binary.LittleEndian.PutUint32(b[0x04:], uint32(len(b)))
	binary.LittleEndian.PutUint32(b[0x08:], 0x40)
	binary.LittleEndian.PutUint32(b[0x18:], 0x0c<<8|2<<20|2<<24)
	return b
}

func spcFile() []byte {
	b := make([]byte, 0x10200)
	copy(b, spc.Magic)
	return b
}

func run(args ...string) (int, string) {
	w := &test.Writer{}
	v := launch(context.Background(), args, w)
	return v, w.String()
}

func TestExts(t *testing.T) {
	setup(t)

	v, out := run("EXTS")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "sfc"))
	test.ExpectSuccess(t, strings.Contains(out, "xpr"))

	v, out = run("EXTS", "-formats")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "spc"))
	test.ExpectEquality(t, len(strings.Split(strings.TrimSpace(out), "\n")), 4)
}

func TestInfo(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "game.sfc", snesROM())

	v, out := run("INFO", fn)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "System: Super Nintendo Entertainment System\n"))
	test.ExpectSuccess(t, strings.Contains(out, "COMMAND LINE"))

	// INFO is the default mode
	v, out = run(fn)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "COMMAND LINE"))
}

func TestInfoJSON(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "game.sfc", snesROM())

	v, out := run("INFO", "-json", "-hash", fn)
	test.DemandEquality(t, v, exitOK)

	var j struct {
		Filename     string `json:"filename"`
		System       string `json:"system"`
		Abbreviation string `json:"abbreviation"`
		Hash         string `json:"sha1"`
		Fields       []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	test.DemandSuccess(t, json.Unmarshal([]byte(out), &j))
	test.ExpectEquality(t, j.Filename, fn)
	test.ExpectEquality(t, j.Abbreviation, "SNES")
	test.ExpectEquality(t, len(j.Hash), 40)
	test.ExpectInequality(t, len(j.Fields), 0)
	test.ExpectEquality(t, j.Fields[0].Label, snes.FieldTitle)
	test.ExpectEquality(t, j.Fields[0].Value, "COMMAND LINE")
}

func TestInfoMemviz(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "music.spc", spcFile())
	dot := filepath.Join(dir, "reader.dot")

	v, _ := run("INFO", "-memviz", dot, fn)
	test.ExpectEquality(t, v, exitOK)

	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))

	v, out := run("INFO", "-memviz", dot, fn, fn)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in INFO mode"))
}

func TestInfoUnrecognised(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "notes.txt", []byte("not a rom"))

	v, out := run("INFO", fn)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.Contains(out, "unrecognised file"))

	v, _ = run("INFO")
	test.ExpectEquality(t, v, exitError)
}

func TestThumb(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "texture.xpr", xpr0File())
	png := filepath.Join(dir, "texture.png")

	v, out := run("THUMB", "-size", "16", "-o", png, fn)
	test.DemandEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "16px (nearest)"))

	b, err := os.ReadFile(png)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "\x89PNG"))

	v, out = run("THUMB", "-scaler", "bogus", "-o", png, fn)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.Contains(out, "bogus"))

	// SNES readers have no image
	rom := writeFile(t, dir, "game.sfc", snesROM())
	v, out = run("THUMB", "-o", png, rom)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.Contains(out, "does not contain an image"))
}

func TestScan(t *testing.T) {
	dir := setup(t)
	writeFile(t, dir, "game.sfc", snesROM())
	writeFile(t, dir, "texture.xpr", xpr0File())
	writeFile(t, dir, "notes.txt", []byte("not a rom"))

	v, out := run("SCAN", "-workers", "2", dir)
	test.DemandEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "game.sfc: Super NES\n"))
	test.ExpectSuccess(t, strings.Contains(out, "texture.xpr: Xbox\n"))
	test.ExpectSuccess(t, !strings.Contains(out, "notes.txt"))
	test.ExpectSuccess(t, strings.HasSuffix(out, "3 files scanned, 2 recognised\n"))

	v, out = run("SCAN", "-all", dir)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "notes.txt"))
}

func TestScanCancelled(t *testing.T) {
	dir := setup(t)
	writeFile(t, dir, "game.sfc", snesROM())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.Writer{}
	v := launch(ctx, []string{"SCAN", dir}, w)
	test.ExpectEquality(t, v, exitError)
}

func TestPrefsOverride(t *testing.T) {
	dir := setup(t)
	fn := writeFile(t, dir, "texture.xpr", xpr0File())
	png := filepath.Join(dir, "texture.png")

	v, out := run("-prefs", "thumbnail.size::8; nonexistent::1", "THUMB", "-o", png, fn)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "8px (nearest)"))
	test.ExpectSuccess(t, strings.Contains(out, "* unused preferences: nonexistent::1"))
}

func TestHelp(t *testing.T) {
	setup(t)

	v, out := run("-help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "available sub-modes: INFO, THUMB, SCAN, EXTS, VERSION"))

	v, out = run("SCAN", "-help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "-workers"))
}

func TestBadFlag(t *testing.T) {
	setup(t)

	// unknown flags fall through to the default mode
	v, out := run("-bogus")
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in INFO mode"))
}

func TestVersion(t *testing.T) {
	setup(t)

	v, out := run("VERSION")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, "romprops "))

	v, out = run("VERSION", "-v")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "4 formats"))
	test.ExpectSuccess(t, strings.Contains(out, "statsview: false"))
}
