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

package formats_test

import (
	"archive/zip"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/formats"
	"github.com/jetsetilly/romprops/formats/snes"
	"github.com/jetsetilly/romprops/formats/spc"
	"github.com/jetsetilly/romprops/formats/supercharger"
	"github.com/jetsetilly/romprops/formats/xpr0"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
	"github.com/jetsetilly/romprops/test"
)

func snesROM() []byte {
	b := make([]byte, 0x8000)
	hdr := b[snes.LoROMHeaderAddr:]
	for i := 0; i < 21; i++ {
		hdr[0x10+i] = ' '
	}
	copy(hdr[0x10:], "REGISTRY TEST")
	hdr[0x25] = snes.MappingLoROM
	hdr[0x26] = 0x00
	hdr[0x29] = 0x01
	hdr[0x2a] = 0x01
	return b
}

func spcFile() []byte {
	b := make([]byte, 0x10200)
	copy(b, spc.Magic)
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

func identify(t *testing.T, data []byte, filename string) (romdata.Reader, error) {
	t.Helper()
	h := source.NewMemory(data, filename)
	defer h.Close()
	return formats.Identify(h, filename)
}

func TestIdentify(t *testing.T) {
	r, err := identify(t, snesROM(), "game.sfc")
	test.DemandSuccess(t, err)
	_, ok := r.(*snes.Reader)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.SystemName(romdata.NameAbbreviation), "SNES")

	// the reader remains usable after the caller's handle is closed
	fl, err := r.Fields()
	test.DemandSuccess(t, err)
	f, ok := fl.Get(snes.FieldTitle)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f.Value(), "REGISTRY TEST")
	test.ExpectSuccess(t, r.Close())

	// magic is used in preference to the extension
	r, err = identify(t, spcFile(), "music.sfc")
	test.DemandSuccess(t, err)
	_, ok = r.(*spc.Reader)
	test.ExpectSuccess(t, ok)
	r.Close()

	r, err = identify(t, xpr0File(), "icon")
	test.DemandSuccess(t, err)
	_, ok = r.(*xpr0.Reader)
	test.ExpectSuccess(t, ok)
	_, ok = r.(romdata.ImageReader)
	test.ExpectSuccess(t, ok)
	r.Close()

	r, err = identify(t, make([]byte, 2*supercharger.LoadLen), "game.ar")
	test.DemandSuccess(t, err)
	_, ok = r.(*supercharger.Reader)
	test.ExpectSuccess(t, ok)
	r.Close()
}

func TestUnrecognised(t *testing.T) {
	_, err := identify(t, make([]byte, 0x8000), "blank.sfc")
	test.ExpectSuccess(t, curated.Is(err, formats.UnrecognisedFile))

	_, err = identify(t, []byte("hello world"), "readme.txt")
	test.ExpectSuccess(t, curated.Is(err, formats.UnrecognisedFile))

	_, err = identify(t, nil, "empty")
	test.ExpectSuccess(t, curated.Is(err, formats.UnrecognisedFile))

	h := source.NewMemory(snesROM(), "closed.sfc")
	test.ExpectSuccess(t, h.Close())
	_, err = formats.Identify(h, "closed.sfc")
	test.ExpectSuccess(t, curated.Is(err, romdata.NotOpen))
}

func TestExtensions(t *testing.T) {
	exts := formats.Extensions()
	test.ExpectSuccess(t, sort.StringsAreSorted(exts))

	seen := make(map[string]bool)
	for _, e := range exts {
		test.ExpectFailure(t, seen[e], e)
		seen[e] = true
	}

	for _, f := range formats.Formats() {
		for _, e := range f.Extensions() {
			test.ExpectSuccess(t, seen[e], e)
		}
	}
	test.ExpectSuccess(t, seen["sfc"])
	test.ExpectSuccess(t, seen["spc"])
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "game.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, snesROM(), 0o644))

	r, err := formats.Open(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.SystemName(romdata.NameShort), "Super NES")
	test.ExpectSuccess(t, r.Close())

	// file inside a zip archive
	zfn := filepath.Join(dir, "games.zip")
	zf, err := os.Create(zfn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(zf)
	w, err := zw.Create("music.spc")
	test.DemandSuccess(t, err)
	_, err = w.Write(spcFile())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, zf.Close())

	r, err = formats.Open(filepath.Join(zfn, "music.spc"))
	test.DemandSuccess(t, err)
	_, ok := r.(*spc.Reader)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, r.Close())

	_, err = formats.Open(filepath.Join(dir, "missing.sfc"))
	test.ExpectFailure(t, err)
}

func TestOpenCompressed(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	test.DemandSuccess(t, err)
	defer enc.Close()

	// SNES detection requires the extension of the uncompressed file
	fn := filepath.Join(t.TempDir(), "game.sfc.zst")
	test.DemandSuccess(t, os.WriteFile(fn, enc.EncodeAll(snesROM(), nil), 0o644))

	r, err := formats.Open(fn)
	test.DemandSuccess(t, err)
	_, ok := r.(*snes.Reader)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, r.Close())
}

func TestIdentifyCopierHeaderBin(t *testing.T) {
	b := append(make([]byte, snes.CopierHeaderSize), snesROM()...)
	copy(b, "GAME DOCTOR SF 3")

	for _, fn := range []string{"game.sfc", "game.bin", "game.bak"} {
		r, err := identify(t, b, fn)
		test.DemandSuccess(t, err)
		sr, ok := r.(*snes.Reader)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, sr.Variant(), snes.VariantSNES)
		test.ExpectSuccess(t, sr.HasCopierHeader())
		test.ExpectSuccess(t, r.Close())
	}
}
