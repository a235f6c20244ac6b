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

package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/romprops/source"
	"github.com/jetsetilly/romprops/test"
)

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	test.DemandSuccess(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestIsCompressed(t *testing.T) {
	test.ExpectSuccess(t, source.IsCompressed("game.sfc.zst"))
	test.ExpectSuccess(t, source.IsCompressed("GAME.SFC.ZST"))
	test.ExpectSuccess(t, !source.IsCompressed("game.sfc"))
}

func TestLoaderCompressedNames(t *testing.T) {
	ld := source.NewLoader(filepath.Join("roms", "game.sfc.zst"))
	test.ExpectEquality(t, ld.Name(), filepath.Join("roms", "game.sfc"))
	test.ExpectEquality(t, ld.ShortName(), "game")
	test.ExpectEquality(t, ld.Ext(), "sfc")
}

func TestDecompress(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	h := source.NewMemory(compress(t, data), "test.zst")
	defer h.Close()

	d, err := source.Decompress(h)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), string(data))

	// not a zstd stream
	h = source.NewMemory([]byte("not compressed"), "test.zst")
	defer h.Close()
	_, err = source.Decompress(h)
	test.ExpectFailure(t, err)
}

func TestLoaderOpenCompressed(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}

	fn := filepath.Join(t.TempDir(), "game.sfc.zst")
	test.DemandSuccess(t, os.WriteFile(fn, compress(t, data), 0o644))

	ld := source.NewLoader(fn)
	h, err := ld.Open()
	test.DemandSuccess(t, err)
	defer h.Close()

	test.ExpectEquality(t, h.Size(), int64(len(data)))
	test.ExpectEquality(t, h.Name(), ld.Name())
}
