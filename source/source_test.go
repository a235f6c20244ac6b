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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/source"
	"github.com/jetsetilly/romprops/test"
)

func TestMemory(t *testing.T) {
	h := source.NewMemory([]byte("0123456789"), "digits")
	test.ExpectEquality(t, h.Size(), int64(10))
	test.ExpectEquality(t, h.Name(), "digits")
	test.ExpectSuccess(t, h.IsOpen())

	b := make([]byte, 4)
	n, err := source.SeekAndRead(h, 3, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(b), "3456")

	// short read at end of data
	n, err = source.SeekAndRead(h, 8, b)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, source.ShortRead))
	test.ExpectEquality(t, n, 2)

	// reading beyond the end of data
	n, err = source.SeekAndRead(h, 100, b)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, n, 0)

	test.ExpectSuccess(t, h.Close())
	test.ExpectSuccess(t, !h.IsOpen())

	_, err = source.SeekAndRead(h, 0, b)
	test.ExpectSuccess(t, curated.Is(err, source.NotOpen))

	_, err = h.Dup()
	test.ExpectFailure(t, err)
}

func TestDupIndependentPosition(t *testing.T) {
	h := source.NewMemory([]byte("abcdef"), "")
	defer h.Close()

	d, err := h.Dup()
	test.DemandSuccess(t, err)
	defer d.(source.Closer).Close()

	_, err = h.Seek(4, io.SeekStart)
	test.ExpectSuccess(t, err)

	b := make([]byte, 2)
	_, err = io.ReadFull(d, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "ab")

	_, err = io.ReadFull(h, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "ef")
}

func TestSharedFileLifetime(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "data.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("shared data"), 0o644))

	h, err := source.OpenFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Size(), int64(11))

	d, err := h.Dup()
	test.DemandSuccess(t, err)

	// closing the original does not affect the duplicate
	test.ExpectSuccess(t, h.Close())
	test.ExpectSuccess(t, h.Close())
	test.ExpectSuccess(t, d.IsOpen())

	b := make([]byte, 4)
	_, err = source.SeekAndRead(d, 7, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "data")

	test.ExpectSuccess(t, d.(source.Closer).Close())
	test.ExpectSuccess(t, !d.IsOpen())
}

func TestOpenFileMissing(t *testing.T) {
	_, err := source.OpenFile(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}
