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
	"archive/zip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/source"
	"github.com/jetsetilly/romprops/test"
)

func TestLoaderNames(t *testing.T) {
	ld := source.NewLoader(filepath.Join("roms", "Super Game (E).SFC"))
	test.ExpectEquality(t, ld.ShortName(), "Super Game (E)")
	test.ExpectEquality(t, ld.Ext(), "sfc")

	ld = source.NewLoader("noext")
	test.ExpectEquality(t, ld.Ext(), "")
}

func TestLoaderOpenAndHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0o644))

	ld := source.NewLoader(fn)
	h, err := ld.Open()
	test.DemandSuccess(t, err)
	defer h.Close()

	test.ExpectSuccess(t, ld.CheckHash(h))
	test.ExpectEquality(t, ld.Hash, "a9993e364706816aba3e25717850c26c9cd0d89d")

	// a mismatched hash is an error
	ld.Hash = "0000"
	test.ExpectFailure(t, ld.CheckHash(h))
}

func TestLoaderUnsupportedScheme(t *testing.T) {
	ld := source.NewLoader("ftp://example.com/game.sfc")
	_, err := ld.Open()
	test.ExpectFailure(t, err)
}

func TestLoaderMaxSizeHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 32)))
	}))
	defer srv.Close()

	ld := source.NewLoader(srv.URL + "/game.sfc")
	ld.MaxSize = 32
	h, err := ld.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Size(), int64(32))
	test.ExpectSuccess(t, h.Close())

	ld.MaxSize = 31
	_, err = ld.Open()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, source.TooLarge))
}

func TestLoaderMaxSizeZip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "games.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("game.sfc")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte(strings.Repeat("x", 32)))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	ld := source.NewLoader(filepath.Join(fn, "game.sfc"))
	ld.MaxSize = 32
	h, err := ld.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Size(), int64(32))
	test.ExpectSuccess(t, h.Close())

	ld.MaxSize = 31
	_, err = ld.Open()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, source.TooLarge))
}
