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

// Package formats is the registry of supported file formats. It identifies
// the format of a file and creates the matching reader.
//
// Formats are tried in the order they are registered. Formats that are
// detected by a magic string are registered before formats that are detected
// by file extension.
package formats

import (
	"sort"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/formats/snes"
	"github.com/jetsetilly/romprops/formats/spc"
	"github.com/jetsetilly/romprops/formats/supercharger"
	"github.com/jetsetilly/romprops/formats/xpr0"
	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
)

// UnrecognisedFile is returned by Identify() when no format matches the file.
const UnrecognisedFile = "formats: unrecognised file: %s"

// Format describes a supported file format.
type Format struct {
	Name string

	// file extensions claimed by the format
	Extensions func() []string

	// the window of the file given to the detector
	HeaderAddr int64
	HeaderSize int

	// returns the variant of the format or romdata.NoMatch
	IsSupported func(info romdata.DetectInfo) int

	// creates a reader for the source. the extension is lowercase without the
	// leading period
	New func(src source.Source, ext string) (romdata.Reader, error)
}

// reader converts the result of a format constructor. a nil pointer is not
// returned as a non-nil interface
func reader[R romdata.Reader](r R, err error) (romdata.Reader, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

var registry = []Format{
	{
		Name:        "SPC700",
		Extensions:  spc.Extensions,
		HeaderSize:  spc.HeaderSize,
		IsSupported: spc.IsSupported,
		New: func(src source.Source, _ string) (romdata.Reader, error) {
			return reader(spc.New(src))
		},
	},
	{
		Name:        "XPR0",
		Extensions:  xpr0.Extensions,
		HeaderSize:  xpr0.HeaderSize,
		IsSupported: xpr0.IsSupported,
		New: func(src source.Source, _ string) (romdata.Reader, error) {
			return reader(xpr0.New(src))
		},
	},
	{
		Name:        "SNES",
		Extensions:  snes.Extensions,
		HeaderSize:  snes.CopierHeaderSize,
		IsSupported: snes.IsSupported,
		New: func(src source.Source, ext string) (romdata.Reader, error) {
			return reader(snes.New(src, ext))
		},
	},
	{
		Name:        "Supercharger",
		Extensions:  supercharger.Extensions,
		HeaderSize:  12,
		IsSupported: supercharger.IsSupported,
		New: func(src source.Source, ext string) (romdata.Reader, error) {
			return reader(supercharger.New(src, ext))
		},
	},
}

// Formats returns the list of registered formats.
func Formats() []Format {
	f := make([]Format, len(registry))
	copy(f, registry)
	return f
}

// Extensions returns the sorted list of file extensions claimed by all
// formats. There are no duplicates.
func Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if !seen[e] {
				seen[e] = true
				exts = append(exts, e)
			}
		}
	}
	sort.Strings(exts)
	return exts
}

type window struct {
	addr int64
	size int
}

// Identify the format of the source and return a valid reader for it. The
// filename is used for its extension only.
//
// The reader has its own handle to the source, if the source supports
// duplication, and must be closed by the caller.
func Identify(src source.Source, filename string) (romdata.Reader, error) {
	if src == nil || !src.IsOpen() {
		return nil, curated.Errorf(romdata.NotOpen)
	}

	ext := romdata.Ext(filename)
	size := src.Size()

	// header windows are shared by formats that ask for the same window
	windows := make(map[window][]byte)

	for _, f := range registry {
		w := window{addr: f.HeaderAddr, size: f.HeaderSize}
		hdr, ok := windows[w]
		if !ok {
			hdr = make([]byte, w.size)
			n, _ := source.SeekAndRead(src, w.addr, hdr)
			hdr = hdr[:n]
			windows[w] = hdr
		}

		info := romdata.DetectInfo{
			Header:     hdr,
			HeaderAddr: w.addr,
			Ext:        ext,
			Size:       size,
		}
		if f.IsSupported(info) == romdata.NoMatch {
			continue
		}

		r, err := f.New(src, ext)
		if err != nil {
			return nil, err
		}
		if r.IsValid() {
			logger.Logf(logger.Allow, "formats", "%s: %s", filename, f.Name)
			return r, nil
		}
		_ = r.Close()
	}

	return nil, curated.Errorf(UnrecognisedFile, filename)
}

// Open the file and identify its format. The file is opened with a
// source.Loader so filenames may refer to files inside archives, compressed
// files or URLs.
func Open(filename string) (romdata.Reader, error) {
	ld := source.NewLoader(filename)
	h, err := ld.Open()
	if err != nil {
		return nil, err
	}
	defer h.Close()

	return Identify(h, ld.Name())
}
