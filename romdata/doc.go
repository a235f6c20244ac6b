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

// Package romdata defines the common parts of the format readers in the
// formats package.
//
// A format is identified in two steps. The first step is detection, which
// only looks at the file extension and a small window of data read from the
// start of the file. Detection returns a variant number or NoMatch. The second
// step is construction of a reader for the format. Construction probes the
// file, possibly at several offsets, and commits the reader to being either
// valid or invalid. A reader never changes its mind.
//
// The Base type implements the common state of a reader. Format readers embed
// Base and call Probed() once construction has finished:
//
//	type Reader struct {
//		romdata.Base
//		header []byte
//	}
//
//	func New(src source.Source) (*Reader, error) {
//		r := &Reader{}
//		if err := r.Init(src, "example"); err != nil {
//			return nil, err
//		}
//		r.Probed(r.probe())
//		return r, nil
//	}
//
// Field extraction is deferred until the fields are first requested and the
// result is cached. Extraction never reads from the source.
package romdata
