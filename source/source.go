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

package source

import (
	"io"

	"github.com/jetsetilly/romprops/curated"
)

// Source is a seekable, readable resource of known size.
type Source interface {
	io.Reader
	io.Seeker

	// Size of the source in bytes.
	Size() int64

	// IsOpen returns false once the source has been closed. Reads and seeks
	// on a closed source fail.
	IsOpen() bool

	// Name of the source. This is usually a filename but may be the empty
	// string.
	Name() string
}

// Duplicator is implemented by sources that can create an independent handle
// to the same data. Format readers prefer to duplicate a source so that the
// caller's seek position is not disturbed.
type Duplicator interface {
	Dup() (Source, error)
}

// Closer is implemented by sources that must be released after use.
type Closer interface {
	Close() error
}

// Sentinel error patterns.
const (
	NotOpen   = "source: not open"
	ShortRead = "source: short read at %#x: %d of %d bytes"
	SeekError = "source: seek to %#x: %v"
	TooLarge  = "source: data too large: more than %d bytes"
)

// SeekAndRead seeks to the offset and fills the buffer. It returns the
// number of bytes read. A short read returns a ShortRead error along with the
// number of bytes that were read.
func SeekAndRead(src Source, offset int64, buf []byte) (int, error) {
	if !src.IsOpen() {
		return 0, curated.Errorf(NotOpen)
	}

	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return 0, curated.Errorf(SeekError, offset, err)
	}

	n, err := io.ReadFull(src, buf)
	if err != nil {
		return n, curated.Errorf(ShortRead, offset, n, len(buf))
	}

	return n, nil
}
