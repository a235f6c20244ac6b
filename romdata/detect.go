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

package romdata

import (
	"path/filepath"
	"strings"
)

// NoMatch is returned by detectors when the file is not recognised. It is not
// an error.
const NoMatch = -1

// DetectInfo is the information given to a detector.
type DetectInfo struct {
	// data read from the file at HeaderAddr. the data may be shorter than
	// requested if the file is small
	Header     []byte
	HeaderAddr int64

	// file extension without the leading period. may be empty
	Ext string

	// size of the file
	Size int64
}

// Ext returns the lower case extension of the filename, without the leading
// period. An empty string is returned if the filename has no extension.
func Ext(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// MatchExt returns the index of ext in the list of extensions. The comparison
// is case insensitive and a leading period on ext is ignored. Returns NoMatch
// if the extension is not in the list or is empty.
func MatchExt(ext string, exts []string) int {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return NoMatch
	}
	for i, e := range exts {
		if strings.EqualFold(ext, e) {
			return i
		}
	}
	return NoMatch
}

// HasMagic returns true if the magic bytes are found at the offset in the
// data. The comparison is exact.
func HasMagic(data []byte, offset int, magic []byte) bool {
	if offset < 0 || offset+len(magic) > len(data) {
		return false
	}
	return string(data[offset:offset+len(magic)]) == string(magic)
}
