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

package archivefs

import (
	"path/filepath"
	"strings"
)

// file extensions of the supported archive types. directory listings only
// check the contents of files with one of these extensions
var archiveExtensions = []string{".zip"}

// HasArchiveExt returns true if the filename has the extension of a supported
// archive type.
func HasArchiveExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range archiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
