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

package snes

import (
	"strings"

	"github.com/jetsetilly/romprops/romdata"
)

// Variants of the format.
const (
	VariantSNES = 0
	VariantBSX  = 1
)

var extensions = []string{
	"smc", "swc", "sfc",
	"fig", "ufo",
	"bs", "bsx",
}

// Extensions returns the list of file extensions supported by the package.
// Extensions do not have a leading period.
func Extensions() []string {
	e := make([]string, len(extensions))
	copy(e, extensions)
	return e
}

// isBSXExt returns true if the extension indicates a BS-X image. Only the
// registered extensions are considered. Of those, the BS-X extensions are the
// ones beginning with "b".
func isBSXExt(ext string) bool {
	if romdata.MatchExt(ext, extensions) == romdata.NoMatch {
		return false
	}
	ext = strings.TrimPrefix(ext, ".")
	return ext[0] == 'b' || ext[0] == 'B'
}

// copier signatures
var (
	gameDoctorMagic = []byte("GAME DOCTOR SF ")
	superUFOMagic   = []byte("SUPERUFO")
)

const superUFOOffset = 8

// HasCopierHeader returns true if the data, read from the start of the file,
// begins with a header added by a copier device. The data must be at least
// CopierHeaderSize bytes long.
func HasCopierHeader(data []byte) bool {
	if len(data) < CopierHeaderSize {
		return false
	}

	// super magic drive header. the ID bytes are followed by a file type
	// byte and all reserved bytes are zero
	if data[8] == 0xaa && data[9] == 0xbb {
		if allZero(data[3:8]) && allZero(data[11:CopierHeaderSize]) {
			return true
		}
	}

	return hasCopierMagic(data)
}

func hasCopierMagic(data []byte) bool {
	return romdata.HasMagic(data, 0, gameDoctorMagic) || romdata.HasMagic(data, superUFOOffset, superUFOMagic)
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0x00 {
			return false
		}
	}
	return true
}

// IsSupported returns the variant of the format indicated by the detection
// information or romdata.NoMatch.
//
// A recognised file extension is decisive. Otherwise the header window at
// address zero is checked for the signature of a copier device.
func IsSupported(info romdata.DetectInfo) int {
	if romdata.MatchExt(info.Ext, extensions) != romdata.NoMatch {
		if isBSXExt(info.Ext) {
			return VariantBSX
		}
		return VariantSNES
	}

	if info.HeaderAddr == 0 && len(info.Header) >= CopierHeaderSize {
		if hasCopierMagic(info.Header) {
			return VariantSNES
		}
	}

	return romdata.NoMatch
}
