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

import "github.com/jetsetilly/romprops/pixel"

// SystemNameType selects the form of a system name.
type SystemNameType int

// List of valid SystemNameType values.
const (
	NameLong SystemNameType = iota
	NameShort
	NameAbbreviation
)

// Reader is implemented by every format reader.
type Reader interface {
	IsValid() bool

	// name of the system the file is for. the name may depend on the region
	// of the file
	SystemName(SystemNameType) string

	Fields() (*Fields, error)
	Close() error
}

// ImageReader is implemented by format readers that contain an image.
type ImageReader interface {
	Image() (*pixel.Image, error)
}
