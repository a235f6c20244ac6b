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

package publishers

import (
	"fmt"
	"strings"
)

// Unknown is the placeholder name for a code that is not in the table.
const Unknown = "Unknown"

// Lookup returns the publisher name for the two character code. The code is
// case insensitive.
func Lookup(code string) (string, bool) {
	name, ok := table[strings.ToUpper(code)]
	return name, ok
}

// LookupOld returns the publisher name for a single byte code.
func LookupOld(code uint8) (string, bool) {
	return Lookup(fmt.Sprintf("%02X", code))
}

// Name returns the publisher name for the two character code or Unknown.
func Name(code string) string {
	if name, ok := Lookup(code); ok {
		return name
	}
	return Unknown
}

// NameOld returns the publisher name for a single byte code or Unknown.
func NameOld(code uint8) string {
	if name, ok := LookupOld(code); ok {
		return name
	}
	return Unknown
}
