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

package codec

import (
	"strings"
	"unicode/utf8"
)

// CodePage maps an 8-bit character to a Unicode code point. Characters that
// have no Unicode equivalent map to utf8.RuneError (U+FFFD).
type CodePage [256]rune

// Latin1 is ISO-8859-1. Every byte maps to the code point of the same value.
var Latin1 = func() CodePage {
	var cp CodePage
	for i := range cp {
		cp[i] = rune(i)
	}
	return cp
}()

// Decode the bytes using the code page. Decoding stops at the first NUL byte.
//
// A character that maps to a code point outside the basic multilingual plane
// is decoded as utf8.RuneError. This does not happen with any of the code
// pages in this package.
func Decode(cp *CodePage, b []byte) string {
	var s strings.Builder
	s.Grow(len(b) + 8)

	for _, c := range b {
		if c == 0x00 {
			break
		}
		r := cp[c]
		if r > 0xffff {
			r = utf8.RuneError
		}
		s.WriteRune(r)
	}

	return s.String()
}

// DecodeLatin1 is a convenience function for Decode(&Latin1, b).
func DecodeLatin1(b []byte) string {
	return Decode(&Latin1, b)
}
