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

// IsAlnum returns true if the byte is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsDigit returns true if the byte is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsASCII returns true if the high bit of the byte is clear.
func IsASCII(c byte) bool {
	return c&0x80 == 0x00
}

// AllASCII returns true if every byte in the slice has the high bit clear.
func AllASCII(b []byte) bool {
	for _, c := range b {
		if !IsASCII(c) {
			return false
		}
	}
	return true
}
