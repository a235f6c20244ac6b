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

// Package codec contains the low level byte decoding used by the format
// readers. There are two parts to the package.
//
// The Cursor type reads fixed width integers from a byte slice in a declared
// byte order. Format headers are decoded field-by-field with a Cursor rather
// than by overlaying a structure on the raw data.
//
// The CodePage type maps each 8-bit character to a Unicode code point. The
// Decode() function uses a CodePage to convert legacy text into a Go string.
// Code pages are package level values and must never be modified.
package codec
