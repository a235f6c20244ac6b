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

// Package xpr0 reads Microsoft Xbox XPR0 texture files. These are found in
// Xbox save games where they are used as save icons.
//
// The file starts with a 32 byte little-endian header. The dword at offset
// 0x18 is a Direct3D texture format descriptor:
//
//	bits  8-15	pixel format
//	bits 20-23	log2 of the width
//	bits 24-27	log2 of the height
//
// Some files leave the width field empty, in which case the texture is square
// and the height field gives both dimensions.
//
// Texture data starts at the data offset given in the header and is either
// DXT1 compressed, swizzled or linear, depending on the pixel format.
// Unrecognised pixel formats are assumed to be DXT1.
package xpr0
