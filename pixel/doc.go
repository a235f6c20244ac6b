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

// Package pixel converts the packed pixel encodings found in game data into
// a canonical image. There are two canonical formats: 32-bit ARGB and 8-bit
// colour indexed with a palette of 32-bit ARGB entries.
//
// Conversion functions for individual 16-bit pixels are pure. They are defined
// for every input value and have no side effects:
//
//	argb := pixel.RGB565(0xf800)	// 0xffff0000
//
// The Image type is the canonical pixel buffer. It is allocated by the caller
// and written into by the blit and decode functions, none of which retain the
// Image after returning. An Image implements the image.Image interface so that
// it can be used with the image/png package and the scalers in
// golang.org/x/image/draw.
//
// Misuse of the blit functions, for example a tile that does not fit in the
// image, is reported with the PreconditionFailed error pattern. Data driven
// problems, such as texture data that is too short, are reported with the
// ShortData pattern.
package pixel
