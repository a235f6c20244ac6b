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

// Package thumbnailer creates thumbnail images from the images embedded in
// ROM and texture files. Thumbnails are scaled with one of the scalers from
// golang.org/x/image/draw and written as PNG.
//
// The aspect ratio of the source image is preserved. The longest side of the
// thumbnail is the requested size.
package thumbnailer
