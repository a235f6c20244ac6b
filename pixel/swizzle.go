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

package pixel

// MortonIndex returns the position of pixel x,y in a swizzled texture of the
// given dimensions. Bits of the x and y coordinates are interleaved, starting
// with the x coordinate, until the bits of the smaller dimension are
// exhausted. Dimensions must be powers of two.
func MortonIndex(x int, y int, width int, height int) int {
	var idx int
	var bit uint
	for mask := 1; mask < width || mask < height; mask <<= 1 {
		if mask < width {
			if x&mask != 0 {
				idx |= 1 << bit
			}
			bit++
		}
		if mask < height {
			if y&mask != 0 {
				idx |= 1 << bit
			}
			bit++
		}
	}
	return idx
}

// IsPowerOfTwo returns true if v is a power of two greater than zero.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
