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

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/romprops/curated"
)

// DXT1BlockSize is the number of bytes in a DXT1 block. Each block encodes
// four by four pixels.
const DXT1BlockSize = 8

// DXT1 decodes DXT1 compressed data into the ARGB32 image. Blocks are in
// left-to-right, top-to-bottom order. Images with dimensions that are not
// multiples of four are stored as whole blocks, the pixels outside the image
// being discarded.
func DXT1(img *Image, data []byte) error {
	if err := checkBuffer(img); err != nil {
		return err
	}
	if img.Format != ARGB32 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("DXT1 requires ARGB32 image not %s", img.Format))
	}

	blocksW := (img.Width + 3) / 4
	blocksH := (img.Height + 3) / 4

	required := blocksW * blocksH * DXT1BlockSize
	if len(data) < required {
		return curated.Errorf(ShortData, required, len(data))
	}

	var pal [4]uint32

	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			blk := data[(by*blocksW+bx)*DXT1BlockSize:]
			c0 := binary.LittleEndian.Uint16(blk[0:])
			c1 := binary.LittleEndian.Uint16(blk[2:])
			indices := binary.LittleEndian.Uint32(blk[4:])

			pal[0] = RGB565(c0)
			pal[1] = RGB565(c1)
			if c0 > c1 {
				pal[2] = blend(pal[0], pal[1], 2, 1, 3)
				pal[3] = blend(pal[0], pal[1], 1, 2, 3)
			} else {
				pal[2] = blend(pal[0], pal[1], 1, 1, 2)
				pal[3] = 0x00000000
			}

			w := min4(img.Width - bx*4)
			h := min4(img.Height - by*4)
			for y := 0; y < h; y++ {
				d := (by*4+y)*img.Stride + bx*4
				for x := 0; x < w; x++ {
					img.Pix32[d+x] = pal[(indices>>(uint(y*4+x)*2))&0x03]
				}
			}
		}
	}

	return nil
}

// the number of pixels of a block that are inside the image
func min4(n int) int {
	if n > 4 {
		return 4
	}
	return n
}

// blend two opaque colours in the ratio wa:wb. the result is opaque.
func blend(a uint32, b uint32, wa uint32, wb uint32, div uint32) uint32 {
	var r uint32
	for shift := uint(0); shift < 24; shift += 8 {
		ca := (a >> shift) & 0xff
		cb := (b >> shift) & 0xff
		r |= ((ca*wa + cb*wb) / div) << shift
	}
	return r | 0xff000000
}
