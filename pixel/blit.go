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
	"fmt"

	"github.com/jetsetilly/romprops/curated"
)

// checkTile makes sure that a tile of the given size at tile position tileX,
// tileY is entirely within the image and that the tile dimensions evenly
// divide the image.
func checkTile(img *Image, tileW int, tileH int, tileX int, tileY int) error {
	if tileW <= 0 || tileH <= 0 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("invalid tile size %dx%d", tileW, tileH))
	}
	if img.Width%tileW != 0 || img.Height%tileH != 0 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("tile size %dx%d does not divide image size %dx%d", tileW, tileH, img.Width, img.Height))
	}
	if tileX < 0 || tileY < 0 || (tileX+1)*tileW > img.Width || (tileY+1)*tileH > img.Height {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("tile %d,%d is outside image", tileX, tileY))
	}
	return nil
}

func blit[P uint8 | uint32](dst []P, stride int, tile []P, tileW int, tileH int, tileX int, tileY int) {
	d := tileY*tileH*stride + tileX*tileW
	for y := 0; y < tileH; y++ {
		copy(dst[d:d+tileW], tile[y*tileW:(y+1)*tileW])
		d += stride
	}
}

// BlitTileARGB32 copies a tile of ARGB32 pixels into the image. The tile
// position is measured in tiles and not in pixels.
func BlitTileARGB32(img *Image, tile []uint32, tileW int, tileH int, tileX int, tileY int) error {
	if err := checkBuffer(img); err != nil {
		return err
	}
	if img.Format != ARGB32 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("ARGB32 tile cannot be blitted to %s image", img.Format))
	}
	if err := checkTile(img, tileW, tileH, tileX, tileY); err != nil {
		return err
	}
	if len(tile) < tileW*tileH {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("tile buffer has %d pixels, %d required", len(tile), tileW*tileH))
	}
	blit(img.Pix32, img.Stride, tile, tileW, tileH, tileX, tileY)
	return nil
}

// BlitTileCI8 copies a tile of CI8 pixels into the image. The tile position is
// measured in tiles and not in pixels.
func BlitTileCI8(img *Image, tile []uint8, tileW int, tileH int, tileX int, tileY int) error {
	if err := checkBuffer(img); err != nil {
		return err
	}
	if img.Format != CI8 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("CI8 tile cannot be blitted to %s image", img.Format))
	}
	if err := checkTile(img, tileW, tileH, tileX, tileY); err != nil {
		return err
	}
	if len(tile) < tileW*tileH {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("tile buffer has %d pixels, %d required", len(tile), tileW*tileH))
	}
	blit(img.Pix8, img.Stride, tile, tileW, tileH, tileX, tileY)
	return nil
}

// BlitTileCI4LeftLSN expands a tile of CI4 pixels into a CI8 image. Each byte
// of the tile holds two pixels, the left pixel in the low nibble.
func BlitTileCI4LeftLSN(img *Image, tile []uint8, tileW int, tileH int, tileX int, tileY int) error {
	if err := checkBuffer(img); err != nil {
		return err
	}
	if img.Format != CI8 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("CI4 tile cannot be blitted to %s image", img.Format))
	}
	if tileW%2 != 0 || img.Width%2 != 0 {
		return curated.Errorf(PreconditionFailed, "CI4 tile and image widths must be even")
	}
	if err := checkTile(img, tileW, tileH, tileX, tileY); err != nil {
		return err
	}
	if len(tile) < tileW*tileH/2 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("tile buffer has %d bytes, %d required", len(tile), tileW*tileH/2))
	}

	d := tileY*tileH*img.Stride + tileX*tileW
	t := 0
	for y := 0; y < tileH; y++ {
		for x := 0; x < tileW; x += 2 {
			img.Pix8[d+x] = tile[t] & 0x0f
			img.Pix8[d+x+1] = tile[t] >> 4
			t++
		}
		d += img.Stride
	}

	return nil
}
