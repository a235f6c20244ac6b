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

// RGB565 converts a 16-bit RGB565 pixel to ARGB32. The pixel is opaque.
func RGB565(px uint16) uint32 {
	p := uint32(px)

	// RGB565: RRRRRGGG GGGBBBBB
	argb := ((p << 8) & 0xf80000) | ((p << 3) & 0x070000) |
		((p << 5) & 0x00fc00) | ((p >> 1) & 0x000300) |
		((p << 3) & 0x0000f8) | ((p >> 2) & 0x000007)

	return argb | 0xff000000
}

// ARGB1555 converts a 16-bit ARGB1555 pixel to ARGB32. The pixel is opaque if
// the top bit is set and fully transparent otherwise.
func ARGB1555(px uint16) uint32 {
	p := uint32(px)

	// ARGB1555: ARRRRRGG GGGBBBBB
	argb := ((p << 9) & 0xf80000) | ((p << 4) & 0x070000) |
		((p << 6) & 0x00f800) | ((p << 1) & 0x000300) |
		((p << 3) & 0x0000f8) | ((p >> 2) & 0x000007)

	if px&0x8000 == 0x8000 {
		argb |= 0xff000000
	}

	return argb
}

// ARGB4444 converts a 16-bit ARGB4444 pixel to ARGB32. Each four bit channel
// is replicated into the lower nibble of the eight bit channel.
func ARGB4444(px uint16) uint32 {
	p := uint32(px)

	argb := p & 0x000f
	argb |= (p & 0x00f0) << 4
	argb |= (p & 0x0f00) << 8
	argb |= (p & 0xf000) << 12
	argb |= argb << 4

	return argb
}

// RGB5A3 converts a 16-bit RGB5A3 pixel to ARGB32. If the top bit is set the
// pixel is an opaque RGB555 value. Otherwise it is an RGB444 value with a
// three bit alpha channel.
func RGB5A3(px uint16) uint32 {
	p := uint32(px)

	if px&0x8000 == 0x8000 {
		// xRRRRRGG GGGBBBBB
		argb := ((p << 3) & 0x0000f8) | ((p >> 2) & 0x000007)
		argb |= ((p << 6) & 0x00f800) | ((p << 1) & 0x000700)
		argb |= ((p << 9) & 0xf80000) | ((p << 4) & 0x070000)
		return argb | 0xff000000
	}

	// 0AAARRRR GGGGBBBB
	argb := p & 0x000f
	argb |= (p & 0x00f0) << 4
	argb |= (p & 0x0f00) << 8
	argb |= argb << 4

	a := uint8((p >> 7) & 0xe0)
	a |= a >> 3
	a |= a >> 3

	return argb | uint32(a)<<24
}

// IA8 converts a 16-bit intensity and alpha pixel to ARGB32. The intensity is
// in the high byte and the alpha in the low byte.
func IA8(px uint16) uint32 {
	i := uint32(px >> 8)
	a := uint32(px & 0xff)
	return a<<24 | i<<16 | i<<8 | i
}

// BGR555 converts a 16-bit BGR555 pixel to ARGB32. The pixel is opaque.
func BGR555(px uint16) uint32 {
	p := uint32(px)

	// xBBBBBGG GGGRRRRR
	argb := ((p << 19) & 0xf80000) | ((p << 14) & 0x070000) |
		((p << 6) & 0x00f800) | ((p << 1) & 0x000700) |
		((p >> 7) & 0x0000f8) | ((p >> 12) & 0x000007)

	return argb | 0xff000000
}

// Format16 identifies a 16-bit packed pixel encoding.
type Format16 int

// List of valid Format16 values.
const (
	FmtRGB565 Format16 = iota
	FmtARGB1555
	FmtARGB4444
	FmtRGB5A3
	FmtIA8
	FmtBGR555
)

var converters = [...]func(uint16) uint32{
	FmtRGB565:   RGB565,
	FmtARGB1555: ARGB1555,
	FmtARGB4444: ARGB4444,
	FmtRGB5A3:   RGB5A3,
	FmtIA8:      IA8,
	FmtBGR555:   BGR555,
}

func (f Format16) String() string {
	switch f {
	case FmtRGB565:
		return "RGB565"
	case FmtARGB1555:
		return "ARGB1555"
	case FmtARGB4444:
		return "ARGB4444"
	case FmtRGB5A3:
		return "RGB5A3"
	case FmtIA8:
		return "IA8"
	case FmtBGR555:
		return "BGR555"
	}
	return fmt.Sprintf("unknown format (%d)", int(f))
}

// Converter returns the conversion function for the format. Returns nil if the
// format is not recognised.
func Converter(f Format16) func(uint16) uint32 {
	if f < 0 || int(f) >= len(converters) {
		return nil
	}
	return converters[f]
}

// Convert a packed pixel of the specified format to ARGB32. Unrecognised
// formats convert to a transparent pixel.
func Convert(f Format16, px uint16) uint32 {
	conv := Converter(f)
	if conv == nil {
		return 0
	}
	return conv(px)
}

// Decode16 converts linear 16-bit pixel data into the ARGB32 image. The data
// must contain at least Width*Height pixels in the specified byte order.
func Decode16(img *Image, f Format16, order binary.ByteOrder, data []byte) error {
	if err := checkBuffer(img); err != nil {
		return err
	}
	if img.Format != ARGB32 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("decode16 requires ARGB32 image not %s", img.Format))
	}

	conv := Converter(f)
	if conv == nil {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("decode16 does not support %s", f))
	}

	required := img.Width * img.Height * 2
	if len(data) < required {
		return curated.Errorf(ShortData, required, len(data))
	}

	for y := 0; y < img.Height; y++ {
		row := img.Pix32[y*img.Stride : y*img.Stride+img.Width]
		for x := range row {
			i := (y*img.Width + x) * 2
			row[x] = conv(order.Uint16(data[i:]))
		}
	}

	return nil
}
