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

package pixel_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/romprops/pixel"
	"github.com/jetsetilly/romprops/test"
)

func TestRGB565(t *testing.T) {
	test.ExpectEquality(t, pixel.RGB565(0x0000), uint32(0xff000000))
	test.ExpectEquality(t, pixel.RGB565(0xffff), uint32(0xffffffff))
	test.ExpectEquality(t, pixel.RGB565(0xf800), uint32(0xffff0000))
	test.ExpectEquality(t, pixel.RGB565(0x07e0), uint32(0xff00ff00))
	test.ExpectEquality(t, pixel.RGB565(0x001f), uint32(0xff0000ff))
}

func TestARGB1555(t *testing.T) {
	test.ExpectEquality(t, pixel.ARGB1555(0x8000), uint32(0xff000000))
	test.ExpectEquality(t, pixel.ARGB1555(0x7c00), uint32(0x00ff0000))
	test.ExpectEquality(t, pixel.ARGB1555(0x801f), uint32(0xff0000ff))

	// the top bit always produces full opacity and a clear top bit is always
	// fully transparent
	for px := 0; px <= 0xffff; px++ {
		a := pixel.ARGB1555(uint16(px)) >> 24
		if px&0x8000 == 0x8000 {
			if !test.ExpectEquality(t, a, uint32(0xff), px) {
				break
			}
		} else {
			if !test.ExpectEquality(t, a, uint32(0x00), px) {
				break
			}
		}
	}
}

func TestARGB4444NibbleReplication(t *testing.T) {
	for n := uint16(0); n < 16; n++ {
		// the same nibble in every channel
		px := n<<12 | n<<8 | n<<4 | n
		argb := pixel.ARGB4444(px)
		for shift := 0; shift < 32; shift += 8 {
			ch := (argb >> shift) & 0xff
			test.ExpectEquality(t, ch&0x0f, ch>>4, n, shift)
			test.ExpectEquality(t, ch>>4, uint32(n), n, shift)
		}
	}

	test.ExpectEquality(t, pixel.ARGB4444(0xf123), uint32(0xff112233))
}

func TestRGB5A3(t *testing.T) {
	// opaque path
	test.ExpectEquality(t, pixel.RGB5A3(0xffff), uint32(0xffffffff))
	test.ExpectEquality(t, pixel.RGB5A3(0xfc00), uint32(0xffff0000))
	for px := 0x8000; px <= 0xffff; px++ {
		if !test.ExpectEquality(t, pixel.RGB5A3(uint16(px))>>24, uint32(0xff), px) {
			break
		}
	}

	// translucent path. alpha of 0b111 is 0xff and 0b100 is 0x92
	test.ExpectEquality(t, pixel.RGB5A3(0x7fff), uint32(0xffffffff))
	test.ExpectEquality(t, pixel.RGB5A3(0x4000), uint32(0x92000000))
	test.ExpectEquality(t, pixel.RGB5A3(0x0123), uint32(0x00112233))

	// rgb channels of the translucent path are the same as ARGB4444
	for px := 0; px < 0x8000; px++ {
		if !test.ExpectEquality(t, pixel.RGB5A3(uint16(px))&0x00ffffff, pixel.ARGB4444(uint16(px))&0x00ffffff, px) {
			break
		}
	}
}

func TestIA8(t *testing.T) {
	test.ExpectEquality(t, pixel.IA8(0xff80), uint32(0x80ffffff))
	test.ExpectEquality(t, pixel.IA8(0x40ff), uint32(0xff404040))
}

func TestBGR555(t *testing.T) {
	test.ExpectEquality(t, pixel.BGR555(0x001f), uint32(0xffff0000))
	test.ExpectEquality(t, pixel.BGR555(0x03e0), uint32(0xff00ff00))
	test.ExpectEquality(t, pixel.BGR555(0x7c00), uint32(0xff0000ff))
	test.ExpectEquality(t, pixel.BGR555(0x8000), uint32(0xff000000))
}

func TestConvertTotal(t *testing.T) {
	formats := []pixel.Format16{
		pixel.FmtRGB565, pixel.FmtARGB1555, pixel.FmtARGB4444,
		pixel.FmtRGB5A3, pixel.FmtIA8, pixel.FmtBGR555,
	}

	// every input is defined and converting twice gives the same result
	for _, f := range formats {
		conv := pixel.Converter(f)
		test.DemandSuccess(t, conv != nil, f)
		for px := 0; px <= 0xffff; px++ {
			a := pixel.Convert(f, uint16(px))
			b := conv(uint16(px))
			if !test.ExpectEquality(t, a, b, f, px) {
				break
			}
		}
	}

	test.ExpectSuccess(t, pixel.Converter(pixel.Format16(100)) == nil)
	test.ExpectEquality(t, pixel.Convert(pixel.Format16(-1), 0xffff), uint32(0))
}

func TestDecode16(t *testing.T) {
	img, err := pixel.NewImageWithStride(pixel.ARGB32, 2, 2, 4)
	test.DemandSuccess(t, err)

	data := make([]byte, 8)
	binary.LittleEndian.PutUint16(data[0:], 0xf800)
	binary.LittleEndian.PutUint16(data[2:], 0x07e0)
	binary.LittleEndian.PutUint16(data[4:], 0x001f)
	binary.LittleEndian.PutUint16(data[6:], 0xffff)

	test.ExpectSuccess(t, pixel.Decode16(img, pixel.FmtRGB565, binary.LittleEndian, data))
	test.ExpectEquality(t, img.ARGB(0, 0), uint32(0xffff0000))
	test.ExpectEquality(t, img.ARGB(1, 0), uint32(0xff00ff00))
	test.ExpectEquality(t, img.ARGB(0, 1), uint32(0xff0000ff))
	test.ExpectEquality(t, img.ARGB(1, 1), uint32(0xffffffff))

	// padding between rows is untouched
	test.ExpectEquality(t, img.Pix32[2], uint32(0))
	test.ExpectEquality(t, img.Pix32[3], uint32(0))

	// short data
	test.ExpectFailure(t, pixel.Decode16(img, pixel.FmtRGB565, binary.LittleEndian, data[:7]))
}
