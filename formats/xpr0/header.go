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

package xpr0

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/romprops/codec"
	"github.com/jetsetilly/romprops/pixel"
)

// Magic is the string found at the start of every XPR0 file.
const Magic = "XPR0"

// HeaderSize is the size of the XPR0 header in bytes.
const HeaderSize = 32

// maximum texture dimension is 2048 pixels
const (
	minLog2 = 1
	maxLog2 = 11
)

// Header of an XPR0 file.
type Header struct {
	Magic      [4]byte
	FileSize   uint32
	DataOffset uint32
	Flags      uint32
	Format     uint32
}

// DecodeHeader decodes the first HeaderSize bytes of b.
func DecodeHeader(b []byte) Header {
	var h Header
	c := codec.NewCursor(b)
	copy(h.Magic[:], c.Bytes(4))
	h.FileSize = c.U32LE()
	h.DataOffset = c.U32LE()
	h.Flags = c.U32LE()
	c.Skip(8)
	h.Format = c.U32LE()
	return h
}

// PixelFormat returns the pixel format code from the format descriptor.
func (h Header) PixelFormat() uint8 {
	return uint8(h.Format >> 8)
}

func (h Header) log2Height() uint {
	return uint(h.Format>>24) & 0x0f
}

func (h Header) log2Width() uint {
	u := uint(h.Format>>20) & 0x0f
	if u == 0 {
		return h.log2Height()
	}
	return u
}

// Width of the texture in pixels.
func (h Header) Width() int {
	return 1 << h.log2Width()
}

// Height of the texture in pixels.
func (h Header) Height() int {
	return 1 << h.log2Height()
}

// IsHeaderValid checks the magic string, the data offset and the texture
// dimensions.
func IsHeaderValid(h *Header) bool {
	if string(h.Magic[:]) != Magic {
		return false
	}
	if h.DataOffset < HeaderSize || h.DataOffset >= h.FileSize {
		return false
	}
	if w := h.log2Width(); w < minLog2 || w > maxLog2 {
		return false
	}
	if ht := h.log2Height(); ht < minLog2 || ht > maxLog2 {
		return false
	}
	return true
}

// layout of texture data
type layout int

const (
	layoutDXT1 layout = iota
	layoutSwizzled
	layoutLinear
	layoutUnsupported
)

type pixelFormat struct {
	name   string
	layout layout
	bytes  int
	conv   func(b []byte) uint32

	// linear 16-bit formats that the pixel package can decode directly
	fmt16 pixel.Format16
	has16 bool
}

func conv16(f func(uint16) uint32) func(b []byte) uint32 {
	return func(b []byte) uint32 {
		return f(binary.LittleEndian.Uint16(b))
	}
}

func x1r5g5b5(b []byte) uint32 {
	return pixel.ARGB1555(binary.LittleEndian.Uint16(b) | 0x8000)
}

func a8r8g8b8(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func x8r8g8b8(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b) | 0xff000000
}

var dxt1 = pixelFormat{name: "DXT1", layout: layoutDXT1}

var pixelFormats = map[uint8]pixelFormat{
	0x02: {name: "ARGB1555", layout: layoutSwizzled, bytes: 2, conv: conv16(pixel.ARGB1555)},
	0x03: {name: "RGB555", layout: layoutSwizzled, bytes: 2, conv: x1r5g5b5},
	0x04: {name: "ARGB4444", layout: layoutSwizzled, bytes: 2, conv: conv16(pixel.ARGB4444)},
	0x05: {name: "RGB565", layout: layoutSwizzled, bytes: 2, conv: conv16(pixel.RGB565)},
	0x06: {name: "ARGB8888", layout: layoutSwizzled, bytes: 4, conv: a8r8g8b8},
	0x07: {name: "xRGB8888", layout: layoutSwizzled, bytes: 4, conv: x8r8g8b8},
	0x0c: dxt1,
	0x0e: {name: "DXT3", layout: layoutUnsupported},
	0x0f: {name: "DXT5", layout: layoutUnsupported},
	0x10: {name: "ARGB1555 (linear)", layout: layoutLinear, bytes: 2, fmt16: pixel.FmtARGB1555, has16: true},
	0x11: {name: "RGB565 (linear)", layout: layoutLinear, bytes: 2, fmt16: pixel.FmtRGB565, has16: true},
	0x12: {name: "ARGB8888 (linear)", layout: layoutLinear, bytes: 4, conv: a8r8g8b8},
	0x1d: {name: "ARGB4444 (linear)", layout: layoutLinear, bytes: 2, fmt16: pixel.FmtARGB4444, has16: true},
	0x1e: {name: "xRGB8888 (linear)", layout: layoutLinear, bytes: 4, conv: x8r8g8b8},
}

func lookupFormat(code uint8) pixelFormat {
	if pf, ok := pixelFormats[code]; ok {
		return pf
	}
	return dxt1
}

// PixelFormatName returns the name of the pixel format code. Unrecognised
// codes are described as DXT1 along with the code.
func PixelFormatName(code uint8) string {
	if pf, ok := pixelFormats[code]; ok {
		return pf.name
	}
	return fmt.Sprintf("DXT1 (0x%02X)", code)
}

// dataSize returns the number of bytes of texture data for the format
func (pf pixelFormat) dataSize(width int, height int) int {
	if pf.layout == layoutDXT1 {
		// textures smaller than a block still occupy whole blocks
		return ((width + 3) / 4) * ((height + 3) / 4) * pixel.DXT1BlockSize
	}
	return width * height * pf.bytes
}
