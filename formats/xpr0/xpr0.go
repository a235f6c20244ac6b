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

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/pixel"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
)

const tag = "xpr0"

// UnsupportedPixelFormat is returned by Image() for pixel formats that are
// recognised but cannot be decoded.
const UnsupportedPixelFormat = "xpr0: unsupported pixel format: %s"

// Field labels.
const (
	FieldPixelFormat = "Pixel Format"
	FieldDimensions  = "Dimensions"
	FieldFileSize    = "File Size"
	FieldDataOffset  = "Data Offset"
)

// Extensions returns the list of file extensions for the format.
func Extensions() []string {
	return []string{"xpr"}
}

// IsSupported returns zero if the header window starts with the XPR0 magic
// string.
func IsSupported(info romdata.DetectInfo) int {
	if info.HeaderAddr == 0 && romdata.HasMagic(info.Header, 0, []byte(Magic)) {
		return 0
	}
	return romdata.NoMatch
}

// Reader for XPR0 files.
type Reader struct {
	romdata.Base

	header Header

	// decoded image and the error from decoding. the image is decoded on the
	// first call to Image()
	img    *pixel.Image
	imgErr error
}

// New probes the source for an XPR0 texture.
//
// A nil error does not mean that the file is valid. Use IsValid() to check.
func New(src source.Source) (*Reader, error) {
	r := &Reader{}
	if err := r.Init(src, tag); err != nil {
		return nil, err
	}
	r.Probed(r.probe())
	return r, nil
}

func (r *Reader) probe() bool {
	var b [HeaderSize]byte
	if err := r.ReadAt(0, b[:]); err != nil {
		return false
	}
	r.header = DecodeHeader(b[:])
	return IsHeaderValid(&r.header)
}

// Header returns the decoded header.
func (r *Reader) Header() Header {
	return r.header
}

// SystemName implements the romdata.Reader interface.
func (r *Reader) SystemName(t romdata.SystemNameType) string {
	if !r.IsValid() {
		return ""
	}
	switch t {
	case romdata.NameLong:
		return "Microsoft Xbox"
	case romdata.NameShort:
		return "Xbox"
	case romdata.NameAbbreviation:
		return "Xbox"
	}
	return ""
}

// Fields implements the romdata.Reader interface.
func (r *Reader) Fields() (*romdata.Fields, error) {
	return r.Base.Fields(func(fl *romdata.Fields) {
		h := r.header
		fl.AddString(FieldPixelFormat, PixelFormatName(h.PixelFormat()))
		fl.AddString(FieldDimensions, fmt.Sprintf("%dx%d", h.Width(), h.Height()))
		fl.AddNumeric(FieldFileSize, uint64(h.FileSize), romdata.Dec, 0)
		fl.AddNumeric(FieldDataOffset, uint64(h.DataOffset), romdata.Hex, 8)
	})
}

// Image implements the romdata.ImageReader interface. The texture is decoded
// on the first call and the result is cached.
func (r *Reader) Image() (*pixel.Image, error) {
	if r.img != nil || r.imgErr != nil {
		return r.img, r.imgErr
	}
	if !r.IsValid() {
		return nil, curated.Errorf(romdata.UnsupportedFile, r.Name())
	}
	if src := r.Source(); src == nil || !src.IsOpen() {
		return nil, curated.Errorf(romdata.NotOpen)
	}
	r.img, r.imgErr = r.decode()
	return r.img, r.imgErr
}

func (r *Reader) decode() (*pixel.Image, error) {
	h := r.header
	pf := lookupFormat(h.PixelFormat())
	if pf.layout == layoutUnsupported {
		return nil, curated.Errorf(UnsupportedPixelFormat, pf.name)
	}

	w := h.Width()
	ht := h.Height()

	data := make([]byte, pf.dataSize(w, ht))
	if err := r.ReadAt(int64(h.DataOffset), data); err != nil {
		return nil, err
	}

	img, err := pixel.NewImage(pixel.ARGB32, w, ht)
	if err != nil {
		return nil, err
	}

	switch pf.layout {
	case layoutDXT1:
		err = pixel.DXT1(img, data)
	case layoutLinear:
		if pf.has16 {
			err = pixel.Decode16(img, pf.fmt16, binary.LittleEndian, data)
		} else {
			decode(img, pf, data, func(x, y int) int { return y*w + x })
		}
	case layoutSwizzled:
		decode(img, pf, data, func(x, y int) int { return pixel.MortonIndex(x, y, w, ht) })
	}
	if err != nil {
		return nil, err
	}

	return img, nil
}

// decode uncompressed pixel data. the index function returns the position of
// pixel x,y in the data
func decode(img *pixel.Image, pf pixelFormat, data []byte, index func(x, y int) int) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := index(x, y) * pf.bytes
			img.Pix32[y*img.Stride+x] = pf.conv(data[i : i+pf.bytes])
		}
	}
}
