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
	"image"
	"image/color"

	"github.com/jetsetilly/romprops/curated"
)

// Format of the pixels in an Image.
type Format int

// List of valid Format values.
const (
	ARGB32 Format = iota
	CI8
)

func (f Format) String() string {
	switch f {
	case ARGB32:
		return "ARGB32"
	case CI8:
		return "CI8"
	}
	return fmt.Sprintf("unknown format (%d)", int(f))
}

// PaletteSize is the number of entries in the palette of a CI8 Image.
const PaletteSize = 256

// Image is the canonical pixel buffer. Rows are Stride pixels apart, which may
// be more than the Width of the image.
//
// Only one of the Pix32 and Pix8 fields is used, depending on the Format.
type Image struct {
	Width  int
	Height int
	Stride int
	Format Format

	// ARGB32 pixels
	Pix32 []uint32

	// CI8 pixels and palette. The palette entries are ARGB32 values
	Pix8    []uint8
	Palette []uint32
}

// NewImage is the preferred method of initialisation for the Image type. The
// stride of the new image is the same as the width.
func NewImage(format Format, width int, height int) (*Image, error) {
	return NewImageWithStride(format, width, height, width)
}

// NewImageWithStride creates a new Image with a stride that may be larger than
// the width.
func NewImageWithStride(format Format, width int, height int, stride int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(PreconditionFailed, fmt.Sprintf("invalid dimensions %dx%d", width, height))
	}
	if stride < width {
		return nil, curated.Errorf(PreconditionFailed, fmt.Sprintf("stride %d is less than width %d", stride, width))
	}

	img := &Image{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}

	switch format {
	case ARGB32:
		img.Pix32 = make([]uint32, stride*height)
	case CI8:
		img.Pix8 = make([]uint8, stride*height)
		img.Palette = make([]uint32, PaletteSize)
	default:
		return nil, curated.Errorf(PreconditionFailed, fmt.Sprintf("unsupported format %s", format))
	}

	return img, nil
}

// checkBuffer makes sure that the pixel buffer of the image is large enough
// for the dimensions and stride of the image. The fields of an Image are
// exported so this must be checked before writing to the buffer.
func checkBuffer(img *Image) error {
	if img == nil {
		return curated.Errorf(PreconditionFailed, "nil image")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("invalid dimensions %dx%d", img.Width, img.Height))
	}
	if img.Stride < img.Width {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("stride %d is less than width %d", img.Stride, img.Width))
	}

	required := img.Stride*(img.Height-1) + img.Width

	var l int
	switch img.Format {
	case ARGB32:
		l = len(img.Pix32)
	case CI8:
		l = len(img.Pix8)
		if len(img.Palette) < PaletteSize {
			return curated.Errorf(PreconditionFailed, fmt.Sprintf("palette has %d entries, %d required", len(img.Palette), PaletteSize))
		}
	default:
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("unsupported format %s", img.Format))
	}

	if l < required {
		return curated.Errorf(PreconditionFailed, fmt.Sprintf("pixel buffer has %d entries, %d required", l, required))
	}

	return nil
}

// ARGB returns the colour of the pixel at x,y as an ARGB32 value. Pixels
// outside the image, or outside a buffer that is too small, are transparent.
func (img *Image) ARGB(x int, y int) uint32 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}

	i := y*img.Stride + x
	switch img.Format {
	case ARGB32:
		if i < len(img.Pix32) {
			return img.Pix32[i]
		}
	case CI8:
		if i < len(img.Pix8) && int(img.Pix8[i]) < len(img.Palette) {
			return img.Palette[img.Pix8[i]]
		}
	}
	return 0
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements the image.Image interface.
func (img *Image) At(x int, y int) color.Color {
	return toNRGBA(img.ARGB(x, y))
}

// NRGBA returns a copy of the Image as an image.NRGBA.
func (img *Image) NRGBA() *image.NRGBA {
	n := image.NewNRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			n.SetNRGBA(x, y, toNRGBA(img.ARGB(x, y)))
		}
	}
	return n
}

func toNRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}
