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

package thumbnailer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/pixel"
	"golang.org/x/image/draw"
)

// Patterns for errors returned by the package.
const (
	UnknownScaler = "thumbnailer: unknown scaler: %s"
	InvalidSize   = "thumbnailer: invalid size: %d"
	EncodeError   = "thumbnailer: png: %v"
)

// MaxSize is the largest thumbnail that can be created.
const MaxSize = 1024

// DefaultScaler is the scaler used if no scaler is specified.
const DefaultScaler = "nearest"

var scalers = map[string]draw.Scaler{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// Scalers returns the names of the available scalers in sorted order.
func Scalers() []string {
	s := make([]string, 0, len(scalers))
	for k := range scalers {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Thumbnailer scales images to thumbnail size.
type Thumbnailer struct {
	size   int
	name   string
	scaler draw.Scaler
}

// NewThumbnailer is the preferred method of initialisation for the
// Thumbnailer type. The scaler name is case insensitive and an empty string
// selects the DefaultScaler.
func NewThumbnailer(size int, scaler string) (*Thumbnailer, error) {
	if size <= 0 || size > MaxSize {
		return nil, curated.Errorf(InvalidSize, size)
	}

	scaler = strings.ToLower(strings.TrimSpace(scaler))
	if scaler == "" {
		scaler = DefaultScaler
	}
	s, ok := scalers[scaler]
	if !ok {
		return nil, curated.Errorf(UnknownScaler, scaler)
	}

	return &Thumbnailer{
		size:   size,
		name:   scaler,
		scaler: s,
	}, nil
}

func (thmb *Thumbnailer) String() string {
	return fmt.Sprintf("%dpx (%s)", thmb.size, thmb.name)
}

// Dimensions returns the size of the thumbnail for an image of the given
// size. Neither dimension is less than one.
func (thmb *Thumbnailer) Dimensions(width int, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	var w, h int
	if width >= height {
		w = thmb.size
		h = height * thmb.size / width
	} else {
		h = thmb.size
		w = width * thmb.size / height
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Create a thumbnail from the image.
func (thmb *Thumbnailer) Create(img *pixel.Image) *image.NRGBA {
	src := img.NRGBA()
	w, h := thmb.Dimensions(src.Bounds().Dx(), src.Bounds().Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	thmb.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG creates a thumbnail from the image and writes it to w in PNG
// format.
func (thmb *Thumbnailer) WritePNG(w io.Writer, img *pixel.Image) error {
	if err := png.Encode(w, thmb.Create(img)); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}
