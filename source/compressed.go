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

package source

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/romprops/curated"
)

// CompressedExt is the extension of zstd compressed files.
const CompressedExt = ".zst"

// MaxDecompressedSize is the largest amount of data Decompress() will
// produce.
const MaxDecompressedSize = 256 << 20

// IsCompressed returns true if the filename has the extension of a
// compressed file.
func IsCompressed(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), CompressedExt)
}

// Decompress the entire zstd stream in the source. Reading starts at the
// beginning of the source.
func Decompress(src Source) ([]byte, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, curated.Errorf("decompress: %v", err)
	}

	dec, err := zstd.NewReader(src,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		return nil, curated.Errorf("decompress: %v", err)
	}
	defer dec.Close()

	data, err := readLimited(dec, MaxDecompressedSize)
	if err != nil {
		return nil, curated.Errorf("decompress: %v", err)
	}

	return data, nil
}
