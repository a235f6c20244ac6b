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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romprops/archivefs"
	"github.com/jetsetilly/romprops/curated"
)

// Loader prepares a Handle for a filename. The filename may refer to a local
// file, a file inside a zip archive or a file served over HTTP.
type Loader struct {
	// filename of the file to load
	Filename string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a successful call to Hash()
	// the value will be the hash of the data
	Hash string

	// largest amount of data that will be read into memory from an archive
	// or over HTTP. a value of zero means MaxDecompressedSize
	MaxSize int
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// Name returns the filename without the extension of any compression.
func (ld Loader) Name() string {
	if IsCompressed(ld.Filename) {
		return ld.Filename[:len(ld.Filename)-len(filepath.Ext(ld.Filename))]
	}
	return ld.Filename
}

// ShortName returns the filename without any directory or extension.
func (ld Loader) ShortName() string {
	n := ld.Name()
	return strings.TrimSuffix(filepath.Base(n), filepath.Ext(n))
}

// Ext returns the lower case file extension without the leading period. The
// extension of an archive that is itself the target of the loader is not
// removed. The extension of any compression is removed.
func (ld Loader) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(ld.Name())), ".")
}

// Open the file and return a new Handle to it. Compressed files are
// decompressed into memory. The caller must close the Handle when it is no
// longer required.
func (ld Loader) Open() (*Handle, error) {
	h, err := ld.open()
	if err != nil {
		return nil, err
	}
	if !IsCompressed(ld.Filename) {
		return h, nil
	}
	defer h.Close()

	data, err := Decompress(h)
	if err != nil {
		return nil, err
	}
	return NewMemory(data, ld.Name()), nil
}

func (ld Loader) open() (*Handle, error) {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, curated.Errorf("loader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf("loader: %v", resp.Status)
		}

		data, err := readLimited(resp.Body, ld.maxSize())
		if err != nil {
			return nil, curated.Errorf("loader: %v", err)
		}
		return NewMemory(data, ld.Filename), nil

	case "file":
		var afs archivefs.Path
		defer afs.Close()

		err := afs.Set(ld.Filename)
		if err != nil {
			return nil, curated.Errorf("loader: %v", err)
		}

		if !afs.InArchive() {
			h, err := OpenFile(afs.String())
			if err != nil {
				return nil, curated.Errorf("loader: %v", err)
			}
			return h, nil
		}

		r, sz, err := afs.Open()
		if err != nil {
			return nil, curated.Errorf("loader: %v", err)
		}
		if sz > ld.maxSize() {
			return nil, curated.Errorf("loader: %v", curated.Errorf(TooLarge, ld.maxSize()))
		}

		data, err := readLimited(r, ld.maxSize())
		if err != nil {
			return nil, curated.Errorf("loader: %v", err)
		}
		return NewMemory(data, ld.Filename), nil
	}

	return nil, curated.Errorf("loader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
}

func (ld Loader) maxSize() int {
	if ld.MaxSize <= 0 {
		return MaxDecompressedSize
	}
	return ld.MaxSize
}

// readLimited reads everything from r. It is an error for r to contain more
// than limit bytes.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limit {
		return nil, curated.Errorf(TooLarge, limit)
	}
	return data, nil
}

// HashSource returns the SHA-1 hash of the entire source. The source position
// is left at the end of the data.
func HashSource(src Source) (string, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", curated.Errorf("loader: hash: %v", err)
	}

	h := sha1.New()
	if _, err := io.Copy(h, src); err != nil {
		return "", curated.Errorf("loader: hash: %v", err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// CheckHash computes the hash of the source and compares it with the Hash
// field, if that field has been set. On success the Hash field holds the hash
// of the source.
func (ld *Loader) CheckHash(src Source) error {
	hash, err := HashSource(src)
	if err != nil {
		return err
	}

	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("loader: %v", "unexpected hash value")
	}

	ld.Hash = hash

	return nil
}
