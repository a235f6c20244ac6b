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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romprops/curated"
)

// Node is a single entry in a listing returned by Path.List().
type Node struct {
	Name string

	// archives are listed as directories with IsArchive also set
	IsDir     bool
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path is a location in the file system. The location may be inside a zip
// archive, in which case the archive is held open until Close() or Set() is
// called.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// slash separated location inside the archive. empty for the root of the
	// archive
	inArchive string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if the path is a directory. The root of an archive is
// treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the path is inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open the file at the current path. Files inside an archive are
// decompressed into memory.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inArchive)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(fi.Size()), nil
}

// Close any open archive and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inArchive = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the entries at the current path. If the path is a file then
// the entries of the containing directory are returned.
func (afs *Path) List() ([]Node, error) {
	var ent []Node
	var err error

	if afs.zf != nil {
		ent, err = afs.listArchive()
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}
		ent, err = listDir(dir)
	}
	if err != nil {
		return nil, curated.Errorf("archivefs: list: %v", err)
	}

	Sort(ent)
	return ent, nil
}

func (afs *Path) listArchive() ([]Node, error) {
	dir := afs.inArchive
	if !afs.isDir {
		dir = path.Dir(dir)
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(afs.zf, dir)
	if err != nil {
		return nil, err
	}

	ent := make([]Node, 0, len(entries))
	for _, e := range entries {
		ent = append(ent, Node{Name: e.Name(), IsDir: e.IsDir()})
	}
	return ent, nil
}

func listDir(dir string) ([]Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ent := make([]Node, 0, len(entries))
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())

		// os.Stat() follows links so that links to directories are listed as
		// directories
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}

		switch {
		case fi.IsDir():
			ent = append(ent, Node{Name: e.Name(), IsDir: true})
		case HasArchiveExt(p) && isArchive(p):
			ent = append(ent, Node{Name: e.Name(), IsDir: true, IsArchive: true})
		default:
			ent = append(ent, Node{Name: e.Name()})
		}
	}
	return ent, nil
}

func isArchive(p string) bool {
	zf, err := zip.OpenReader(p)
	if err != nil {
		return false
	}
	zf.Close()
	return true
}

// Set the path. Any previously opened archive is closed. Path components
// after an archive file are located inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	parts := strings.Split(pth, string(filepath.Separator))

	// strings.Split() drops the leading separator of an absolute path
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var disk string
	for i, p := range parts {
		disk = filepath.Join(disk, p)

		fi, err := os.Stat(disk)
		if err != nil {
			return afs.fail(err)
		}
		if fi.IsDir() {
			continue
		}

		zf, err := zip.OpenReader(disk)
		if err != nil {
			if !errors.Is(err, zip.ErrFormat) {
				return afs.fail(err)
			}
			if i < len(parts)-1 {
				return afs.fail(fmt.Errorf("%s is not a directory", disk))
			}
			afs.current = pth
			return nil
		}

		afs.zf = zf
		afs.inArchive = strings.Join(parts[i+1:], "/")
		if afs.inArchive == "" {
			afs.isDir = true
		} else {
			fi, err := fs.Stat(afs.zf, afs.inArchive)
			if err != nil {
				return afs.fail(err)
			}
			afs.isDir = fi.IsDir()
		}
		afs.current = pth
		return nil
	}

	afs.current = pth
	afs.isDir = true
	return nil
}

func (afs *Path) fail(err error) error {
	afs.Close()
	return curated.Errorf("archivefs: set: %v", err)
}
