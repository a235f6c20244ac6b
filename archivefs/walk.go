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
	"path/filepath"

	"github.com/jetsetilly/romprops/curated"
)

// Walk calls fn for every file under root. Archives are entered as though they
// were directories. If root is a file then fn is called once for that file.
//
// Walking stops at the first error returned by fn.
func Walk(root string, fn func(path string) error) error {
	var afs Path
	defer afs.Close()

	err := afs.Set(root)
	if err != nil {
		return curated.Errorf("archivefs: walk: %v", err)
	}

	if !afs.IsDir() {
		afs.Close()
		return fn(root)
	}

	entries, err := afs.List()
	if err != nil {
		return curated.Errorf("archivefs: walk: %v", err)
	}

	// the archive must not be held open while the callback opens the same
	// archive for each entry
	afs.Close()

	for _, e := range entries {
		p := filepath.Join(root, e.Name)
		if e.IsDir {
			err = Walk(p, fn)
		} else {
			err = fn(p)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
