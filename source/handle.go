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
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/romprops/curated"
)

// shared is the data referred to by one or more Handles. The closer is called
// when the reference count falls to zero.
type shared struct {
	crit sync.Mutex
	refs int

	data   io.ReaderAt
	closer io.Closer
	size   int64
	name   string
}

func (sh *shared) acquire() error {
	sh.crit.Lock()
	defer sh.crit.Unlock()
	if sh.refs == 0 {
		return curated.Errorf(NotOpen)
	}
	sh.refs++
	return nil
}

func (sh *shared) release() error {
	sh.crit.Lock()
	defer sh.crit.Unlock()

	if sh.refs == 0 {
		return nil
	}

	sh.refs--
	if sh.refs > 0 || sh.closer == nil {
		return nil
	}

	err := sh.closer.Close()
	sh.closer = nil
	return err
}

// Handle is an implementation of Source. Handles are not safe for concurrent
// use but different Handles to the same data can be used concurrently.
type Handle struct {
	sh     *shared
	sr     *io.SectionReader
	closed bool
}

func newHandle(sh *shared) *Handle {
	return &Handle{
		sh: sh,
		sr: io.NewSectionReader(sh.data, 0, sh.size),
	}
}

// OpenFile opens the named file and returns a Handle to it.
func OpenFile(filename string) (*Handle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("source: %v", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf("source: %v", err)
	}

	return newHandle(&shared{
		refs:   1,
		data:   f,
		closer: f,
		size:   fi.Size(),
		name:   filename,
	}), nil
}

// NewMemory returns a Handle to the data. The data should not be modified
// while any Handle to it remains open.
func NewMemory(data []byte, name string) *Handle {
	return newHandle(&shared{
		refs: 1,
		data: bytes.NewReader(data),
		size: int64(len(data)),
		name: name,
	})
}

// Dup returns a new Handle to the same data. The new Handle has its own seek
// position, starting at zero.
func (h *Handle) Dup() (Source, error) {
	if h.closed {
		return nil, curated.Errorf(NotOpen)
	}
	if err := h.sh.acquire(); err != nil {
		return nil, err
	}
	return newHandle(h.sh), nil
}

// Close releases the Handle. The underlying file is closed once every Handle
// referring to it has been closed. Closing a Handle more than once has no
// effect.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.sh.release()
}

// Read implements the io.Reader interface.
func (h *Handle) Read(p []byte) (int, error) {
	if h.closed {
		return 0, curated.Errorf(NotOpen)
	}
	return h.sr.Read(p)
}

// Seek implements the io.Seeker interface.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.closed {
		return 0, curated.Errorf(NotOpen)
	}
	return h.sr.Seek(offset, whence)
}

// Size implements the Source interface.
func (h *Handle) Size() int64 {
	return h.sh.size
}

// IsOpen implements the Source interface.
func (h *Handle) IsOpen() bool {
	return !h.closed
}

// Name implements the Source interface.
func (h *Handle) Name() string {
	return h.sh.name
}
