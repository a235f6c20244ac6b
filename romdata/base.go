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

package romdata

import (
	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/source"
)

// State of a reader.
type State int

// List of valid State values. Valid and Invalid are terminal states.
const (
	Unprobed State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Unprobed:
		return "unprobed"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Base is the common state of every format reader.
type Base struct {
	tag   string
	src   source.Source
	dup   source.Closer
	state State

	fields *Fields
}

// Init the reader with the source. If the source can be duplicated then the
// reader uses its own handle, which is released by Close(). Otherwise the
// source is borrowed for the lifetime of the reader.
//
// The tag is used when logging.
func (b *Base) Init(src source.Source, tag string) error {
	b.tag = tag
	b.state = Unprobed

	if src == nil || !src.IsOpen() {
		b.state = Invalid
		return curated.Errorf(NotOpen)
	}

	if d, ok := src.(source.Duplicator); ok {
		dup, err := d.Dup()
		if err != nil {
			b.state = Invalid
			return curated.Errorf(IOError, err)
		}
		b.src = dup
		if c, ok := dup.(source.Closer); ok {
			b.dup = c
		}
	} else {
		b.src = src
	}

	return nil
}

// Probed commits the reader to either the Valid or Invalid state. The state
// is only changed if the reader is in the Unprobed state.
func (b *Base) Probed(valid bool) {
	if b.state != Unprobed {
		return
	}
	if valid {
		b.state = Valid
	} else {
		b.state = Invalid
	}
	logger.Logf(logger.Allow, b.tag, "%s: %s", b.Name(), b.state)
}

// State returns the current state of the reader.
func (b *Base) State() State {
	return b.state
}

// IsValid returns true if the reader has been successfully probed.
func (b *Base) IsValid() bool {
	return b.state == Valid
}

// Tag returns the tag used by the reader when logging.
func (b *Base) Tag() string {
	return b.tag
}

// Source returns the source used by the reader. Only probing should read from
// the source.
func (b *Base) Source() source.Source {
	return b.src
}

// Name of the source being read.
func (b *Base) Name() string {
	if b.src == nil {
		return ""
	}
	return b.src.Name()
}

// ReadAt reads from the source at the offset. Any failure is returned as an
// IOError.
func (b *Base) ReadAt(offset int64, buf []byte) error {
	if b.src == nil {
		return curated.Errorf(NotOpen)
	}
	if _, err := source.SeekAndRead(b.src, offset, buf); err != nil {
		return curated.Errorf(IOError, err)
	}
	return nil
}

// Fields returns the fields for the reader. The load function is called the
// first time Fields() is called and the result is cached. Subsequent calls
// do not call load. The returned Fields is always a copy of the cached
// Fields.
//
// An error is returned if the source has been closed before the first call or
// if the reader is not valid.
func (b *Base) Fields(load func(fl *Fields)) (*Fields, error) {
	if b.fields != nil {
		return b.fields.Copy(), nil
	}
	if b.src == nil || !b.src.IsOpen() {
		return nil, curated.Errorf(NotOpen)
	}
	if b.state != Valid {
		return nil, curated.Errorf(UnsupportedFile, b.Name())
	}

	fl := NewFields(8)
	load(fl)
	b.fields = fl

	return fl.Copy(), nil
}

// Close releases the reader's handle to the source. A borrowed source is not
// closed.
func (b *Base) Close() error {
	if b.dup == nil {
		return nil
	}
	err := b.dup.Close()
	b.dup = nil
	return err
}
