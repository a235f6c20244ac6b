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

package codec

import (
	"encoding/binary"
)

// Cursor reads consecutive fields from a byte slice. Reading beyond the end of
// the slice does not panic. Instead, zero values are returned and the Overrun()
// function will return true.
type Cursor struct {
	b       []byte
	off     int
	overrun bool
}

// NewCursor is the preferred method of initialisation for the Cursor type.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset of the next field.
func (c *Cursor) Offset() int {
	return c.off
}

// Overrun returns true if any read has gone beyond the end of the data.
func (c *Cursor) Overrun() bool {
	return c.overrun
}

func (c *Cursor) take(n int) []byte {
	if n < 0 || c.off+n > len(c.b) {
		c.overrun = true
		c.off += n
		return nil
	}
	b := c.b[c.off : c.off+n]
	c.off += n
	return b
}

// Skip n bytes.
func (c *Cursor) Skip(n int) {
	c.take(n)
}

// Bytes returns a copy of the next n bytes. The copy is zero filled if the
// read overruns the data.
func (c *Cursor) Bytes(n int) []byte {
	if n < 0 {
		c.overrun = true
		return nil
	}
	r := make([]byte, n)
	copy(r, c.take(n))
	return r
}

// U8 reads a single byte.
func (c *Cursor) U8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// U16LE reads a little-endian 16-bit value.
func (c *Cursor) U16LE() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U16BE reads a big-endian 16-bit value.
func (c *Cursor) U16BE() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32LE reads a little-endian 32-bit value.
func (c *Cursor) U32LE() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U32BE reads a big-endian 32-bit value.
func (c *Cursor) U32BE() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}
