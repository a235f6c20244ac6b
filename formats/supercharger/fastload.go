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

package supercharger

import (
	"github.com/jetsetilly/romprops/codec"
)

// Sizes of a fastload binary.
const (
	LoadDataLen   = 0x2000
	LoadHeaderLen = 0x100
	LoadLen       = LoadDataLen + LoadHeaderLen
)

// the header checksum of a correctly formed load
const headerChecksum = 0x55

// number of bytes included in the header checksum
const headerChecksumLen = 8

// maximum number of entries in the page table
const pageTableLen = 0x18

// Load is the header of a single load in a fastload binary.
type Load struct {
	// PC address to jump to once loading has finished
	StartAddress uint16

	// RAM config to be set after loading
	ConfigByte uint8

	NumPages      uint8
	Checksum      uint8
	Multiload     uint8
	ProgressSpeed uint16

	// bits 0-1 of each entry are the bank and bits 2-4 the page
	PageTable []uint8

	// the sum of the first eight bytes of the header is 0x55
	ChecksumOK bool
}

// IsFastLoadSize returns true if size is a whole number of loads.
func IsFastLoadSize(size int64) bool {
	return size > 0 && size%LoadLen == 0
}

// DecodeLoad decodes the header of a load. The slice should be the header
// only, not the entire load.
func DecodeLoad(hdr []byte) Load {
	var l Load

	c := codec.NewCursor(hdr)
	l.StartAddress = c.U16LE()
	l.ConfigByte = c.U8()
	l.NumPages = c.U8()
	l.Checksum = c.U8()
	l.Multiload = c.U8()
	l.ProgressSpeed = c.U16LE()
	c.Skip(0x08)
	l.PageTable = c.Bytes(pageTableLen)

	var sum uint8
	for i := 0; i < headerChecksumLen && i < len(hdr); i++ {
		sum += hdr[i]
	}
	l.ChecksumOK = sum == headerChecksum

	return l
}

// PageBank returns the bank and page for entry i in the page table.
func (l Load) PageBank(i int) (bank uint8, page uint8) {
	if i < 0 || i >= len(l.PageTable) {
		return 0, 0
	}
	return l.PageTable[i] & 0x03, l.PageTable[i] >> 2
}
