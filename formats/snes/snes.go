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

package snes

import (
	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
)

const tag = "snes"

// candidate header addresses. odd indexes are HiROM addresses
var headerAddrs = [2][4]int64{
	// no copier header
	{LoROMHeaderAddr, HiROMHeaderAddr, LoROMHeaderAddr + CopierHeaderSize, HiROMHeaderAddr + CopierHeaderSize},

	// copier header. addresses after the copier header are tried first
	{LoROMHeaderAddr + CopierHeaderSize, HiROMHeaderAddr + CopierHeaderSize, LoROMHeaderAddr, HiROMHeaderAddr},
}

// Reader for SNES and BS-X ROM images.
type Reader struct {
	romdata.Base

	variant    int
	headerAddr int64
	hiROM      bool
	copier     bool

	// raw header window. the decoded form depends on the variant
	raw  [HeaderSize]byte
	snes Header
	bsx  BSXHeader
}

// New probes the source for a SNES or BS-X ROM image. The extension is used to
// select the BS-X variant. If the extension is empty then the extension of the
// source's name is used.
//
// A nil error does not mean that the image is valid. Use IsValid() to check.
func New(src source.Source, ext string) (*Reader, error) {
	r := &Reader{
		variant: VariantSNES,
	}

	if err := r.Init(src, tag); err != nil {
		return nil, err
	}

	if ext == "" {
		ext = romdata.Ext(src.Name())
	}
	if isBSXExt(ext) {
		r.variant = VariantBSX
	}

	r.Probed(r.probe())

	return r, nil
}

func (r *Reader) probe() bool {
	if r.variant == VariantSNES {
		copier := make([]byte, CopierHeaderSize)
		if err := r.ReadAt(0, copier); err != nil {
			logger.Logf(logger.Allow, tag, "%s: %v", r.Name(), err)
			return false
		}
		r.copier = HasCopierHeader(copier)
		if r.copier {
			logger.Logf(logger.Allow, tag, "%s: copier header found", r.Name())
		}
	}

	addrs := headerAddrs[0]
	if r.copier {
		addrs = headerAddrs[1]
	}

	for i, addr := range addrs {
		if err := r.ReadAt(addr, r.raw[:]); err != nil {
			continue
		}

		hiROM := i&1 == 1

		var ok bool
		if r.variant == VariantBSX {
			r.bsx = DecodeBSXHeader(r.raw[:])
			ok = IsBsxHeaderValid(&r.bsx, hiROM)
		} else {
			r.snes = DecodeHeader(r.raw[:])
			ok = IsSnesHeaderValid(&r.snes, hiROM)
		}

		if ok {
			logger.Logf(logger.Allow, tag, "%s: header accepted at %#x", r.Name(), addr)
			r.headerAddr = addr
			r.hiROM = hiROM
			return true
		}
	}

	// a failed probe leaves no partial header data behind
	r.raw = [HeaderSize]byte{}
	r.snes = Header{}
	r.bsx = BSXHeader{}

	return false
}

// Variant returns VariantSNES or VariantBSX.
func (r *Reader) Variant() int {
	return r.variant
}

// HeaderAddr returns the address the header was found at. Only meaningful if
// the reader is valid.
func (r *Reader) HeaderAddr() int64 {
	return r.headerAddr
}

// IsHiROM returns true if the header was found at a HiROM address.
func (r *Reader) IsHiROM() bool {
	return r.hiROM
}

// HasCopierHeader returns true if the image starts with a copier header.
func (r *Reader) HasCopierHeader() bool {
	return r.copier
}

// Header returns a copy of the SNES header. Only meaningful for a valid reader
// of the SNES variant.
func (r *Reader) Header() Header {
	return r.snes
}

// BSXHeader returns a copy of the BS-X header. Only meaningful for a valid
// reader of the BS-X variant.
func (r *Reader) BSXHeader() BSXHeader {
	return r.bsx
}

// SystemName implements the romdata.Reader interface. Returns the empty string
// if the reader is not valid.
func (r *Reader) SystemName(t romdata.SystemNameType) string {
	if !r.IsValid() {
		return ""
	}
	if r.variant == VariantBSX {
		return systemName(bsxNames, t)
	}
	return systemName(snesNames[regionNames(r.snes.DestinationCode, romdata.SystemRegion())], t)
}

// Fields implements the romdata.Reader interface.
func (r *Reader) Fields() (*romdata.Fields, error) {
	return r.Base.Fields(r.loadFields)
}
