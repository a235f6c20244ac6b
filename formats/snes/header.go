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

import "github.com/jetsetilly/romprops/codec"

// HeaderSize is the size of the header window read at each candidate address.
const HeaderSize = 64

// Header addresses without a copier header.
const (
	LoROMHeaderAddr = 0x7fb0
	HiROMHeaderAddr = 0xffb0
)

// CopierHeaderSize is the size of the header added by copier devices.
const CopierHeaderSize = 512

// ROM mapping codes.
const (
	MappingLoROM        = 0x20
	MappingHiROM        = 0x21
	MappingLoROMFastROM = 0x30
	MappingHiROMFastROM = 0x31
	MappingExLoROM      = 0x32
	MappingExHiROM      = 0x35
)

// the low nibble of the ROM type is the cartridge hardware and the high
// nibble is the enhancement chip
const (
	romTypeMask          = 0x0f
	romTypeEnhancedMask  = 0xf0
	romTypeFirstEnhanced = 0x03
	romTypeROMBattEnh    = 0x06
)

// OldPublisherExtended is the old publisher code that indicates the presence of
// the extended header.
const OldPublisherExtended = 0x33

// Destination codes with special meaning.
const (
	DestJapan      = 0x00
	DestSouthKorea = 0x0d
	DestAll        = 0x0e
	DestAustralia  = 0x11
	DestOtherX     = 0x12
	DestOtherY     = 0x13
	DestOtherZ     = 0x14
)

// Header is the SNES header found at the end of the first bank of the ROM.
type Header struct {
	// extended header. only valid if OldPublisherCode is 0x33
	NewPublisherCode [2]byte
	ID4              [4]byte
	ExpansionRAMSize uint8
	SpecialVersion   uint8
	CartridgeType    uint8

	Title              [21]byte
	ROMMapping         uint8
	ROMType            uint8
	ROMSize            uint8
	SRAMSize           uint8
	DestinationCode    uint8
	OldPublisherCode   uint8
	Version            uint8
	ChecksumComplement uint16
	Checksum           uint16

	// interrupt vectors
	Vectors [16]byte
}

// BSXHeader is the header of a Satellaview image. It occupies the same
// addresses as the SNES header.
type BSXHeader struct {
	NewPublisherCode   [2]byte
	ProgramType        uint32
	Title              [16]byte
	BlockAlloc         uint32
	LimitedStarts      uint16
	Month              uint8
	Day                uint8
	ROMMapping         uint8
	FileType           uint8
	OldPublisherCode   uint8
	Version            uint8
	ChecksumComplement uint16
	Checksum           uint16

	Vectors [16]byte
}

// DecodeHeader decodes the SNES header from a window of HeaderSize bytes.
// Missing bytes are treated as zero.
func DecodeHeader(b []byte) Header {
	var h Header
	c := codec.NewCursor(b)
	copy(h.NewPublisherCode[:], c.Bytes(2))
	copy(h.ID4[:], c.Bytes(4))
	c.Skip(7)
	h.ExpansionRAMSize = c.U8()
	h.SpecialVersion = c.U8()
	h.CartridgeType = c.U8()
	copy(h.Title[:], c.Bytes(21))
	h.ROMMapping = c.U8()
	h.ROMType = c.U8()
	h.ROMSize = c.U8()
	h.SRAMSize = c.U8()
	h.DestinationCode = c.U8()
	h.OldPublisherCode = c.U8()
	h.Version = c.U8()
	h.ChecksumComplement = c.U16LE()
	h.Checksum = c.U16LE()
	copy(h.Vectors[:], c.Bytes(16))
	return h
}

// DecodeBSXHeader decodes the BS-X header from a window of HeaderSize bytes.
// Missing bytes are treated as zero.
func DecodeBSXHeader(b []byte) BSXHeader {
	var h BSXHeader
	c := codec.NewCursor(b)
	copy(h.NewPublisherCode[:], c.Bytes(2))
	h.ProgramType = c.U32LE()
	c.Skip(10)
	copy(h.Title[:], c.Bytes(16))
	h.BlockAlloc = c.U32LE()
	h.LimitedStarts = c.U16LE()
	h.Month = c.U8()
	h.Day = c.U8()
	h.ROMMapping = c.U8()
	h.FileType = c.U8()
	h.OldPublisherCode = c.U8()
	h.Version = c.U8()
	h.ChecksumComplement = c.U16LE()
	h.Checksum = c.U16LE()
	copy(h.Vectors[:], c.Bytes(16))
	return h
}
