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
	"fmt"
	"strings"

	"github.com/jetsetilly/romprops/codec"
	"github.com/jetsetilly/romprops/publishers"
	"github.com/jetsetilly/romprops/romdata"
)

// Field labels.
const (
	FieldTitle       = "Title"
	FieldGameID      = "Game ID"
	FieldPublisher   = "Publisher"
	FieldROMMapping  = "ROM Mapping"
	FieldCartridgeHW = "Cartridge HW"
	FieldRegion      = "Region"
	FieldRevision    = "Revision"
	FieldProgramType = "Program Type"
)

var mappingNames = map[uint8]string{
	MappingLoROM:        "LoROM",
	MappingHiROM:        "HiROM",
	MappingLoROMFastROM: "LoROM+FastROM",
	MappingHiROMFastROM: "HiROM+FastROM",
	MappingExLoROM:      "ExLoROM",
	MappingExHiROM:      "ExHiROM",
}

// indexed by the low nibble of the ROM type. an empty string is an unknown
// value. entries ending with a comma are followed by the enhancement chip
var hardwareBase = [16]string{
	"ROM", "ROM, RAM", "ROM, RAM, Battery",
	"ROM, ", "ROM, RAM, ", "ROM, RAM, Battery, ",
	"ROM, Battery, ",
}

// indexed by the high nibble of the ROM type
var hardwareEnhancement = [16]string{
	"DSP-1", "Super FX", "OBC-1", "SA-1",
	"S-DD1", "Unknown", "Unknown", "Unknown",
	"Unknown", "Unknown", "Unknown", "Unknown",
	"Unknown", "Unknown", "Other", "Custom Chip",
}

// indexed by destination code. an empty string is an unknown value
var regions = [...]string{
	"Japan", "North America", "Europe", "Scandinavia",
	"", "",
	"France", "Netherlands", "Spain", "Germany", "Italy", "China",
	"",
	"South Korea", "All", "Canada", "Brazil", "Australia",
	"Other", "Other", "Other",
}

func mappingName(m uint8) string {
	if n, ok := mappingNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Unknown (0x%02X)", m)
}

// CartridgeHW returns the description of the cartridge hardware indicated by
// the ROM type byte.
func CartridgeHW(romType uint8) string {
	base := hardwareBase[romType&romTypeMask]
	if base == "" {
		return publishers.Unknown
	}
	if romType&romTypeMask >= romTypeFirstEnhanced {
		return base + hardwareEnhancement[(romType&romTypeEnhancedMask)>>4]
	}
	return base
}

// Region returns the name of the region indicated by the destination code.
func Region(dest uint8) string {
	if int(dest) < len(regions) && regions[dest] != "" {
		return regions[dest]
	}
	return publishers.Unknown
}

func (r *Reader) loadFields(fl *romdata.Fields) {
	if r.variant == VariantBSX {
		r.loadBSXFields(fl)
		return
	}

	h := &r.snes

	fl.AddString(FieldTitle, strings.TrimRight(codec.DecodeLatin1(h.Title[:]), " "))

	// the game ID is only present in the extended header
	if h.OldPublisherCode == OldPublisherExtended {
		id := h.ID4[:]
		if h.ID4[2] == ' ' && h.ID4[3] == ' ' {
			id = h.ID4[:2]
		} else {
			id = append(append([]byte{}, id...), h.NewPublisherCode[:]...)
		}
		fl.AddString(FieldGameID, codec.DecodeLatin1(id))
		fl.AddString(FieldPublisher, publishers.Name(string(h.NewPublisherCode[:])))
	} else {
		fl.AddString(FieldGameID, publishers.Unknown)
		fl.AddString(FieldPublisher, publishers.NameOld(h.OldPublisherCode))
	}

	fl.AddString(FieldROMMapping, mappingName(h.ROMMapping))
	fl.AddString(FieldCartridgeHW, CartridgeHW(h.ROMType))
	fl.AddString(FieldRegion, Region(h.DestinationCode))
	fl.AddNumeric(FieldRevision, uint64(h.Version), romdata.Dec, 2)
}

func (r *Reader) loadBSXFields(fl *romdata.Fields) {
	h := &r.bsx

	fl.AddString(FieldTitle, strings.TrimRight(codec.DecodeLatin1(h.Title[:]), " "))
	fl.AddString(FieldPublisher, publishers.Name(string(h.NewPublisherCode[:])))
	fl.AddString(FieldROMMapping, mappingName(h.ROMMapping))
	fl.AddNumeric(FieldProgramType, uint64(h.ProgramType), romdata.Hex, 8)
	fl.AddNumeric(FieldRevision, uint64(h.Version), romdata.Dec, 2)
}
