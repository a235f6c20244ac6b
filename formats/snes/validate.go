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

// IsSnesHeaderValid returns true if the header is plausible for a header read
// from a HiROM address (isHiROM is true) or a LoROM address.
func IsSnesHeaderValid(h *Header, isHiROM bool) bool {
	// title must be ASCII
	if !codec.AllASCII(h.Title[:]) {
		return false
	}

	// mapping must agree with the address the header was read from
	switch h.ROMMapping {
	case MappingLoROM, MappingLoROMFastROM, MappingExLoROM:
		if isHiROM {
			return false
		}
	case MappingHiROM, MappingHiROMFastROM, MappingExHiROM:
		if !isHiROM {
			return false
		}
	default:
		return false
	}

	// enhancement chip values 0x50 to 0xd0 are not known to be used. this is a
	// heuristic: the documentation of enhancement chips is incomplete
	enh := h.ROMType & romTypeEnhancedMask
	if h.ROMType&romTypeMask > romTypeROMBattEnh || (enh >= 0x50 && enh <= 0xd0) {
		return false
	}

	if h.OldPublisherCode == OldPublisherExtended {
		if !codec.IsAlnum(h.NewPublisherCode[0]) || !codec.IsAlnum(h.NewPublisherCode[1]) {
			return false
		}

		// ID4 is either four characters or two characters followed by spaces
		for i, c := range h.ID4 {
			if codec.IsAlnum(c) {
				continue
			}
			if c == ' ' && i >= 2 {
				continue
			}
			return false
		}
	}

	return true
}

// IsBsxHeaderValid returns true if the BS-X header is plausible for a header
// read from a HiROM address (isHiROM is true) or a LoROM address.
func IsBsxHeaderValid(h *BSXHeader, isHiROM bool) bool {
	// title can be ASCII or Shift-JIS so only check that it isn't empty
	if h.Title[0] == 0x00 {
		return false
	}

	// extended mappings are not used by BS-X
	switch h.ROMMapping {
	case MappingLoROM, MappingLoROMFastROM:
		if isHiROM {
			return false
		}
	case MappingHiROM, MappingHiROMFastROM:
		if !isHiROM {
			return false
		}
	default:
		return false
	}

	// an old publisher code of zero indicates a deleted file
	if h.OldPublisherCode != OldPublisherExtended && h.OldPublisherCode != 0x00 {
		return false
	}

	return codec.IsAlnum(h.NewPublisherCode[0]) && codec.IsAlnum(h.NewPublisherCode[1])
}
