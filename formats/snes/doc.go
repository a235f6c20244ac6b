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

// Package snes reads Super Nintendo and Satellaview (BS-X) ROM images.
//
// SNES ROM images do not have a header at the start of the file. Instead, the
// header is at one of two addresses depending on how the cartridge maps the ROM
// into the address space: 0x7FB0 for LoROM and 0xFFB0 for HiROM. Images that
// have been dumped with a copier device have an additional 512 byte header at
// the start of the file, which moves the ROM header by the same amount.
//
// The reader tries each candidate address in turn and validates the data found
// there against the mapping that the address implies. A LoROM mapping byte
// found at a HiROM address, or the other way around, disqualifies the
// candidate. The first candidate to pass validation is used.
//
// BS-X images are recognised by file extension only. The BS-X header occupies
// the same addresses as the SNES header but has a different layout.
package snes
