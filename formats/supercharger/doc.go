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

// Package supercharger reads games for the Atari 2600 Supercharger. The
// Supercharger loaded games from cassette tape and games are distributed
// either as recordings of the tape or as "fastload" binaries.
//
// Tape recordings are WAV or MP3 files. The reader describes the recording
// (sample rate, channels, duration) but does not decode the data on the tape.
//
// Fastload binaries consist of one or more 8448 byte loads. Each load is 8192
// bytes of data followed by a 256 byte header. The header layout is:
//
//	0x00	start address (little-endian)
//	0x02	configuration byte
//	0x03	number of pages
//	0x04	checksum
//	0x05	multiload number
//	0x06	progress bar speed (little-endian)
//	0x10	page table
//
// Format information for fastload binaries is from the Stella mailing list:
//
// Subject: Re: [stella] Supercharger BIN format
// From: Eckhard Stolberg
// Date: Fri, 08 Jan 1999.
package supercharger
