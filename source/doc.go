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

// Package source defines the Source interface, the seekable byte source that
// all format readers consume. Sources are owned by the caller and a format
// reader never closes a source it was given.
//
// The Handle type is the implementation of Source used throughout romprops. A
// Handle shares the underlying data (an open file or a byte slice) with every
// Handle created from it with Dup(). Each Handle has its own seek position so
// that readers do not race on a shared position. The underlying file is
// closed when the last Handle referring to it is closed:
//
//	h, _ := source.OpenFile("game.sfc")
//	d, _ := h.Dup()
//	h.Close()	// file remains open
//	d.Close()	// file is closed
//
// The Loader type prepares a Handle from a filename, including filenames that
// refer to files inside a zip archive.
package source
