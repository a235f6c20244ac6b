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

// Package prefs stores user preferences. Each preference is one of the types
// Bool, String or Int and is registered with a Disk under a key. The Disk
// saves and loads the registered preferences to a plain text file, one
// preference per line:
//
//	key :: value
//
// Keys in the file that are not registered with the Disk are preserved when
// the file is saved, so more than one Disk can share a file.
//
// Preferences can also be given on the command line. PushCommandLineStack()
// takes a string of the form:
//
//	key::value; key::value
//
// Values in the command line group override values loaded from disk when a
// preference is added to a Disk. The command line value is used only once.
package prefs
