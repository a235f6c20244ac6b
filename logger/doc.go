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

// Package logger is the central log repository for romprops. Entries are made
// with the Log() and Logf() functions. Each entry has a tag and a detail
// string. The tag should be a short string identifying the part of the program
// making the entry (eg. "snes" or "xpr0").
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry and a repeat count.
//
// Logging requests carry a Permission. Allow is a suitable default when an
// entry should always be made.
package logger
