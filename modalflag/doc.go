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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse(), which takes no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("info", "thumb", "scan")
//	verbose := md.AddBool("v", false, "verbose output")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If the first argument after the flags names a sub-mode then that mode is
// selected and is returned by Mode(). Otherwise the first sub-mode in the list
// is selected. Comparisons are case insensitive and modes are returned in
// upper case.
//
// Once a mode is selected, NewMode() prepares for the flags of that mode and
// Parse() is called again on the remaining arguments:
//
//	switch md.Mode() {
//	case "THUMB":
//		md.NewMode()
//		size := md.AddInt("size", 128, "thumbnail size")
//		p, err := md.Parse()
//		...
//		thumb(md.RemainingArgs(), *size)
//	}
//
// Modes can be nested to any depth. Path() returns the modes selected so far
// joined with a slash.
package modalflag
