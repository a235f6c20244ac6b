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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with the Errorf() function which takes a formatting
// pattern and placeholder values in the same way as fmt.Errorf(). Unlike
// fmt.Errorf() the pattern is remembered and can be tested for later:
//
//	e := curated.Errorf("snes: header: %v", "title is not ASCII")
//
//	if curated.Is(e, "snes: header: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of wrapped curated errors.
//
// The Error() implementation normalises the chain so that adjacent parts that
// are identical are printed once. The parts of a chain are the sub-strings
// separated by ": ". This means that a function need not worry about whether
// its caller has already added the same prefix:
//
//	romdata: romdata: file is not open
//
// is printed as:
//
//	romdata: file is not open
//
// Sentinel errors are achieved by storing the pattern as an exported const
// string and testing for it with Is() or Has().
package curated
