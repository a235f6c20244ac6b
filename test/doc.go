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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report a
// test failure but allow the test to continue. The Demand*() variants of those
// functions stop the test immediately.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values. A nil
// value is considered a success.
//
// The Writer type is an implementation of io.Writer that can be compared
// against an expected string. The RingWriter type is similar but with a fixed
// capacity, keeping only the most recent output.
package test
