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

package publishers_test

import (
	"testing"

	"github.com/jetsetilly/romprops/publishers"
	"github.com/jetsetilly/romprops/test"
)

func TestLookup(t *testing.T) {
	name, ok := publishers.Lookup("01")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "Nintendo")

	// codes are case insensitive
	name, ok = publishers.Lookup("af")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "Namco")

	_, ok = publishers.Lookup("!!")
	test.ExpectFailure(t, ok)
}

func TestLookupOld(t *testing.T) {
	name, ok := publishers.LookupOld(0xc3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "Square")

	_, ok = publishers.LookupOld(0x00)
	test.ExpectFailure(t, ok)
}

func TestUnknown(t *testing.T) {
	test.ExpectEquality(t, publishers.Name("ZZ"), publishers.Unknown)
	test.ExpectEquality(t, publishers.Name(""), "Unknown")
	test.ExpectEquality(t, publishers.NameOld(0xff), "Unknown")
	test.ExpectEquality(t, publishers.NameOld(0x01), "Nintendo")
}
