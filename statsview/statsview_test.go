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

//go:build !statsview
// +build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/romprops/statsview"
	"github.com/jetsetilly/romprops/test"
)

func TestUnavailable(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectFailure(t, statsview.Available())
	statsview.Launch(tw)
	test.ExpectEquality(t, tw.String(), "stats server not available in this build\n")
}
