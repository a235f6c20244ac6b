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

package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romprops/terminal"
	"github.com/jetsetilly/romprops/test"
)

func TestIsTerminal(t *testing.T) {
	test.ExpectFailure(t, terminal.IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, terminal.IsTerminal(f))

	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()
	test.ExpectFailure(t, terminal.IsTerminal(r))
	test.ExpectFailure(t, terminal.IsTerminal(w))
}
