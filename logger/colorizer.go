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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/romprops/terminal"
)

// Colorizer applies basic coloring rules to logging output. The first line of
// output is printed normally and subsequent lines are printed in dim red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	if _, err := c.out.Write([]byte(l[0] + "\n")); err != nil {
		return 0, err
	}
	if len(l) == 1 {
		return len(p), nil
	}

	if _, err := c.out.Write([]byte(terminal.DimPens["red"])); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = c.out.Write([]byte(terminal.NormalPen))
	}()

	for _, s := range l[1:] {
		if _, err := c.out.Write([]byte(s + "\n")); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
