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

package terminal

import "fmt"

// ansi colours.
const (
	colBlack = iota
	colRed
	colGreen
	colYellow
	colBlue
	colMagenta
	colCyan
	colWhite
)

// ansi targets.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// BoldPen is the CSI sequence for bold text.
const BoldPen = "\033[1m"

// Pens is the table of colours to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colours to be used for text.
var DimPens map[string]string

func init() {
	cols := map[string]int{
		"black":   colBlack,
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	}

	Pens = make(map[string]string, len(cols))
	DimPens = make(map[string]string, len(cols))
	for name, c := range cols {
		Pens[name] = fmt.Sprintf("\033[%d%dm", targetBrightPen, c)
		DimPens[name] = fmt.Sprintf("\033[%d%dm", targetPen, c)
	}
}
