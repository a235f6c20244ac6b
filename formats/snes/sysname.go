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

package snes

import "github.com/jetsetilly/romprops/romdata"

// long, short and abbreviated names
type names [3]string

const (
	regionJapan = iota
	regionSouthKorea
	regionWorld
)

var snesNames = [...]names{
	regionJapan:      {"Nintendo Super Famicom", "Super Famicom", "SFC"},
	regionSouthKorea: {"Hyundai Super Comboy", "Super Comboy", "SCB"},
	regionWorld:      {"Super Nintendo Entertainment System", "Super NES", "SNES"},
}

// BS-X was only released in Japan
var bsxNames = names{"Satellaview BS-X", "Satellaview", "BS-X"}

func systemName(n names, t romdata.SystemNameType) string {
	if t < 0 || int(t) >= len(n) {
		return ""
	}
	return n[t]
}

// regionNames selects the set of system names for the destination code. If the
// destination does not identify a region then the system region is used.
func regionNames(dest uint8, systemRegion string) int {
	switch dest {
	case DestJapan:
		return regionJapan
	case DestSouthKorea:
		return regionSouthKorea
	case DestAll, DestOtherX, DestOtherY, DestOtherZ:
	default:
		if dest <= DestAustralia {
			return regionWorld
		}
	}

	switch systemRegion {
	case "JP":
		return regionJapan
	case "KR":
		return regionSouthKorea
	}
	return regionWorld
}
