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

package romdata

import (
	"strings"
	"sync/atomic"
)

// DefaultSystemRegion is the system region used until SetSystemRegion() is
// called.
const DefaultSystemRegion = "US"

var systemRegion atomic.Value

func init() {
	systemRegion.Store(DefaultSystemRegion)
}

// SetSystemRegion sets the two letter country code used when a file does not
// specify a region. An empty string restores the default.
func SetSystemRegion(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultSystemRegion
	}
	systemRegion.Store(code)
}

// SystemRegion returns the two letter country code set by SetSystemRegion().
func SystemRegion() string {
	return systemRegion.Load().(string)
}
