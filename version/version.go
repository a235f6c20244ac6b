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

// Package version reports the version of the program. The number is set at
// link time with:
//
//	-ldflags "-X github.com/jetsetilly/romprops/version.number=v0.1.0"
//
// Builds without a number are described as "unreleased" if VCS information
// is embedded in the binary and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name used when referring to the program.
const ApplicationName = "romprops"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the VCS revision and whether the build
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line description of the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = describe(number, buildSettings())
}

func buildSettings() map[string]string {
	s := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			s[v.Key] = v.Value
		}
	}
	return s
}

func describe(number string, settings map[string]string) (string, string) {
	rev, ok := settings["vcs.revision"]
	if !ok || rev == "" {
		rev = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	if number != "" {
		return number, rev
	}
	if _, ok := settings["vcs"]; ok {
		return "unreleased", rev
	}
	return "local", rev
}
