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

// Package paths prepares paths to romprops resources, such as the
// preferences file.
//
// ResourcePath() prepends the base resource directory to the requested
// resource. If a directory named ".romprops" exists in the current directory
// then it is used as the base. Otherwise the base is the romprops directory in
// the user's config directory, as returned by os.UserConfigDir(). On a Linux
// system the following:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// returns:
//
//	/home/user/.config/romprops/preferences
package paths
