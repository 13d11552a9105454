// This file is part of vgablur.
//
// vgablur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgablur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgablur.  If not, see <https://www.gnu.org/licenses/>.

// Package resources contains functions to prepare paths for vgablur
// resources, such as the preferences file and screenshots.
//
// The JoinPath() function returns the path to the resource directory/file
// specified in the arguments. It creates directories as required but does
// not otherwise touch or create files.
//
// For builds with the "release" build tag, the base path is in the user's
// configuration directory. On Linux systems this will be something like:
//
//	/home/user/.config/vgablur/
//
// For other builds the base path is in the current working directory:
//
//	.vgablur
package resources
