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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are registered with a Disk instance with the Add()
// function. Values are of one of the types defined by this package: Bool,
// Int, Float or String. Values are saved to disk with Save() and restored
// with Load().
//
// The file format is simple. One key/value pair per line, separated by " :: "
// and sorted by key. The first line of the file is WarningBoilerPlate.
// Entries in the file that are not registered with the Disk instance are
// preserved when the file is saved, so more than one Disk instance can share
// a file.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. Overridden values are applied the next
// time Load() is called.
package prefs
