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

// Package modalflag wraps the flag package from the standard library. It
// allows a command line to select a mode of operation, with each mode having
// its own set of flags.
//
// Arguments are set with NewArgs() and then parsed one layer at a time with
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DIGEST")
//	p, err := md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). The
// first sub-mode is the default and is selected if no mode is named on the
// command line. Sub-mode names are case insensitive.
//
// Flags for the selected mode are then added after a call to NewMode() and
// the next layer parsed with another call to Parse():
//
//	md.NewMode()
//	frames := md.AddInt("frames", 0, "number of frames to run")
//	p, err = md.Parse()
//
// Path() returns every mode selected so far, separated by a forward slash.
package modalflag
