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

// Package digest is used to create mathematical hashes of the display
// output. Useful for regression tests and for checking that two systems
// behave identically.
package digest

// Digest implementations compute a hash of the data given to them.
type Digest interface {
	Hash() string
	ResetDigest()
}
