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

package easyterm

// list of ASCII codes for non-printable characters.
const (
	KeyInterrupt = 3
	KeyEOT       = 4
	KeyTab       = 9
	KeyLF        = 10
	KeyCR        = 13
	KeyEsc       = 27
	KeySpace     = 32
	KeyBackspace = 127
)
