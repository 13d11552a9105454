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

// Package addressmap maps framebuffer coordinates to linear storage
// addresses. The mapping is column-major: consecutive addresses run down a
// column of the framebuffer.
//
//	address = y + x*Height
//
// Map() is the function used by the tick model and it does not check its
// arguments. Coordinates outside the framebuffer are a contract violation by
// the caller. Code at the edge of the system, where coordinates arrive from
// outside the tick model, should use Check() first.
package addressmap

import (
	"github.com/jetsetilly/vgablur/curated"
)

// Dimensions of the framebuffer.
const (
	Width  = 160
	Height = 120

	// the number of pixels in a framebuffer
	Size = Width * Height
)

// Limits of the interior region. Pixels outside of these limits form the
// one pixel wide border of the framebuffer.
const (
	InteriorLeft   = 1
	InteriorRight  = Width - 2
	InteriorTop    = 1
	InteriorBottom = Height - 2

	// the number of pixels in the interior region
	InteriorSize = (Width - 2) * (Height - 2)
)

// Sentinal error patterns.
const (
	OutOfRange        = "addressmap: coordinates out of range (%d, %d)"
	AddressOutOfRange = "addressmap: address out of range (%d)"
)

// Map returns the linear address for the coordinates.
func Map(x, y int) int {
	return y + x*Height
}

// Coords is the inverse of Map().
func Coords(address int) (x, y int) {
	return address / Height, address % Height
}

// Check returns a curated error if the coordinates are outside the
// framebuffer.
func Check(x, y int) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return curated.Errorf(OutOfRange, x, y)
	}
	return nil
}

// CheckAddress returns a curated error if the address is outside the
// framebuffer.
func CheckAddress(address int) error {
	if address < 0 || address >= Size {
		return curated.Errorf(AddressOutOfRange, address)
	}
	return nil
}

// IsInterior returns true if the coordinates are inside the interior region.
func IsInterior(x, y int) bool {
	return x >= InteriorLeft && x <= InteriorRight && y >= InteriorTop && y <= InteriorBottom
}

// IsBorder returns true if the coordinates are on the outermost ring of the
// framebuffer.
func IsBorder(x, y int) bool {
	return Check(x, y) == nil && !IsInterior(x, y)
}
