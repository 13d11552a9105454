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

// Package coords represents and can work with television coordinates.
//
// Coordinates are a measurement of time as much as position. They define
// *when* something happened relative to the start of the emulation.
package coords

import (
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/television/specification"
)

// TelevisionCoords represents the state of the display scan at any moment in
// time.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

func (c TelevisionCoords) String() string {
	return fmt.Sprintf("Frame: %d  Scanline: %03d  Clock: %03d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two instances of TelevisionCoords and return true if both
// are equal.
func Equal(A, B TelevisionCoords) bool {
	return A.Frame == B.Frame && A.Scanline == B.Scanline && A.Clock == B.Clock
}

// GreaterThan returns true if A is later than B.
func GreaterThan(A, B TelevisionCoords) bool {
	return A.Frame > B.Frame || (A.Frame == B.Frame && A.Scanline > B.Scanline) ||
		(A.Frame == B.Frame && A.Scanline == B.Scanline && A.Clock > B.Clock)
}

// Sum returns the number of ticks represented by the coordinates.
func Sum(A TelevisionCoords, spec specification.Spec) int {
	return A.Frame*spec.TicksPerFrame() + A.Scanline*spec.ClksScanline + A.Clock
}

// Advance the coordinates by one tick, wrapping the clock and scanline
// according to the specification.
func Advance(A TelevisionCoords, spec specification.Spec) TelevisionCoords {
	A.Clock++
	if A.Clock >= spec.ClksScanline {
		A.Clock = 0
		A.Scanline++
		if A.Scanline >= spec.ScanlinesTotal {
			A.Scanline = 0
			A.Frame++
		}
	}
	return A
}
