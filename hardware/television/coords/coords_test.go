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

package coords_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/hardware/television/coords"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
	"github.com/jetsetilly/vgablur/test"
)

func TestAdvance(t *testing.T) {
	spec := specification.SpecVGA60

	c := coords.TelevisionCoords{Frame: 0, Scanline: 0, Clock: 798}
	c = coords.Advance(c, spec)
	test.ExpectSuccess(t, coords.Equal(c, coords.TelevisionCoords{Frame: 0, Scanline: 0, Clock: 799}))
	c = coords.Advance(c, spec)
	test.ExpectSuccess(t, coords.Equal(c, coords.TelevisionCoords{Frame: 0, Scanline: 1, Clock: 0}))

	c = coords.TelevisionCoords{Frame: 3, Scanline: 524, Clock: 799}
	c = coords.Advance(c, spec)
	test.ExpectSuccess(t, coords.Equal(c, coords.TelevisionCoords{Frame: 4, Scanline: 0, Clock: 0}))
}

func TestSumAndCompare(t *testing.T) {
	spec := specification.SpecVGA60

	a := coords.TelevisionCoords{Frame: 1, Scanline: 2, Clock: 3}
	test.ExpectEquality(t, coords.Sum(a, spec), 420000+1600+3)

	b := coords.Advance(a, spec)
	test.ExpectSuccess(t, coords.GreaterThan(b, a))
	test.ExpectFailure(t, coords.GreaterThan(a, b))
	test.ExpectFailure(t, coords.GreaterThan(a, a))
	test.ExpectEquality(t, coords.Sum(b, spec)-coords.Sum(a, spec), 1)
}
