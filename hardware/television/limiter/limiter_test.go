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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/hardware/television/limiter"
	"github.com/jetsetilly/vgablur/test"
)

// tolerance of measurement
const measurementTolerance = 0.05
const numFramesPerTest = 2

func TestLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("limiter test runs in real time")
	}

	lmtr := limiter.NewLimiter()

	for _, hz := range []float32{60.0, 75.0} {
		lmtr.SetRefreshRate(hz)
		test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), hz)

		// one frame to settle then measure over a whole number of seconds
		for range int(hz * numFramesPerTest) {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}
		rate := lmtr.Measured.Load().(float32)
		test.ExpectSuccess(t, rate >= hz*(1.0-measurementTolerance) && rate <= hz*(1.0+measurementTolerance), rate)
	}
}

func TestExplicitLimit(t *testing.T) {
	lmtr := limiter.NewLimiter()
	lmtr.SetLimit(30.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(30.0))

	// explicit limit is unaffected by the refresh rate
	lmtr.SetRefreshRate(72.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(30.0))

	// inactive limiter never blocks
	lmtr.Active.Store(false)
	for range 1000 {
		lmtr.CheckFrame()
	}
}
