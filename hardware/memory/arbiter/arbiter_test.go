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

package arbiter_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/hardware/memory/arbiter"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/memory/swapper"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/test"
)

func TestEngineWins(t *testing.T) {
	sw := swapper.NewSwapper()
	arb := arbiter.NewArbiter(sw)

	eng := bus.Request{Address: 50, WriteEnable: true, Data: pixel.White}
	granted := arb.Step(eng, true, false, 99, false)
	test.ExpectEquality(t, granted, eng)
	test.ExpectEquality(t, arb.Owner(), bus.Engine)

	v, _ := sw.Back().Peek(50)
	test.ExpectEquality(t, v, pixel.White)
}

func TestDisplayWhenIdle(t *testing.T) {
	sw := swapper.NewSwapper()
	arb := arbiter.NewArbiter(sw)

	// a write-enable from an inactive engine is never honoured
	eng := bus.Request{Address: 50, WriteEnable: true, Data: pixel.White}
	granted := arb.Step(eng, false, false, 99, false)
	test.ExpectEquality(t, granted, bus.Request{Address: 99})
	test.ExpectEquality(t, arb.Owner(), bus.Display)
	test.ExpectFailure(t, sw.State().SwapPending)

	v, _ := sw.Back().Peek(50)
	test.ExpectEquality(t, v, pixel.Black)
}

func TestDoneReleasesPort(t *testing.T) {
	sw := swapper.NewSwapper()
	arb := arbiter.NewArbiter(sw)

	eng := bus.Request{Address: 50, WriteEnable: true, Data: pixel.White}
	arb.Step(eng, true, true, 3, false)
	test.ExpectEquality(t, arb.Owner(), bus.Display)
	test.ExpectEquality(t, arb.Grants(bus.Display), 1)
	test.ExpectEquality(t, arb.Grants(bus.Engine), 0)
}

func TestSharedReadData(t *testing.T) {
	sw := swapper.NewSwapper()
	arb := arbiter.NewArbiter(sw)
	test.DemandSuccess(t, sw.Back().Poke(20, pixel.Grey(20)))
	test.DemandSuccess(t, sw.Front().Poke(30, pixel.Grey(30)))

	arb.Step(bus.Request{Address: 20}, true, false, 30, false)
	test.ExpectEquality(t, arb.SharedData(), pixel.Grey(20))
	test.ExpectEquality(t, arb.VideoData(), pixel.Grey(30))
}
