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

package swapper_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/memory/swapper"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/test"
)

func TestNoWriteNoSwap(t *testing.T) {
	sw := swapper.NewSwapper()
	for i := 0; i < 10; i++ {
		sw.Step(0, bus.Request{Address: i}, false)
	}
	sw.Step(0, bus.Request{}, true)
	test.ExpectEquality(t, sw.State().CurrentReadBuffer, 0)
	test.ExpectEquality(t, sw.State().Swaps, 0)

	// many frame boundaries without a write
	for i := 0; i < 5; i++ {
		sw.Step(0, bus.Request{}, true)
	}
	test.ExpectEquality(t, sw.State().CurrentReadBuffer, 0)
}

func TestSingleWriteSwapsOnce(t *testing.T) {
	sw := swapper.NewSwapper()
	back := sw.Back()
	front := sw.Front()

	sw.Step(0, bus.Request{Address: 100, WriteEnable: true, Data: pixel.White}, false)
	test.ExpectSuccess(t, sw.State().SwapPending)

	// the write went to the back buffer only
	v, _ := back.Peek(100)
	test.ExpectEquality(t, v, pixel.White)
	v, _ = front.Peek(100)
	test.ExpectEquality(t, v, pixel.Black)

	// the display does not see the write before the frame boundary
	for i := 0; i < 3; i++ {
		sw.Step(100, bus.Request{}, false)
		test.ExpectEquality(t, sw.FrontData(), pixel.Black)
		test.ExpectEquality(t, sw.Front(), front)
	}

	sw.Step(100, bus.Request{}, true)
	test.ExpectEquality(t, sw.State().CurrentReadBuffer, 1)
	test.ExpectEquality(t, sw.State().Swaps, 1)
	test.ExpectFailure(t, sw.State().SwapPending)
	test.ExpectEquality(t, sw.Front(), back)

	// now visible to the display
	sw.Step(100, bus.Request{}, false)
	test.ExpectEquality(t, sw.FrontData(), pixel.White)

	// and no further swaps happen without further writes
	sw.Step(100, bus.Request{}, true)
	sw.Step(100, bus.Request{}, true)
	test.ExpectEquality(t, sw.State().Swaps, 1)
}

func TestWriteOnBoundaryTick(t *testing.T) {
	sw := swapper.NewSwapper()
	sw.Step(0, bus.Request{Address: 1, WriteEnable: true, Data: pixel.White}, true)
	test.ExpectEquality(t, sw.State().Swaps, 1)
	v, _ := sw.Front().Peek(1)
	test.ExpectEquality(t, v, pixel.White)
}

func TestBackRead(t *testing.T) {
	sw := swapper.NewSwapper()
	test.DemandSuccess(t, sw.Back().Poke(7, pixel.Grey(7)))
	test.DemandSuccess(t, sw.Front().Poke(7, pixel.Grey(8)))
	sw.Step(7, bus.Request{Address: 7}, false)
	test.ExpectEquality(t, sw.BackData(), pixel.Grey(7))
	test.ExpectEquality(t, sw.FrontData(), pixel.Grey(8))
}
