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

package television_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/hardware/television"
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
	"github.com/jetsetilly/vgablur/test"
)

type countingRenderer struct {
	resizes  int
	frames   []int
	pixels   int
	active   int
	hsync    int
	vsync    int
	lastBeam signal.Beam
}

func (r *countingRenderer) Resize(_ specification.Spec) error {
	r.resizes++
	return nil
}

func (r *countingRenderer) NewFrame(frameNum int) error {
	r.frames = append(r.frames, frameNum)
	return nil
}

func (r *countingRenderer) SetPixel(sig signal.SignalAttributes) error {
	r.pixels++
	if sig.Beam.Active {
		r.active++
	}
	if sig.Beam.HSync {
		r.hsync++
	}
	if sig.Beam.VSync {
		r.vsync++
	}
	r.lastBeam = sig.Beam
	return nil
}

func (r *countingRenderer) EndRendering() error {
	return nil
}

func runFrame(t *testing.T, tv *television.Television) {
	t.Helper()
	for range tv.GetSpec().TicksPerFrame() {
		err := tv.Signal(signal.SignalAttributes{Beam: tv.Beam(), Pixel: pixel.Black})
		test.DemandSuccess(t, err)
	}
}

func TestUnknownSpec(t *testing.T) {
	_, err := television.NewTelevision("PAL")
	test.ExpectFailure(t, err)
}

func TestFrameTiming(t *testing.T) {
	for _, id := range specification.SpecList {
		tv, err := television.NewTelevision(id)
		test.DemandSuccess(t, err)

		r := &countingRenderer{}
		test.DemandSuccess(t, tv.AddPixelRenderer(r))
		test.ExpectEquality(t, r.resizes, 1, id)

		// adding twice has no effect
		test.DemandSuccess(t, tv.AddPixelRenderer(r))
		test.ExpectEquality(t, r.resizes, 1, id)

		spec := tv.GetSpec()
		runFrame(t, tv)

		test.ExpectEquality(t, r.pixels, spec.TicksPerFrame(), id)
		test.ExpectEquality(t, r.active, specification.ClksVisible*specification.ScanlinesVisible, id)
		test.ExpectEquality(t, r.hsync, spec.ClksSync*spec.ScanlinesTotal, id)
		test.ExpectEquality(t, r.vsync, spec.ScanlinesSync*spec.ClksScanline, id)
		test.ExpectSuccess(t, r.lastBeam.FrameBoundary, id)
		test.ExpectEquality(t, len(r.frames), 1, id)
		test.ExpectEquality(t, r.frames[0], 1, id)

		// first tick of the next frame
		b := tv.Beam()
		test.ExpectEquality(t, b.Frame, 1, id)
		test.ExpectEquality(t, b.Scanline, 0, id)
		test.ExpectEquality(t, b.Clock, 0, id)
		test.ExpectSuccess(t, b.Active, id)
		test.ExpectFailure(t, b.FrameBoundary, id)
	}
}

func TestBeamAddress(t *testing.T) {
	tv, err := television.NewTelevision("VGA60")
	test.DemandSuccess(t, err)

	// every framebuffer pixel is shown in a 4x4 block
	seen := make(map[int]int)
	for range tv.GetSpec().TicksPerFrame() {
		b := tv.Beam()
		if b.Active {
			x, y := addressmap.Coords(b.Address)
			test.ExpectEquality(t, x, b.Clock/specification.ScaleDivisor)
			test.ExpectEquality(t, y, b.Scanline/specification.ScaleDivisor)
			seen[b.Address]++
		} else {
			test.ExpectEquality(t, b.Address, 0)
		}
		test.DemandSuccess(t, tv.Signal(signal.SignalAttributes{Beam: b}))
	}

	test.ExpectEquality(t, len(seen), addressmap.Size)
	for a, n := range seen {
		test.ExpectEquality(t, n, specification.ScaleDivisor*specification.ScaleDivisor, a)
	}
}

type trigger struct {
	frames int
}

func (f *trigger) NewFrame(_ int) error {
	f.frames++
	return nil
}

func TestFrameTriggerAndReset(t *testing.T) {
	tv, err := television.NewTelevision("VGA75")
	test.DemandSuccess(t, err)

	f := &trigger{}
	tv.AddFrameTrigger(f)
	tv.AddFrameTrigger(f)

	runFrame(t, tv)
	runFrame(t, tv)
	test.ExpectEquality(t, f.frames, 2)
	test.ExpectEquality(t, tv.GetCoords().Frame, 2)

	tv.Reset()
	test.ExpectEquality(t, tv.GetCoords().Frame, 0)
	test.ExpectEquality(t, tv.Beam().Address, 0)
	test.ExpectSuccess(t, tv.Beam().Active)

	// changing the specification resets the coordinates
	runFrame(t, tv)
	test.DemandSuccess(t, tv.SetSpec("VGA72"))
	test.ExpectEquality(t, tv.GetSpec().ID, "VGA72")
	test.ExpectEquality(t, tv.GetCoords().Frame, 0)
}
