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

// Package television generates the display timing for the system and passes
// the pixels it is given to any attached PixelRenderer.
//
// Every call to Signal() represents one tick of the pixel clock. The position
// of the beam for the current tick is available with the Beam() function. The
// system uses the address in the beam to read the front buffer, the result of
// which arrives one tick later. The pixel sent to Signal() therefore carries
// its own beam position.
//
// Television can optionally limit the number of frames produced per second.
// See SetFPSCap().
package television

import (
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/television/coords"
	"github.com/jetsetilly/vgablur/hardware/television/limiter"
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
	"github.com/jetsetilly/vgablur/logger"
)

// Television is the timing generator and the distributor of pixels to the
// attached renderers.
type Television struct {
	spec   specification.Spec
	coords coords.TelevisionCoords

	// the beam for the current coords
	beam signal.Beam

	// most recent signal received by Signal()
	lastSignal signal.SignalAttributes

	renderers     []PixelRenderer
	frameTriggers []FrameTrigger

	lmtr *limiter.Limiter
}

// NewTelevision creates a new instance of the television type, satisfying the
// Television interface.
func NewTelevision(spec string) (*Television, error) {
	tv := &Television{
		lmtr: limiter.NewLimiter(),
	}

	// frame limiting is off until explicitly asked for
	tv.lmtr.Active.Store(false)

	if err := tv.SetSpec(spec); err != nil {
		return nil, err
	}

	return tv, nil
}

func (tv *Television) String() string {
	return tv.beam.String()
}

// SetSpec changes the timing of the television. The coordinates are reset
// and any attached renderers are resized.
func (tv *Television) SetSpec(id string) error {
	spec, err := specification.Lookup(id)
	if err != nil {
		return err
	}

	tv.spec = spec
	tv.lmtr.SetRefreshRate(spec.RefreshRate)
	tv.Reset()

	for _, r := range tv.renderers {
		if err := r.Resize(tv.spec); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "television", "using %s specification (%.02fHz)", spec.ID, spec.RefreshRate)

	return nil
}

// GetSpec returns the television's current specification.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// Reset the television to the first tick of frame zero.
func (tv *Television) Reset() {
	tv.coords = coords.TelevisionCoords{}
	tv.beam = tv.newBeam()
	tv.lastSignal = signal.SignalAttributes{}
}

// AddPixelRenderer adds an implementation of PixelRenderer. The renderer is
// resized immediately.
func (tv *Television) AddPixelRenderer(r PixelRenderer) error {
	for _, e := range tv.renderers {
		if e == r {
			return nil
		}
	}
	if err := r.Resize(tv.spec); err != nil {
		return err
	}
	tv.renderers = append(tv.renderers, r)
	return nil
}

// AddFrameTrigger adds an implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	for _, e := range tv.frameTriggers {
		if e == f {
			return
		}
	}
	tv.frameTriggers = append(tv.frameTriggers, f)
}

// End closes any resources associated with the attached renderers.
func (tv *Television) End() error {
	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil {
			err = e
		}
	}
	return err
}

// Beam returns the beam for the current tick.
func (tv *Television) Beam() signal.Beam {
	return tv.beam
}

// GetCoords returns the coordinates of the current tick.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	return tv.coords
}

// GetLastSignal returns the most recent signal sent to the television.
func (tv *Television) GetLastSignal() signal.SignalAttributes {
	return tv.lastSignal
}

// Signal sends the pixel for a single tick to every renderer and then
// advances the beam by one tick. Renderers and frame triggers are notified of
// the new frame once the last tick of a frame has been signalled.
func (tv *Television) Signal(sig signal.SignalAttributes) error {
	tv.lastSignal = sig

	for _, r := range tv.renderers {
		if err := r.SetPixel(sig); err != nil {
			return err
		}
	}

	boundary := tv.beam.FrameBoundary
	tv.coords = coords.Advance(tv.coords, tv.spec)
	tv.beam = tv.newBeam()

	if boundary {
		return tv.newFrame()
	}

	return nil
}

func (tv *Television) newFrame() error {
	tv.lmtr.CheckFrame()
	tv.lmtr.MeasureActual()

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.coords.Frame); err != nil {
			return err
		}
	}
	for _, f := range tv.frameTriggers {
		if err := f.NewFrame(tv.coords.Frame); err != nil {
			return err
		}
	}

	return nil
}

// the beam for the current coordinates
func (tv *Television) newBeam() signal.Beam {
	clk := tv.coords.Clock
	sl := tv.coords.Scanline

	b := signal.Beam{
		Frame:    tv.coords.Frame,
		Scanline: sl,
		Clock:    clk,
		Active:   clk < specification.ClksVisible && sl < specification.ScanlinesVisible,
	}

	hs := specification.ClksVisible + tv.spec.ClksFrontPorch
	b.HSync = clk >= hs && clk < hs+tv.spec.ClksSync

	vs := specification.ScanlinesVisible + tv.spec.ScanlinesFrontPorch
	b.VSync = sl >= vs && sl < vs+tv.spec.ScanlinesSync

	b.FrameBoundary = clk == tv.spec.ClksScanline-1 && sl == tv.spec.ScanlinesTotal-1

	if b.Active {
		b.Address = addressmap.Map(clk/specification.ScaleDivisor, sl/specification.ScaleDivisor)
	}

	return b
}

// SetFPSCap whether the television should limit the number of frames produced
// per second to the refresh rate.
func (tv *Television) SetFPSCap(limit bool) {
	tv.lmtr.Active.Store(limit)
}

// GetFPSCap returns whether the television is limiting the number of frames
// produced per second.
func (tv *Television) GetFPSCap() bool {
	return tv.lmtr.Active.Load()
}

// SetFPS requests the number of frames per second. A value of zero or less
// will set the rate to the refresh rate of the specification.
func (tv *Television) SetFPS(fps float32) {
	tv.lmtr.SetLimit(fps)
}

// GetActualFPS returns the measured number of frames per second and the
// ideal rate.
func (tv *Television) GetActualFPS() (float32, float32) {
	return tv.lmtr.Measured.Load().(float32), tv.lmtr.IdealFPS.Load().(float32)
}
