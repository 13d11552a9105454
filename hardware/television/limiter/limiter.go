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

// Package limiter paces the production of frames so that the emulation runs
// no faster than the display it is generating a signal for.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/vgablur/hardware/television/specification"
)

// MatchRefreshRate can be used with SetLimit() to indicate that the limit
// should follow the refresh rate of the television.
const MatchRefreshRate float32 = -1.0

// Limiter blocks in CheckFrame() until it is time for the next frame.
type Limiter struct {
	// whether to wait in CheckFrame(). may be changed from any goroutine
	Active atomic.Bool

	// refresh rate of the television signal
	RefreshRate atomic.Value // float32

	// the rate being limited to
	IdealFPS atomic.Value // float32

	// value as passed to SetLimit()
	requestedFPS atomic.Value // float32

	// pulse that performs the limiting. the ticker fires once every
	// pulseCtLimit frames which keeps the ticker period comfortably above the
	// resolution of the OS timer
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// frame rate measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The refresh rate is set to that of SpecVGA60 and the limit set to match.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0))
	lmtr.SetRefreshRate(specification.SpecVGA60.RefreshRate)
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetRefreshRate of the television. If the limit has been set to
// MatchRefreshRate then the limit is adjusted immediately.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	lmtr.RefreshRate.Store(refreshRate)
	if fps, ok := lmtr.requestedFPS.Load().(float32); ok && fps <= 0.0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// SetLimit to the number of frames per second. Values of zero or less mean
// that the refresh rate will be used.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	// refresh rate probably hasn't been set
	if fps <= 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called once every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++
	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once every second. It can be
// called as often as required but it is best to call it once per frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
