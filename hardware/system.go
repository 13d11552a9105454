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

package hardware

import (
	"image"
	"sync/atomic"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/blur"
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/memory/arbiter"
	"github.com/jetsetilly/vgablur/hardware/memory/swapper"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/hardware/preferences"
	"github.com/jetsetilly/vgablur/hardware/television"
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/logger"
	"github.com/jetsetilly/vgablur/prefs"
)

// ImageSize is returned by LoadImage() when the image is not the same size as
// the framebuffer.
const ImageSize = "system: image must be %dx%d pixels (is %dx%d)"

// System is the main container for the components of the blur system.
type System struct {
	Prefs *preferences.Preferences

	// the television is not part of the system but is attached to it
	TV *television.Television

	Input   *input.Input
	Engine  *blur.Engine
	Arbiter *arbiter.Arbiter
	Mem     *swapper.Swapper

	// the beam from the previous tick. the video data read during that tick
	// arrives on the current tick
	prevBeam signal.Beam

	// blanking colour. updated by the preferences hook
	blanking atomic.Uint32

	// the engine outputs on the most recent tick
	signals blur.Signals

	// number of ticks since the last reset
	ticks int
}

// NewSystem creates a new System and everything associated with the hardware.
// The preferences argument can be nil, in which case default values are
// used.
func NewSystem(tv *television.Television, p *preferences.Preferences) (*System, error) {
	if tv == nil {
		return nil, curated.Errorf("system: no television")
	}

	sys := &System{
		Prefs:  p,
		TV:     tv,
		Engine: blur.NewEngine(),
		Mem:    swapper.NewSwapper(),
	}

	sys.Arbiter = arbiter.NewArbiter(sys.Mem)
	sys.Input = input.NewInput(tv, p)

	sys.blanking.Store(uint32(preferences.DefaultBlanking))
	if p != nil {
		sys.blanking.Store(uint32(p.BlankingPixel()))
		p.Blanking.SetHookPost(func(v prefs.Value) error {
			sys.blanking.Store(uint32(v.(int)) & pixel.Mask)
			return nil
		})
		tv.SetFPSCap(p.FPSCap.Get().(bool))
		p.FPSCap.SetHookPost(func(v prefs.Value) error {
			tv.SetFPSCap(v.(bool))
			return nil
		})
	}

	return sys, nil
}

// Reset the system to its initial state. The contents of the framebuffers are
// not changed.
func (sys *System) Reset() {
	sys.TV.Reset()
	sys.Input.Reset()
	sys.Engine.Reset()
	sys.Arbiter.Reset()
	sys.prevBeam = signal.Beam{}
	sys.signals = blur.Signals{}
	sys.ticks = 0
}

// LoadImage copies the image into both framebuffers and resets the system.
// The image must be the same size as the framebuffer.
func (sys *System) LoadImage(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != addressmap.Width || b.Dy() != addressmap.Height {
		return curated.Errorf(ImageSize, addressmap.Width, addressmap.Height, b.Dx(), b.Dy())
	}

	front := sys.Mem.Buffer(0)
	for y := 0; y < addressmap.Height; y++ {
		for x := 0; x < addressmap.Width; x++ {
			px := pixel.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
			if err := front.Poke(addressmap.Map(x, y), px); err != nil {
				return err
			}
		}
	}
	sys.Mem.Buffer(1).CopyFrom(front)

	sys.Reset()

	logger.Logf(logger.Allow, "system", "image loaded (%dx%d)", b.Dx(), b.Dy())

	return nil
}

// Step the system by one tick.
//
// The read data of both memory ports is taken first because it is the result
// of the previous tick. The start button is then sampled and the engine
// stepped. The arbiter grants the shared port and advances the memory. The
// display pixel sent to the television is for the beam of the previous tick.
func (sys *System) Step() error {
	shared := sys.Arbiter.SharedData()
	video := sys.Arbiter.VideoData()
	beam := sys.TV.Beam()

	start, err := sys.Input.Step()
	if err != nil {
		return err
	}

	sys.signals = sys.Engine.Step(start, shared)
	sys.Arbiter.Step(sys.signals.Request, sys.signals.Active, sys.signals.Done, beam.Address, beam.FrameBoundary)

	sig := signal.SignalAttributes{Beam: sys.prevBeam}
	if sys.prevBeam.Active {
		sig.Pixel = video
	} else {
		sig.Pixel = pixel.Pixel(sys.blanking.Load())
	}
	sys.prevBeam = beam
	sys.ticks++

	return sys.TV.Signal(sig)
}

// Signals returns the outputs of the engine on the most recent tick.
func (sys *System) Signals() blur.Signals {
	return sys.signals
}

// Ticks returns the number of ticks since the last reset.
func (sys *System) Ticks() int {
	return sys.ticks
}

// Front returns a copy of the framebuffer currently being displayed.
func (sys *System) Front() []pixel.Pixel {
	return sys.Mem.Front().Snapshot()
}

// Image returns the framebuffer currently being displayed as an image.
func (sys *System) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, addressmap.Width, addressmap.Height))
	for a, px := range sys.Mem.Front().Snapshot() {
		x, y := addressmap.Coords(a)
		i := img.PixOffset(x, y)
		img.Pix[i] = px.R()
		img.Pix[i+1] = px.G()
		img.Pix[i+2] = px.B()
		img.Pix[i+3] = 0xff
	}
	return img
}
