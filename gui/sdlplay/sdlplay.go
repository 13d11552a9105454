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

// Package sdlplay is a simple SDL window for the VGA output of the system. It
// implements the television.PixelRenderer interface and translates key
// presses into events for the start button.
//
// SDL functions must only be called from the main thread. SetPixel() and
// NewFrame() are called from the emulation goroutine so the completed frame
// is handed to Service() which presents it from the main thread.
package sdlplay

import (
	"sync"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/hardware/television"
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
	"github.com/jetsetilly/vgablur/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern used for errors from the SDL library.
const SDLError = "sdlplay: %v"

const windowTitle = "vgablur"

const pixelDepth = 4

// SdlPlay is the SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	tv  *television.Television
	inp *input.Input

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale float32

	// pixels is written by SetPixel() in the emulation goroutine
	pixels []byte

	// the most recently completed frame. guarded by crit
	crit  sync.Mutex
	frame []byte
	dirty bool

	features   chan featureRequest
	featureErr chan error

	events chan UserEvent
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Must be
// called from the main thread.
func NewSdlPlay(tv *television.Television, inp *input.Input, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		tv:         tv,
		inp:        inp,
		scale:      scale,
		features:   make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		events:     make(chan UserEvent, 8),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	// window size is set in the Resize() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// Resize() is called by the television when the renderer is added
	err = tv.AddPixelRenderer(scr)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// window is shown with the ReqSetVisibility request

	return scr, nil
}

// Resize implements the television.PixelRenderer interface.
//
// The size of the visible area is the same for every specification so the
// texture is only created once.
func (scr *SdlPlay) Resize(spec specification.Spec) error {
	scr.window.SetTitle(windowTitle + " " + spec.ID)

	if scr.texture != nil {
		return nil
	}

	l := specification.ClksVisible * specification.ScanlinesVisible * pixelDepth
	scr.pixels = make([]byte, l)
	scr.frame = make([]byte, l)

	// alpha channel never changes
	for i := pixelDepth - 1; i < l; i += pixelDepth {
		scr.pixels[i] = 255
		scr.frame[i] = 255
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(specification.ClksVisible), int32(specification.ScanlinesVisible))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return scr.setScaling(scr.scale)
}

func (scr *SdlPlay) setScaling(scale float32) error {
	if scale <= 0 {
		scale = 1.0
	}
	scr.scale = scale

	w := int32(float32(specification.ClksVisible) * scale)
	h := int32(float32(specification.ScanlinesVisible) * scale)
	scr.window.SetSize(w, h)

	err := scr.renderer.SetLogicalSize(int32(specification.ClksVisible), int32(specification.ScanlinesVisible))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.frame, scr.pixels)
	scr.dirty = true
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (scr *SdlPlay) SetPixel(sig signal.SignalAttributes) error {
	if !sig.Beam.Active {
		return nil
	}

	i := (sig.Beam.Scanline*specification.ClksVisible + sig.Beam.Clock) * pixelDepth
	if i > len(scr.pixels)-pixelDepth {
		return nil
	}

	scr.pixels[i] = sig.Pixel.R()
	scr.pixels[i+1] = sig.Pixel.G()
	scr.pixels[i+2] = sig.Pixel.B()

	return nil
}

// EndRendering implements the television.PixelRenderer interface. The SDL
// resources are released by Destroy().
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// Destroy the window and release SDL. Must be called from the main thread.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}
	sdl.Quit()
}

// Events returns the channel on which user events are sent.
func (scr *SdlPlay) Events() <-chan UserEvent {
	return scr.events
}

// IsVisible returns true if the window is showing.
func (scr *SdlPlay) IsVisible() bool {
	return scr.window.GetFlags()&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// present the most recent frame. must be called from the main thread
func (scr *SdlPlay) present() error {
	scr.crit.Lock()
	if !scr.dirty {
		scr.crit.Unlock()
		return nil
	}
	err := scr.texture.Update(nil, scr.frame, specification.ClksVisible*pixelDepth)
	scr.dirty = false
	scr.crit.Unlock()

	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.renderer.Present()

	return nil
}
