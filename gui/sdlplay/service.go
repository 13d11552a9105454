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

package sdlplay

import (
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// UserEvent is sent on the Events() channel when the user asks for something
// that is outside the scope of the window.
type UserEvent int

// List of valid UserEvent values.
const (
	EventQuit UserEvent = iota
	EventScreenshot
)

func (ev UserEvent) String() string {
	switch ev {
	case EventQuit:
		return "quit"
	case EventScreenshot:
		return "screenshot"
	}
	return "unknown user event"
}

func setupService() {
	// mouse motion is of no interest and fills the event queue quickly
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service handles SDL events, outstanding feature requests and presents the
// most recently completed frame.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(EventQuit)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}
			scr.keyboard(ev.Keysym.Sym, ev.Type == sdl.KEYDOWN)
		}
	}

	select {
	case req := <-scr.features:
		scr.serviceFeatureRequest(req)
	default:
	}

	if err := scr.present(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err.Error())
	}
}

func (scr *SdlPlay) keyboard(key sdl.Keycode, down bool) {
	switch key {
	case sdl.K_SPACE, sdl.K_RETURN:
		ev := input.Release
		if down {
			ev = input.Press
		}
		if err := scr.inp.PushEvent(ev); err != nil {
			logger.Log(logger.Allow, "sdlplay", err.Error())
		}

	case sdl.K_t:
		if down {
			if err := scr.inp.PushEvent(input.Tap); err != nil {
				logger.Log(logger.Allow, "sdlplay", err.Error())
			}
		}

	case sdl.K_ESCAPE, sdl.K_q:
		if down {
			scr.sendEvent(EventQuit)
		}

	case sdl.K_s:
		if down {
			scr.sendEvent(EventScreenshot)
		}

	default:
		if down {
			logger.Logf(logger.Allow, "sdlplay", "unhandled key: %s", sdl.GetKeyName(key))
		}
	}
}

// events are dropped rather than blocking the main thread
func (scr *SdlPlay) sendEvent(ev UserEvent) {
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped user event: %s", ev)
	}
}
