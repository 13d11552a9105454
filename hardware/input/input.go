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

package input

import (
	"sync/atomic"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/preferences"
	"github.com/jetsetilly/vgablur/hardware/television/coords"
	"github.com/jetsetilly/vgablur/logger"
	"github.com/jetsetilly/vgablur/prefs"
)

// UnknownEvent is returned by HandleEvent() for an unrecognised event.
const UnknownEvent = "input: unknown event (%d)"

// TV defines the television functions required by the Input system.
type TV interface {
	GetCoords() coords.TelevisionCoords
}

// Input conditions the start button line.
type Input struct {
	tv TV

	playback EventPlayback
	recorder EventRecorder

	// events pushed onto the input queue
	pushed chan Event

	// number of ticks for debouncing and tapping. the values are updated by
	// preference hooks, which may run on any goroutine
	debounce atomic.Int32
	tap      atomic.Int32

	// raw state of the line
	line bool

	// ticks remaining before a tap releases the line
	tapCt int

	// the debounced level and the number of consecutive ticks the raw line
	// has differed from it
	level  bool
	holdCt int

	// number of start pulses produced
	pulses int
}

// NewInput is the preferred method of initialisation for the Input type. The
// preferences argument can be nil, in which case the default debounce and
// tap values are used.
func NewInput(tv TV, p *preferences.Preferences) *Input {
	inp := &Input{
		tv:     tv,
		pushed: make(chan Event, 64),
	}

	inp.debounce.Store(preferences.DefaultDebounce)
	inp.tap.Store(preferences.DefaultTap)

	if p != nil {
		inp.debounce.Store(int32(p.Debounce.Get().(int)))
		inp.tap.Store(int32(p.Tap.Get().(int)))
		p.Debounce.SetHookPost(func(v prefs.Value) error {
			inp.debounce.Store(int32(v.(int)))
			return nil
		})
		p.Tap.SetHookPost(func(v prefs.Value) error {
			inp.tap.Store(int32(v.(int)))
			return nil
		})
	}

	return inp
}

// SetDebounce sets the number of ticks the line must hold a new level. Values
// less than one are treated as one.
func (inp *Input) SetDebounce(ticks int) {
	inp.debounce.Store(int32(max(ticks, 1)))
}

// SetTap sets the number of ticks a tap holds the line. Values less than one
// are treated as one.
func (inp *Input) SetTap(ticks int) {
	inp.tap.Store(int32(max(ticks, 1)))
}

// Reset the line and the debouncer. Any pushed events are discarded.
func (inp *Input) Reset() {
	inp.line = false
	inp.tapCt = 0
	inp.level = false
	inp.holdCt = 0
	inp.pulses = 0
	for {
		select {
		case <-inp.pushed:
		default:
			return
		}
	}
}

// Level returns the debounced level of the line.
func (inp *Input) Level() bool {
	return inp.level
}

// Pulses returns the number of start pulses produced since the last reset.
func (inp *Input) Pulses() int {
	return inp.pulses
}

// HandleEvent changes the state of the line. Must only be called from the
// emulation goroutine.
//
// If a playback is attached the event is not handled and false is returned.
func (inp *Input) HandleEvent(ev Event) (bool, error) {
	if inp.playback != nil {
		return false, nil
	}
	if err := inp.handle(ev); err != nil {
		return false, err
	}
	if inp.recorder != nil && ev != NoEvent {
		err := inp.recorder.RecordEvent(TimedEvent{Time: inp.tv.GetCoords(), Event: ev})
		if err != nil {
			return true, err
		}
	}
	return true, nil
}

func (inp *Input) handle(ev Event) error {
	switch ev {
	case NoEvent:
	case Press:
		inp.line = true
		inp.tapCt = 0
	case Release:
		inp.line = false
		inp.tapCt = 0
	case Tap:
		inp.line = true
		inp.tapCt = int(inp.tap.Load())
	default:
		return curated.Errorf(UnknownEvent, int(ev))
	}
	return nil
}

// Step samples the line for the current tick and returns true if the start
// pulse is asserted. Should be called once per tick.
func (inp *Input) Step() (bool, error) {
	if err := inp.handlePushed(); err != nil {
		return false, err
	}
	if err := inp.handlePlayback(); err != nil {
		return false, err
	}

	start := false
	if inp.line != inp.level {
		inp.holdCt++
		if inp.holdCt >= int(inp.debounce.Load()) {
			inp.holdCt = 0
			inp.level = inp.line
			if inp.level {
				start = true
				inp.pulses++
				logger.Logf(logger.Allow, "input", "start pulse at %s", inp.tv.GetCoords())
			}
		}
	} else {
		inp.holdCt = 0
	}

	if inp.tapCt > 0 {
		inp.tapCt--
		if inp.tapCt == 0 {
			inp.line = false
		}
	}

	return start, nil
}
