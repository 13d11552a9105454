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
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/television/coords"
)

// Event represents a change to the start button line.
type Event int

// List of valid events.
const (
	NoEvent Event = iota
	Press
	Release
	Tap
)

func (ev Event) String() string {
	switch ev {
	case NoEvent:
		return "no event"
	case Press:
		return "press"
	case Release:
		return "release"
	case Tap:
		return "tap"
	}
	return "unknown event"
}

// TimedEvent is an event with the time it was handled.
type TimedEvent struct {
	Time  coords.TelevisionCoords
	Event Event
}

func (ev TimedEvent) String() string {
	return fmt.Sprintf("%s @ %d/%d/%d", ev.Event, ev.Time.Frame, ev.Time.Scanline, ev.Time.Clock)
}
