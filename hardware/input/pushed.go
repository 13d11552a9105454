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
	"github.com/jetsetilly/vgablur/curated"
)

// QueueFull is returned by PushEvent() when the event cannot be queued.
const QueueFull = "input: pushed event queue is full: %s dropped"

// PushEvent pushes an Event onto the queue. The event will be handled at the
// start of the next tick. Will drop the event and return an error if the
// queue is full.
//
// Safe to call from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull, ev)
	}
	return nil
}

func (inp *Input) handlePushed() error {
	for {
		select {
		case ev := <-inp.pushed:
			if _, err := inp.HandleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
