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
	"github.com/jetsetilly/vgablur/hardware/blur"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/memory/swapper"
	"github.com/jetsetilly/vgablur/hardware/television/coords"
)

// State is a copy of the control state of the system. The contents of the
// framebuffers are not included.
type State struct {
	Coords  coords.TelevisionCoords
	Ticks   int
	Engine  blur.Status
	Signals blur.Signals
	Buffers swapper.State
	Owner   bus.Client
	Grants  [bus.NumClients]int
}

// Snapshot the control state of the system.
func (sys *System) Snapshot() *State {
	s := &State{
		Coords:  sys.TV.GetCoords(),
		Ticks:   sys.ticks,
		Engine:  sys.Engine.Status(),
		Signals: sys.signals,
		Buffers: sys.Mem.State(),
		Owner:   sys.Arbiter.Owner(),
	}
	for c := range bus.NumClients {
		s.Grants[c] = sys.Arbiter.Grants(c)
	}
	return s
}
