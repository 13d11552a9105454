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

// Package arbiter shares the single address/data/write-enable port of the
// working framebuffer between the blur engine and the display scanner.
//
// The blur engine always wins. While it is active and not done its request
// is presented to memory unchanged, including the write-enable. At all other
// times the display scanner's address is presented and nothing is written.
// While the engine has the port, the display scanner receives the engine's
// read data on the shared port and must ignore it.
//
// The arbiter owns the storage, which is the double buffer of the swapper
// package. The front buffer has its own read port for video output and is not
// subject to arbitration.
package arbiter

import (
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/memory/swapper"
	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// Arbiter is the owner of the framebuffer storage.
type Arbiter struct {
	mem *swapper.Swapper

	// the client that controlled the shared port on the most recent tick
	owner bus.Client

	// the request presented to memory on the most recent tick
	granted bus.Request

	// the number of ticks each client has controlled the shared port
	grants [bus.NumClients]int
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
func NewArbiter(mem *swapper.Swapper) *Arbiter {
	return &Arbiter{
		mem: mem,
	}
}

func (arb *Arbiter) String() string {
	return fmt.Sprintf("%s: %s (%s)", arb.owner, arb.granted, arb.mem.State())
}

// Step presents the requests of both clients for this tick and advances the
// storage. The request that was granted is returned.
func (arb *Arbiter) Step(engine bus.Request, engineActive bool, engineDone bool, displayAddress int, frameBoundary bool) bus.Request {
	if engineActive && !engineDone {
		arb.owner = bus.Engine
		arb.granted = engine
	} else {
		arb.owner = bus.Display
		arb.granted = bus.Request{Address: displayAddress}
	}
	arb.grants[arb.owner]++

	arb.mem.Step(displayAddress, arb.granted, frameBoundary)

	return arb.granted
}

// SharedData returns the read data of the shared port from the previous tick.
// This is the data for the engine's read request if the engine controlled the
// port.
func (arb *Arbiter) SharedData() pixel.Pixel {
	return arb.mem.BackData()
}

// VideoData returns the data read from the front buffer on the previous tick.
func (arb *Arbiter) VideoData() pixel.Pixel {
	return arb.mem.FrontData()
}

// Owner returns the client that controlled the shared port on the most
// recent tick.
func (arb *Arbiter) Owner() bus.Client {
	return arb.owner
}

// Grants returns the number of ticks the client has controlled the shared
// port.
func (arb *Arbiter) Grants(c bus.Client) int {
	return arb.grants[c]
}

// Memory returns the storage owned by the arbiter.
func (arb *Arbiter) Memory() *swapper.Swapper {
	return arb.mem
}

// Reset the arbiter and the storage role assignment.
func (arb *Arbiter) Reset() {
	arb.owner = bus.Display
	arb.granted = bus.Request{}
	arb.grants = [bus.NumClients]int{}
	arb.mem.Reset()
}
