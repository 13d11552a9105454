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

// Package swapper implements the double buffering of the display
// framebuffer.
//
// Two blocks of memory are held. One is the front buffer, read by the display
// scanner. The other is the back buffer, which receives every write. The roles
// are exchanged at a frame boundary, but only if at least one write has been
// made to the back buffer since the previous exchange. The display therefore
// never reads a buffer that is being changed, and all the writes made during a
// frame become visible together at the start of the next frame.
package swapper

import (
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/memory/block"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/logger"
)

// State is a snapshot of the swapper's control state.
type State struct {
	// index of the buffer currently read by the display
	CurrentReadBuffer int

	// a write has been made to the back buffer since the last swap
	SwapPending bool

	// the number of swaps since creation
	Swaps int
}

func (s State) String() string {
	return fmt.Sprintf("front=%d pending=%v swaps=%d", s.CurrentReadBuffer, s.SwapPending, s.Swaps)
}

// Swapper holds the two framebuffers and the role assignment.
type Swapper struct {
	buffers [2]*block.Block

	currentReadBuffer int
	swapPending       bool
	swaps             int

	// the read data of each port, latched at the moment of access so that a
	// swap at the end of a tick does not change what is returned during the
	// next tick
	frontData pixel.Pixel
	backData  pixel.Pixel
}

// NewSwapper is the preferred method of initialisation for the Swapper type.
func NewSwapper() *Swapper {
	return &Swapper{
		buffers: [2]*block.Block{
			block.NewBlock("buffer 0"),
			block.NewBlock("buffer 1"),
		},
	}
}

// Step advances the swapper by one tick. The front buffer is addressed by
// the display address, the back buffer by the request. A write in the request
// is always made to the back buffer.
func (sw *Swapper) Step(displayAddress int, req bus.Request, frameBoundary bool) {
	front := sw.buffers[sw.currentReadBuffer]
	back := sw.buffers[sw.currentReadBuffer^1]

	front.Access(bus.Request{Address: displayAddress})
	back.Access(req)

	sw.frontData = front.Data()
	sw.backData = back.Data()

	if req.WriteEnable {
		sw.swapPending = true
	}

	if frameBoundary && sw.swapPending {
		sw.currentReadBuffer ^= 1
		sw.swapPending = false
		sw.swaps++
		logger.Logf(logger.Allow, "swapper", "buffers swapped: %s is now the front buffer", sw.Front().Label())
	}
}

// FrontData returns the value read from the front buffer on the previous
// tick.
func (sw *Swapper) FrontData() pixel.Pixel {
	return sw.frontData
}

// BackData returns the value read from the back buffer on the previous tick.
func (sw *Swapper) BackData() pixel.Pixel {
	return sw.backData
}

// Front returns the buffer currently read by the display.
func (sw *Swapper) Front() *block.Block {
	return sw.buffers[sw.currentReadBuffer]
}

// Back returns the buffer currently receiving writes.
func (sw *Swapper) Back() *block.Block {
	return sw.buffers[sw.currentReadBuffer^1]
}

// Buffer returns one of the two buffers by index.
func (sw *Swapper) Buffer(idx int) *block.Block {
	return sw.buffers[idx&1]
}

// State returns a snapshot of the control state.
func (sw *Swapper) State() State {
	return State{
		CurrentReadBuffer: sw.currentReadBuffer,
		SwapPending:       sw.swapPending,
		Swaps:             sw.swaps,
	}
}

// Reset the role assignment. The contents of the buffers are not changed.
func (sw *Swapper) Reset() {
	sw.currentReadBuffer = 0
	sw.swapPending = false
	sw.frontData = pixel.Black
	sw.backData = pixel.Black
}
