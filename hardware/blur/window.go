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

package blur

import (
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// WindowSize is the number of pixels in the neighbourhood.
const WindowSize = 9

// WindowTicks is the number of ticks required to load the neighbourhood. One
// more than the number of pixels because of the read latency.
const WindowTicks = WindowSize + 1

// Neighbour offsets relative to the current coordinate, in the order in which
// they are read and stored.
var Offsets = [WindowSize][2]int{
	{-1, -1}, {0, -1}, {1, -1}, // top-left, top-centre, top-right
	{-1, 0}, {0, 0}, {1, 0}, // middle-left, centre, middle-right
	{-1, 1}, {0, 1}, {1, 1}, // bottom-left, bottom-centre, bottom-right
}

// Neighbourhood is the cache of the nine pixels surrounding (and including)
// the current coordinate, stored in the same order as Offsets.
type Neighbourhood [WindowSize]pixel.Pixel

// Window loads a Neighbourhood from memory. A new load must be started with
// Begin() for every pixel. The neighbourhood can only be used once Complete()
// returns true.
type Window struct {
	x, y  int
	cache Neighbourhood

	// one bit for each slot that has been filled since Begin()
	filled uint16
}

// Begin a new load for the coordinates.
func (win *Window) Begin(x, y int) {
	win.x = x
	win.y = y
	win.filled = 0
}

// Address of neighbour k (0 to 8) of the current coordinate.
func (win *Window) Address(k int) int {
	return addressmap.Map(win.x+Offsets[k][0], win.y+Offsets[k][1])
}

// Store the data for neighbour k.
func (win *Window) Store(k int, data pixel.Pixel) {
	win.cache[k] = data
	win.filled |= 1 << k
}

// Complete returns true once every slot has been filled since Begin().
func (win *Window) Complete() bool {
	return win.filled == (1<<WindowSize)-1
}

// Neighbourhood returns a copy of the cache.
func (win *Window) Neighbourhood() Neighbourhood {
	return win.cache
}
