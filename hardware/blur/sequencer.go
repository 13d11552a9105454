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

import "github.com/jetsetilly/vgablur/hardware/memory/addressmap"

// Sequencer is the cursor of the raster scan over the interior region of the
// framebuffer. The scan is row-major: x increases first.
type Sequencer struct {
	X, Y int

	// the number of pixels the cursor has moved past since Reset()
	Processed int
}

// Reset the cursor to the first interior pixel.
func (seq *Sequencer) Reset() {
	seq.X = addressmap.InteriorLeft
	seq.Y = addressmap.InteriorTop
	seq.Processed = 0
}

// Address of the pixel under the cursor.
func (seq *Sequencer) Address() int {
	return addressmap.Map(seq.X, seq.Y)
}

// Advance the cursor. Returns true if the pixel under the cursor was the last
// pixel of the interior, in which case the cursor does not move.
func (seq *Sequencer) Advance() bool {
	seq.Processed++

	if seq.X < addressmap.InteriorRight {
		seq.X++
		return false
	}

	if seq.Y < addressmap.InteriorBottom {
		seq.Y++
		seq.X = addressmap.InteriorLeft
		return false
	}

	return true
}
