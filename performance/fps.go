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

package performance

import (
	"github.com/jetsetilly/vgablur/hardware/television"
)

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// refresh rate.
func CalcFPS(tv *television.Television, numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / float64(tv.GetSpec().RefreshRate)
	return fps, accuracy
}

// CalcTickRate takes the number of ticks and duration (in seconds) and
// returns the number of ticks per second in millions.
func CalcTickRate(numTicks int, duration float64) float64 {
	return float64(numTicks) / duration / 1000000
}
