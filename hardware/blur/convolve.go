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

import "github.com/jetsetilly/vgablur/hardware/pixel"

// Kernel weights in the same order as Offsets. The weights sum to 16.
var Kernel = [WindowSize]int{
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
}

// KernelShift normalises the weighted sum. Equivalent to dividing by the sum
// of the kernel weights, truncating.
const KernelShift = 4

// Convolve applies the kernel to each channel of the neighbourhood
// independently. The weighted sums are normalised by shifting right and
// truncating, never by rounding.
func Convolve(n Neighbourhood) pixel.Pixel {
	var r, g, b int
	for k, px := range n {
		r += int(px.R()) * Kernel[k]
		g += int(px.G()) * Kernel[k]
		b += int(px.B()) * Kernel[k]
	}
	return pixel.NewPixel(uint8(r>>KernelShift), uint8(g>>KernelShift), uint8(b>>KernelShift))
}
