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

// Package pixel defines the 24-bit pixel value stored in the framebuffers.
// There are three 8-bit channels and no alpha channel.
package pixel

import (
	"fmt"
	"image/color"
)

// Pixel is a packed 24-bit RGB value. Red is in the most significant byte of
// the 24 bits, blue in the least significant. The top eight bits of the
// underlying type are always zero.
type Pixel uint32

// Mask is the mask for the meaningful bits of a Pixel.
const Mask = 0x00ffffff

// Black is the zero value.
const Black Pixel = 0x000000

// White has every channel at the maximum value.
const White Pixel = 0xffffff

// NewPixel packs three 8-bit channels.
func NewPixel(r, g, b uint8) Pixel {
	return Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// Grey returns a pixel with the same value in every channel.
func Grey(v uint8) Pixel {
	return NewPixel(v, v, v)
}

// FromColor converts any color.Color. Alpha is discarded.
func FromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return NewPixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// R returns the red channel.
func (px Pixel) R() uint8 {
	return uint8(px >> 16)
}

// G returns the green channel.
func (px Pixel) G() uint8 {
	return uint8(px >> 8)
}

// B returns the blue channel.
func (px Pixel) B() uint8 {
	return uint8(px)
}

// RGBA implements the color.Color interface. Pixels are always opaque.
func (px Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: px.R(), G: px.G(), B: px.B(), A: 0xff}.RGBA()
}

func (px Pixel) String() string {
	return fmt.Sprintf("#%06x", uint32(px&Mask))
}
