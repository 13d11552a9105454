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

package frameloader

import (
	"image"
	"sort"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// UnknownPattern is returned by Pattern() for an unrecognised pattern name.
const UnknownPattern = "frameloader: unknown pattern (%s)"

// Patterns is the list of built in test patterns. Each pattern fills the
// framebuffer.
var Patterns = map[string]func(x, y int) pixel.Pixel{
	// single pixel checkerboard. the worst case for a blur
	"checkerboard": func(x, y int) pixel.Pixel {
		if (x+y)&1 == 0 {
			return pixel.White
		}
		return pixel.Black
	},

	// red increases left to right, green top to bottom
	"gradient": func(x, y int) pixel.Pixel {
		return pixel.NewPixel(uint8(x*255/(addressmap.Width-1)), uint8(y*255/(addressmap.Height-1)), 0x80)
	},

	// eight vertical colour bars
	"bars": func(x, _ int) pixel.Pixel {
		bar := x * 8 / addressmap.Width
		var r, g, b uint8
		if bar&4 == 0 {
			r = 0xff
		}
		if bar&2 == 0 {
			g = 0xff
		}
		if bar&1 == 0 {
			b = 0xff
		}
		return pixel.NewPixel(r, g, b)
	},

	// a single white pixel in the centre of a black frame
	"dot": func(x, y int) pixel.Pixel {
		if x == addressmap.Width/2 && y == addressmap.Height/2 {
			return pixel.White
		}
		return pixel.Black
	},
}

// PatternNames returns the sorted list of pattern names.
func PatternNames() []string {
	n := make([]string, 0, len(Patterns))
	for k := range Patterns {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Pattern creates an image of the named pattern.
func Pattern(name string) (*image.RGBA, error) {
	f, ok := Patterns[name]
	if !ok {
		return nil, curated.Errorf(UnknownPattern, name)
	}
	img := image.NewRGBA(image.Rect(0, 0, addressmap.Width, addressmap.Height))
	for y := 0; y < addressmap.Height; y++ {
		for x := 0; x < addressmap.Width; x++ {
			img.Set(x, y, f(x, y))
		}
	}
	return img, nil
}
