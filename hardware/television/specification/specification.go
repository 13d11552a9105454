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

// Package specification contains the definitions of the display timings
// supported by the television. All of the timings have a visible area of
// 640x480 pixels, which is the framebuffer scaled by ScaleDivisor.
package specification

import (
	"strings"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
)

// ScaleDivisor is the number of display pixels (in each direction) that show
// one framebuffer pixel.
const ScaleDivisor = 4

// Visible area in display pixels. These are the same for every
// specification.
const (
	ClksVisible      = addressmap.Width * ScaleDivisor
	ScanlinesVisible = addressmap.Height * ScaleDivisor
)

// Spec is used to define the display timing.
//
// Each scanline starts with the visible pixels, followed by the front porch,
// the horizontal sync and the back porch. Likewise, each frame starts with
// the visible scanlines, followed by the vertical front porch, sync and back
// porch.
type Spec struct {
	ID string

	ClksFrontPorch int
	ClksSync       int
	ClksBackPorch  int
	ClksScanline   int

	ScanlinesFrontPorch int
	ScanlinesSync       int
	ScanlinesBackPorch  int
	ScanlinesTotal      int

	// pixel clock in MHz. one tick of the system is one pixel clock
	PixelClock float32

	// the number of frames per second that results from the pixel clock
	RefreshRate float32
}

// TicksPerFrame returns the number of pixel clocks in a full frame.
func (spec Spec) TicksPerFrame() int {
	return spec.ClksScanline * spec.ScanlinesTotal
}

// SpecVGA60 is the industry standard 640x480 timing at 60Hz.
var SpecVGA60 Spec

// SpecVGA72 is the VESA 640x480 timing at 72Hz.
var SpecVGA72 Spec

// SpecVGA75 is the VESA 640x480 timing at 75Hz.
var SpecVGA75 Spec

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"VGA60", "VGA72", "VGA75"}

func newSpec(id string, hfp, hs, hbp, vfp, vs, vbp int, clk float32) Spec {
	spec := Spec{
		ID:                  id,
		ClksFrontPorch:      hfp,
		ClksSync:            hs,
		ClksBackPorch:       hbp,
		ClksScanline:        ClksVisible + hfp + hs + hbp,
		ScanlinesFrontPorch: vfp,
		ScanlinesSync:       vs,
		ScanlinesBackPorch:  vbp,
		ScanlinesTotal:      ScanlinesVisible + vfp + vs + vbp,
		PixelClock:          clk,
	}
	spec.RefreshRate = clk * 1000000 / float32(spec.TicksPerFrame())
	return spec
}

func init() {
	SpecVGA60 = newSpec("VGA60", 16, 96, 48, 10, 2, 33, 25.175)
	SpecVGA72 = newSpec("VGA72", 24, 40, 128, 9, 3, 28, 31.5)
	SpecVGA75 = newSpec("VGA75", 16, 64, 120, 1, 3, 16, 31.5)
}

// UnknownSpec is returned by Lookup() if the ID is not recognised.
const UnknownSpec = "specification: unknown specification (%s)"

// Lookup a specification by ID. The ID is not case sensitive. The empty
// string and "AUTO" both return SpecVGA60.
func Lookup(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "", "AUTO", "VGA60":
		return SpecVGA60, nil
	case "VGA72":
		return SpecVGA72, nil
	case "VGA75":
		return SpecVGA75, nil
	}
	return Spec{}, curated.Errorf(UnknownSpec, id)
}
