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

// Package signal exposes the interface between the pixel pipeline and the
// television implementation.
package signal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// Beam is the position of the display scan for a single tick, along with the
// timing signals that accompany that position.
type Beam struct {
	Frame    int
	Scanline int
	Clock    int

	// the beam is inside the 640x480 visible area
	Active bool

	HSync bool
	VSync bool

	// this is the last tick of the frame
	FrameBoundary bool

	// framebuffer address of the pixel shown at this position. the address is
	// zero outside of the visible area
	Address int
}

func (b Beam) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d/%03d/%03d", b.Frame, b.Scanline, b.Clock))
	if b.Active {
		s.WriteString(fmt.Sprintf(" @%05d", b.Address))
	}
	if b.HSync {
		s.WriteString(" HSYNC")
	}
	if b.VSync {
		s.WriteString(" VSYNC")
	}
	if b.FrameBoundary {
		s.WriteString(" FRAME")
	}
	return s.String()
}

// SignalAttributes represents the data sent to the television for a single
// tick.
type SignalAttributes struct {
	// the position that the pixel is to be shown at
	Beam Beam

	// the colour to show. outside of the visible area this is the blanking
	// value
	Pixel pixel.Pixel
}

func (a SignalAttributes) String() string {
	return fmt.Sprintf("%s %s", a.Beam, a.Pixel)
}
