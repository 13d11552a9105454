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

// Package hardware is the base package for the blur system. The System type
// composes the components that are advanced together by the single global
// tick:
//
//	television    timing generator and the consumer of display pixels
//	input         debounced and edge detected start button
//	blur          the convolution engine
//	arbiter       the owner of the shared memory port
//	swapper       the double buffered framebuffer
//
// Every call to Step() is one tick. The order of operation in a tick is
// fixed and is described by the Step() function. All components see the
// state at the start of the tick and the results of the tick become visible
// on the next one.
//
// The Run(), RunForFrameCount() and RunUntilDone() functions call Step() in a
// loop until a condition is met.
package hardware
