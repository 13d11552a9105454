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

// Package blur implements the fixed function convolution engine. The engine
// applies a 3x3 weighted blur to every interior pixel of the framebuffer, in
// place, one pixel at a time.
//
// The engine is a state machine advanced once per tick by the Step()
// function. A run is started by a single tick start pulse and proceeds
// without interruption until every interior pixel has been rewritten:
//
//	Idle -> ReadPixels -> Process -> Write -> ReadPixels ... -> Write -> Idle
//
// Loading the 3x3 neighbourhood takes ten ticks because of the one tick read
// latency of memory. Each pixel therefore takes twelve ticks: ten to load the
// window, one to convolve and one to write the result.
//
// The parts of the engine are in separate types. The Window loads the
// neighbourhood, Convolve() computes the output pixel and the Sequencer
// decides which pixel is next.
package blur
