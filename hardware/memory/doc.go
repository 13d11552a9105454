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

// Package memory contains the sub-packages that make up the memory of the
// system.
//
//	 ENGINE ---- bus.Request ---+
//	                            |
//	                         ARBITER ---- shared port ---- BACK BUFFER
//	                            |
//	DISPLAY ---- beam address --+-------- video port ----- FRONT BUFFER
//
// The two framebuffers are held by the swapper, which decides which of the
// two buffers is the front buffer. The buffers are swapped at the end of a
// frame if a write has been made to the back buffer during the frame.
//
// Addresses are shared by every buffer and are described by the addressmap
// package. Each buffer is a block.Block, which has a registered read port.
// The value read on one tick is available on the next tick.
//
// The bus package describes the requests made of the arbiter by its clients.
package memory
