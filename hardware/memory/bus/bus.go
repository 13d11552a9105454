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

// Package bus defines the signals carried between the blur engine, the
// memory arbiter and the framebuffers.
//
// A Request is presented to memory once per tick. The data for a read is
// available on the following tick. A write takes effect at the end of the
// tick in which it is presented.
package bus

import (
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// Request is the address/data/write-enable bundle presented to memory.
type Request struct {
	Address     int
	WriteEnable bool
	Data        pixel.Pixel
}

func (req Request) String() string {
	if req.WriteEnable {
		return fmt.Sprintf("W %05d %s", req.Address, req.Data)
	}
	return fmt.Sprintf("R %05d", req.Address)
}

// Client identifies who is in control of a shared bus.
type Client int

// List of valid clients.
const (
	Display Client = iota
	Engine
	NumClients
)

func (c Client) String() string {
	switch c {
	case Display:
		return "display"
	case Engine:
		return "engine"
	}
	return "unknown"
}
