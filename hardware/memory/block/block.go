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

// Package block implements the physical storage primitive: an addressable
// block of pixel memory with a single port and one tick of read latency.
//
// The port is registered. The address presented with Access() at tick T is
// read into an output register which is returned by Data() during tick T+1.
// On a write tick the output register receives the value held *before* the
// write (read-first behaviour).
//
// Peek() and Poke() access the memory directly without affecting the output
// register. They are intended for loading images and for inspecting results
// outside of the tick model.
package block

import (
	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/pixel"
)

// Block is a single framebuffer worth of memory.
type Block struct {
	label  string
	memory [addressmap.Size]pixel.Pixel

	// output register of the read port
	q pixel.Pixel

	// the number of writes since the block was created
	writes int
}

// NewBlock is the preferred method of initialisation for the Block type.
func NewBlock(label string) *Block {
	return &Block{label: label}
}

// Label returns the name given to the block on creation.
func (blk *Block) Label() string {
	return blk.label
}

// Access presents a request to the port. Must be called exactly once per
// tick. The address must be in range.
func (blk *Block) Access(req bus.Request) {
	blk.q = blk.memory[req.Address]
	if req.WriteEnable {
		blk.memory[req.Address] = req.Data & pixel.Mask
		blk.writes++
	}
}

// Data returns the value read by the most recent call to Access().
func (blk *Block) Data() pixel.Pixel {
	return blk.q
}

// Writes returns the number of writes made through the port.
func (blk *Block) Writes() int {
	return blk.writes
}

// Peek returns the value at the address without affecting the port.
func (blk *Block) Peek(address int) (pixel.Pixel, error) {
	if err := addressmap.CheckAddress(address); err != nil {
		return pixel.Black, curated.Errorf("block: %s: %v", blk.label, err)
	}
	return blk.memory[address], nil
}

// Poke sets the value at the address without affecting the port.
func (blk *Block) Poke(address int, value pixel.Pixel) error {
	if err := addressmap.CheckAddress(address); err != nil {
		return curated.Errorf("block: %s: %v", blk.label, err)
	}
	blk.memory[address] = value & pixel.Mask
	return nil
}

// Fill sets every address to the value without affecting the port.
func (blk *Block) Fill(value pixel.Pixel) {
	for i := range blk.memory {
		blk.memory[i] = value & pixel.Mask
	}
}

// Snapshot returns a copy of the memory.
func (blk *Block) Snapshot() []pixel.Pixel {
	s := make([]pixel.Pixel, len(blk.memory))
	copy(s, blk.memory[:])
	return s
}

// CopyFrom copies the memory (but not the port state) of another block.
func (blk *Block) CopyFrom(src *Block) {
	blk.memory = src.memory
}
