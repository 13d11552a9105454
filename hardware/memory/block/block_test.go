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

package block_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/memory/block"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/test"
)

func TestReadLatency(t *testing.T) {
	blk := block.NewBlock("test")
	test.DemandSuccess(t, blk.Poke(10, pixel.Grey(10)))
	test.DemandSuccess(t, blk.Poke(11, pixel.Grey(11)))

	// data for the address is not available until after Access()
	test.ExpectEquality(t, blk.Data(), pixel.Black)
	blk.Access(bus.Request{Address: 10})
	test.ExpectEquality(t, blk.Data(), pixel.Grey(10))
	blk.Access(bus.Request{Address: 11})
	test.ExpectEquality(t, blk.Data(), pixel.Grey(11))
}

func TestReadFirst(t *testing.T) {
	blk := block.NewBlock("test")
	test.DemandSuccess(t, blk.Poke(5, pixel.Grey(1)))

	blk.Access(bus.Request{Address: 5, WriteEnable: true, Data: pixel.Grey(2)})
	test.ExpectEquality(t, blk.Data(), pixel.Grey(1))
	test.ExpectEquality(t, blk.Writes(), 1)

	blk.Access(bus.Request{Address: 5})
	test.ExpectEquality(t, blk.Data(), pixel.Grey(2))

	v, err := blk.Peek(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, pixel.Grey(2))
}

func TestPeekPokeRange(t *testing.T) {
	blk := block.NewBlock("test")
	_, err := blk.Peek(addressmap.Size)
	test.ExpectSuccess(t, curated.Has(err, addressmap.AddressOutOfRange))
	test.ExpectFailure(t, blk.Poke(-1, pixel.White))

	// values are masked to 24 bits
	test.ExpectSuccess(t, blk.Poke(0, pixel.Pixel(0xff123456)))
	v, _ := blk.Peek(0)
	test.ExpectEquality(t, v, pixel.Pixel(0x123456))
}

func TestFillAndCopy(t *testing.T) {
	a := block.NewBlock("a")
	b := block.NewBlock("b")
	a.Fill(pixel.White)
	b.CopyFrom(a)
	test.ExpectEquality(t, a.Label(), "a")
	test.ExpectEquality(t, b.Label(), "b")
	s := b.Snapshot()
	test.ExpectEquality(t, len(s), addressmap.Size)
	for i := range s {
		test.DemandEquality(t, s[i], pixel.White)
	}
}
