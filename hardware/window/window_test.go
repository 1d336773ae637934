// This file is part of palmhires.
//
// palmhires is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// palmhires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with palmhires.  If not, see <https://www.gnu.org/licenses/>.

package window_test

import (
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/hardware/window"
	"github.com/palmhires/palmhires/test"
)

func TestStockFramebuffer(t *testing.T) {
	heap := memory.NewHeap(0x10000, 0x100000)

	d, err := window.NewDisplay(heap, 160, 220)
	test.DemandSuccess(t, err)

	h, err := bitmap.Read(heap, d.DisplayBitmap())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Width, uint16(160))
	test.ExpectEquality(t, h.Height, uint16(220))
	test.ExpectEquality(t, h.Density, uint16(bitmap.DensityLow))
	test.ExpectEquality(t, h.Flags, bitmap.DirectColor|bitmap.ForScreen)

	sz, ok := heap.ChunkSize(d.DisplayBitmap())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sz, uint32(bitmap.HeaderSize+160*220*2))
}

func TestBmpDelete(t *testing.T) {
	heap := memory.NewHeap(0x10000, 0x100000)

	d, err := window.NewDisplay(heap, 160, 220)
	test.DemandSuccess(t, err)
	stock := d.DisplayBitmap()

	// the stock bitmap is for the screen and cannot be deleted
	err = d.BmpDelete(stock)
	test.ExpectSuccess(t, curated.Is(err, window.ScreenBitmap))
	test.ExpectSuccess(t, heap.Owns(stock))

	h, err := bitmap.Read(heap, stock)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, bitmap.SetFlags(heap, stock, h.Flags&^bitmap.ForScreen))
	test.ExpectSuccess(t, d.BmpDelete(stock))
	test.ExpectFailure(t, heap.Owns(stock))

	// indirect bitmaps take their pixel data with them
	addr, err := heap.ChunkNew(bitmap.IndirectSize, memory.NonMovable)
	test.DemandSuccess(t, err)
	data, err := heap.ChunkNew(32, memory.NonMovable)
	test.DemandSuccess(t, err)

	h = bitmap.NewDirect565(4, 4, bitmap.DensityDouble)
	h.Flags |= bitmap.Indirect
	test.DemandSuccess(t, bitmap.Write(heap, addr, h))
	test.DemandSuccess(t, bitmap.SetDataAddress(heap, addr, data))

	d.SetDisplayBitmap(addr)
	test.ExpectEquality(t, d.DisplayWindow().Bitmap, addr)

	test.ExpectSuccess(t, d.BmpDelete(addr))
	test.ExpectFailure(t, heap.Owns(addr))
	test.ExpectFailure(t, heap.Owns(data))
	test.ExpectEquality(t, heap.Chunks(), 0)
}
