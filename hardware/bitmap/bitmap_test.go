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

package bitmap_test

import (
	"image/color"
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/test"
)

func TestNewDirect565(t *testing.T) {
	h := bitmap.NewDirect565(320, 480, bitmap.DensityDouble)
	test.ExpectEquality(t, h.RowBytes, uint16(640))
	test.ExpectEquality(t, h.DataSize(), uint32(320*480*2))
	test.ExpectEquality(t, h.PixelFormat, uint8(bitmap.PixelFormat565))
	test.ExpectEquality(t, h.CompressionType, uint8(bitmap.CompressionNone))
	test.ExpectEquality(t, h.Size, uint8(bitmap.HeaderSize))
	test.ExpectEquality(t, h.Flags, bitmap.DirectColor)
}

func TestWideDataSize(t *testing.T) {
	h := bitmap.NewDirect565(bitmap.MaxWidth, 2, bitmap.DensityDouble)
	test.ExpectEquality(t, h.RowBytes, uint16(bitmap.MaxWidth*2))
	test.ExpectEquality(t, h.DataSize(), uint32(bitmap.MaxWidth*2*2))

	// data size doesn't depend on the row stride field
	h = bitmap.NewDirect565(40000, 1, bitmap.DensityDouble)
	test.ExpectEquality(t, h.DataSize(), uint32(80000))
}

func TestEncoding(t *testing.T) {
	h := bitmap.NewDirect565(320, 480, bitmap.DensityDouble)
	h.Flags |= bitmap.Indirect | bitmap.ForScreen

	b := h.Encode()
	test.DemandEquality(t, len(b), bitmap.HeaderSize)

	// width and height are big-endian
	test.ExpectEquality(t, b[0], uint8(0x01))
	test.ExpectEquality(t, b[1], uint8(0x40))
	test.ExpectEquality(t, b[2], uint8(0x01))
	test.ExpectEquality(t, b[3], uint8(0xe0))

	// flags: indirect, forscreen and directcolor
	test.ExpectEquality(t, b[6], uint8(0x1c))
	test.ExpectEquality(t, b[7], uint8(0x00))

	d, err := bitmap.Decode(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, h)
	test.ExpectEquality(t, d.Flags.String(), "indirect|forscreen|directcolor")

	_, err = bitmap.Decode(b[:10])
	test.ExpectSuccess(t, curated.Is(err, bitmap.ShortHeader))

	b[9] = 2
	_, err = bitmap.Decode(b)
	test.ExpectSuccess(t, curated.Is(err, bitmap.BadVersion))
}

func TestIndirectInMemory(t *testing.T) {
	heap := memory.NewHeap(0x10000, 0x10000)

	addr, err := heap.ChunkNew(bitmap.IndirectSize, memory.NonMovable)
	test.DemandSuccess(t, err)
	data, err := heap.ChunkNew(16*16*2, memory.NonMovable)
	test.DemandSuccess(t, err)

	h := bitmap.NewDirect565(16, 16, bitmap.DensityDouble)
	h.Flags |= bitmap.Indirect
	test.DemandSuccess(t, bitmap.Write(heap, addr, h))
	test.DemandSuccess(t, bitmap.SetDataAddress(heap, addr, data))

	r, err := bitmap.Read(heap, addr)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, h)

	p, err := bitmap.DataAddress(heap, addr, r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, data)

	test.DemandSuccess(t, bitmap.SetFlags(heap, addr, r.Flags|bitmap.ForScreen))
	r, err = bitmap.Read(heap, addr)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Flags&bitmap.ForScreen, bitmap.ForScreen)

	// non-indirect bitmaps have their data following the header
	h.Flags = bitmap.DirectColor
	p, err = bitmap.DataAddress(heap, addr, h)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, addr+bitmap.HeaderSize)
}

func TestImage565(t *testing.T) {
	h := bitmap.NewDirect565(2, 2, bitmap.DensityLow)
	pix := make([]byte, h.DataSize())
	for i := range pix {
		pix[i] = 0xff
	}

	img := bitmap.NewImage565(pix, h)
	test.ExpectEquality(t, img.At(0, 0).(color.RGBA), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, pix[6], uint8(0xf8))
	test.ExpectEquality(t, pix[7], uint8(0x00))
	test.ExpectEquality(t, img.At(1, 1).(color.RGBA), color.RGBA{R: 0xff, A: 0xff})

	// out of bounds
	test.ExpectEquality(t, img.At(2, 0).(color.RGBA), color.RGBA{})
}
