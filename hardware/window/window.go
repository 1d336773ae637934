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

// Package window emulates the parts of the Palm window manager that concern
// the display window and its bitmap.
//
// The display window always has exactly one bitmap. Replacing the bitmap is
// the responsibility of the caller, as is deleting the previous bitmap with
// BmpDelete(). BmpDelete() refuses to delete a bitmap that is flagged as
// being for the screen.
package window

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/memory"
)

// Memory required by the display.
type Memory interface {
	bitmap.Memory
	ChunkNew(size uint32, flags memory.ChunkFlags) (uint32, error)
	ChunkFree(addr uint32) error
	Set(addr uint32, size uint32, value uint8) error
}

// Sentinal error patterns.
const (
	ScreenBitmap = "window: bitmap is for the screen (%#08x)"
)

// Window is a drawable window.
type Window struct {
	// address of the window's bitmap
	Bitmap uint32
}

// Display is the device's display and the window associated with it.
type Display struct {
	mem    Memory
	window *Window
}

// NewDisplay creates the display and allocates the stock framebuffer, a low
// density bitmap with the pixel data following the header.
func NewDisplay(mem Memory, width uint16, height uint16) (*Display, error) {
	h := bitmap.NewDirect565(width, height, bitmap.DensityLow)
	h.Flags |= bitmap.ForScreen

	addr, err := mem.ChunkNew(uint32(h.Size)+h.DataSize(), memory.NonMovable|memory.AllowLarge)
	if err != nil {
		return nil, curated.Errorf("window: %v", err)
	}

	err = bitmap.Write(mem, addr, h)
	if err != nil {
		return nil, curated.Errorf("window: %v", err)
	}

	err = mem.Set(addr+uint32(h.Size), h.DataSize(), 0xff)
	if err != nil {
		return nil, curated.Errorf("window: %v", err)
	}

	return &Display{
		mem:    mem,
		window: &Window{Bitmap: addr},
	}, nil
}

// DisplayWindow returns the display window.
func (d *Display) DisplayWindow() *Window {
	return d.window
}

// DisplayBitmap returns the address of the display window's bitmap.
func (d *Display) DisplayBitmap() uint32 {
	return d.window.Bitmap
}

// SetDisplayBitmap replaces the display window's bitmap. The previous
// bitmap is not deleted.
func (d *Display) SetDisplayBitmap(addr uint32) {
	d.window.Bitmap = addr
}

// BmpDelete deletes the bitmap at addr. The pixel data of an indirect bitmap
// is deleted along with the header.
func (d *Display) BmpDelete(addr uint32) error {
	h, err := bitmap.Read(d.mem, addr)
	if err != nil {
		return curated.Errorf("window: %v", err)
	}

	if h.Flags&bitmap.ForScreen == bitmap.ForScreen {
		return curated.Errorf(ScreenBitmap, addr)
	}

	if h.Flags&bitmap.Indirect == bitmap.Indirect {
		data, err := bitmap.DataAddress(d.mem, addr, h)
		if err != nil {
			return curated.Errorf("window: %v", err)
		}
		if data != 0 {
			if err := d.mem.ChunkFree(data); err != nil {
				return curated.Errorf("window: %v", err)
			}
		}
	}

	if err := d.mem.ChunkFree(addr); err != nil {
		return curated.Errorf("window: %v", err)
	}

	return nil
}
