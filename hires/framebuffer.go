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

package hires

import (
	"fmt"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/emureg"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/logger"
)

// allocation flags for the framebuffer chunks.
const chunkFlags = memory.NonMovable | memory.AllowLarge

// Framebuffer is an indirect double density bitmap and its pixel data.
type Framebuffer struct {
	// address of the bitmap descriptor
	Bitmap uint32

	// address of the pixel data
	Data uint32

	Width  uint16
	Height uint16
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("%dx%d bitmap=%#08x data=%#08x", fb.Width, fb.Height, fb.Bitmap, fb.Data)
}

// newFramebuffer allocates the bitmap descriptor and the pixel data. The
// pixel data is filled with 0xff, which is white in the 565 pixel format.
//
// Either both allocations succeed or neither does.
func newFramebuffer(mem Memory, width uint16, height uint16) (*Framebuffer, error) {
	// the row stride of a wider bitmap can't be stored in the header
	if width > bitmap.MaxWidth {
		return nil, curated.Errorf(AllocationFailure, curated.Errorf(bitmap.TooWide, width))
	}

	fb := &Framebuffer{
		Width:  width,
		Height: height,
	}

	hdr := bitmap.NewDirect565(width, height, bitmap.DensityDouble)
	hdr.Flags |= bitmap.Indirect | bitmap.ForScreen

	var err error

	fb.Bitmap, err = mem.ChunkNew(bitmap.IndirectSize, chunkFlags)
	if err != nil {
		return nil, curated.Errorf(AllocationFailure, err)
	}

	fb.Data, err = mem.ChunkNew(hdr.DataSize(), chunkFlags)
	if err != nil {
		_ = mem.ChunkFree(fb.Bitmap)
		return nil, curated.Errorf(AllocationFailure, err)
	}

	err = fb.initialise(mem, hdr)
	if err != nil {
		_ = mem.ChunkFree(fb.Data)
		_ = mem.ChunkFree(fb.Bitmap)
		return nil, curated.Errorf(AllocationFailure, err)
	}

	return fb, nil
}

func (fb *Framebuffer) initialise(mem Memory, hdr bitmap.Header) error {
	if err := mem.Set(fb.Bitmap, bitmap.IndirectSize, 0x00); err != nil {
		return err
	}
	if err := bitmap.Write(mem, fb.Bitmap, hdr); err != nil {
		return err
	}
	if err := bitmap.SetDataAddress(mem, fb.Bitmap, fb.Data); err != nil {
		return err
	}
	return mem.Set(fb.Data, hdr.DataSize(), 0xff)
}

// FramebufferManager replaces the framebuffer of the display window.
type FramebufferManager struct {
	platform  Platform
	installer *Installer

	// the framebuffer created by the most recent call to SetFramebuffer().
	// nil if SetFramebuffer() has never succeeded
	current *Framebuffer

	// number of framebuffers created
	Swaps int
}

// NewFramebufferManager is the preferred method of initialisation for the
// FramebufferManager type.
func NewFramebufferManager(platform Platform, installer *Installer) *FramebufferManager {
	return &FramebufferManager{
		platform:  platform,
		installer: installer,
	}
}

// Current returns the framebuffer created by the most recent call to
// SetFramebuffer(). Returns nil if the display is still using the stock
// framebuffer.
func (fm *FramebufferManager) Current() *Framebuffer {
	return fm.current
}

// SetFramebuffer creates a framebuffer of the requested size, makes it the
// display window's bitmap and deletes the previous bitmap. The emulator is
// told about the new framebuffer last.
func (fm *FramebufferManager) SetFramebuffer(width uint16, height uint16) error {
	if !fm.installer.Installed() {
		logger.Log(logger.Allow, "hires", "driver not loaded, cannot set framebuffer")
		return curated.Errorf(DriverNotLoaded)
	}

	mem := fm.platform.Memory

	fb, err := newFramebuffer(mem, width, height)
	if err != nil {
		logger.Logf(logger.Allow, "hires", "cannot create %dx%d framebuffer", width, height)
		return err
	}

	// the previous bitmap must not be flagged as being for the screen or
	// BmpDelete() will refuse to delete it
	err = fm.retire(fm.platform.Display.DisplayBitmap())
	if err != nil {
		_ = mem.ChunkFree(fb.Data)
		_ = mem.ChunkFree(fb.Bitmap)
		logger.Logf(logger.Allow, "hires", "cannot retire framebuffer at %#08x", fm.platform.Display.DisplayBitmap())
		return curated.Errorf(RetireFailure, err)
	}

	fm.platform.Display.SetDisplayBitmap(fb.Bitmap)
	fm.current = fb
	fm.Swaps++

	err = emureg.Publish(fm.platform.Registers, fb.Data, width, height)
	if err != nil {
		logger.Logf(logger.Allow, "hires", "cannot tell emulator about framebuffer %v", fb)
		return curated.Errorf(PublishFailure, err)
	}

	return nil
}

func (fm *FramebufferManager) retire(addr uint32) error {
	mem := fm.platform.Memory

	hdr, err := bitmap.Read(mem, addr)
	if err != nil {
		return err
	}

	err = bitmap.SetFlags(mem, addr, hdr.Flags&^bitmap.ForScreen)
	if err != nil {
		return err
	}

	err = fm.platform.Display.BmpDelete(addr)
	if err != nil {
		// put the flag back. the bitmap is still the display bitmap
		_ = bitmap.SetFlags(mem, addr, hdr.Flags)
		return err
	}

	return nil
}
