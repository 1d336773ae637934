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

package hardware

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/cpu"
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/hardware/emureg"
	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/hardware/preferences"
	"github.com/palmhires/palmhires/hardware/traps"
	"github.com/palmhires/palmhires/hardware/window"
	"github.com/palmhires/palmhires/logger"
)

// HeapOrigin is the address of the first byte of the dynamic heap.
const HeapOrigin = 0x00010000

// Resolution of the stock display.
const (
	DefaultWidth  = 160
	DefaultHeight = 220
)

// Palm is the emulated device.
type Palm struct {
	Prefs *preferences.Preferences

	Mem     *memory.Map
	Heap    *memory.Heap
	CPU     *cpu.CPU
	Traps   *traps.Table
	DB      *database.Manager
	Display *window.Display
	Globals *globals.Store

	// the emulator side of the feature registers
	Emu *emureg.Device

	// state of the vendor display extension
	Extension Extension
}

// NewPalm creates a new Palm and everything associated with the hardware. A
// nil Preferences argument will create the device with the default
// preferences.
func NewPalm(prefs *preferences.Preferences) (*Palm, error) {
	var err error

	if prefs == nil {
		prefs = preferences.DefaultPreferences()
	}

	palm := &Palm{
		Prefs:   prefs,
		Mem:     memory.NewMap(),
		CPU:     cpu.NewCPU(),
		Traps:   traps.NewTable(),
		Globals: globals.NewStore(),
		Emu:     emureg.NewDevice(),
	}

	palm.Heap = memory.NewHeap(HeapOrigin, uint32(prefs.HeapSize.Get().(int)))
	err = palm.Mem.Add("heap", palm.Heap.Origin(), palm.Heap.Memtop(), palm.Heap)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}

	err = palm.Mem.Add("emureg", emureg.Origin, emureg.Memtop, palm.Emu)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}

	palm.DB = database.NewManager(palm.Heap, palm.CPU)
	palm.Traps.SetTrapAddress(traps.HwrDisplayAttributes, traps.StockDisplayAttributes)

	palm.Display, err = window.NewDisplay(palm.Heap, DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}

	// the emulator starts by displaying the stock framebuffer
	addr := palm.Display.DisplayBitmap()
	hdr, err := bitmap.Read(palm.Heap, addr)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}
	data, err := bitmap.DataAddress(palm.Heap, addr, hdr)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}
	err = emureg.Publish(palm.Mem, data, hdr.Width, hdr.Height)
	if err != nil {
		return nil, curated.Errorf("palm: %v", err)
	}
	palm.Emu.ClearHistory()

	logger.Logf(logger.Allow, "palm", "created with %d byte heap", palm.Heap.Memtop()-palm.Heap.Origin()+1)

	return palm, nil
}
