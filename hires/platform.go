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
	"github.com/palmhires/palmhires/hardware"
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/hardware/emureg"
	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/hardware/traps"
	"github.com/palmhires/palmhires/hardware/window"
)

// Resources is the resource database manager of the device.
type Resources interface {
	FindDatabase(name string) (database.LocalID, bool)
	OpenDatabase(id database.LocalID, mode database.OpenMode) (database.OpenRef, error)
	GetResource(ref database.OpenRef, typ database.ResType, id uint16) (*database.Handle, error)
	HandleLock(h *database.Handle) (uint32, error)
	HandleUnlock(h *database.Handle) error
	CloseDatabase(ref database.OpenRef) error
}

// Traps is the trap dispatch table of the device.
type Traps interface {
	SetTrapAddress(trap traps.Trap, h traps.Handler) traps.Handler
}

// Executor runs code.
type Executor interface {
	Jump(addr uint32) error
}

// Display is the display window of the device.
type Display interface {
	DisplayBitmap() uint32
	SetDisplayBitmap(addr uint32)
	BmpDelete(addr uint32) error
}

// Memory is the dynamic heap of the device.
type Memory interface {
	window.Memory
}

// Platform is everything on the device that the driver uses.
type Platform struct {
	Resources Resources
	Traps     Traps
	CPU       Executor
	Display   Display
	Memory    Memory
	Registers emureg.Bus
	Globals   *globals.Store
}

// NewPlatform returns the Platform for an emulated Palm.
func NewPlatform(palm *hardware.Palm) Platform {
	return Platform{
		Resources: palm.DB,
		Traps:     palm.Traps,
		CPU:       palm.CPU,
		Display:   palm.Display,
		Memory:    palm.Heap,
		Registers: palm.Mem,
		Globals:   palm.Globals,
	}
}
