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

// Package emureg emulates the feature registers through which software on
// the device communicates with the emulator.
//
// Operands are written to the SRC, DST, SIZE and VALUE registers. Nothing
// happens until the CMD register is written, at which point the command acts
// on the operands latched at that moment. Operands must therefore always be
// written before the command.
package emureg

import (
	"fmt"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/logger"
)

// Address of the first feature register and the address of each register.
// DST and SIZE complete the register map. No command understood by the
// device reads them but writes are latched and recorded like any other.
const (
	Origin = 0xfffc0000

	SRC   = Origin + 0x00
	DST   = Origin + 0x04
	SIZE  = Origin + 0x08
	VALUE = Origin + 0x0c
	CMD   = Origin + 0x10

	Memtop = CMD + 3
)

// Command is a value written to the CMD register.
type Command uint32

// List of commands understood by the emulator.
const (
	CmdLCDSetFB Command = 0x0004
)

func (c Command) String() string {
	switch c {
	case CmdLCDSetFB:
		return "LCD_SET_FB"
	}
	return fmt.Sprintf("command %#04x", uint32(c))
}

// Sentinal error patterns.
const (
	UnknownRegister = "emureg: no register at address (%#08x)"
	UnknownCommand  = "emureg: unknown command (%v)"
	BadGeometry     = "emureg: framebuffer has zero width or height (%dx%d)"
)

// Framebuffer is the framebuffer the emulator is displaying.
type Framebuffer struct {
	Addr   uint32
	Width  uint16
	Height uint16
}

func (fb Framebuffer) String() string {
	return fmt.Sprintf("%#08x %dx%d", fb.Addr, fb.Width, fb.Height)
}

// Access is a record of a single write to a register.
type Access struct {
	Addr uint32
	Data uint32
}

// Device is the feature register device. It implements the memory.Area
// interface.
type Device struct {
	src   uint32
	dst   uint32
	size  uint32
	value uint32

	// the adopted framebuffer. zero value if no framebuffer has been adopted
	Framebuffer Framebuffer

	// every register write in the order it happened
	Writes []Access

	// every command in the order it happened
	Commands []Command
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{}
}

// Read32 implements the memory.Area interface.
func (dev *Device) Read32(addr uint32) (uint32, error) {
	switch addr {
	case SRC:
		return dev.src, nil
	case DST:
		return dev.dst, nil
	case SIZE:
		return dev.size, nil
	case VALUE:
		return dev.value, nil
	case CMD:
		return 0, nil
	}
	return 0, curated.Errorf(UnknownRegister, addr)
}

// Write32 implements the memory.Area interface.
func (dev *Device) Write32(addr uint32, data uint32) error {
	switch addr {
	case SRC:
		dev.src = data
	case DST:
		dev.dst = data
	case SIZE:
		dev.size = data
	case VALUE:
		dev.value = data
	case CMD:
		dev.Writes = append(dev.Writes, Access{Addr: addr, Data: data})
		return dev.command(Command(data))
	default:
		return curated.Errorf(UnknownRegister, addr)
	}
	dev.Writes = append(dev.Writes, Access{Addr: addr, Data: data})
	return nil
}

func (dev *Device) command(cmd Command) error {
	dev.Commands = append(dev.Commands, cmd)

	switch cmd {
	case CmdLCDSetFB:
		fb := Framebuffer{
			Addr:   dev.src,
			Width:  uint16(dev.value >> 16),
			Height: uint16(dev.value),
		}
		if fb.Width == 0 || fb.Height == 0 {
			return curated.Errorf(BadGeometry, fb.Width, fb.Height)
		}
		dev.Framebuffer = fb
		logger.Logf(logger.Allow, "emureg", "framebuffer set to %v", fb)
		return nil
	}

	return curated.Errorf(UnknownCommand, cmd)
}

// ClearHistory forgets all recorded writes and commands.
func (dev *Device) ClearHistory() {
	dev.Writes = dev.Writes[:0]
	dev.Commands = dev.Commands[:0]
}
