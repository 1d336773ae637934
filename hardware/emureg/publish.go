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

package emureg

// Bus is the register access used by Publish.
type Bus interface {
	Write32(addr uint32, data uint32) error
}

// Publish tells the emulator to adopt the framebuffer. The address and
// geometry are written before the command. The command must be the last of
// the three writes because the emulator only reads the operand registers
// when it sees the command.
func Publish(bus Bus, addr uint32, width uint16, height uint16) error {
	if err := bus.Write32(SRC, addr); err != nil {
		return err
	}
	if err := bus.Write32(VALUE, uint32(width)<<16|uint32(height)); err != nil {
		return err
	}
	return bus.Write32(CMD, uint32(CmdLCDSetFB))
}
