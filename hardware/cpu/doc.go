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

// Package cpu is a minimal executor for native code resources. The emulation
// does not interpret 68k instructions. Instead, executable regions of memory
// are mapped to a Routine and a jump to the start of the region runs the
// Routine.
//
// A routine must be mapped before it can be jumped to:
//
//	mc := cpu.NewCPU()
//	mc.Map(0x00010000, func() error {
//		return nil
//	})
//	err := mc.Jump(0x00010000)
//
// Jumping to an address with no mapped routine is an error.
package cpu
