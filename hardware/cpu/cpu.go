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

package cpu

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/logger"
)

// Routine is the native implementation of an executable region of memory.
type Routine func() error

// Sentinal error patterns.
const (
	NoRoutine       = "cpu: no routine at address (%#08x)"
	RoutineMapped   = "cpu: routine already mapped at address (%#08x)"
	RoutineFailure  = "cpu: routine failed at address (%#08x): %v"
	RoutineNotFound = "cpu: nothing mapped at address (%#08x)"
)

// CPU executes routines.
type CPU struct {
	routines map[uint32]Routine

	// the address of the most recent jump and the number of jumps in total
	LastJump uint32
	Jumps    int
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{
		routines: make(map[uint32]Routine),
	}
}

// Map a routine to an address.
func (mc *CPU) Map(addr uint32, r Routine) error {
	if _, ok := mc.routines[addr]; ok {
		return curated.Errorf(RoutineMapped, addr)
	}
	mc.routines[addr] = r
	return nil
}

// Unmap the routine at the address.
func (mc *CPU) Unmap(addr uint32) error {
	if _, ok := mc.routines[addr]; !ok {
		return curated.Errorf(RoutineNotFound, addr)
	}
	delete(mc.routines, addr)
	return nil
}

// IsMapped returns true if a routine is mapped to the address.
func (mc *CPU) IsMapped(addr uint32) bool {
	_, ok := mc.routines[addr]
	return ok
}

// Jump to the address and run the routine mapped there.
func (mc *CPU) Jump(addr uint32) error {
	r, ok := mc.routines[addr]
	if !ok {
		logger.Logf(logger.Allow, "cpu", "jump to unmapped address %#08x", addr)
		return curated.Errorf(NoRoutine, addr)
	}

	mc.LastJump = addr
	mc.Jumps++

	if err := r(); err != nil {
		return curated.Errorf(RoutineFailure, addr, err)
	}

	return nil
}
