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

// Package traps emulates the system trap dispatch table. Each entry in the
// table is a Handler that can be replaced with SetTrapAddress(). Replacing a
// handler returns the previous handler so that it can be restored.
package traps

import (
	"fmt"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/logger"
)

// Trap identifies an entry in the dispatch table.
type Trap uint16

// List of traps known to the emulation.
const (
	HwrDisplayAttributes Trap = 0xa34b
)

func (t Trap) String() string {
	switch t {
	case HwrDisplayAttributes:
		return "HwrDisplayAttributes"
	}
	return fmt.Sprintf("trap %#04x", uint16(t))
}

// Handler is the implementation of a trap. The arguments and return value
// are specific to each trap.
type Handler func(args ...uint32) (uint32, error)

// Sentinal error patterns.
const (
	UnimplementedTrap = "traps: unimplemented trap (%v)"
)

// Table is the trap dispatch table.
type Table struct {
	handlers map[Trap]Handler
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		handlers: make(map[Trap]Handler),
	}
}

// SetTrapAddress redirects the trap to a new handler and returns the previous
// handler. The previous handler will be nil if the trap was not implemented.
func (tbl *Table) SetTrapAddress(trap Trap, h Handler) Handler {
	prev := tbl.handlers[trap]
	tbl.handlers[trap] = h
	logger.Logf(logger.Allow, "traps", "%v patched", trap)
	return prev
}

// GetTrapAddress returns the current handler for the trap.
func (tbl *Table) GetTrapAddress(trap Trap) (Handler, bool) {
	h, ok := tbl.handlers[trap]
	return h, ok && h != nil
}

// Dispatch calls the handler for the trap.
func (tbl *Table) Dispatch(trap Trap, args ...uint32) (uint32, error) {
	h, ok := tbl.GetTrapAddress(trap)
	if !ok {
		return 0, curated.Errorf(UnimplementedTrap, trap)
	}
	return h(args...)
}
