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

package traps

import (
	"fmt"

	"github.com/palmhires/palmhires/curated"
)

// DisplayAttr is the attribute argument to the HwrDisplayAttributes trap.
type DisplayAttr uint32

// List of valid DisplayAttr values.
const (
	DisplayWidth DisplayAttr = iota
	DisplayHeight
	DisplayDepth
	DisplayDensity
)

func (a DisplayAttr) String() string {
	switch a {
	case DisplayWidth:
		return "width"
	case DisplayHeight:
		return "height"
	case DisplayDepth:
		return "depth"
	case DisplayDensity:
		return "density"
	}
	return fmt.Sprintf("attribute %d", uint32(a))
}

// Sentinal error patterns.
const (
	UnsupportedAttribute = "traps: display attribute not supported (%v)"
	ReadOnlyAttribute    = "traps: display attribute is read only (%v)"
)

// DisplayAttributes is a convenience function that dispatches the
// HwrDisplayAttributes trap for reading the attribute.
func (tbl *Table) DisplayAttributes(attr DisplayAttr) (uint32, error) {
	return tbl.Dispatch(HwrDisplayAttributes, 0, uint32(attr))
}

// StockDisplayAttributes is the HwrDisplayAttributes handler of the stock
// device. It knows nothing of the attributes asked for by high density
// display drivers.
func StockDisplayAttributes(args ...uint32) (uint32, error) {
	if len(args) < 2 {
		return 0, curated.Errorf(UnsupportedAttribute, "missing arguments")
	}
	return 0, curated.Errorf(UnsupportedAttribute, DisplayAttr(args[1]))
}
