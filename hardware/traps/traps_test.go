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

package traps_test

import (
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/traps"
	"github.com/palmhires/palmhires/test"
)

func TestDispatch(t *testing.T) {
	tbl := traps.NewTable()

	_, err := tbl.Dispatch(traps.HwrDisplayAttributes, 0, uint32(traps.DisplayWidth))
	test.ExpectSuccess(t, curated.Is(err, traps.UnimplementedTrap))

	prev := tbl.SetTrapAddress(traps.HwrDisplayAttributes, traps.StockDisplayAttributes)
	test.ExpectSuccess(t, prev == nil)

	_, err = tbl.DisplayAttributes(traps.DisplayWidth)
	test.ExpectSuccess(t, curated.Is(err, traps.UnsupportedAttribute))

	patch := func(args ...uint32) (uint32, error) {
		if traps.DisplayAttr(args[1]) == traps.DisplayWidth {
			return 320, nil
		}
		return 0, curated.Errorf(traps.UnsupportedAttribute, traps.DisplayAttr(args[1]))
	}

	prev = tbl.SetTrapAddress(traps.HwrDisplayAttributes, patch)
	test.ExpectSuccess(t, prev != nil)

	v, err := tbl.DisplayAttributes(traps.DisplayWidth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(320))

	// the previous handler can be restored
	tbl.SetTrapAddress(traps.HwrDisplayAttributes, prev)
	_, err = tbl.DisplayAttributes(traps.DisplayWidth)
	test.ExpectSuccess(t, curated.Is(err, traps.UnsupportedAttribute))
}

func TestTrapNames(t *testing.T) {
	test.ExpectEquality(t, traps.HwrDisplayAttributes.String(), "HwrDisplayAttributes")
	test.ExpectEquality(t, traps.Trap(0xa000).String(), "trap 0xa000")
	test.ExpectEquality(t, traps.DisplayDensity.String(), "density")
}
