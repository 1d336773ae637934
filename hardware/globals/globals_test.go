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

package globals_test

import (
	"testing"

	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/test"
)

func TestStore(t *testing.T) {
	s := globals.NewStore()

	// unset keys are zero
	test.ExpectEquality(t, s.Get(globals.CurrentResolution), uint32(0))
	test.ExpectFailure(t, s.GetBool(globals.DriversInstalled))

	s.Set(globals.CurrentResolution, 160<<16|220)
	test.ExpectEquality(t, s.Get(globals.CurrentResolution), uint32(0x00a000dc))

	s.SetBool(globals.DriversInstalled, true)
	test.ExpectSuccess(t, s.GetBool(globals.DriversInstalled))
	test.ExpectEquality(t, s.Get(globals.DriversInstalled), uint32(1))

	// keys are independent
	test.ExpectEquality(t, s.Get(globals.OriginalFramebuffer), uint32(0))

	test.ExpectEquality(t, globals.OriginalFramebuffer.String(), "OriginalFramebuffer")
}
