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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/cpu"
	"github.com/palmhires/palmhires/test"
)

func TestJump(t *testing.T) {
	mc := cpu.NewCPU()

	var ran int
	test.DemandSuccess(t, mc.Map(0x1000, func() error {
		ran++
		return nil
	}))
	test.ExpectSuccess(t, mc.IsMapped(0x1000))

	test.ExpectSuccess(t, mc.Jump(0x1000))
	test.ExpectEquality(t, ran, 1)
	test.ExpectEquality(t, mc.LastJump, uint32(0x1000))
	test.ExpectEquality(t, mc.Jumps, 1)

	// mapping twice is not allowed
	err := mc.Map(0x1000, func() error { return nil })
	test.ExpectSuccess(t, curated.Is(err, cpu.RoutineMapped))

	test.ExpectSuccess(t, mc.Unmap(0x1000))
	test.ExpectFailure(t, mc.IsMapped(0x1000))

	err = mc.Jump(0x1000)
	test.ExpectSuccess(t, curated.Is(err, cpu.NoRoutine))
	test.ExpectEquality(t, ran, 1)

	err = mc.Unmap(0x1000)
	test.ExpectSuccess(t, curated.Is(err, cpu.RoutineNotFound))
}

func TestRoutineFailure(t *testing.T) {
	mc := cpu.NewCPU()

	failure := errors.New("bus error")
	test.DemandSuccess(t, mc.Map(0x2000, func() error {
		return failure
	}))

	err := mc.Jump(0x2000)
	test.ExpectSuccess(t, curated.Is(err, cpu.RoutineFailure))
	test.ExpectSuccess(t, errors.Is(err, failure))
}
