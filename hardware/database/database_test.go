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

package database_test

import (
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/cpu"
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/test"
)

func TestResType(t *testing.T) {
	test.ExpectEquality(t, database.NewResType("exte"), database.ResType(0x65787465))
	test.ExpectEquality(t, database.NewResType("exte").String(), "exte")
	test.ExpectEquality(t, database.NewResType("ab").String(), "ab  ")
	test.ExpectEquality(t, database.NewResType("nfntx").String(), "nfnt")
}

func newManager() (*database.Manager, *memory.Heap, *cpu.CPU) {
	heap := memory.NewHeap(0x1000, 0x10000)
	mc := cpu.NewCPU()
	return database.NewManager(heap, mc), heap, mc
}

func TestFindAndOpen(t *testing.T) {
	mgr, _, _ := newManager()

	_, ok := mgr.FindDatabase("HighDensityFonts")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, mgr.Lookups, 1)

	id, err := mgr.Install(database.Database{Name: "HighDensityFonts"})
	test.DemandSuccess(t, err)

	_, err = mgr.Install(database.Database{Name: "HighDensityFonts"})
	test.ExpectSuccess(t, curated.Is(err, database.AlreadyInstalled))

	found, ok := mgr.FindDatabase("HighDensityFonts")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, found, id)

	ref, err := mgr.OpenDatabase(id, database.ReadOnly)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mgr.IsOpen(ref))
	test.ExpectEquality(t, mgr.OpenCount(), 1)
	test.ExpectEquality(t, mgr.Opens, 1)

	test.ExpectSuccess(t, mgr.CloseDatabase(ref))
	test.ExpectEquality(t, mgr.OpenCount(), 0)
	test.ExpectEquality(t, mgr.Closes, 1)

	err = mgr.CloseDatabase(ref)
	test.ExpectSuccess(t, curated.Is(err, database.NotOpen))

	_, err = mgr.OpenDatabase(99, database.ReadOnly)
	test.ExpectSuccess(t, curated.Is(err, database.NoSuchDatabase))

	test.ExpectEquality(t, len(mgr.Installed()), 1)
}

func TestBusy(t *testing.T) {
	mgr, _, _ := newManager()

	id, err := mgr.Install(database.Database{Name: "HighDensityDisplay", Busy: true})
	test.DemandSuccess(t, err)

	_, err = mgr.OpenDatabase(id, database.ReadOnly)
	test.ExpectSuccess(t, curated.Is(err, database.DatabaseBusy))
	test.ExpectEquality(t, mgr.Opens, 0)
}

func TestLockCode(t *testing.T) {
	mgr, heap, mc := newManager()

	var ran bool
	id, err := mgr.Install(database.Database{
		Name: "HighDensityDisplay",
		Resources: []database.Resource{
			{
				Type: database.NewResType("exte"),
				ID:   0,
				Data: []byte{0x4e, 0x75},
				Code: func() error {
					ran = true
					return nil
				},
			},
		},
	})
	test.DemandSuccess(t, err)

	ref, err := mgr.OpenDatabase(id, database.ReadOnly)
	test.DemandSuccess(t, err)

	_, err = mgr.GetResource(ref, database.NewResType("exte"), 1)
	test.ExpectSuccess(t, curated.Is(err, database.NoSuchResource))

	h, err := mgr.GetResource(ref, database.NewResType("exte"), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Resource().String(), "exte0000")

	// the same handle is returned for the same resource
	h2, err := mgr.GetResource(ref, database.NewResType("exte"), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h, h2)

	addr, err := mgr.HandleLock(h)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, heap.Owns(addr))
	test.ExpectEquality(t, heap.Chunks(), 1)

	b, err := heap.Read(addr, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], uint8(0x4e))
	test.ExpectEquality(t, b[1], uint8(0x75))

	// second lock returns the same address
	addr2, err := mgr.HandleLock(h)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, addr2, addr)

	test.ExpectSuccess(t, mc.Jump(addr))
	test.ExpectSuccess(t, ran)

	test.ExpectSuccess(t, mgr.HandleUnlock(h))
	test.ExpectSuccess(t, mc.IsMapped(addr))
	test.ExpectSuccess(t, mgr.HandleUnlock(h))
	test.ExpectFailure(t, mc.IsMapped(addr))
	test.ExpectEquality(t, heap.Chunks(), 0)

	err = mgr.HandleUnlock(h)
	test.ExpectSuccess(t, curated.Is(err, database.NotLocked))

	test.ExpectSuccess(t, mgr.CloseDatabase(ref))
}

func TestLockFailure(t *testing.T) {
	mgr, heap, _ := newManager()

	id, err := mgr.Install(database.Database{
		Name: "Empty",
		Resources: []database.Resource{
			{Type: database.NewResType("exte"), ID: 0},
		},
	})
	test.DemandSuccess(t, err)

	ref, err := mgr.OpenDatabase(id, database.ReadOnly)
	test.DemandSuccess(t, err)

	h, err := mgr.GetResource(ref, database.NewResType("exte"), 0)
	test.DemandSuccess(t, err)

	// empty resources cannot be locked
	_, err = mgr.HandleLock(h)
	test.ExpectSuccess(t, curated.Is(err, database.LockFailure))
	test.ExpectSuccess(t, curated.Has(err, memory.ZeroSizedChunk))
	test.ExpectEquality(t, heap.Chunks(), 0)
}
