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

package database

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/cpu"
	"github.com/palmhires/palmhires/hardware/memory"
	"github.com/palmhires/palmhires/logger"
)

// Memory is the storage for locked resources.
type Memory interface {
	ChunkNew(size uint32, flags memory.ChunkFlags) (uint32, error)
	ChunkFree(addr uint32) error
	Write(addr uint32, data []byte) error
}

// Executor runs the code in locked code resources.
type Executor interface {
	Map(addr uint32, r cpu.Routine) error
	Unmap(addr uint32) error
}

// Sentinal error patterns.
const (
	NoSuchDatabase   = "database: no such database (%d)"
	DatabaseBusy     = "database: %s is busy"
	NotOpen          = "database: reference is not open (%d)"
	NoSuchResource   = "database: no resource %s%04x"
	LockFailure      = "database: cannot lock %v: %v"
	NotLocked        = "database: %v is not locked"
	AlreadyInstalled = "database: %s is already installed"
)

// Handle to a resource returned by GetResource().
type Handle struct {
	res    *Resource
	addr   uint32
	locked int
}

// Resource returns the resource the handle refers to.
func (h *Handle) Resource() Resource {
	return *h.res
}

// Locked returns the address of the locked resource and the lock count.
func (h *Handle) Locked() (uint32, int) {
	return h.addr, h.locked
}

type open struct {
	id   LocalID
	mode OpenMode
}

// Manager is the resource database manager.
type Manager struct {
	mem  Memory
	exec Executor

	databases []*Database
	open      map[OpenRef]open
	nextRef   OpenRef

	// handles are cached so that repeated requests for the same resource
	// return the same handle
	handles map[*Resource]*Handle

	// I/O counts
	Lookups int
	Opens   int
	Closes  int
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(mem Memory, exec Executor) *Manager {
	return &Manager{
		mem:     mem,
		exec:    exec,
		open:    make(map[OpenRef]open),
		handles: make(map[*Resource]*Handle),
	}
}

// Install a database. Database names are unique.
func (m *Manager) Install(db Database) (LocalID, error) {
	for _, d := range m.databases {
		if d.Name == db.Name {
			return 0, curated.Errorf(AlreadyInstalled, db.Name)
		}
	}
	m.databases = append(m.databases, &db)
	logger.Logf(logger.Allow, "database", "installed %s (%d resources)", db.Name, len(db.Resources))
	return LocalID(len(m.databases)), nil
}

// Installed returns the names of all installed databases in the order they
// were installed.
func (m *Manager) Installed() []string {
	n := make([]string, 0, len(m.databases))
	for _, d := range m.databases {
		n = append(n, d.Name)
	}
	return n
}

// FindDatabase returns the LocalID of the named database.
func (m *Manager) FindDatabase(name string) (LocalID, bool) {
	m.Lookups++
	for i, d := range m.databases {
		if d.Name == name {
			return LocalID(i + 1), true
		}
	}
	return 0, false
}

func (m *Manager) database(id LocalID) (*Database, bool) {
	if id == 0 || int(id) > len(m.databases) {
		return nil, false
	}
	return m.databases[id-1], true
}

// OpenDatabase opens the database with the LocalID.
func (m *Manager) OpenDatabase(id LocalID, mode OpenMode) (OpenRef, error) {
	db, ok := m.database(id)
	if !ok {
		return 0, curated.Errorf(NoSuchDatabase, id)
	}
	if db.Busy {
		return 0, curated.Errorf(DatabaseBusy, db.Name)
	}

	m.Opens++
	m.nextRef++
	m.open[m.nextRef] = open{id: id, mode: mode}
	logger.Logf(logger.Allow, "database", "opened %s (%v)", db.Name, mode)

	return m.nextRef, nil
}

// IsOpen returns true if the reference refers to an open database.
func (m *Manager) IsOpen(ref OpenRef) bool {
	_, ok := m.open[ref]
	return ok
}

// OpenCount returns the number of open references.
func (m *Manager) OpenCount() int {
	return len(m.open)
}

// CloseDatabase closes the reference.
func (m *Manager) CloseDatabase(ref OpenRef) error {
	o, ok := m.open[ref]
	if !ok {
		return curated.Errorf(NotOpen, ref)
	}
	delete(m.open, ref)
	m.Closes++

	db, _ := m.database(o.id)
	logger.Logf(logger.Allow, "database", "closed %s", db.Name)

	return nil
}

// GetResource returns a handle to the resource in the open database.
func (m *Manager) GetResource(ref OpenRef, typ ResType, id uint16) (*Handle, error) {
	o, ok := m.open[ref]
	if !ok {
		return nil, curated.Errorf(NotOpen, ref)
	}

	db, _ := m.database(o.id)
	for i := range db.Resources {
		r := &db.Resources[i]
		if r.Type == typ && r.ID == id {
			h, ok := m.handles[r]
			if !ok {
				h = &Handle{res: r}
				m.handles[r] = h
			}
			return h, nil
		}
	}

	return nil, curated.Errorf(NoSuchResource, typ, id)
}

// HandleLock locks the resource into memory and returns its address. A
// resource can be locked more than once. The address is the same for every
// lock.
func (m *Manager) HandleLock(h *Handle) (uint32, error) {
	if h.locked > 0 {
		h.locked++
		return h.addr, nil
	}

	addr, err := m.mem.ChunkNew(uint32(len(h.res.Data)), memory.NonMovable|memory.AllowLarge)
	if err != nil {
		return 0, curated.Errorf(LockFailure, h.res, err)
	}

	err = m.mem.Write(addr, h.res.Data)
	if err != nil {
		_ = m.mem.ChunkFree(addr)
		return 0, curated.Errorf(LockFailure, h.res, err)
	}

	if h.res.Code != nil {
		err = m.exec.Map(addr, h.res.Code)
		if err != nil {
			_ = m.mem.ChunkFree(addr)
			return 0, curated.Errorf(LockFailure, h.res, err)
		}
	}

	h.addr = addr
	h.locked = 1

	return addr, nil
}

// HandleUnlock releases a lock on the resource. Memory is released when the
// lock count reaches zero.
func (m *Manager) HandleUnlock(h *Handle) error {
	if h.locked == 0 {
		return curated.Errorf(NotLocked, h.res)
	}

	h.locked--
	if h.locked > 0 {
		return nil
	}

	if h.res.Code != nil {
		if err := m.exec.Unmap(h.addr); err != nil {
			return err
		}
	}

	if err := m.mem.ChunkFree(h.addr); err != nil {
		return err
	}
	h.addr = 0

	return nil
}
