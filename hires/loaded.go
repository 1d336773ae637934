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

package hires

import (
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/logger"
)

// the bring-up code of the display extension.
var (
	entryType = database.NewResType("exte")
	entryID   = uint16(0x0000)
)

// loadedDriver is the bring-up code of the display extension, locked into
// memory and ready to run.
type loadedDriver struct {
	res    Resources
	cpu    Executor
	handle *database.Handle
	entry  uint32
}

// loadDriver finds and locks the bring-up code in the open database.
func loadDriver(res Resources, cpu Executor, ref database.OpenRef) (*loadedDriver, error) {
	h, err := res.GetResource(ref, entryType, entryID)
	if err != nil {
		return nil, err
	}

	entry, err := res.HandleLock(h)
	if err != nil {
		return nil, err
	}

	return &loadedDriver{
		res:    res,
		cpu:    cpu,
		handle: h,
		entry:  entry,
	}, nil
}

// Run the bring-up code. The code does not report back and is trusted to
// have succeeded if it returns.
func (drv *loadedDriver) Run() {
	if err := drv.cpu.Jump(drv.entry); err != nil {
		logger.Log(logger.Allow, "hires", err)
	}
}

// release unlocks the bring-up code.
func (drv *loadedDriver) release() error {
	return drv.res.HandleUnlock(drv.handle)
}
