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

// Package database emulates the resource database manager of the device.
//
// Databases are installed into the Manager by the emulation before the device
// runs. Software on the device finds a database by name, opens it and then
// asks for resources by type and ID. A resource is only addressable once it
// has been locked. Locking copies the resource into a non-movable chunk of
// the dynamic heap and, for code resources, maps the native routine to the
// chunk address so that it can be jumped to.
//
// The Manager counts lookups, opens and closes. These counts are useful for
// checking that software on the device is not performing unnecessary I/O.
package database
