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

// Sentinal error patterns. Use curated.Is() or curated.Has() to test for the
// kind of failure.
const (
	ResourceMissing     = "hires: %s.prc not installed"
	OpenFailure         = "hires: cannot open %s.prc: %v"
	ResourceLoadFailure = "hires: cannot load %s.prc %v: %v"
	AllocationFailure   = "hires: cannot create framebuffer: %v"
	DriverNotLoaded     = "hires: driver not loaded"

	RetireFailure  = "hires: cannot retire framebuffer: %v"
	PublishFailure = "hires: cannot publish framebuffer: %v"
)
