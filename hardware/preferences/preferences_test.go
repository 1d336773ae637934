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

package preferences_test

import (
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/preferences"
	"github.com/palmhires/palmhires/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.DefaultPreferences()
	test.ExpectEquality(t, p.HeapSize.Get().(int), preferences.DefaultHeapSize)

	err := p.HeapSize.Set(1024)
	test.ExpectSuccess(t, curated.Is(err, preferences.HeapSize))

	test.DemandSuccess(t, p.HeapSize.Set("1048576"))
	test.ExpectEquality(t, p.HeapSize.Get().(int), 1048576)

	test.DemandSuccess(t, p.Reset())
	test.ExpectEquality(t, p.HeapSize.Get().(int), preferences.DefaultHeapSize)

	test.ExpectSuccess(t, curated.Is(p.Save(), preferences.NotOnDisk))
	test.ExpectSuccess(t, curated.Is(p.Load(), preferences.NotOnDisk))
}
