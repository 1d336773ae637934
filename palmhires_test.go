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

package main_test

import (
	"testing"

	"github.com/palmhires/palmhires/hardware"
	"github.com/palmhires/palmhires/hires"
)

func BenchmarkSetDeviceResolution(b *testing.B) {
	palm, err := hardware.NewPalm(nil)
	if err != nil {
		b.Fatalf("error preparing palm: %v", err)
	}

	err = palm.InstallVendorPackages(true, true)
	if err != nil {
		b.Fatalf("error preparing palm: %v", err)
	}

	drv := hires.NewDriver(hires.NewPlatform(palm), nil)
	err = drv.Install()
	if err != nil {
		b.Fatalf("error installing driver: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err = drv.SetDeviceResolution(320, 480)
		if err != nil {
			b.Fatal(err)
		}
		err = drv.OnApplicationExit()
		if err != nil {
			b.Fatal(err)
		}
	}
}
