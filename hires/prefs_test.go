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

package hires_test

import (
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware"
	"github.com/palmhires/palmhires/hires"
	"github.com/palmhires/palmhires/test"
)

func TestPreferences(t *testing.T) {
	p := hires.DefaultPreferences()
	test.ExpectEquality(t, p.Fonts.String(), "HighDensityFonts")
	test.ExpectEquality(t, p.Display.String(), "HighDensityDisplay")
	test.ExpectEquality(t, p.Default.String(), "160,220")

	test.DemandSuccess(t, p.Default.Set("320, 320"))
	w, h := p.DefaultResolution()
	test.ExpectEquality(t, w, uint16(320))
	test.ExpectEquality(t, h, uint16(320))

	for _, s := range []string{"abc", "0,220", "160,0", "1,2,3", "70000,10"} {
		err := p.Default.Set(s)
		test.ExpectSuccess(t, curated.Is(err, hires.InvalidResolution), s)
	}

	// failed settings leave the value unchanged
	test.ExpectEquality(t, p.Default.String(), "320,320")

	test.DemandSuccess(t, p.Reset())
	test.ExpectEquality(t, p.Default.String(), "160,220")

	test.ExpectSuccess(t, curated.Is(p.Save(), hires.NotOnDisk))
	test.ExpectSuccess(t, curated.Is(p.Load(), hires.NotOnDisk))
}

func TestPreferredDatabases(t *testing.T) {
	palm, err := hardware.NewPalm(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, palm.InstallVendorPackages(true, true))

	p := hires.DefaultPreferences()
	test.DemandSuccess(t, p.Fonts.Set("OtherFonts"))

	drv := hires.NewDriver(hires.NewPlatform(palm), p)
	err = drv.Install()
	test.ExpectSuccess(t, curated.Is(err, hires.ResourceMissing))
	test.ExpectEquality(t, err.Error(), "hires: OtherFonts.prc not installed")
}

func TestPreferredDefaultResolution(t *testing.T) {
	palm, err := hardware.NewPalm(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, palm.InstallVendorPackages(true, true))

	p := hires.DefaultPreferences()
	test.DemandSuccess(t, p.Default.Set("320,320"))

	drv := hires.NewDriver(hires.NewPlatform(palm), p)
	test.DemandSuccess(t, drv.Install())

	// the extension is told about the preferred default resolution
	test.ExpectEquality(t, palm.Extension.Width, uint32(320))

	test.DemandSuccess(t, drv.SetDeviceResolution(320, 480))
	test.DemandSuccess(t, drv.OnApplicationExit())

	w, h := drv.Resolution.Resolution()
	test.ExpectEquality(t, w, uint16(320))
	test.ExpectEquality(t, h, uint16(320))
}
