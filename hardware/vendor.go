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

package hardware

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/hardware/traps"
	"github.com/palmhires/palmhires/logger"
)

// Names of the vendor databases.
const (
	FontsDatabase   = "HighDensityFonts"
	DisplayDatabase = "HighDensityDisplay"
)

// The bring-up code of the display extension is resource exte0000.
var (
	ExtensionType = database.NewResType("exte")
	ExtensionID   = uint16(0x0000)
)

// Extension is the state of the vendor display extension. The extension is
// brought up by running the code in the exte0000 resource of the display
// database.
type Extension struct {
	// number of times the bring-up code has been run
	Runs int

	// the bring-up code completed and the display attributes it found
	Ready   bool
	Width   uint32
	Height  uint32
	Depth   uint32
	Density uint32
}

// Sentinal error patterns.
const (
	ExtensionFailed = "palm: display extension failed: %v"
)

// InstallVendorPackages installs the vendor databases. Either database can
// be withheld.
func (palm *Palm) InstallVendorPackages(fonts bool, display bool) error {
	if fonts {
		_, err := palm.DB.Install(database.Database{
			Name: FontsDatabase,
			Resources: []database.Resource{
				{Type: database.NewResType("nfnt"), ID: 0x0000, Data: []byte{0x90, 0x00}},
				{Type: database.NewResType("nfnt"), ID: 0x0001, Data: []byte{0x90, 0x00}},
			},
		})
		if err != nil {
			return err
		}
	}

	if display {
		_, err := palm.DB.Install(database.Database{
			Name: DisplayDatabase,
			Resources: []database.Resource{
				{
					Type: ExtensionType,
					ID:   ExtensionID,

					// moveq #0,d0; rts
					Data: []byte{0x70, 0x00, 0x4e, 0x75},
					Code: palm.bringUpExtension,
				},
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// the display extension asks the system for the attributes of the display. a
// stock device does not know the answers and the extension will not be
// brought up.
func (palm *Palm) bringUpExtension() error {
	palm.Extension.Runs++

	var ext Extension
	var err error

	ext.Width, err = palm.Traps.DisplayAttributes(traps.DisplayWidth)
	if err != nil {
		return curated.Errorf(ExtensionFailed, err)
	}
	ext.Height, err = palm.Traps.DisplayAttributes(traps.DisplayHeight)
	if err != nil {
		return curated.Errorf(ExtensionFailed, err)
	}
	ext.Depth, err = palm.Traps.DisplayAttributes(traps.DisplayDepth)
	if err != nil {
		return curated.Errorf(ExtensionFailed, err)
	}
	ext.Density, err = palm.Traps.DisplayAttributes(traps.DisplayDensity)
	if err != nil {
		return curated.Errorf(ExtensionFailed, err)
	}

	ext.Runs = palm.Extension.Runs
	ext.Ready = true
	palm.Extension = ext

	logger.Logf(logger.Allow, "palm", "display extension ready (%dx%d depth %d density %d)",
		ext.Width, ext.Height, ext.Depth, ext.Density)

	return nil
}
