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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/palmhires/palmhires/hardware"
	"github.com/palmhires/palmhires/hardware/preferences"
	"github.com/palmhires/palmhires/hires"
	"github.com/palmhires/palmhires/logger"
	"github.com/palmhires/palmhires/modalflag"
	"github.com/palmhires/palmhires/pattern"
	"github.com/palmhires/palmhires/prefs"
	"github.com/palmhires/palmhires/snapshot"
	"github.com/palmhires/palmhires/statsview"
	"github.com/palmhires/palmhires/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PREFS":
		err = showPrefs(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fonts := md.AddBool("fonts", true, "install the HighDensityFonts database")
	display := md.AddBool("display", true, "install the HighDensityDisplay database")
	width := md.AddInt("width", 320, "width of the requested resolution")
	height := md.AddInt("height", 480, "height of the requested resolution")
	snapshotBase := md.AddString("snapshot", "", "save image of framebuffer before application exit (geometry is added to the name)")
	scale := md.AddInt("scale", 1, "scaling of snapshot image")
	caption := md.AddBool("caption", false, "add framebuffer details beneath the snapshot image")
	drawPattern := md.AddBool("pattern", true, "draw identifying pattern into the framebuffer")
	memvizFile := md.AddString("memviz", "", "write graph of driver state to file (graphviz format)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *width < 1 || *width > 0xffff || *height < 1 || *height > 0xffff {
		return fmt.Errorf("resolution out of range (%dx%d)", *width, *height)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	drvPrefs, err := hires.NewPreferences()
	if err != nil {
		return err
	}

	// the log flag overrides the echo preference
	if *log {
		logger.SetEcho(os.Stdout)
	}

	palm, err := hardware.NewPalm(hwPrefs)
	if err != nil {
		return err
	}

	err = palm.InstallVendorPackages(*fonts, *display)
	if err != nil {
		return err
	}

	drv := hires.NewDriver(hires.NewPlatform(palm), drvPrefs)

	err = drv.Install()
	if err != nil {
		return err
	}

	drv.OnApplicationStart()

	err = drv.SetDeviceResolution(uint16(*width), uint16(*height))
	if err != nil {
		return err
	}

	if *drawPattern {
		err = pattern.Draw(palm.Heap, palm.Emu.Framebuffer)
		if err != nil {
			return err
		}
	}

	if *snapshotBase != "" {
		img, err := snapshot.Capture(palm.Heap, palm.Emu.Framebuffer, *scale)
		if err != nil {
			return err
		}
		if *caption {
			img, err = snapshot.Caption(img, palm.Emu.Framebuffer.String())
			if err != nil {
				return err
			}
		}
		fn := snapshot.Filename(*snapshotBase, palm.Emu.Framebuffer)
		err = snapshot.Save(fn, img)
		if err != nil {
			return err
		}
		fmt.Printf("! framebuffer saved to %s\n", fn)
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, drv.Framebuffer.Current(), &palm.Extension, palm.Emu)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	err = drv.OnApplicationExit()
	if err != nil {
		return err
	}

	if !*log {
		logger.Write(os.Stdout)
	}

	if *stats {
		fmt.Println("! press ctrl-c to stop the stats server")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
	}

	return nil
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	reset := md.AddBool("reset", false, "reset preferences to default values and save")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	drvPrefs, err := hires.NewPreferences()
	if err != nil {
		return err
	}

	if *reset {
		if err := hwPrefs.Reset(); err != nil {
			return err
		}
		if err := hwPrefs.Save(); err != nil {
			return err
		}
		if err := drvPrefs.Reset(); err != nil {
			return err
		}
		if err := drvPrefs.Save(); err != nil {
			return err
		}
	}

	fmt.Print(hwPrefs)
	fmt.Print(drvPrefs)

	return nil
}
