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

// Package paths should be used whenever a request to the filesystem is made
// for a resource that belongs to the project, for example the preferences
// file. The functions herein make sure that the correct path is used for the
// resource.
package paths

import (
	"os"
	"path/filepath"
)

// the name of the directory in the user's configuration directory where all
// resources are kept.
const configDir = "palmhires"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the user's configuration directory. The subPth
// directory is created if it does not exist.
//
// If the local directory contains a ".palmhires" directory then that is used
// instead of the user's configuration directory. Useful during development.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat("." + configDir); err == nil {
		pth = filepath.Join("."+configDir, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, configDir, subPth)
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
