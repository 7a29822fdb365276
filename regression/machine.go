// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"path/filepath"

	"github.com/jetsetilly/gopher81/hardware"
)

// newMachine creates a machine in a known state with the ROM loaded. The
// preferences are the defaults and not the user's preferences.
func newMachine(rom string) (*hardware.Machine, error) {
	m, err := hardware.NewMachine(nil)
	if err != nil {
		return nil, err
	}
	m.Env.Quiet = true
	m.Env.Normalise()

	err = m.LoadROMFile(rom)
	if err != nil {
		return nil, err
	}

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func absPath(pth string) string {
	if pth == "" {
		return ""
	}
	abs, err := filepath.Abs(pth)
	if err != nil {
		return pth
	}
	return abs
}
