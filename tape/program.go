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

package tape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/hardware/memory/cpubus"
)

// a program must at least include the system variables up to and including
// E_LINE
const minProgramLength = int(addresses.E_LINE-addresses.ProgramImage) + 2

// Program is a ZX81 program as stored in a .p file. The Data field begins
// with the VERSN system variable and is loaded into memory at that address.
type Program struct {
	Name string
	Data []uint8
}

func (p Program) String() string {
	return fmt.Sprintf("%s (%d bytes)", p.Name, len(p.Data))
}

// ELine returns the value of the E_LINE system variable in the program. The
// program proper ends at this address.
func (p Program) ELine() uint16 {
	i := int(addresses.E_LINE - addresses.ProgramImage)
	return uint16(p.Data[i]) | uint16(p.Data[i+1])<<8
}

// Validate checks that the program is long enough to hold the system
// variables and that the program is not longer than the data.
func (p Program) Validate() error {
	if len(p.Data) < minProgramLength {
		return curated.Errorf(BadProgram, fmt.Sprintf("%d bytes is too short", len(p.Data)))
	}
	end := int(p.ELine()) - int(addresses.ProgramImage)
	if end < minProgramLength || end > len(p.Data) {
		return curated.Errorf(BadProgram, fmt.Sprintf("E_LINE (%#04x) is outside the program", p.ELine()))
	}
	return nil
}

// LoadProgram reads a .p file. The name of the program is taken from the
// filename.
func LoadProgram(filename string) (Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Program{}, curated.Errorf(FileError, err)
	}

	p := Program{
		Name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		Data: data,
	}

	err = p.Validate()
	if err != nil {
		return Program{}, err
	}

	return p, nil
}

// Save writes the program to a .p file in the directory. The filename is
// the name of the program. Returns the full name of the new file.
func (p Program) Save(dir string) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("%s.p", p.Name))
	err := os.WriteFile(filename, p.Data, 0644)
	if err != nil {
		return "", curated.Errorf(FileError, err)
	}
	return filename, nil
}

// ProgramFromMemory copies the program in memory, from VERSN up to the
// address in E_LINE, as SAVE would.
func ProgramFromMemory(mem cpubus.Peeker, name string) (Program, error) {
	eline := uint16(mem.Peek(addresses.E_LINE)) | uint16(mem.Peek(addresses.E_LINE+1))<<8
	if eline < addresses.ProgramImage+uint16(minProgramLength) || eline > 0x8000 {
		return Program{}, curated.Errorf(BadProgram, fmt.Sprintf("E_LINE (%#04x) is not a valid address", eline))
	}

	p := Program{
		Name: name,
		Data: make([]uint8, eline-addresses.ProgramImage),
	}
	for i := range p.Data {
		p.Data[i] = mem.Peek(addresses.ProgramImage + uint16(i))
	}

	return p, nil
}
