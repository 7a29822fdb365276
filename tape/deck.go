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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/cpu/registers"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/logger"
)

// the file extensions searched by the deck, in order of preference
var extensions = []string{".p", ".wav", ".mp3"}

// Deck loads programs from a directory in response to the LOAD command. It
// traps the ROM's LOAD routine and copies the program straight into memory.
type Deck struct {
	m   *hardware.Machine
	dir string

	// the most recently loaded program
	Loaded Program
}

// NewDeck creates a Deck and attaches it to the machine. The ROM in the
// machine must be the standard ZX81 ROM.
func NewDeck(m *hardware.Machine, dir string) *Deck {
	dk := &Deck{
		m:   m,
		dir: dir,
	}
	m.AddTrap(addresses.LoadBytes, dk.load)
	return dk
}

func (dk *Deck) String() string {
	return fmt.Sprintf("deck: %s", dk.dir)
}

// Eject removes the deck from the machine.
func (dk *Deck) Eject() {
	dk.m.RemoveTrap(addresses.LoadBytes)
}

// Find returns the program with the name. The program is searched for as a
// .p file and then as a recording. A recording can hold more than one
// program, in which case the program with the name is preferred, otherwise
// the first program is used.
func (dk *Deck) Find(name string) (Program, error) {
	for _, ext := range extensions {
		filename := filepath.Join(dk.dir, name+ext)

		_, err := os.Stat(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if !IsRecording(filename) {
			return LoadProgram(filename)
		}

		pcm, err := ReadPCM(dk.m.Env, filename)
		if err != nil {
			return Program{}, err
		}
		progs, err := Decode(dk.m.Env, pcm)
		if err != nil {
			return Program{}, err
		}
		for _, p := range progs {
			if p.Name == name {
				return p, nil
			}
		}
		return progs[0], nil
	}

	return Program{}, curated.Errorf(ProgramMissing, name)
}

// load is the trap function. the name of the program is at DE and the carry
// flag is set if no name was given
func (dk *Deck) load() error {
	mc := dk.m.CPU

	// the deck can only load programs by name
	if mc.F&registers.Carry == registers.Carry {
		mc.PC = addresses.ReportNoName
		return nil
	}

	name := dk.name(mc.DE())

	p, err := dk.Find(name)
	if err == nil {
		err = dk.m.LoadImage(p.Data, addresses.ProgramImage)
	}
	if err != nil {
		logger.Logf(dk.m.Env, "tape", "cannot load %q: %v", name, err)
		mc.PC = addresses.ReportNoName
		return nil
	}

	dk.Loaded = p
	logger.Logf(dk.m.Env, "tape", "loaded %s", p)

	// return from the LOAD routine
	mc.PC = uint16(dk.m.Mem.Read(mc.SP)) | uint16(dk.m.Mem.Read(mc.SP+1))<<8
	mc.SP += 2

	return nil
}

// read the name of the program from memory
func (dk *Deck) name(address uint16) string {
	var n []uint8
	for range maxNameLength {
		c := dk.m.Mem.Peek(address)
		n = append(n, c)
		if c&0x80 == 0x80 {
			break
		}
		address++
	}
	return DecodeName(n)
}
