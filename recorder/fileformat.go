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

package recorder

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/memory/memorymap"
)

// recording file format
// ---------------------
//
// gopher81 keyboard recording
// <sha1 of ROM>
// <RAM size in KB>
// <frame>, <key>, <pressed|released>, <video digest>
// ...

const magic = "gopher81 keyboard recording"

const (
	lineMagic int = iota
	lineROMHash
	lineRAMSize
	numHeaderLines
)

const (
	fieldFrame int = iota
	fieldKey
	fieldState
	fieldHash
	numFields
)

const fieldSep = ", "

const (
	statePressed  = "pressed"
	stateReleased = "released"
)

type header struct {
	romHash string
	ramSize int
}

func machineHeader(m *hardware.Machine) header {
	rom := make([]byte, memorymap.ROMSize)
	for i := range rom {
		rom[i] = m.Mem.Peek(memorymap.OriginROM + uint16(i))
	}
	return header{
		romHash: fmt.Sprintf("%x", sha1.Sum(rom)),
		ramSize: m.Mem.RAMSize() / 1024,
	}
}

func (h header) String() string {
	return fmt.Sprintf("%s\n%s\n%d\n", magic, h.romHash, h.ramSize)
}
