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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// The different memory areas in the ZX81.
const (
	Undefined Area = iota
	ROM
	RAM
)

// The origin and memory top for each area of memory. The memtop of RAM is the
// top of the largest possible RAM pack. Smaller packs are mirrored up to
// MemtopRAM.
const (
	OriginROM = uint16(0x0000)
	MemtopROM = uint16(0x1fff)
	OriginRAM = uint16(0x4000)
	MemtopRAM = uint16(0x7fff)
)

// The ROM is mirrored immediately above itself.
const (
	OriginROMMirror = uint16(0x2000)
	MemtopROMMirror = uint16(0x3fff)
)

// Memtop is the top most decoded address. Every address is mirrored at
// address|DisplayBit.
const Memtop = uint16(0x7fff)

// DisplayBit is the address line that the ULA inspects during instruction
// fetches. It is not decoded by the memory.
const DisplayBit = uint16(0x8000)

// ROMSize is the size of the ZX81 ROM in bytes.
const ROMSize = int(MemtopROM-OriginROM) + 1

// MaxRAMSize is the size of the largest supported RAM pack in bytes.
const MaxRAMSize = int(MemtopRAM-OriginRAM) + 1

// MapAddress translates the address argument from mirror space to primary
// space. For RAM addresses the result is relative to the window of the
// largest RAM pack. The caller must apply the size of the RAM it has.
func MapAddress(address uint16) (uint16, Area) {
	address &= Memtop

	if address&OriginRAM == OriginRAM {
		return address, RAM
	}

	return address & MemtopROM, ROM
}

// Summary returns a short description of the memory map for a RAM pack of
// the given size in bytes.
func Summary(ramSize int) string {
	top := OriginRAM + uint16(ramSize-1)
	return fmt.Sprintf("ROM %04x-%04x (mirror %04x-%04x) RAM %04x-%04x (mirrored to %04x)",
		OriginROM, MemtopROM, OriginROMMirror, MemtopROMMirror, OriginRAM, top, MemtopRAM)
}
