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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher81/hardware/preferences"
	"github.com/jetsetilly/gopher81/logger"
)

// Sentinal error patterns returned by the memory package.
const (
	BadRAMSize = "memory: unsupported RAM size (%dK)"
	BadImage   = "memory: bad image: %v"
)

// ROMWrite records a CPU write to ROM.
type ROMWrite struct {
	Address uint16
	Data    uint8
}

func (w ROMWrite) String() string {
	return fmt.Sprintf("%#02x -> %#04x", w.Data, w.Address)
}

// Memory is the bus/memory model of the ZX81.
type Memory struct {
	env *instance.Instance

	ROM [memorymap.ROMSize]uint8
	RAM []uint8

	// mask applied to the offset of a RAM address. RAM packs smaller than
	// 16K are mirrored throughout the RAM window
	ramMask uint16

	// the most recent write to ROM. cleared by LastROMWrite()
	romWrite        ROMWrite
	romWritePending bool
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// size of the RAM is taken from the instance preferences.
func NewMemory(env *instance.Instance) (*Memory, error) {
	mem := &Memory{
		env: env,
	}

	err := mem.resize()
	if err != nil {
		return nil, err
	}

	return mem, nil
}

// resize the RAM according to the current preferences. contents of RAM are
// lost if the size changes.
func (mem *Memory) resize() error {
	kb := mem.env.Prefs.RAMSize.Get().(int)
	switch kb {
	case 1, 2, 16:
	default:
		return curated.Errorf(BadRAMSize, kb)
	}

	size := kb * 1024
	if len(mem.RAM) != size {
		mem.RAM = make([]uint8, size)
		mem.ramMask = uint16(size - 1)
		logger.Log(mem.env, "memory", memorymap.Summary(size))
	}

	return nil
}

func (mem *Memory) String() string {
	return memorymap.Summary(len(mem.RAM))
}

// RAMSize returns the size of the RAM pack in bytes.
func (mem *Memory) RAMSize() int {
	return len(mem.RAM)
}

// Reset the contents of RAM according to the ramreset preference. The ROM is
// never touched. If the ramsize preference has changed since the last reset
// the RAM will be reallocated, and so cleared, whatever the ramreset
// preference.
func (mem *Memory) Reset() error {
	err := mem.resize()
	if err != nil {
		return err
	}

	switch mem.env.Prefs.RAMReset.Get().(string) {
	case preferences.RAMKeep:
	case preferences.RAMRandom:
		mem.env.Random.Fill(mem.RAM)
	default:
		clear(mem.RAM)
	}

	mem.romWritePending = false

	return nil
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.Peek(address)
}

// Peek returns the value at the address without side effect. It is an
// implementation of cpubus.Peeker.
func (mem *Memory) Peek(address uint16) uint8 {
	a, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		return mem.RAM[(a^memorymap.OriginRAM)&mem.ramMask]
	}
	return mem.ROM[a]
}

// Write is an implementation of cpubus.Memory. Writes to ROM are dropped.
func (mem *Memory) Write(address uint16, data uint8) {
	a, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		mem.RAM[(a^memorymap.OriginRAM)&mem.ramMask] = data
		return
	}

	mem.romWrite = ROMWrite{Address: address, Data: data}
	mem.romWritePending = true
	logger.Logf(mem.env, "memory", "write to ROM dropped: %s", mem.romWrite)
}

// LastROMWrite returns the most recent dropped write to ROM. The boolean
// return value is false if there has been no write to ROM since the previous
// call.
func (mem *Memory) LastROMWrite() (ROMWrite, bool) {
	ok := mem.romWritePending
	mem.romWritePending = false
	return mem.romWrite, ok
}

// LoadImage copies data into memory starting at the address, bypassing write
// protection. The image must lie entirely in the primary ROM or the primary
// RAM window of the current RAM pack. Mirror addresses are not accepted.
func (mem *Memory) LoadImage(data []uint8, address uint16) error {
	if len(data) == 0 {
		return curated.Errorf(BadImage, "image is empty")
	}

	start := int(address)
	end := start + len(data)

	romEnd := int(memorymap.OriginROM) + len(mem.ROM)
	ramStart := int(memorymap.OriginRAM)
	ramEnd := ramStart + len(mem.RAM)

	switch {
	case start >= int(memorymap.OriginROM) && end <= romEnd:
		copy(mem.ROM[start:], data)
	case start >= ramStart && end <= ramEnd:
		copy(mem.RAM[start-ramStart:], data)
	case start < romEnd:
		return curated.Errorf(BadImage, fmt.Sprintf("%d bytes at %#04x does not fit in ROM", len(data), address))
	case start >= ramStart && start < ramEnd:
		return curated.Errorf(BadImage, fmt.Sprintf("%d bytes at %#04x overruns %dK of RAM", len(data), address, len(mem.RAM)/1024))
	default:
		return curated.Errorf(BadImage, fmt.Sprintf("%#04x is not a primary ROM or RAM address", address))
	}

	return nil
}

// Dump returns a hex dump of memory between the two addresses inclusive.
func (mem *Memory) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	for row := int(from &^ 0x0f); row <= int(to); row += 16 {
		s.WriteString(fmt.Sprintf("%03x- | ", row>>4))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(from) || a > int(to) {
				s.WriteString(" ..")
				continue
			}
			s.WriteString(fmt.Sprintf(" %02x", mem.Peek(uint16(a))))
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
