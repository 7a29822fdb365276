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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/memory/cpubus"
)

// DefaultEntryPoints are the restart addresses and the NMI routine. These are
// used by FromMemory() when no entry points are given.
var DefaultEntryPoints = []uint16{
	0x0000, 0x0008, 0x0010, 0x0018, 0x0020, 0x0028, 0x0030, 0x0038, 0x0066,
}

// Disassembly of a range of memory.
type Disassembly struct {
	from uint16
	to   uint16

	// one entry for every address in the range
	entries []*Entry
}

// FromMemory disassembles memory between the two addresses, inclusive. The
// flow of the program is followed from the entry points. Entry points outside
// the range are ignored.
func FromMemory(mem cpubus.Peeker, from uint16, to uint16, entryPoints ...uint16) (*Disassembly, error) {
	if to < from {
		return nil, curated.Errorf("disassembly: range is backwards (%#04x to %#04x)", from, to)
	}

	dsm := &Disassembly{
		from:    from,
		to:      to,
		entries: make([]*Entry, int(to)-int(from)+1),
	}

	for i := range dsm.entries {
		dsm.entries[i] = Decode(mem, from+uint16(i))
	}

	if len(entryPoints) == 0 {
		entryPoints = DefaultEntryPoints
	}
	for _, a := range entryPoints {
		dsm.bless(a)
	}

	return dsm, nil
}

func (dsm *Disassembly) String() string {
	var blessed int
	for _, e := range dsm.entries {
		if e.Level == EntryLevelBlessed {
			blessed++
		}
	}
	return fmt.Sprintf("%#04x to %#04x (%d instructions)", dsm.from, dsm.to, blessed)
}

// Get returns the entry at the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	if address < dsm.from || address > dsm.to {
		return nil, false
	}
	return dsm.entries[address-dsm.from], true
}

// the flow of the program does not continue past these instructions
var flowEnds = map[string]bool{
	"RET":     true,
	"RETI":    true,
	"RETN":    true,
	"JP nn":   true,
	"JR e":    true,
	"JP (HL)": true,
	"JP (IX)": true,
	"JP (IY)": true,
}

// restarts in the ZX81 ROM that are followed by inline data rather than by
// an instruction. the error restart is followed by the error code and the
// calculator restart by calculator literals
var inlineData = map[uint16]bool{
	0x0008: true,
	0x0028: true,
}

func (dsm *Disassembly) bless(start uint16) {
	pending := []uint16{start}

	for len(pending) > 0 {
		a := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			e, ok := dsm.Get(a)
			if !ok || e.Level == EntryLevelBlessed {
				break
			}
			e.Level = EntryLevelBlessed

			if e.HasTarget {
				pending = append(pending, e.Target)
			}

			if flowEnds[e.Defn.Mnemonic] {
				break
			}
			if e.Operator == "RST" && inlineData[e.Target] {
				break
			}

			// the end of the address space
			if e.Next() < a {
				break
			}
			a = e.Next()
		}
	}
}
