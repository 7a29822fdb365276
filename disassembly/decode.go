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
	"strings"

	"github.com/jetsetilly/gopher81/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/hardware/memory/cpubus"
)

// symbol returns the name of a system variable or ROM routine at the address.
func symbol(address uint16) (string, bool) {
	if s, ok := addresses.Canonical[address]; ok {
		return s, true
	}
	s, ok := addresses.Routines[address]
	return s, ok
}

func word(v uint16) string {
	if s, ok := symbol(v); ok {
		return s
	}
	return fmt.Sprintf("$%04X", v)
}

func displacement(d uint8) string {
	if int8(d) < 0 {
		return fmt.Sprintf("-$%02X", -int(int8(d)))
	}
	return fmt.Sprintf("+$%02X", d)
}

// Decode the instruction at the address. The entry level is always
// EntryLevelDecoded.
func Decode(mem cpubus.Peeker, address uint16) *Entry {
	e := &Entry{Address: address}

	// offset of the first operand byte and the displacement for indexed
	// bit instructions, which comes before the opcode
	var operands uint16
	var disp uint8
	var hasDisp bool

	b0 := mem.Peek(address)
	switch b0 {
	case 0xcb:
		e.Defn = instructions.Lookup(instructions.CB, mem.Peek(address+1))
		operands = 2
	case 0xed:
		e.Defn = instructions.Lookup(instructions.ED, mem.Peek(address+1))
		operands = 2
	case 0xdd, 0xfd:
		prefix, bitPrefix := instructions.DD, instructions.DDCB
		if b0 == 0xfd {
			prefix, bitPrefix = instructions.FD, instructions.FDCB
		}

		b1 := mem.Peek(address + 1)
		switch b1 {
		case 0xdd, 0xfd, 0xed:
			e.Defn = &instructions.IgnoredPrefix
		case 0xcb:
			disp = mem.Peek(address + 2)
			hasDisp = true
			e.Defn = instructions.Lookup(bitPrefix, mem.Peek(address+3))
		default:
			e.Defn = instructions.Lookup(prefix, b1)
			operands = 2
		}
	default:
		e.Defn = instructions.Lookup(instructions.None, b0)
		operands = 1
	}

	e.Bytes = make([]uint8, e.Defn.Bytes)
	for i := range e.Bytes {
		e.Bytes[i] = mem.Peek(address + uint16(i))
	}

	op, args, _ := strings.Cut(e.Defn.Mnemonic, " ")
	e.Operator = op
	if args == "" {
		return e
	}

	cursor := address + operands
	toks := strings.Split(args, ",")
	for i, t := range toks {
		switch {
		case strings.Contains(t, "+d)"):
			if !hasDisp {
				disp = mem.Peek(cursor)
				cursor++
			}
			toks[i] = strings.Replace(t, "+d", displacement(disp), 1)

		case t == "nn" || t == "(nn)":
			v := uint16(mem.Peek(cursor)) | uint16(mem.Peek(cursor+1))<<8
			cursor += 2
			toks[i] = strings.Replace(t, "nn", word(v), 1)
			if t == "nn" && (op == "JP" || op == "CALL") {
				e.Target = v
				e.HasTarget = true
			}

		case t == "n" || t == "(n)":
			toks[i] = strings.Replace(t, "n", fmt.Sprintf("$%02X", mem.Peek(cursor)), 1)
			cursor++

		case t == "e":
			e.Target = e.Next() + uint16(int8(mem.Peek(cursor)))
			e.HasTarget = true
			toks[i] = word(e.Target)
			cursor++
		}
	}

	if op == "RST" {
		e.Target = uint16(b0 & 0x38)
		e.HasTarget = true
		toks[0] = word(e.Target)
	}

	e.Operands = strings.Join(toks, ",")
	return e
}
