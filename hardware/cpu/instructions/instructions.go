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

package instructions

import "fmt"

// Prefix identifies an instruction table.
type Prefix int

// List of valid Prefix values.
const (
	None Prefix = iota
	CB
	ED
	DD
	FD
	DDCB
	FDCB
	NumPrefixes
)

func (p Prefix) String() string {
	switch p {
	case None:
		return ""
	case CB:
		return "CB"
	case ED:
		return "ED"
	case DD:
		return "DD"
	case FD:
		return "FD"
	case DDCB:
		return "DDCB"
	case FDCB:
		return "FDCB"
	}
	return "??"
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	Prefix   Prefix
	OpCode   uint8
	Mnemonic string

	// total number of bytes, including prefixes and displacement
	Bytes int

	// number of T-states
	Cycles int

	// number of T-states when a conditional instruction takes the branch or
	// when a block instruction repeats. zero for unconditional instructions
	Taken int

	Undocumented bool
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	s := fmt.Sprintf("%s%02x %s [%d bytes, %d", defn.Prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
	if defn.Taken != 0 {
		s = fmt.Sprintf("%s/%d", s, defn.Taken)
	}
	s = fmt.Sprintf("%s T]", s)
	if defn.Undocumented {
		s = fmt.Sprintf("%s*", s)
	}
	return s
}

// IsConditional returns true if the number of T-states for the instruction
// depends on a condition.
func (defn Definition) IsConditional() bool {
	return defn.Taken != 0
}

// IsPrefix returns true if the definition is a placeholder for a prefix byte
// in the unprefixed table.
func (defn Definition) IsPrefix() bool {
	return defn.Bytes == 0 && defn.Cycles == 0
}

// Tables of definitions, indexed by prefix and opcode.
var tables [NumPrefixes][256]Definition

// Lookup returns the definition for the opcode in the prefix table.
func Lookup(prefix Prefix, opcode uint8) *Definition {
	return &tables[prefix][opcode]
}

// Pseudo-instructions for the steps of the CPU that are not instructions
// fetched from memory.
var (
	// acknowledgement of a non-maskable interrupt
	NMI = Definition{Mnemonic: "NMI", Cycles: 11}

	// acknowledgement of a maskable interrupt in each of the three modes. the
	// IM0 definition assumes that the byte on the data bus is an RST
	// instruction
	IM0 = Definition{Mnemonic: "INT (IM 0)", Cycles: 13}
	IM1 = Definition{Mnemonic: "INT (IM 1)", Cycles: 13}
	IM2 = Definition{Mnemonic: "INT (IM 2)", Cycles: 19}

	// a cycle of the CPU while halted
	Halted = Definition{Mnemonic: "HALT (halted)", Cycles: 4}

	// a DD or FD prefix that is followed by another prefix. the prefix has
	// no effect except to consume time and increment the refresh register
	IgnoredPrefix = Definition{Mnemonic: "NOP*", Bytes: 1, Cycles: 4, Undocumented: true}
)
