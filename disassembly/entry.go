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
)

// EntryLevel describes how reliable the Entry is.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
const (
	// decoded without regard to the instructions around it
	EntryLevelDecoded EntryLevel = iota

	// reached by following the flow of the program from an entry point
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Level   EntryLevel

	Defn *instructions.Definition

	// every byte of the instruction, including prefixes
	Bytes []uint8

	// the instruction with the operand placeholders of the definition filled
	// in
	Operator string
	Operands string

	// the address the instruction transfers control to, if any. valid if
	// HasTarget is true
	Target    uint16
	HasTarget bool
}

func (e *Entry) String() string {
	if e.Operands == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operands)
}

// Hex returns the bytes of the entry as a string of hexadecimal pairs.
func (e *Entry) Hex() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Next returns the address of the instruction that follows the entry in
// memory.
func (e *Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}
