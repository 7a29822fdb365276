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
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
)

// the character that ends every row of the display file. when executed by the
// display routine it is a HALT instruction
const newline = 0x76

// PeekWord returns the little-endian word at the address without side
// effect.
func (mem *Memory) PeekWord(address uint16) uint16 {
	return uint16(mem.Peek(address+1))<<8 | uint16(mem.Peek(address))
}

// DisplayFile decodes the display file pointed to by the D_FILE system
// variable. Rows of a collapsed display file, as used by machines with less
// than 4K of RAM, are padded with spaces (character zero).
//
// The result is meaningless before the ROM has initialised the system
// variables.
func (mem *Memory) DisplayFile() [addresses.DisplayRows][addresses.DisplayColumns]uint8 {
	var d [addresses.DisplayRows][addresses.DisplayColumns]uint8

	// the display file begins with a newline
	a := mem.PeekWord(addresses.D_FILE)
	if mem.Peek(a) != newline {
		return d
	}
	a++

	for row := 0; row < addresses.DisplayRows; row++ {
		col := 0
		for ; col < addresses.DisplayColumns; col++ {
			c := mem.Peek(a)
			if c == newline {
				break
			}
			d[row][col] = c
			a++
		}

		// a full row must be followed by a newline. if it is not then the
		// display file is corrupt and the remainder of the screen is left
		// blank
		if mem.Peek(a) != newline {
			return d
		}
		a++
	}

	return d
}
