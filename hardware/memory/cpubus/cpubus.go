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

// Package cpubus defines the interfaces through which the CPU reaches the rest
// of the machine.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Accesses are total over the 16 bit address space and cannot fail.
// Mirrors are resolved by the implementation.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// IO defines the operations for the IO address space when accessed from the
// CPU. The port is the full 16 bit value placed on the address bus by the IN
// or OUT instruction. Devices may decode any of the sixteen lines.
type IO interface {
	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// Peeker is implemented by memory that can be read without side effects.
type Peeker interface {
	Peek(address uint16) uint8
}
