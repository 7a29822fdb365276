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

// Package instructions defines every instruction of the Z80 in each of its
// prefix tables. A Definition records the size of the instruction and the
// number of T-states it takes. Instructions that are conditional, or that
// repeat, also record the number of T-states taken when the condition is met.
//
// The tables are built once, when the package is initialised, from the
// regular structure of the Z80 opcode map: an opcode is split into the
// fields x (bits 6-7), y (bits 3-5) and z (bits 0-2), with y further split
// into p (bits 4-5) and q (bit 3).
//
// The definitions are used by the CPU to account for the cycles of each step
// and by the execution package to check that a step was consistent with the
// instruction decoded.
package instructions
