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

// Package disassembly produces Z80 disassemblies of the memory of a ZX81.
//
// Every address in the requested range is first decoded as though it were
// the start of an instruction. These are decoded entries. The flow of the
// program is then followed from a list of entry points, by default the
// restart addresses and the interrupt routines. Instructions reached by the
// flow are blessed. A listing shows blessed entries as code and everything
// else as data.
//
// The flow cannot see computed jumps, the inline data that follows some
// restart routines in the ZX81 ROM or code that is only reached through a
// table of addresses. Extra entry points can be given to FromMemory() for
// these cases.
//
// Operands that refer to a system variable are shown with the name of the
// variable.
package disassembly
