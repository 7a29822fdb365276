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

// Package memory implements the bus/memory model of the ZX81. The Memory type
// maps CPU reads and writes onto the ROM and the RAM pack, resolving the
// mirrors produced by the incomplete address decoding of the machine.
//
// Accesses through the Read() and Write() functions are total over the
// address space and never fail. Writes to ROM are dropped, as they are on
// the real hardware, but the most recent dropped write is recorded so that
// the machine can report it when configured to do so.
//
// Bulk installation of an image, for example the ROM itself or a program
// snapshot, is done with LoadImage() which bypasses write protection.
package memory
