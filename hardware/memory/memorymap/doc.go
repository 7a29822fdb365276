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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The ZX81 decodes only a few of the address lines when selecting between the
// ROM and the RAM. A15 is never decoded at all, so the top half of the address
// space is a mirror of the bottom half. Within the bottom half, A14 selects
// between ROM and RAM and A13 is ignored for ROM accesses. For RAM, how many
// of the remaining address lines are decoded depends on the size of the RAM
// pack.
//
// The top half of the address space is important for display generation. The
// ULA watches for instruction fetches with A15 set and it is the execution of
// the display file in the mirror that produces the picture.
package memorymap
