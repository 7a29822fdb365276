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

// Package registers implements the register file of the Z80.
//
// The general purpose registers are held in two banks of the same type. The
// main bank is embedded in the File type so that registers can be accessed
// directly, for example:
//
//	f.A = 0x10
//	f.SetHL(0x4000)
//
// The alternate bank is only ever reached by exchanging it with the main bank
// with ExchangeAF() or ExchangeBanks(). There is no other way of sharing state
// between the two.
package registers
