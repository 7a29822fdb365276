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

package registers

import "fmt"

// Bank is one set of general purpose registers.
type Bank struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// AF returns the accumulator and flags as a register pair.
func (b *Bank) AF() uint16 {
	return uint16(b.A)<<8 | uint16(b.F)
}

// SetAF sets the accumulator and flags from a register pair value.
func (b *Bank) SetAF(v uint16) {
	b.A = uint8(v >> 8)
	b.F = uint8(v)
}

// BC returns the BC register pair.
func (b *Bank) BC() uint16 {
	return uint16(b.B)<<8 | uint16(b.C)
}

// SetBC sets the BC register pair.
func (b *Bank) SetBC(v uint16) {
	b.B = uint8(v >> 8)
	b.C = uint8(v)
}

// DE returns the DE register pair.
func (b *Bank) DE() uint16 {
	return uint16(b.D)<<8 | uint16(b.E)
}

// SetDE sets the DE register pair.
func (b *Bank) SetDE(v uint16) {
	b.D = uint8(v >> 8)
	b.E = uint8(v)
}

// HL returns the HL register pair.
func (b *Bank) HL() uint16 {
	return uint16(b.H)<<8 | uint16(b.L)
}

// SetHL sets the HL register pair.
func (b *Bank) SetHL(v uint16) {
	b.H = uint8(v >> 8)
	b.L = uint8(v)
}

// File is the complete register file of the Z80. The interrupt flip-flops and
// interrupt mode are part of the CPU type.
type File struct {
	Bank

	// the alternate bank
	Alt Bank

	IXH uint8
	IXL uint8
	IYH uint8
	IYL uint8

	SP uint16
	PC uint16

	// interrupt vector and memory refresh
	I uint8
	R uint8

	// the internal MEMPTR register. it is only visible through the X and Y
	// flags of the BIT n,(HL) instruction
	WZ uint16
}

// IX returns the IX index register.
func (f *File) IX() uint16 {
	return uint16(f.IXH)<<8 | uint16(f.IXL)
}

// SetIX sets the IX index register.
func (f *File) SetIX(v uint16) {
	f.IXH = uint8(v >> 8)
	f.IXL = uint8(v)
}

// IY returns the IY index register.
func (f *File) IY() uint16 {
	return uint16(f.IYH)<<8 | uint16(f.IYL)
}

// SetIY sets the IY index register.
func (f *File) SetIY(v uint16) {
	f.IYH = uint8(v >> 8)
	f.IYL = uint8(v)
}

// Refresh returns the value placed on the address bus during the refresh
// part of an M1 cycle.
func (f *File) Refresh() uint16 {
	return uint16(f.I)<<8 | uint16(f.R)
}

// IncrementR advances the lower seven bits of the refresh register. Bit 7 is
// unchanged.
func (f *File) IncrementR() {
	f.R = (f.R & 0x80) | ((f.R + 1) & 0x7f)
}

// ExchangeAF swaps AF with the alternate AF.
func (f *File) ExchangeAF() {
	f.A, f.Alt.A = f.Alt.A, f.A
	f.F, f.Alt.F = f.Alt.F, f.F
}

// ExchangeBanks swaps BC, DE and HL with their alternates. AF is not
// affected.
func (f *File) ExchangeBanks() {
	f.B, f.Alt.B = f.Alt.B, f.B
	f.C, f.Alt.C = f.Alt.C, f.C
	f.D, f.Alt.D = f.Alt.D, f.D
	f.E, f.Alt.E = f.Alt.E, f.E
	f.H, f.Alt.H = f.Alt.H, f.H
	f.L, f.Alt.L = f.Alt.L, f.L
}

// Reset the register file to the power on state.
func (f *File) Reset() {
	*f = File{}
	f.SetAF(0xffff)
	f.SP = 0xffff
}

func (f *File) String() string {
	return fmt.Sprintf("PC=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x SP=%04x I=%02x R=%02x [%s]",
		f.PC, f.AF(), f.BC(), f.DE(), f.HL(), f.IX(), f.IY(), f.SP, f.I, f.R, FlagsString(f.F))
}
