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

package cpu

// decodeBlock returns the implementation of the block transfer, search and IO
// instructions. y selects between increment (4), decrement (5) and their
// repeating forms (6 and 7). z selects the operation.
func decodeBlock(y uint8, z uint8) opcode {
	inc := uint16(0x0001)
	if y&0x01 == 0x01 {
		inc = 0xffff
	}
	repeat := y >= 6

	var step func(mc *CPU) bool

	switch z {
	case 0:
		step = func(mc *CPU) bool {
			return mc.ldx(inc)
		}
	case 1:
		step = func(mc *CPU) bool {
			return mc.cpx(inc)
		}
	case 2:
		step = func(mc *CPU) bool {
			return mc.inx(inc)
		}
	default:
		step = func(mc *CPU) bool {
			return mc.outx(inc)
		}
	}

	if !repeat {
		return func(mc *CPU) {
			step(mc)
		}
	}

	return func(mc *CPU) {
		if step(mc) {
			mc.PC -= 2
			mc.WZ = mc.PC + 1
			mc.LastResult.Taken = true
		}
	}
}

// ldx is LDI or LDD. returns true if the repeating form should repeat.
func (mc *CPU) ldx(inc uint16) bool {
	v := mc.read(mc.HL())
	mc.write(mc.DE(), v)
	mc.SetHL(mc.HL() + inc)
	mc.SetDE(mc.DE() + inc)
	mc.SetBC(mc.BC() - 1)

	n := v + mc.A
	mc.F = (mc.F & (flagS | flagZ | flagC)) | (n & flagX) | ((n << 4) & flagY)
	if mc.BC() != 0 {
		mc.F |= flagPV
	}

	return mc.BC() != 0
}

// cpx is CPI or CPD. returns true if the repeating form should repeat.
func (mc *CPU) cpx(inc uint16) bool {
	v := mc.read(mc.HL())
	r := mc.A - v
	h := (mc.A ^ v ^ r) & flagH

	mc.SetHL(mc.HL() + inc)
	mc.SetBC(mc.BC() - 1)
	mc.WZ += inc

	n := r - h>>4
	mc.F = (mc.F & flagC) | flagN | (sz53[r] & (flagS | flagZ)) | h | (n & flagX) | ((n << 4) & flagY)
	if mc.BC() != 0 {
		mc.F |= flagPV
	}

	return mc.BC() != 0 && r != 0
}

// inx is INI or IND. returns true if the repeating form should repeat.
func (mc *CPU) inx(inc uint16) bool {
	v := mc.in(mc.BC())
	mc.WZ = mc.BC() + inc
	mc.write(mc.HL(), v)
	mc.B--
	mc.SetHL(mc.HL() + inc)

	mc.blockIOFlags(v, uint16(v)+uint16(mc.C+uint8(inc)))

	return mc.B != 0
}

// outx is OUTI or OUTD. returns true if the repeating form should repeat.
func (mc *CPU) outx(inc uint16) bool {
	v := mc.read(mc.HL())
	mc.B--
	mc.out(mc.BC(), v)
	mc.SetHL(mc.HL() + inc)
	mc.WZ = mc.BC() + inc

	mc.blockIOFlags(v, uint16(v)+uint16(mc.L))

	return mc.B != 0
}

func (mc *CPU) blockIOFlags(v uint8, k uint16) {
	f := sz53[mc.B]
	if v&0x80 != 0 {
		f |= flagN
	}
	if k > 0xff {
		f |= flagH | flagC
	}
	f |= parity[(uint8(k)&0x07)^mc.B]
	mc.F = f
}
