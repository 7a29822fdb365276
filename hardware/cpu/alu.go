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

import (
	"github.com/jetsetilly/gopher81/hardware/cpu/registers"
)

const (
	flagC  = registers.Carry
	flagN  = registers.Subtract
	flagPV = registers.Parity
	flagX  = registers.X
	flagH  = registers.HalfCarry
	flagY  = registers.Y
	flagZ  = registers.Zero
	flagS  = registers.Sign
	flagXY = registers.Undocumented
)

// sign, zero and undocumented bits for every byte value. sz53p also has the
// parity bit
var sz53 [256]uint8
var sz53p [256]uint8
var parity [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		sz53[i] = v & (flagS | flagXY)
		if v == 0 {
			sz53[i] |= flagZ
		}

		p := v
		p ^= p >> 4
		p ^= p >> 2
		p ^= p >> 1
		if p&0x01 == 0 {
			parity[i] = flagPV
		}

		sz53p[i] = sz53[i] | parity[i]
	}
}

func (mc *CPU) alu(op uint8, v uint8) {
	switch op {
	case 0:
		mc.add8(v, 0)
	case 1:
		mc.add8(v, mc.F&flagC)
	case 2:
		mc.A = mc.subtract(v, 0)
	case 3:
		mc.A = mc.subtract(v, mc.F&flagC)
	case 4:
		mc.A &= v
		mc.F = sz53p[mc.A] | flagH
	case 5:
		mc.A ^= v
		mc.F = sz53p[mc.A]
	case 6:
		mc.A |= v
		mc.F = sz53p[mc.A]
	case 7:
		// the undocumented flags of CP come from the operand and not the
		// result
		mc.subtract(v, 0)
		mc.F = (mc.F &^ flagXY) | (v & flagXY)
	}
}

func (mc *CPU) add8(v uint8, c uint8) {
	r := uint16(mc.A) + uint16(v) + uint16(c)
	res := uint8(r)

	f := sz53[res] | ((mc.A ^ v ^ res) & flagH)
	if (mc.A^v)&0x80 == 0 && (mc.A^res)&0x80 != 0 {
		f |= flagPV
	}
	if r > 0xff {
		f |= flagC
	}

	mc.A = res
	mc.F = f
}

// subtract sets the flags for A-v-c and returns the result. the accumulator
// is not changed.
func (mc *CPU) subtract(v uint8, c uint8) uint8 {
	r := int(mc.A) - int(v) - int(c)
	res := uint8(r)

	f := flagN | sz53[res] | ((mc.A ^ v ^ res) & flagH)
	if (mc.A^v)&0x80 != 0 && (mc.A^res)&0x80 != 0 {
		f |= flagPV
	}
	if r < 0 {
		f |= flagC
	}

	mc.F = f
	return res
}

func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	f := (mc.F & flagC) | sz53[r]
	if r&0x0f == 0 {
		f |= flagH
	}
	if r == 0x80 {
		f |= flagPV
	}
	mc.F = f
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	f := (mc.F & flagC) | flagN | sz53[r]
	if v&0x0f == 0 {
		f |= flagH
	}
	if r == 0x7f {
		f |= flagPV
	}
	mc.F = f
	return r
}

func (mc *CPU) add16(a uint16, b uint16) uint16 {
	r := uint32(a) + uint32(b)
	res := uint16(r)

	mc.WZ = a + 1
	mc.F = (mc.F & (flagS | flagZ | flagPV)) |
		(uint8(res>>8) & flagXY) |
		(uint8((a^b^res)>>8) & flagH) |
		uint8(r>>16)

	return res
}

func (mc *CPU) adc16(a uint16, b uint16) uint16 {
	r := uint32(a) + uint32(b) + uint32(mc.F&flagC)
	res := uint16(r)

	f := (uint8(res>>8) & (flagS | flagXY)) | (uint8((a^b^res)>>8) & flagH)
	if res == 0 {
		f |= flagZ
	}
	if (a^b)&0x8000 == 0 && (a^res)&0x8000 != 0 {
		f |= flagPV
	}
	if r > 0xffff {
		f |= flagC
	}

	mc.WZ = a + 1
	mc.F = f
	return res
}

func (mc *CPU) sbc16(a uint16, b uint16) uint16 {
	r := int(a) - int(b) - int(mc.F&flagC)
	res := uint16(r)

	f := flagN | (uint8(res>>8) & (flagS | flagXY)) | (uint8((a^b^res)>>8) & flagH)
	if res == 0 {
		f |= flagZ
	}
	if (a^b)&0x8000 != 0 && (a^res)&0x8000 != 0 {
		f |= flagPV
	}
	if r < 0 {
		f |= flagC
	}

	mc.WZ = a + 1
	mc.F = f
	return res
}

// rotate and shift operations of the CB table, selected by y
func (mc *CPU) rotate(y uint8, v uint8) uint8 {
	var r, c uint8

	switch y {
	case 0: // RLC
		c = v >> 7
		r = v<<1 | c
	case 1: // RRC
		c = v & 0x01
		r = v>>1 | c<<7
	case 2: // RL
		c = v >> 7
		r = v<<1 | (mc.F & flagC)
	case 3: // RR
		c = v & 0x01
		r = v>>1 | (mc.F&flagC)<<7
	case 4: // SLA
		c = v >> 7
		r = v << 1
	case 5: // SRA
		c = v & 0x01
		r = v>>1 | v&0x80
	case 6: // SLL
		c = v >> 7
		r = v<<1 | 0x01
	case 7: // SRL
		c = v & 0x01
		r = v >> 1
	}

	mc.F = sz53p[r] | c
	return r
}

// rotations of the accumulator, selected by y. the sign, zero and parity
// flags are not affected
func (mc *CPU) rotateA(y uint8) {
	var c uint8

	switch y {
	case 0: // RLCA
		c = mc.A >> 7
		mc.A = mc.A<<1 | c
	case 1: // RRCA
		c = mc.A & 0x01
		mc.A = mc.A>>1 | c<<7
	case 2: // RLA
		c = mc.A >> 7
		mc.A = mc.A<<1 | (mc.F & flagC)
	case 3: // RRA
		c = mc.A & 0x01
		mc.A = mc.A>>1 | (mc.F&flagC)<<7
	}

	mc.F = (mc.F & (flagS | flagZ | flagPV)) | (mc.A & flagXY) | c
}

// bit tests bit n of v. the undocumented flags are taken from xy
func (mc *CPU) bit(n uint8, v uint8, xy uint8) {
	f := (mc.F & flagC) | flagH | (xy & flagXY)
	if v&(1<<n) == 0 {
		f |= flagZ | flagPV
	}
	if n == 7 && v&0x80 != 0 {
		f |= flagS
	}
	mc.F = f
}

func (mc *CPU) daa() {
	var add uint8
	carry := mc.F & flagC

	if mc.F&flagH != 0 || mc.A&0x0f > 9 {
		add = 0x06
	}
	if carry != 0 || mc.A > 0x99 {
		add |= 0x60
	}
	if mc.A > 0x99 {
		carry = flagC
	}

	if mc.F&flagN != 0 {
		mc.A = mc.subtract(add, 0)
	} else {
		mc.add8(add, 0)
	}

	mc.F = (mc.F &^ (flagC | flagPV)) | carry | parity[mc.A]
}

func (mc *CPU) cpl() {
	mc.A = ^mc.A
	mc.F = (mc.F & (flagC | flagPV | flagZ | flagS)) | (mc.A & flagXY) | flagN | flagH
}

func (mc *CPU) scf() {
	mc.F = (mc.F & (flagPV | flagZ | flagS)) | (mc.A & flagXY) | flagC
}

func (mc *CPU) ccf() {
	f := (mc.F & (flagPV | flagZ | flagS)) | (mc.A & flagXY)
	if mc.F&flagC != 0 {
		f |= flagH
	} else {
		f |= flagC
	}
	mc.F = f
}

// flags for the IN r,(C) instruction and for LD A,I and LD A,R
func (mc *CPU) inFlags(v uint8) {
	mc.F = (mc.F & flagC) | sz53p[v]
}

func (mc *CPU) ldAIR(v uint8) {
	mc.A = v
	mc.F = (mc.F & flagC) | sz53[v]
	if mc.IFF2 {
		mc.F |= flagPV
	}
}
