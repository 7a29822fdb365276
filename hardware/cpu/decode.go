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
	"fmt"

	"github.com/jetsetilly/gopher81/hardware/cpu/instructions"
)

// opcode is the implementation of a single instruction. the CPU has already
// fetched the opcode, and any prefix, when the function is called.
type opcode func(mc *CPU)

// dispatch tables, indexed by opcode
var (
	baseOps [256]opcode
	cbOps   [256]opcode
	edOps   [256]opcode
	ixOps   [256]opcode
	iyOps   [256]opcode
)

func init() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		baseOps[op] = decode(op, nil)
		ixOps[op] = decode(op, useIX)
		iyOps[op] = decode(op, useIY)
		cbOps[op] = decodeCB(op)
		edOps[op] = decodeED(op)
	}
}

// index selects the register that replaces HL. a nil index selects HL itself.
type index func(mc *CPU) (hi *uint8, lo *uint8)

func useIX(mc *CPU) (*uint8, *uint8) {
	return &mc.IXH, &mc.IXL
}

func useIY(mc *CPU) (*uint8, *uint8) {
	return &mc.IYH, &mc.IYL
}

func split(op uint8) (x, y, z, p, q uint8) {
	x = op >> 6
	y = (op >> 3) & 0x07
	z = op & 0x07
	p = y >> 1
	q = y & 0x01
	return
}

func (mc *CPU) hl(idx index) uint16 {
	if idx == nil {
		return mc.HL()
	}
	h, l := idx(mc)
	return uint16(*h)<<8 | uint16(*l)
}

func (mc *CPU) setHL(idx index, v uint16) {
	if idx == nil {
		mc.SetHL(v)
		return
	}
	h, l := idx(mc)
	*h = uint8(v >> 8)
	*l = uint8(v)
}

// reg returns the register for the r operand of an instruction. operand 6 is
// a memory reference and is never a register.
func (mc *CPU) reg(idx index, r uint8) *uint8 {
	switch r {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		if idx != nil {
			h, _ := idx(mc)
			return h
		}
		return &mc.H
	case 5:
		if idx != nil {
			_, l := idx(mc)
			return l
		}
		return &mc.L
	case 7:
		return &mc.A
	}
	panic(fmt.Sprintf("cpu: operand %d is not a register", r))
}

// memory returns the address for a (HL) operand. with an index register the
// displacement is fetched and added to the index.
func (mc *CPU) memory(idx index) uint16 {
	if idx == nil {
		return mc.HL()
	}
	d := int8(mc.fetchByte())
	a := mc.hl(idx) + uint16(d)
	mc.WZ = a
	return a
}

func (mc *CPU) rp(idx index, p uint8) uint16 {
	switch p {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.hl(idx)
	}
	return mc.SP
}

func (mc *CPU) setRP(idx index, p uint8, v uint16) {
	switch p {
	case 0:
		mc.SetBC(v)
	case 1:
		mc.SetDE(v)
	case 2:
		mc.setHL(idx, v)
	default:
		mc.SP = v
	}
}

func (mc *CPU) rp2(idx index, p uint8) uint16 {
	if p == 3 {
		return mc.AF()
	}
	return mc.rp(idx, p)
}

func (mc *CPU) setRP2(idx index, p uint8, v uint16) {
	if p == 3 {
		mc.SetAF(v)
		return
	}
	mc.setRP(idx, p, v)
}

func (mc *CPU) condition(y uint8) bool {
	switch y {
	case 0:
		return mc.F&flagZ == 0
	case 1:
		return mc.F&flagZ != 0
	case 2:
		return mc.F&flagC == 0
	case 3:
		return mc.F&flagC != 0
	case 4:
		return mc.F&flagPV == 0
	case 5:
		return mc.F&flagPV != 0
	case 6:
		return mc.F&flagS == 0
	}
	return mc.F&flagS != 0
}

// jump relative and record that the branch was taken
func (mc *CPU) jr(e int8) {
	mc.PC += uint16(e)
	mc.WZ = mc.PC
	mc.LastResult.Taken = true
}

// indexed handles the DD and FD prefixes
func (mc *CPU) indexed(prefix instructions.Prefix, bitPrefix instructions.Prefix, ops *[256]opcode, idx index) {
	// a prefix followed by another prefix has no effect. the following prefix
	// is left to be decoded by the next step
	switch mc.mem.Read(mc.PC) {
	case 0xdd, 0xed, 0xfd:
		mc.LastResult.Defn = &instructions.IgnoredPrefix
		return
	}

	op := mc.fetchOpcode()
	if op == 0xcb {
		a := mc.memory(idx)
		op = mc.fetchByte()
		mc.LastResult.Defn = instructions.Lookup(bitPrefix, op)
		mc.indexedBit(op, a)
		return
	}

	mc.LastResult.Defn = instructions.Lookup(prefix, op)
	ops[op](mc)
}

func (mc *CPU) indexedBit(op uint8, a uint16) {
	x, y, z, _, _ := split(op)

	v := mc.read(a)
	switch x {
	case 0:
		v = mc.rotate(y, v)
	case 1:
		mc.bit(y, v, uint8(a>>8))
		return
	case 2:
		v &^= 1 << y
	case 3:
		v |= 1 << y
	}

	mc.write(a, v)
	if z != 6 {
		*mc.reg(nil, z) = v
	}
}

// decode returns the implementation of an unprefixed opcode. with a non-nil
// index the implementation is for the same opcode following a DD or FD prefix.
func decode(op uint8, idx index) opcode {
	x, y, z, p, q := split(op)

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return func(mc *CPU) {}
			case 1:
				return func(mc *CPU) {
					mc.ExchangeAF()
				}
			case 2:
				return func(mc *CPU) {
					e := int8(mc.fetchByte())
					mc.B--
					if mc.B != 0 {
						mc.jr(e)
					}
				}
			case 3:
				return func(mc *CPU) {
					e := int8(mc.fetchByte())
					mc.PC += uint16(e)
					mc.WZ = mc.PC
				}
			}
			cc := y - 4
			return func(mc *CPU) {
				e := int8(mc.fetchByte())
				if mc.condition(cc) {
					mc.jr(e)
				}
			}

		case 1:
			if q == 0 {
				return func(mc *CPU) {
					mc.setRP(idx, p, mc.fetchWord())
				}
			}
			return func(mc *CPU) {
				mc.setHL(idx, mc.add16(mc.hl(idx), mc.rp(idx, p)))
			}

		case 2:
			switch y {
			case 0:
				return func(mc *CPU) {
					mc.write(mc.BC(), mc.A)
					mc.WZ = uint16(mc.A)<<8 | ((mc.BC() + 1) & 0xff)
				}
			case 1:
				return func(mc *CPU) {
					mc.A = mc.read(mc.BC())
					mc.WZ = mc.BC() + 1
				}
			case 2:
				return func(mc *CPU) {
					mc.write(mc.DE(), mc.A)
					mc.WZ = uint16(mc.A)<<8 | ((mc.DE() + 1) & 0xff)
				}
			case 3:
				return func(mc *CPU) {
					mc.A = mc.read(mc.DE())
					mc.WZ = mc.DE() + 1
				}
			case 4:
				return func(mc *CPU) {
					a := mc.fetchWord()
					mc.write16(a, mc.hl(idx))
					mc.WZ = a + 1
				}
			case 5:
				return func(mc *CPU) {
					a := mc.fetchWord()
					mc.setHL(idx, mc.read16(a))
					mc.WZ = a + 1
				}
			case 6:
				return func(mc *CPU) {
					a := mc.fetchWord()
					mc.write(a, mc.A)
					mc.WZ = uint16(mc.A)<<8 | ((a + 1) & 0xff)
				}
			}
			return func(mc *CPU) {
				a := mc.fetchWord()
				mc.A = mc.read(a)
				mc.WZ = a + 1
			}

		case 3:
			if q == 0 {
				return func(mc *CPU) {
					mc.setRP(idx, p, mc.rp(idx, p)+1)
				}
			}
			return func(mc *CPU) {
				mc.setRP(idx, p, mc.rp(idx, p)-1)
			}

		case 4:
			if y == 6 {
				return func(mc *CPU) {
					a := mc.memory(idx)
					mc.write(a, mc.inc8(mc.read(a)))
				}
			}
			return func(mc *CPU) {
				r := mc.reg(idx, y)
				*r = mc.inc8(*r)
			}

		case 5:
			if y == 6 {
				return func(mc *CPU) {
					a := mc.memory(idx)
					mc.write(a, mc.dec8(mc.read(a)))
				}
			}
			return func(mc *CPU) {
				r := mc.reg(idx, y)
				*r = mc.dec8(*r)
			}

		case 6:
			if y == 6 {
				return func(mc *CPU) {
					a := mc.memory(idx)
					mc.write(a, mc.fetchByte())
				}
			}
			return func(mc *CPU) {
				*mc.reg(idx, y) = mc.fetchByte()
			}
		}

		switch y {
		case 4:
			return func(mc *CPU) {
				mc.daa()
			}
		case 5:
			return func(mc *CPU) {
				mc.cpl()
			}
		case 6:
			return func(mc *CPU) {
				mc.scf()
			}
		case 7:
			return func(mc *CPU) {
				mc.ccf()
			}
		}
		return func(mc *CPU) {
			mc.rotateA(y)
		}

	case 1:
		if op == 0x76 {
			return func(mc *CPU) {
				mc.Halted = true
			}
		}
		if y == 6 {
			return func(mc *CPU) {
				a := mc.memory(idx)
				mc.write(a, *mc.reg(nil, z))
			}
		}
		if z == 6 {
			return func(mc *CPU) {
				a := mc.memory(idx)
				*mc.reg(nil, y) = mc.read(a)
			}
		}
		return func(mc *CPU) {
			*mc.reg(idx, y) = *mc.reg(idx, z)
		}

	case 2:
		if z == 6 {
			return func(mc *CPU) {
				mc.alu(y, mc.read(mc.memory(idx)))
			}
		}
		return func(mc *CPU) {
			mc.alu(y, *mc.reg(idx, z))
		}
	}

	switch z {
	case 0:
		return func(mc *CPU) {
			if mc.condition(y) {
				mc.PC = mc.pop()
				mc.WZ = mc.PC
				mc.LastResult.Taken = true
			}
		}

	case 1:
		if q == 0 {
			return func(mc *CPU) {
				mc.setRP2(idx, p, mc.pop())
			}
		}
		switch p {
		case 0:
			return func(mc *CPU) {
				mc.PC = mc.pop()
				mc.WZ = mc.PC
			}
		case 1:
			return func(mc *CPU) {
				mc.ExchangeBanks()
			}
		case 2:
			return func(mc *CPU) {
				mc.PC = mc.hl(idx)
			}
		}
		return func(mc *CPU) {
			mc.SP = mc.hl(idx)
		}

	case 2:
		return func(mc *CPU) {
			a := mc.fetchWord()
			mc.WZ = a
			if mc.condition(y) {
				mc.PC = a
			}
		}

	case 3:
		switch y {
		case 0:
			return func(mc *CPU) {
				mc.PC = mc.fetchWord()
				mc.WZ = mc.PC
			}
		case 1:
			if idx != nil {
				// handled by CPU.indexed()
				return nil
			}
			return func(mc *CPU) {
				op := mc.fetchOpcode()
				mc.LastResult.Defn = instructions.Lookup(instructions.CB, op)
				cbOps[op](mc)
			}
		case 2:
			return func(mc *CPU) {
				n := mc.fetchByte()
				mc.out(uint16(mc.A)<<8|uint16(n), mc.A)
				mc.WZ = uint16(mc.A)<<8 | uint16(n+1)
			}
		case 3:
			return func(mc *CPU) {
				port := uint16(mc.A)<<8 | uint16(mc.fetchByte())
				mc.A = mc.in(port)
				mc.WZ = port + 1
			}
		case 4:
			return func(mc *CPU) {
				v := mc.read16(mc.SP)
				mc.write16(mc.SP, mc.hl(idx))
				mc.setHL(idx, v)
				mc.WZ = v
			}
		case 5:
			// EX DE,HL is not affected by an index prefix
			return func(mc *CPU) {
				de := mc.DE()
				mc.SetDE(mc.HL())
				mc.SetHL(de)
			}
		case 6:
			return func(mc *CPU) {
				mc.IFF1 = false
				mc.IFF2 = false
			}
		}
		return func(mc *CPU) {
			mc.IFF1 = true
			mc.IFF2 = true
			mc.eiDelay = true
		}

	case 4:
		return func(mc *CPU) {
			a := mc.fetchWord()
			mc.WZ = a
			if mc.condition(y) {
				mc.push(mc.PC)
				mc.PC = a
				mc.LastResult.Taken = true
			}
		}

	case 5:
		if q == 0 {
			return func(mc *CPU) {
				mc.push(mc.rp2(idx, p))
			}
		}
		switch p {
		case 0:
			return func(mc *CPU) {
				a := mc.fetchWord()
				mc.push(mc.PC)
				mc.PC = a
				mc.WZ = a
			}
		case 1:
			if idx != nil {
				return nil
			}
			return func(mc *CPU) {
				mc.indexed(instructions.DD, instructions.DDCB, &ixOps, useIX)
			}
		case 2:
			if idx != nil {
				return nil
			}
			return func(mc *CPU) {
				op := mc.fetchOpcode()
				mc.LastResult.Defn = instructions.Lookup(instructions.ED, op)
				edOps[op](mc)
			}
		}
		if idx != nil {
			return nil
		}
		return func(mc *CPU) {
			mc.indexed(instructions.FD, instructions.FDCB, &iyOps, useIY)
		}

	case 6:
		return func(mc *CPU) {
			mc.alu(y, mc.fetchByte())
		}
	}

	return func(mc *CPU) {
		mc.push(mc.PC)
		mc.PC = uint16(y) * 8
		mc.WZ = mc.PC
	}
}

func decodeCB(op uint8) opcode {
	x, y, z, _, _ := split(op)

	if z == 6 {
		return func(mc *CPU) {
			a := mc.HL()
			v := mc.read(a)
			switch x {
			case 0:
				mc.write(a, mc.rotate(y, v))
			case 1:
				mc.bit(y, v, uint8(mc.WZ>>8))
			case 2:
				mc.write(a, v&^(1<<y))
			case 3:
				mc.write(a, v|(1<<y))
			}
		}
	}

	return func(mc *CPU) {
		r := mc.reg(nil, z)
		switch x {
		case 0:
			*r = mc.rotate(y, *r)
		case 1:
			mc.bit(y, *r, *r)
		case 2:
			*r &^= 1 << y
		case 3:
			*r |= 1 << y
		}
	}
}

func decodeED(op uint8) opcode {
	x, y, z, p, q := split(op)

	if x == 2 && z <= 3 && y >= 4 {
		return decodeBlock(y, z)
	}

	if x != 1 {
		return func(mc *CPU) {}
	}

	switch z {
	case 0:
		return func(mc *CPU) {
			v := mc.in(mc.BC())
			mc.inFlags(v)
			if y != 6 {
				*mc.reg(nil, y) = v
			}
			mc.WZ = mc.BC() + 1
		}
	case 1:
		return func(mc *CPU) {
			var v uint8
			if y != 6 {
				v = *mc.reg(nil, y)
			}
			mc.out(mc.BC(), v)
			mc.WZ = mc.BC() + 1
		}
	case 2:
		if q == 0 {
			return func(mc *CPU) {
				mc.SetHL(mc.sbc16(mc.HL(), mc.rp(nil, p)))
			}
		}
		return func(mc *CPU) {
			mc.SetHL(mc.adc16(mc.HL(), mc.rp(nil, p)))
		}
	case 3:
		if q == 0 {
			return func(mc *CPU) {
				a := mc.fetchWord()
				mc.write16(a, mc.rp(nil, p))
				mc.WZ = a + 1
			}
		}
		return func(mc *CPU) {
			a := mc.fetchWord()
			mc.setRP(nil, p, mc.read16(a))
			mc.WZ = a + 1
		}
	case 4:
		return func(mc *CPU) {
			v := mc.A
			mc.A = 0
			mc.A = mc.subtract(v, 0)
		}
	case 5:
		// RETI and RETN both restore IFF1 from IFF2
		return func(mc *CPU) {
			mc.PC = mc.pop()
			mc.WZ = mc.PC
			mc.IFF1 = mc.IFF2
		}
	case 6:
		mode := [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}[y]
		return func(mc *CPU) {
			mc.IM = mode
		}
	}

	switch y {
	case 0:
		return func(mc *CPU) {
			mc.I = mc.A
		}
	case 1:
		return func(mc *CPU) {
			mc.R = mc.A
		}
	case 2:
		return func(mc *CPU) {
			mc.ldAIR(mc.I)
		}
	case 3:
		return func(mc *CPU) {
			mc.ldAIR(mc.R)
		}
	case 4:
		return func(mc *CPU) {
			v := mc.read(mc.HL())
			mc.write(mc.HL(), mc.A<<4|v>>4)
			mc.A = mc.A&0xf0 | v&0x0f
			mc.inFlags(mc.A)
			mc.WZ = mc.HL() + 1
		}
	case 5:
		return func(mc *CPU) {
			v := mc.read(mc.HL())
			mc.write(mc.HL(), v<<4|mc.A&0x0f)
			mc.A = mc.A&0xf0 | v>>4
			mc.inFlags(mc.A)
			mc.WZ = mc.HL() + 1
		}
	}

	return func(mc *CPU) {}
}
