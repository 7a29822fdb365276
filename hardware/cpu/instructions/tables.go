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

package instructions

import (
	"fmt"
	"strings"
)

var (
	r8  = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	rp  = [4]string{"BC", "DE", "HL", "SP"}
	rp2 = [4]string{"BC", "DE", "HL", "AF"}
	cc  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	alu = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rot = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
)

// register names as affected by an index prefix
type names struct {
	hl  string
	h   string
	l   string
	mem string
}

var plain = names{hl: "HL", h: "H", l: "L", mem: "(HL)"}

func (n names) r(i uint8) string {
	switch i {
	case 4:
		return n.h
	case 5:
		return n.l
	case 6:
		return n.mem
	}
	return r8[i]
}

func (n names) rp(i uint8) string {
	if i == 2 {
		return n.hl
	}
	return rp[i]
}

func (n names) rp2(i uint8) string {
	if i == 2 {
		return n.hl
	}
	return rp2[i]
}

// T-states for the unprefixed instructions with x equal to 0 and 3. the
// instructions with x equal to 1 or 2 follow a simple rule.
var cyclesX0 = [64]int{
	4, 10, 7, 6, 4, 4, 7, 4, 4, 11, 7, 6, 4, 4, 7, 4,
	8, 10, 7, 6, 4, 4, 7, 4, 12, 11, 7, 6, 4, 4, 7, 4,
	7, 10, 16, 6, 4, 4, 7, 4, 7, 11, 16, 6, 4, 4, 7, 4,
	7, 10, 13, 6, 11, 11, 10, 4, 7, 11, 13, 6, 4, 4, 7, 4,
}

var cyclesX3 = [64]int{
	5, 10, 10, 10, 10, 11, 7, 11, 5, 10, 10, 0, 10, 17, 7, 11,
	5, 10, 10, 11, 10, 11, 7, 11, 5, 4, 10, 11, 10, 0, 7, 11,
	5, 10, 10, 19, 10, 11, 7, 11, 5, 4, 10, 4, 10, 0, 7, 11,
	5, 10, 10, 4, 10, 11, 7, 11, 5, 6, 10, 4, 10, 0, 7, 11,
}

func split(op uint8) (x, y, z, p, q uint8) {
	x = op >> 6
	y = (op >> 3) & 0x07
	z = op & 0x07
	p = y >> 1
	q = y & 0x01
	return
}

// usesMemory returns true if the unprefixed instruction has (HL) as an
// operand. with an index prefix these instructions take a displacement byte.
func usesMemory(op uint8) bool {
	x, y, z, _, _ := split(op)
	switch x {
	case 0:
		return y == 6 && (z == 4 || z == 5 || z == 6)
	case 1:
		return (y == 6 || z == 6) && op != 0x76
	case 2:
		return z == 6
	}
	return false
}

func baseMnemonic(op uint8, n names) string {
	x, y, z, p, q := split(op)

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return "NOP"
			case 1:
				return "EX AF,AF'"
			case 2:
				return "DJNZ e"
			case 3:
				return "JR e"
			}
			return fmt.Sprintf("JR %s,e", cc[y-4])
		case 1:
			if q == 0 {
				return fmt.Sprintf("LD %s,nn", n.rp(p))
			}
			return fmt.Sprintf("ADD %s,%s", n.hl, n.rp(p))
		case 2:
			switch y {
			case 0:
				return "LD (BC),A"
			case 1:
				return "LD A,(BC)"
			case 2:
				return "LD (DE),A"
			case 3:
				return "LD A,(DE)"
			case 4:
				return fmt.Sprintf("LD (nn),%s", n.hl)
			case 5:
				return fmt.Sprintf("LD %s,(nn)", n.hl)
			case 6:
				return "LD (nn),A"
			}
			return "LD A,(nn)"
		case 3:
			if q == 0 {
				return fmt.Sprintf("INC %s", n.rp(p))
			}
			return fmt.Sprintf("DEC %s", n.rp(p))
		case 4:
			return fmt.Sprintf("INC %s", n.r(y))
		case 5:
			return fmt.Sprintf("DEC %s", n.r(y))
		case 6:
			return fmt.Sprintf("LD %s,n", n.r(y))
		}
		return [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}[y]

	case 1:
		if op == 0x76 {
			return "HALT"
		}
		// the H and L registers are not replaced by their index halves when
		// the other operand is a memory reference
		if y == 6 || z == 6 {
			m := n
			m.h = "H"
			m.l = "L"
			n = m
		}
		return fmt.Sprintf("LD %s,%s", n.r(y), n.r(z))

	case 2:
		return fmt.Sprintf("%s%s", alu[y], n.r(z))
	}

	switch z {
	case 0:
		return fmt.Sprintf("RET %s", cc[y])
	case 1:
		if q == 0 {
			return fmt.Sprintf("POP %s", n.rp2(p))
		}
		switch p {
		case 0:
			return "RET"
		case 1:
			return "EXX"
		case 2:
			return fmt.Sprintf("JP (%s)", n.hl)
		}
		return fmt.Sprintf("LD SP,%s", n.hl)
	case 2:
		return fmt.Sprintf("JP %s,nn", cc[y])
	case 3:
		switch y {
		case 0:
			return "JP nn"
		case 1:
			return "prefix CB"
		case 2:
			return "OUT (n),A"
		case 3:
			return "IN A,(n)"
		case 4:
			return fmt.Sprintf("EX (SP),%s", n.hl)
		case 5:
			return "EX DE,HL"
		case 6:
			return "DI"
		}
		return "EI"
	case 4:
		return fmt.Sprintf("CALL %s,nn", cc[y])
	case 5:
		if q == 0 {
			return fmt.Sprintf("PUSH %s", n.rp2(p))
		}
		return [4]string{"CALL nn", "prefix DD", "prefix ED", "prefix FD"}[p]
	case 6:
		return fmt.Sprintf("%sn", alu[y])
	}
	return fmt.Sprintf("RST %02xh", y*8)
}

func baseBytes(op uint8) int {
	x, y, z, p, q := split(op)

	switch x {
	case 0:
		switch z {
		case 0:
			if y < 2 {
				return 1
			}
			return 2
		case 1:
			if q == 0 {
				return 3
			}
			return 1
		case 2:
			if p < 2 {
				return 1
			}
			return 3
		case 6:
			return 2
		}
		return 1
	case 1, 2:
		return 1
	}

	switch z {
	case 2, 4:
		return 3
	case 3:
		switch y {
		case 0:
			return 3
		case 1:
			return 0
		case 2, 3:
			return 2
		}
		return 1
	case 5:
		if q == 0 {
			return 1
		}
		if p == 0 {
			return 3
		}
		return 0
	case 6:
		return 2
	}
	return 1
}

func baseCycles(op uint8) (int, int) {
	x, _, z, _, _ := split(op)

	switch x {
	case 0:
		c := cyclesX0[op]
		switch op {
		case 0x10:
			return c, 13
		case 0x20, 0x28, 0x30, 0x38:
			return c, 12
		}
		return c, 0
	case 1, 2:
		if usesMemory(op) {
			return 7, 0
		}
		return 4, 0
	}

	c := cyclesX3[op&0x3f]
	switch z {
	case 0:
		return c, 11
	case 4:
		return c, 17
	}
	return c, 0
}

func buildBase() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		c, t := baseCycles(op)
		tables[None][op] = Definition{
			Prefix:   None,
			OpCode:   op,
			Mnemonic: baseMnemonic(op, plain),
			Bytes:    baseBytes(op),
			Cycles:   c,
			Taken:    t,
		}
	}
}

// the index tables are derived from the unprefixed table. instructions that
// reference (HL) take a displacement byte and eight more T-states than the
// unprefixed equivalent (five more for LD (IX+d),n). all other instructions
// take one more byte and four more T-states.
func buildIndex(prefix Prefix, reg string) {
	index := names{hl: reg, h: reg + "H", l: reg + "L", mem: fmt.Sprintf("(%s+d)", reg)}

	for i := 0; i < 256; i++ {
		op := uint8(i)
		base := tables[None][op]

		defn := Definition{
			Prefix:   prefix,
			OpCode:   op,
			Mnemonic: baseMnemonic(op, index),
			Bytes:    base.Bytes + 1,
			Cycles:   base.Cycles + 4,
		}
		if base.Taken != 0 {
			defn.Taken = base.Taken + 4
		}

		if usesMemory(op) {
			defn.Bytes++
			if op == 0x36 {
				defn.Cycles += 5
			} else {
				defn.Cycles += 8
			}
		}

		// the prefix has no effect on the instruction or the instruction
		// uses one half of the index register
		if defn.Mnemonic == base.Mnemonic || strings.Contains(defn.Mnemonic, index.h) || strings.Contains(defn.Mnemonic, index.l) {
			defn.Undocumented = true
		}

		// prefix bytes are handled by the CPU before the index table is
		// consulted
		if base.IsPrefix() {
			defn = Definition{
				Prefix:   prefix,
				OpCode:   op,
				Mnemonic: base.Mnemonic,
			}
		}

		tables[prefix][op] = defn
	}
}

func buildCB() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		x, y, z, _, _ := split(op)

		defn := Definition{
			Prefix: CB,
			OpCode: op,
			Bytes:  2,
			Cycles: 8,
		}

		switch x {
		case 0:
			defn.Mnemonic = fmt.Sprintf("%s %s", rot[y], r8[z])
			defn.Undocumented = y == 6
		case 1:
			defn.Mnemonic = fmt.Sprintf("BIT %d,%s", y, r8[z])
		case 2:
			defn.Mnemonic = fmt.Sprintf("RES %d,%s", y, r8[z])
		case 3:
			defn.Mnemonic = fmt.Sprintf("SET %d,%s", y, r8[z])
		}

		if z == 6 {
			if x == 1 {
				defn.Cycles = 12
			} else {
				defn.Cycles = 15
			}
		}

		tables[CB][op] = defn
	}
}

func buildIndexCB(prefix Prefix, reg string) {
	mem := fmt.Sprintf("(%s+d)", reg)

	for i := 0; i < 256; i++ {
		op := uint8(i)
		x, y, z, _, _ := split(op)

		defn := Definition{
			Prefix:       prefix,
			OpCode:       op,
			Bytes:        4,
			Cycles:       23,
			Undocumented: z != 6,
		}

		// the result of a rotate, shift, set or reset is also copied to a
		// register for opcodes that would otherwise reference a register
		copyTo := ""
		if z != 6 {
			copyTo = fmt.Sprintf(",%s", r8[z])
		}

		switch x {
		case 0:
			defn.Mnemonic = fmt.Sprintf("%s %s%s", rot[y], mem, copyTo)
		case 1:
			defn.Mnemonic = fmt.Sprintf("BIT %d,%s", y, mem)
			defn.Cycles = 20
		case 2:
			defn.Mnemonic = fmt.Sprintf("RES %d,%s%s", y, mem, copyTo)
		case 3:
			defn.Mnemonic = fmt.Sprintf("SET %d,%s%s", y, mem, copyTo)
		}

		tables[prefix][op] = defn
	}
}

func buildED() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		x, y, z, p, q := split(op)

		defn := Definition{
			Prefix:       ED,
			OpCode:       op,
			Mnemonic:     "NOP",
			Bytes:        2,
			Cycles:       8,
			Undocumented: true,
		}

		switch {
		case x == 1:
			defn.Undocumented = false
			switch z {
			case 0:
				defn.Cycles = 12
				if y == 6 {
					defn.Mnemonic = "IN (C)"
					defn.Undocumented = true
				} else {
					defn.Mnemonic = fmt.Sprintf("IN %s,(C)", r8[y])
				}
			case 1:
				defn.Cycles = 12
				if y == 6 {
					defn.Mnemonic = "OUT (C),0"
					defn.Undocumented = true
				} else {
					defn.Mnemonic = fmt.Sprintf("OUT (C),%s", r8[y])
				}
			case 2:
				defn.Cycles = 15
				if q == 0 {
					defn.Mnemonic = fmt.Sprintf("SBC HL,%s", rp[p])
				} else {
					defn.Mnemonic = fmt.Sprintf("ADC HL,%s", rp[p])
				}
			case 3:
				defn.Cycles = 20
				defn.Bytes = 4
				if q == 0 {
					defn.Mnemonic = fmt.Sprintf("LD (nn),%s", rp[p])
				} else {
					defn.Mnemonic = fmt.Sprintf("LD %s,(nn)", rp[p])
				}
			case 4:
				defn.Mnemonic = "NEG"
				defn.Undocumented = y != 0
			case 5:
				defn.Cycles = 14
				if y == 1 {
					defn.Mnemonic = "RETI"
				} else {
					defn.Mnemonic = "RETN"
				}
				defn.Undocumented = y > 1
			case 6:
				defn.Mnemonic = fmt.Sprintf("IM %s", [8]string{"0", "0/1", "1", "2", "0", "0/1", "1", "2"}[y])
				defn.Undocumented = y == 1 || y >= 4
			case 7:
				defn.Mnemonic = [8]string{"LD I,A", "LD R,A", "LD A,I", "LD A,R", "RRD", "RLD", "NOP", "NOP"}[y]
				defn.Cycles = [8]int{9, 9, 9, 9, 18, 18, 8, 8}[y]
				defn.Undocumented = y >= 6
			}

		case x == 2 && z <= 3 && y >= 4:
			defn.Undocumented = false
			defn.Mnemonic = [4][4]string{
				{"LDI", "CPI", "INI", "OUTI"},
				{"LDD", "CPD", "IND", "OUTD"},
				{"LDIR", "CPIR", "INIR", "OTIR"},
				{"LDDR", "CPDR", "INDR", "OTDR"},
			}[y-4][z]
			defn.Cycles = 16
			if y >= 6 {
				defn.Taken = 21
			}
		}

		tables[ED][op] = defn
	}
}

func init() {
	buildBase()
	buildCB()
	buildED()
	buildIndex(DD, "IX")
	buildIndex(FD, "IY")
	buildIndexCB(DDCB, "IX")
	buildIndexCB(FDCB, "IY")
}
