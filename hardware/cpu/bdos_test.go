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

package cpu_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/gopher81/hardware/cpu"
	"github.com/jetsetilly/gopher81/test"
)

// the smallest part of CP/M needed to run a program: the BDOS entry point at
// 0005h supports console output (function 2) and string output (function 9).
// the program ends when it jumps to 0000h.
func runBDOS(t *testing.T, mc *cpu.CPU, mem *mockMem, output io.Writer) int {
	t.Helper()

	const bdos = 0x0005
	mem.putInstructions(bdos, 0xc9)

	mc.PC = 0x0100
	mc.SP = 0xf000

	var cycles int
	for n := 0; mc.PC != 0x0000; n++ {
		if n > 100000 {
			t.Fatalf("program did not finish")
		}

		if mc.PC == bdos {
			switch mc.C {
			case 2:
				output.Write([]byte{mc.E})
			case 9:
				for a := mc.DE(); mem.data[a] != '$'; a++ {
					output.Write([]byte{mem.data[a]})
				}
			}
		}

		cycles += step(t, mc)
	}

	return cycles
}

func TestBDOS(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	mem.putInstructions(0x0100,
		0x21, 0x20, 0x01, // LD HL,0120h
		0x11, 0x00, 0x02, // LD DE,0200h
		0x01, 0x06, 0x00, // LD BC,6
		0xed, 0xb0, // LDIR
		0x11, 0x00, 0x02, // LD DE,0200h
		0x0e, 0x09, // LD C,9
		0xcd, 0x05, 0x00, // CALL 0005h
		0x1e, 0x21, // LD E,'!'
		0x0e, 0x02, // LD C,2
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc3, 0x00, 0x00, // JP 0000h
	)
	mem.putInstructions(0x0120, []uint8("HELLO$")...)

	output := &test.CompareWriter{}
	cycles := runBDOS(t, mc, mem, output)

	test.ExpectEquality(t, output.String(), "HELLO!")
	test.ExpectEquality(t, cycles, 246)
}

func TestBDOSDecimal(t *testing.T) {
	mc, mem, _ := newTestCPU(t)

	// count from 0 to 12 in BCD and print each value as two digits
	mem.putInstructions(0x0100,
		0xaf, // XOR A
		0x06, 0x0d, // LD B,13
		0xf5, // loop: PUSH AF
		0xc5, // PUSH BC
		0x4f, // LD C,A
		0xcb, 0x3f, // SRL A
		0xcb, 0x3f, // SRL A
		0xcb, 0x3f, // SRL A
		0xcb, 0x3f, // SRL A
		0xc6, 0x30, // ADD A,'0'
		0x5f, // LD E,A
		0x79, // LD A,C
		0xe6, 0x0f, // AND 0Fh
		0xc6, 0x30, // ADD A,'0'
		0xf5, // PUSH AF
		0x0e, 0x02, // LD C,2
		0xcd, 0x05, 0x00, // CALL 0005h
		0xf1, // POP AF
		0x5f, // LD E,A
		0x0e, 0x02, // LD C,2
		0xcd, 0x05, 0x00, // CALL 0005h
		0x1e, 0x20, // LD E,' '
		0x0e, 0x02, // LD C,2
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc1, // POP BC
		0xf1, // POP AF
		0xc6, 0x01, // ADD A,1
		0x27, // DAA
		0x10, 0xd2, // DJNZ loop
		0xc3, 0x00, 0x00, // JP 0000h
	)

	output := &test.CompareWriter{}
	runBDOS(t, mc, mem, output)

	test.ExpectEquality(t, output.String(), "00 01 02 03 04 05 06 07 08 09 10 11 12 ")
}
