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

// Package cpu emulates the Z80 microprocessor found in the ZX81.
//
// The CPU type is created with the memory and IO buses it is connected to and
// the cycle clock of the machine. The bread-and-butter of the CPU type is the
// Step() function, which services a pending interrupt, performs one cycle of
// the halted state, or executes exactly one instruction. The number of
// T-states consumed is returned and the cycle clock is advanced by that
// amount.
//
//	mc := cpu.NewCPU(env, mem, io, &clk)
//	mc.Reset()
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		numCycles += cycles
//	}
//
// The number of T-states for each instruction is taken from the definition
// tables of the instructions package. The LastResult field records the
// definition of the most recent step along with the number of bytes decoded.
// When the validate preference is set, every step is checked for
// consistency with its definition.
//
// Devices that need to see the opcode fetches of the CPU, the video circuitry
// of the ZX81 being the obvious example, implement the Observer interface and
// are attached with AttachObserver(). The Observer is also told of interrupt
// acknowledgements.
//
// Undefined opcodes are not errors. Undefined ED opcodes execute as eight
// T-state NOPs and a DD or FD prefix in front of an instruction that makes no
// use of HL executes that instruction with four extra T-states.
package cpu
