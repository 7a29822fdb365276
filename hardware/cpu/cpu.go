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

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/cpu/execution"
	"github.com/jetsetilly/gopher81/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher81/hardware/cpu/registers"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher81/logger"
)

// Interrupt identifies the two classes of interrupt.
type Interrupt int

// List of valid Interrupt values.
const (
	NMI Interrupt = iota
	Maskable
)

func (k Interrupt) String() string {
	switch k {
	case NMI:
		return "NMI"
	case Maskable:
		return "INT"
	}
	return "unknown interrupt"
}

// State of the CPU at an instruction boundary.
type State int

// List of valid State values.
const (
	Running State = iota

	// an interrupt will be serviced by the next call to Step()
	InterruptPending

	// the most recent step acknowledged an interrupt
	ServicingNMI
	ServicingMaskable

	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case InterruptPending:
		return "interrupt pending"
	case ServicingNMI:
		return "servicing NMI"
	case ServicingMaskable:
		return "servicing INT"
	case Halted:
		return "halted"
	}
	return "unknown state"
}

// FetchCycle describes an M1 cycle of the CPU.
type FetchCycle struct {
	// address of the opcode and the value read from memory
	Address uint16
	Data    uint8

	// the value placed on the address bus during the refresh part of the
	// cycle. this is the value of the I and R registers before R increments
	Refresh uint16

	// the cycle clock at the start of the M1 cycle
	Clock uint64

	// the CPU is halted. the data is read but is not used
	Halted bool
}

// Observer is implemented by devices that watch the opcode fetches of the
// CPU.
type Observer interface {
	// Fetch is called during every M1 cycle. The value returned is the value
	// decoded by the CPU. An observer that does not want to change the opcode
	// should return the Data field unchanged.
	Fetch(FetchCycle) uint8

	// Acknowledge is called when the CPU accepts an interrupt.
	Acknowledge(kind Interrupt, clock uint64)
}

// CPU implements the Z80 as found in the ZX81. Register logic is implemented
// by the File type in the registers sub-package.
type CPU struct {
	registers.File

	env      *instance.Instance
	mem      cpubus.Memory
	io       cpubus.IO
	clock    *clocks.Clock
	observer Observer

	// interrupt enable flip-flops and interrupt mode
	IFF1 bool
	IFF2 bool
	IM   uint8

	// the CPU has executed a HALT instruction and is waiting for an
	// interrupt
	Halted bool

	// the NMI latch is set by the falling edge of the NMI line and is cleared
	// when the NMI is serviced. the INT line is a level
	nmiPending bool
	intLine    bool

	// the byte placed on the data bus by the interrupting device during an
	// interrupt acknowledge
	intData uint8

	// maskable interrupts are not accepted after EI until the following
	// instruction has completed
	eiDelay bool

	// LastResult is the result of the most recent call to Step()
	LastResult execution.Result

	// the cycle clock at the start of the current step and the number of
	// T-states into the step of the current bus cycle
	start uint64
	cycle int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// should be Reset() before use.
func NewCPU(env *instance.Instance, mem cpubus.Memory, io cpubus.IO, clock *clocks.Clock) *CPU {
	mc := &CPU{
		env:   env,
		mem:   mem,
		io:    io,
		clock: clock,
	}
	mc.Reset()
	return mc
}

// AttachObserver sets the device that watches the opcode fetches of the CPU.
// A nil value removes the existing observer.
func (mc *CPU) AttachObserver(o Observer) {
	mc.observer = o
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IFF1=%v IFF2=%v IM=%d", mc.File.String(), mc.IFF1, mc.IFF2, mc.IM)
}

// Reset the CPU to its post-reset state. Memory is not affected.
func (mc *CPU) Reset() {
	mc.File.Reset()
	mc.IFF1 = false
	mc.IFF2 = false
	mc.IM = 0
	mc.Halted = false
	mc.nmiPending = false
	mc.intLine = false
	mc.intData = 0xff
	mc.eiDelay = false
	mc.LastResult.Reset()
}

// RequestInterrupt signals an interrupt. For a maskable interrupt the line
// stays asserted until ClearInterrupt() is called.
func (mc *CPU) RequestInterrupt(kind Interrupt) {
	switch kind {
	case NMI:
		mc.nmiPending = true
	case Maskable:
		mc.intLine = true
	}
}

// ClearInterrupt releases the maskable interrupt line or cancels an NMI that
// has not yet been serviced.
func (mc *CPU) ClearInterrupt(kind Interrupt) {
	switch kind {
	case NMI:
		mc.nmiPending = false
	case Maskable:
		mc.intLine = false
	}
}

// SetInterruptData sets the value placed on the data bus during a maskable
// interrupt acknowledge. On the ZX81 nothing drives the bus and the value is
// 0xff.
//
// In IM 0 only RST opcodes are executed from the data bus. Any other value is
// treated as RST 38h.
func (mc *CPU) SetInterruptData(data uint8) {
	mc.intData = data
}

// State returns the state of the CPU at the current instruction boundary.
func (mc *CPU) State() State {
	switch {
	case mc.nmiPending || (mc.intLine && mc.IFF1 && !mc.eiDelay):
		return InterruptPending
	case mc.LastResult.Defn == &instructions.NMI:
		return ServicingNMI
	case mc.LastResult.Defn == &instructions.IM0,
		mc.LastResult.Defn == &instructions.IM1,
		mc.LastResult.Defn == &instructions.IM2:
		return ServicingMaskable
	case mc.Halted:
		return Halted
	}
	return Running
}

// Now returns the value of the cycle clock at the current bus cycle. Outside
// of a call to Step() this is the clock at the end of the previous step.
//
// For IO accesses the bus cycle is taken to be the final four T-states of the
// instruction.
func (mc *CPU) Now() uint64 {
	return mc.start + uint64(mc.cycle)
}

// Step services a pending interrupt, performs one cycle of the halted state
// or executes one instruction. It returns the number of T-states consumed.
//
// An error is only returned if the validate preference is set and the result
// of the step is inconsistent with the instruction definition.
func (mc *CPU) Step() (int, error) {
	mc.LastResult.Reset()
	mc.start = mc.clock.Now()
	mc.cycle = 0

	delay := mc.eiDelay
	mc.eiDelay = false

	switch {
	case mc.nmiPending:
		mc.acknowledgeNMI()
	case mc.intLine && mc.IFF1 && !delay:
		mc.acknowledgeMaskable()
	case mc.Halted:
		mc.haltedCycle()
	default:
		mc.LastResult.Address = mc.PC
		op := mc.fetchOpcode()
		mc.LastResult.Defn = instructions.Lookup(instructions.None, op)
		baseOps[op](mc)
	}

	defn := mc.LastResult.Defn
	if mc.LastResult.Taken && defn.IsConditional() {
		mc.LastResult.Cycles = defn.Taken
	} else {
		mc.LastResult.Cycles = defn.Cycles
	}
	mc.LastResult.Final = true

	mc.clock.Advance(mc.LastResult.Cycles)
	mc.start = mc.clock.Now()
	mc.cycle = 0

	if mc.env.Live.Validate {
		err := mc.LastResult.IsValid()
		if err != nil {
			return mc.LastResult.Cycles, err
		}
	}

	return mc.LastResult.Cycles, nil
}

func (mc *CPU) acknowledgeNMI() {
	mc.LastResult.Address = mc.PC
	mc.LastResult.Defn = &instructions.NMI

	mc.nmiPending = false
	mc.Halted = false
	mc.IFF1 = false
	mc.IncrementR()

	if mc.observer != nil {
		mc.observer.Acknowledge(NMI, mc.start)
	}

	mc.push(mc.PC)
	mc.PC = 0x0066
	mc.WZ = mc.PC
}

func (mc *CPU) acknowledgeMaskable() {
	mc.LastResult.Address = mc.PC

	mc.Halted = false
	mc.IFF1 = false
	mc.IFF2 = false
	mc.IncrementR()

	if mc.observer != nil {
		mc.observer.Acknowledge(Maskable, mc.start)
	}

	switch mc.IM {
	case 0:
		mc.LastResult.Defn = &instructions.IM0
		data := mc.intData
		if data&0xc7 != 0xc7 {
			logger.Logf(mc.env, "cpu", "IM 0 with non-RST opcode (%#02x) on data bus. treated as RST 38h", data)
			data = 0xff
		}
		mc.push(mc.PC)
		mc.PC = uint16(data & 0x38)
	case 1:
		mc.LastResult.Defn = &instructions.IM1
		mc.push(mc.PC)
		mc.PC = 0x0038
	default:
		mc.LastResult.Defn = &instructions.IM2
		mc.push(mc.PC)
		mc.PC = mc.read16(uint16(mc.I)<<8 | uint16(mc.intData))
	}

	mc.WZ = mc.PC
}

// while halted the CPU repeatedly performs M1 cycles at the address following
// the HALT instruction without advancing the PC
func (mc *CPU) haltedCycle() {
	mc.LastResult.Address = mc.PC
	mc.LastResult.Defn = &instructions.Halted

	data := mc.mem.Read(mc.PC)
	refresh := mc.Refresh()
	mc.IncrementR()

	if mc.observer != nil {
		mc.observer.Fetch(FetchCycle{
			Address: mc.PC,
			Data:    data,
			Refresh: refresh,
			Clock:   mc.start,
			Halted:  true,
		})
	}
}

// fetchOpcode performs an M1 cycle.
func (mc *CPU) fetchOpcode() uint8 {
	address := mc.PC
	data := mc.mem.Read(address)
	refresh := mc.Refresh()
	mc.IncrementR()

	if mc.observer != nil {
		data = mc.observer.Fetch(FetchCycle{
			Address: address,
			Data:    data,
			Refresh: refresh,
			Clock:   mc.start + uint64(mc.cycle),
		})
	}

	mc.cycle += 4
	mc.PC++
	mc.LastResult.ByteCount++

	return data
}

// fetchByte reads an operand byte.
func (mc *CPU) fetchByte() uint8 {
	data := mc.read(mc.PC)
	mc.PC++
	mc.LastResult.ByteCount++
	return data
}

// fetchWord reads a little-endian operand word.
func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetchByte()
	hi := mc.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read(address uint16) uint8 {
	mc.cycle += 3
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.cycle += 3
	mc.mem.Write(address, data)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, data uint16) {
	mc.write(address, uint8(data))
	mc.write(address+1, uint8(data>>8))
}

func (mc *CPU) push(data uint16) {
	mc.SP--
	mc.write(mc.SP, uint8(data>>8))
	mc.SP--
	mc.write(mc.SP, uint8(data))
}

func (mc *CPU) pop() uint16 {
	lo := mc.read(mc.SP)
	mc.SP++
	hi := mc.read(mc.SP)
	mc.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) in(port uint16) uint8 {
	mc.cycle = mc.LastResult.Defn.Cycles - 4
	return mc.io.In(port)
}

func (mc *CPU) out(port uint16, data uint8) {
	mc.cycle = mc.LastResult.Defn.Cycles - 4
	mc.io.Out(port, data)
}
