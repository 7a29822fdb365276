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
	"testing"

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/cpu"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/test"
)

// flat 64K of RAM
type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// putInstructions copies the bytes to memory starting at origin and returns
// the address after the last byte
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) read16(address uint16) uint16 {
	return uint16(mem.data[address+1])<<8 | uint16(mem.data[address])
}

type portAccess struct {
	port  uint16
	data  uint8
	clock uint64
}

type mockIO struct {
	mc     *cpu.CPU
	value  uint8
	reads  []portAccess
	writes []portAccess
}

func (io *mockIO) In(port uint16) uint8 {
	io.reads = append(io.reads, portAccess{port: port, data: io.value, clock: io.mc.Now()})
	return io.value
}

func (io *mockIO) Out(port uint16, data uint8) {
	io.writes = append(io.writes, portAccess{port: port, data: data, clock: io.mc.Now()})
}

type mockObserver struct {
	fetches  []cpu.FetchCycle
	acks     []cpu.Interrupt
	override func(cpu.FetchCycle) uint8
}

func (o *mockObserver) Fetch(f cpu.FetchCycle) uint8 {
	o.fetches = append(o.fetches, f)
	if o.override != nil {
		return o.override(f)
	}
	return f.Data
}

func (o *mockObserver) Acknowledge(kind cpu.Interrupt, _ uint64) {
	o.acks = append(o.acks, kind)
}

func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem, *mockIO) {
	t.Helper()

	clk := &clocks.Clock{}
	env, err := instance.NewInstance(clk, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	mem := &mockMem{}
	io := &mockIO{value: 0xff}
	mc := cpu.NewCPU(env, mem, io, clk)
	io.mc = mc

	return mc, mem, io
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	test.DemandSuccess(t, err)
	return cycles
}
