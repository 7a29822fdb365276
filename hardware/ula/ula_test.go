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

package ula_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/cpu"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/hardware/ula"
	"github.com/jetsetilly/gopher81/test"
)

type mockCPU struct {
	now     uint64
	nmis    int
	intLine bool
}

func (mc *mockCPU) Now() uint64 {
	return mc.now
}

func (mc *mockCPU) RequestInterrupt(kind cpu.Interrupt) {
	switch kind {
	case cpu.NMI:
		mc.nmis++
	case cpu.Maskable:
		mc.intLine = true
	}
}

func (mc *mockCPU) ClearInterrupt(kind cpu.Interrupt) {
	if kind == cpu.Maskable {
		mc.intLine = false
	}
}

type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

type tape struct {
	level bool
}

func (t *tape) EAR(_ uint64) bool {
	return t.level
}

type mic struct {
	levels []bool
	clocks []uint64
}

func (m *mic) SetLevel(high bool, clock uint64) {
	m.levels = append(m.levels, high)
	m.clocks = append(m.clocks, clock)
}

func newULA(t *testing.T) (*ula.ULA, *mockCPU, *mockMem, *television.Television) {
	t.Helper()
	env, err := instance.NewInstance(&clocks.Clock{}, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	mc := &mockCPU{}
	mem := &mockMem{}
	tv := television.NewTelevision(env)
	return ula.NewULA(env, mc, mem, tv), mc, mem, tv
}

func TestHSync(t *testing.T) {
	u, mc, _, tv := newULA(t)

	// NMI generator on
	u.WritePort(0x00fe, 0x00)
	test.ExpectEquality(t, u.NMIGenerator(), true)

	u.Advance(clocks.Scanline*3 - 1)
	test.ExpectEquality(t, mc.nmis, 2)
	test.ExpectEquality(t, u.LineCounter(), uint8(2))
	test.ExpectEquality(t, tv.Scanline(), 2)

	u.Advance(clocks.Scanline * 3)
	test.ExpectEquality(t, mc.nmis, 3)

	// the line counter is three bits wide
	u.Advance(clocks.Scanline * 9)
	test.ExpectEquality(t, u.LineCounter(), uint8(9&0x07))

	// NMI generator off
	mc.now = clocks.Scanline * 9
	u.WritePort(0x00fd, 0x00)
	test.ExpectEquality(t, u.NMIGenerator(), false)
	test.ExpectEquality(t, u.LineCounter(), uint8(0))
	u.Advance(clocks.Scanline * 20)
	test.ExpectEquality(t, mc.nmis, 9)
}

func TestVSync(t *testing.T) {
	u, mc, _, tv := newULA(t)
	m := &mic{}
	u.AttachMIC(m)

	// a read with A0 high is not for the ULA
	v, driven := u.ReadPort(0x00ff)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, driven, uint8(0))
	test.ExpectEquality(t, u.VSync(), false)

	mc.now = 100
	u.ReadPort(0x7ffe)
	test.ExpectEquality(t, u.VSync(), true)
	test.ExpectEquality(t, tv.FrameNum(), 1)

	// a second read during VSYNC does not complete another frame
	u.ReadPort(0x7ffe)
	test.ExpectEquality(t, tv.FrameNum(), 1)

	// the line counter does not advance during VSYNC
	mc.now = 100 + clocks.Scanline*2
	u.Advance(mc.now)
	test.ExpectEquality(t, u.LineCounter(), uint8(0))

	mc.now += 10
	u.WritePort(0x00ff, 0x00)
	test.ExpectEquality(t, u.VSync(), false)

	mc.now += clocks.Scanline
	u.Advance(mc.now)
	test.ExpectEquality(t, u.LineCounter(), uint8(1))

	test.DemandEquality(t, len(m.levels), 2)
	test.ExpectEquality(t, m.levels[0], false)
	test.ExpectEquality(t, m.levels[1], true)
	test.ExpectEquality(t, m.clocks[0], uint64(100))
	test.ExpectEquality(t, m.clocks[1], uint64(100+clocks.Scanline*2+10))

	// VSYNC does not start while the NMI generator is on
	u.WritePort(0x00fe, 0x00)
	u.ReadPort(0x00fe)
	test.ExpectEquality(t, u.VSync(), false)
	test.ExpectEquality(t, tv.FrameNum(), 1)
}

func TestInterruptLine(t *testing.T) {
	u, mc, _, _ := newULA(t)

	u.Fetch(cpu.FetchCycle{Address: 0x0000, Refresh: 0x1e3f})
	test.ExpectEquality(t, mc.intLine, true)
	u.Fetch(cpu.FetchCycle{Address: 0x0001, Refresh: 0x1e40})
	test.ExpectEquality(t, mc.intLine, false)
	u.Fetch(cpu.FetchCycle{Address: 0x0002, Refresh: 0x1e80})
	test.ExpectEquality(t, mc.intLine, true)
}

func TestDisplay(t *testing.T) {
	u, mc, mem, tv := newULA(t)

	// end VSYNC at clock 50. the line starts there
	mc.now = 50
	u.WritePort(0x00ff, 0x00)

	// pattern for character 8, line 0
	mem.data[0x1e40] = 0xaa

	// character 8 at 32K and above is replaced with NOP
	v := u.Fetch(cpu.FetchCycle{Address: 0xc000, Data: 0x08, Refresh: 0x1e45, Clock: 60})
	test.ExpectEquality(t, v, uint8(0x00))

	// inverse character 8. the I register of 0x1f selects the same
	// character set because bit 0 is ignored
	v = u.Fetch(cpu.FetchCycle{Address: 0xc001, Data: 0x88, Refresh: 0x1f46, Clock: 64})
	test.ExpectEquality(t, v, uint8(0x00))

	// a character with bit 6 set is executed
	v = u.Fetch(cpu.FetchCycle{Address: 0xc002, Data: 0x76, Refresh: 0x1e47, Clock: 68})
	test.ExpectEquality(t, v, uint8(0x76))

	// a fetch below 32K is never replaced
	v = u.Fetch(cpu.FetchCycle{Address: 0x4000, Data: 0x08, Refresh: 0x1e48, Clock: 72})
	test.ExpectEquality(t, v, uint8(0x08))

	// halted cycles are not drawn
	v = u.Fetch(cpu.FetchCycle{Address: 0xc003, Data: 0x08, Refresh: 0x1e49, Clock: 76, Halted: true})
	test.ExpectEquality(t, v, uint8(0x08))

	mc.now = 100
	u.ReadPort(0x00fe)
	f := tv.LastFrame()

	// 0xaa drawn at x=20 and 0x55 at x=28
	for x := 20; x < 36; x++ {
		want := (x < 28 && x%2 == 0) || (x >= 28 && x%2 == 1)
		test.ExpectEquality(t, f.Ink(x, 0), want, x)
	}
	test.ExpectEquality(t, f.InkCount(), 8)
}

func TestLineCounterSelectsPattern(t *testing.T) {
	u, mc, mem, tv := newULA(t)

	mc.now = 0
	u.WritePort(0x00ff, 0x00)

	// the last row of character 1 is a solid line
	mem.data[0x1e0f] = 0xff

	for line := uint64(0); line < 8; line++ {
		clock := line*clocks.Scanline + 4
		u.Fetch(cpu.FetchCycle{Address: 0xc000, Data: 0x01, Refresh: 0x1e40, Clock: clock})
	}

	u.ReadPort(0x00fe)
	f := tv.LastFrame()
	test.ExpectEquality(t, f.InkCount(), 8)
	test.ExpectEquality(t, f.Ink(8, 7), true)
	test.ExpectEquality(t, f.Ink(8, 6), false)
}

func TestAcknowledgeRealigns(t *testing.T) {
	u, mc, mem, tv := newULA(t)
	mem.data[0x1e04] = 0x80

	u.Acknowledge(cpu.Maskable, 1000)
	test.ExpectEquality(t, tv.Scanline(), 1000/clocks.Scanline)

	u.Acknowledge(cpu.NMI, 1100)

	u.Fetch(cpu.FetchCycle{Address: 0x8000, Data: 0x00, Refresh: 0x1e40, Clock: 1010})
	mc.now = 1020
	u.ReadPort(0x00fe)

	// the line counter is four after four HSYNC pulses
	f := tv.LastFrame()
	test.ExpectEquality(t, f.Ink(20, 1000/clocks.Scanline), true)
}

func TestEAR(t *testing.T) {
	u, _, _, _ := newULA(t)

	v, driven := u.ReadPort(0x00fe)
	test.ExpectEquality(t, driven, uint8(0))

	tp := &tape{level: true}
	u.AttachTape(tp)
	v, driven = u.ReadPort(0x00fe)
	test.ExpectEquality(t, v, uint8(0x80))
	test.ExpectEquality(t, driven, uint8(0x80))

	tp.level = false
	v, _ = u.ReadPort(0x00fe)
	test.ExpectEquality(t, v, uint8(0x00))
}
