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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/memory"
	"github.com/jetsetilly/gopher81/hardware/preferences"
	"github.com/jetsetilly/gopher81/test"
)

func newMemory(t *testing.T, ramSize int) (*memory.Memory, *instance.Instance) {
	t.Helper()

	var clk clocks.Clock
	env, err := instance.NewInstance(&clk, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true
	test.DemandSuccess(t, env.Prefs.RAMSize.Set(ramSize))

	mem, err := memory.NewMemory(env)
	test.DemandSuccess(t, err)
	return mem, env
}

func TestMirrors(t *testing.T) {
	mem, _ := newMemory(t, 1)
	test.ExpectEquality(t, mem.RAMSize(), 1024)

	mem.Write(0x4000, 0x12)
	test.ExpectEquality(t, mem.Read(0x4000), 0x12)

	// 1K is mirrored throughout the RAM window
	test.ExpectEquality(t, mem.Read(0x4400), 0x12)
	test.ExpectEquality(t, mem.Read(0x7c00), 0x12)

	// A15 is not decoded
	test.ExpectEquality(t, mem.Read(0xc000), 0x12)
	mem.Write(0xc3ff, 0x34)
	test.ExpectEquality(t, mem.Read(0x43ff), 0x34)

	// ROM mirror
	test.DemandSuccess(t, mem.LoadImage([]uint8{0xd3, 0xfd}, 0x0000))
	test.ExpectEquality(t, mem.Read(0x2000), 0xd3)
	test.ExpectEquality(t, mem.Read(0x8001), 0xfd)
	test.ExpectEquality(t, mem.Read(0xa001), 0xfd)
}

func TestROMProtection(t *testing.T) {
	mem, _ := newMemory(t, 16)

	test.DemandSuccess(t, mem.LoadImage([]uint8{0x01, 0x02, 0x03}, 0x0100))

	_, ok := mem.LastROMWrite()
	test.ExpectEquality(t, ok, false)

	mem.Write(0x2101, 0xff)
	test.ExpectEquality(t, mem.Read(0x0101), 0x02)

	w, ok := mem.LastROMWrite()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, w.Address, 0x2101)
	test.ExpectEquality(t, w.Data, 0xff)

	// the record is cleared by reading it
	_, ok = mem.LastROMWrite()
	test.ExpectEquality(t, ok, false)
}

func TestLoadImage(t *testing.T) {
	mem, _ := newMemory(t, 2)

	var err error

	err = mem.LoadImage([]uint8{}, 0x4000)
	test.ExpectEquality(t, curated.Is(err, memory.BadImage), true)

	// fits exactly
	err = mem.LoadImage(make([]uint8, 8192), 0x0000)
	test.ExpectSuccess(t, err)
	err = mem.LoadImage(make([]uint8, 2048), 0x4000)
	test.ExpectSuccess(t, err)

	// overruns
	err = mem.LoadImage(make([]uint8, 8193), 0x0000)
	test.ExpectEquality(t, curated.Is(err, memory.BadImage), true)
	err = mem.LoadImage(make([]uint8, 2), 0x47ff)
	test.ExpectEquality(t, curated.Is(err, memory.BadImage), true)

	// mirrors are not accepted
	err = mem.LoadImage([]uint8{0}, 0x2000)
	test.ExpectEquality(t, curated.Is(err, memory.BadImage), true)
	err = mem.LoadImage([]uint8{0}, 0xc000)
	test.ExpectEquality(t, curated.Is(err, memory.BadImage), true)

	// a failed load leaves memory untouched
	test.ExpectEquality(t, mem.Read(0x47ff), 0x00)
}

func TestReset(t *testing.T) {
	mem, env := newMemory(t, 16)

	test.DemandSuccess(t, mem.LoadImage([]uint8{0xaa}, 0x0000))
	mem.Write(0x5000, 0x55)

	test.DemandSuccess(t, env.Prefs.RAMReset.Set(preferences.RAMKeep))
	test.DemandSuccess(t, mem.Reset())
	test.ExpectEquality(t, mem.Read(0x5000), 0x55)

	test.DemandSuccess(t, env.Prefs.RAMReset.Set(preferences.RAMZero))
	test.DemandSuccess(t, mem.Reset())
	test.ExpectEquality(t, mem.Read(0x5000), 0x00)
	test.ExpectEquality(t, mem.Read(0x0000), 0xaa)

	// random reset is repeatable with a zero seed
	test.DemandSuccess(t, env.Prefs.RAMReset.Set(preferences.RAMRandom))
	test.DemandSuccess(t, mem.Reset())
	a := mem.Read(0x4000)
	b := mem.Read(0x4001)
	test.DemandSuccess(t, mem.Reset())
	test.ExpectEquality(t, mem.Read(0x4000), a)
	test.ExpectEquality(t, mem.Read(0x4001), b)

	// change of size
	test.DemandSuccess(t, env.Prefs.RAMSize.Set(1))
	test.DemandSuccess(t, mem.Reset())
	test.ExpectEquality(t, mem.RAMSize(), 1024)
}

func TestDump(t *testing.T) {
	mem, _ := newMemory(t, 1)
	mem.Write(0x4001, 0xab)

	cmp := &test.CompareWriter{}
	cmp.Write([]byte(mem.Dump(0x4001, 0x4002)))
	test.ExpectEquality(t, cmp.Compare(
		"       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n"+
			"     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n"+
			"400- |  .. ab 00 .. .. .. .. .. .. .. .. .. .. .. .. .."), true)
}
