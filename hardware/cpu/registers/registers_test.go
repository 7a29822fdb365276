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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/hardware/cpu/registers"
	"github.com/jetsetilly/gopher81/test"
)

func TestPairs(t *testing.T) {
	var f registers.File
	f.Reset()
	test.ExpectEquality(t, f.AF(), 0xffff)
	test.ExpectEquality(t, f.SP, 0xffff)
	test.ExpectEquality(t, f.BC(), 0x0000)

	f.SetHL(0x1234)
	test.ExpectEquality(t, f.H, 0x12)
	test.ExpectEquality(t, f.L, 0x34)

	f.SetIX(0xabcd)
	test.ExpectEquality(t, f.IXH, 0xab)
	f.IYL = 0x01
	test.ExpectEquality(t, f.IY(), 0x0001)
}

func TestExchange(t *testing.T) {
	var f registers.File
	f.Reset()

	f.SetBC(0x0102)
	f.SetDE(0x0304)
	f.SetHL(0x0506)
	f.SetAF(0x0708)

	f.ExchangeBanks()
	test.ExpectEquality(t, f.BC(), 0x0000)
	test.ExpectEquality(t, f.HL(), 0x0000)
	test.ExpectEquality(t, f.AF(), 0x0708)
	test.ExpectEquality(t, f.Alt.HL(), 0x0506)

	f.ExchangeAF()
	test.ExpectEquality(t, f.AF(), 0x0000)
	test.ExpectEquality(t, f.Alt.AF(), 0x0708)

	f.ExchangeBanks()
	f.ExchangeAF()
	test.ExpectEquality(t, f.BC(), 0x0102)
	test.ExpectEquality(t, f.DE(), 0x0304)
	test.ExpectEquality(t, f.AF(), 0x0708)
}

func TestRefresh(t *testing.T) {
	var f registers.File
	f.R = 0x7f
	f.IncrementR()
	test.ExpectEquality(t, f.R, 0x00)

	f.R = 0xff
	f.IncrementR()
	test.ExpectEquality(t, f.R, 0x80)

	f.I = 0x1e
	test.ExpectEquality(t, f.Refresh(), 0x1e80)
}

func TestFlagsString(t *testing.T) {
	test.ExpectEquality(t, registers.FlagsString(0x00), "szyhxpnc")
	test.ExpectEquality(t, registers.FlagsString(registers.Sign|registers.Carry), "SzyhxpnC")
	test.ExpectEquality(t, registers.FlagsString(registers.Zero|registers.Parity), "sZyhxPnc")
	test.ExpectEquality(t, registers.FlagsString(0xff), "SZYHXPNC")
}
