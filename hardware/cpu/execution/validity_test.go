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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/cpu/execution"
	"github.com/jetsetilly/gopher81/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher81/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	// no definition
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.InvalidResult), true)

	// JR NZ,e
	r.Defn = instructions.Lookup(instructions.None, 0x20)
	r.ByteCount = 2
	r.Cycles = 7
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.Taken = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 12
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 3
	test.ExpectFailure(t, r.IsValid())

	// NOP cannot be taken
	r.Reset()
	r.Defn = instructions.Lookup(instructions.None, 0x00)
	r.ByteCount = 1
	r.Cycles = 4
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	r.Taken = true
	test.ExpectFailure(t, r.IsValid())

	// pseudo-instructions read no bytes
	r.Reset()
	r.Defn = &instructions.NMI
	r.Cycles = 11
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
}
