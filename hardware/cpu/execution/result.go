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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher81/hardware/cpu/instructions"
)

// Result records the outcome of one step of the CPU.
type Result struct {
	// the instruction definition. for interrupt acknowledgement and halted
	// cycles this is one of the pseudo-definitions in the instructions
	// package
	Defn *instructions.Definition

	// address of the first byte of the instruction
	Address uint16

	// number of bytes read from memory while decoding the instruction
	ByteCount int

	// number of T-states consumed
	Cycles int

	// a conditional instruction took its branch or a block instruction
	// repeated
	Taken bool

	// the step has completed
	Final bool
}

// Reset the result to the empty state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x (undecoded)", r.Address)
	}
	s := fmt.Sprintf("%04x %s (%d T)", r.Address, r.Defn.Mnemonic, r.Cycles)
	if r.Taken {
		s = fmt.Sprintf("%s taken", s)
	}
	return s
}
