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

package hardware

import (
	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/logger"
)

// Step the machine by one CPU step. A CPU step is one instruction, one
// interrupt acknowledge or one cycle of the halted state.
//
// The ULA is brought up to date with the cycle clock after the CPU step.
// Traps are checked last, once the PC is at the next instruction boundary.
func (m *Machine) Step() error {
	if m.fault != nil {
		return m.fault
	}

	_, err := m.CPU.Step()
	if err != nil {
		m.fault = curated.Errorf(InvariantViolation, err)
		logger.Log(m.Env, "machine", m.fault)
		return m.fault
	}

	m.ULA.Advance(m.Clock.Now())

	err = m.ULA.Err()
	if err != nil {
		return err
	}

	// the pending ROM write is always collected so that turning the
	// preference on does not report a stale write
	if w, ok := m.Mem.LastROMWrite(); ok && m.Env.Live.TrapROMWrites {
		return curated.Errorf(ROMWriteTrap, w)
	}

	if trap, ok := m.traps[m.CPU.PC]; ok {
		return trap()
	}

	return nil
}
