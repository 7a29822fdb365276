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

// AddTrap arranges for the function to be called whenever the PC reaches the
// address at an instruction boundary. The function is called before the
// instruction at the address is executed and can change the state of the
// machine, including the PC. Any error is returned by Step().
//
// Adding a trap to an address that already has one replaces the existing
// trap. Mirrored addresses are not trapped.
func (m *Machine) AddTrap(address uint16, f func() error) {
	m.traps[address] = f
}

// RemoveTrap removes the trap at the address, if there is one.
func (m *Machine) RemoveTrap(address uint16) {
	delete(m.traps, address)
}
