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

// Package clocks defines the timing constants of the ZX81 and the cycle clock
// shared by the components of the machine.
package clocks

// ZX81 is the frequency of the Z80 in the ZX81, in Hz.
const ZX81 = 3250000

// Scanline is the number of T-states in one horizontal line.
const Scanline = 207

// PixelsPerCycle is the number of pixels drawn by the ULA in one T-state.
const PixelsPerCycle = 2

// FramesPerSecond is the nominal refresh rate of a UK machine.
const FramesPerSecond = 50

// CyclesPerFrame is the nominal number of T-states in one frame.
const CyclesPerFrame = ZX81 / FramesPerSecond

// Clock is a count of elapsed T-states since the machine was created. It is
// only ever advanced by the CPU, at the end of each step, and is never reset.
type Clock struct {
	t uint64
}

// Now returns the current value of the clock.
func (c *Clock) Now() uint64 {
	return c.t
}

// Advance the clock by n T-states.
func (c *Clock) Advance(n int) {
	c.t += uint64(n)
}
