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

// Sentinal error patterns returned by the Machine type.
const (
	// the machine could not be created or an image could not be loaded. the
	// failed call has no effect
	ConfigurationError = "machine: configuration error: %v"

	// RunFrame() has run for the number of cycles given by the stall budget
	// preference without the ULA seeing the start of a VSYNC. the machine can
	// continue running
	StalledFrame = "machine: stalled frame: no VSYNC in %d cycles"

	// the CPU has produced a result that does not agree with the instruction
	// definitions. the machine will not run again until it is reset
	InvariantViolation = "machine: invariant violation: %v"

	// only returned when the trap ROM writes preference is set
	ROMWriteTrap = "machine: write to ROM: %v"
)
