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

// Package ula implements the video and timing logic of the ZX81.
//
// The ULA generates the picture by watching the opcode fetches of the CPU.
// When the ROM wants to draw a line of the display it jumps to the display
// file with address bit 15 set. Every character code fetched there with bit 6
// clear is replaced with a NOP before the CPU sees it, and during the refresh
// part of the same M1 cycle the ULA reads the pattern for the character from
// the character set. The line of the pattern is selected by the ULA's own
// line counter and the character set by the I register, which is on the
// address bus with the refresh register.
//
// The ULA generates a horizontal sync pulse every 207 T-states. Each pulse
// advances the line counter and, when the NMI generator is on, raises an NMI.
// The ROM counts NMIs to measure out the top and bottom margins of the
// picture.
//
// The maskable interrupt is raised whenever bit 6 of the refresh address is
// low. The ROM arranges the R register so that this happens at the end of
// every line of the display file.
//
// Vertical sync begins when the CPU reads from a port with A0 low while the
// NMI generator is off and ends with any write to a port. The start of
// vertical sync is the end of the frame.
package ula
