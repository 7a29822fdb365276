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

// Package tape implements the cassette interface of the ZX81.
//
// Programs are handled in two forms. The Program type is the form used by .p
// files: the bytes of the program from the VERSN system variable to the
// start of the edit line, along with the name it was saved under. The PCM
// type is the form used by audio recordings of a tape.
//
// Recordings are converted to and from programs with Decode() and Encode().
// On tape each byte is sent most significant bit first, every bit as a burst
// of pulses: four pulses for a zero and nine pulses for a one. The name comes
// first with bit 7 set on its final character, followed by the program.
//
// There are two ways of getting a program into the emulated machine. The Deck
// type traps the LOAD routine in the ROM and copies the program into memory
// directly. The Player type feeds a recording to the EAR socket of the ULA
// so that the ROM's own LOAD routine reads it, at the speed of a real tape.
package tape
