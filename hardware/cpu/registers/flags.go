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

package registers

// Bits of the flags register. X and Y are the undocumented copies of bits 3
// and 5 of a result.
const (
	Carry     = uint8(0x01)
	Subtract  = uint8(0x02)
	Parity    = uint8(0x04)
	Overflow  = Parity
	X         = uint8(0x08)
	HalfCarry = uint8(0x10)
	Y         = uint8(0x20)
	Zero      = uint8(0x40)
	Sign      = uint8(0x80)
)

// Undocumented is a mask of the two undocumented flag bits.
const Undocumented = X | Y

// FlagsString returns the flags register in a readable form. Set flags are
// shown in upper case.
func FlagsString(f uint8) string {
	const set = "SZYHXPNC"
	const clear = "szyhxpnc"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if f&(0x80>>i) != 0 {
			s[i] = set[i]
		} else {
			s[i] = clear[i]
		}
	}
	return string(s)
}
