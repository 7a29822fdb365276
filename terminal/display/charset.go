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

package display

// quadrant characters, indexed by a four bit value. bit 0 is the top left
// quarter, bit 1 the top right, bit 2 the bottom left and bit 3 the bottom
// right
var quadrants = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// the first sixty-four characters of the ZX81 character set. the upper half
// of the character set repeats these in inverse video
var charset = [64]rune{
	// block graphics. the last three are the chequered graphics, which
	// unicode has no exact equivalent of
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛', '▒', '▂', '▔',

	'"', '£', '$', ':', '?', '(', ')', '>', '<', '=', '+', '-', '*', '/', ';', ',', '.',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
}

// drawn for codes that have no glyph. these codes do not appear in a valid
// display file
const noGlyph = '·'

// Glyph returns the character for a code of the ZX81 character set and
// whether it should be drawn in inverse video.
func Glyph(c uint8) (rune, bool) {
	inverse := c&0x80 == 0x80
	c &= 0x7f
	if c >= 64 {
		return noGlyph, false
	}
	return charset[c], inverse
}
