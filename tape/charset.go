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

package tape

import (
	"strings"
)

// DecodeName converts the name of a program, in the ZX81 character set, to a
// string suitable for use as a filename. Decoding stops at the first
// character with bit 7 set. Characters with no filename equivalent are
// decoded as an underscore.
func DecodeName(name []uint8) string {
	s := strings.Builder{}
	for _, c := range name {
		s.WriteRune(decodeChar(c & 0x7f))
		if c&0x80 == 0x80 {
			break
		}
	}
	return s.String()
}

func decodeChar(c uint8) rune {
	switch {
	case c >= 38 && c <= 63:
		return rune('a' + c - 38)
	case c >= 28 && c <= 37:
		return rune('0' + c - 28)
	}
	switch c {
	case 16:
		return '('
	case 17:
		return ')'
	case 22:
		return '-'
	case 27:
		return '.'
	}
	return '_'
}

// EncodeName converts a string to a program name in the ZX81 character set.
// Bit 7 is set on the final character. Upper and lower case letters encode
// to the same character and unsupported characters encode as a space.
func EncodeName(name string) []uint8 {
	var n []uint8
	for _, r := range strings.ToLower(name) {
		n = append(n, encodeChar(r))
	}
	if len(n) > 0 {
		n[len(n)-1] |= 0x80
	}
	return n
}

func encodeChar(r rune) uint8 {
	switch {
	case r >= 'a' && r <= 'z':
		return uint8(r-'a') + 38
	case r >= '0' && r <= '9':
		return uint8(r-'0') + 28
	}
	switch r {
	case '(':
		return 16
	case ')':
		return 17
	case '-':
		return 22
	case '.':
		return 27
	}
	return 0
}
