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

package easyterm

// Key is a single decoded keypress. Printable characters are their own value.
// Keys without a character have a negative value.
type Key rune

// List of control characters.
const (
	KeyInterrupt Key = 3
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyLineFeed  Key = 10
	KeyReturn    Key = 13
	KeySuspend   Key = 26
	KeyEsc       Key = 27
	KeyDelete    Key = 127
)

// List of keys that arrive as escape sequences.
const (
	KeyUp Key = -(iota + 1)
	KeyDown
	KeyRight
	KeyLeft
)

const (
	esc         = 0x1b
	csi         = '['
	ss3         = 'O'
	maxSequence = 8
)

var cursorKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// Decode the bytes read from a raw mode terminal into keypresses. Escape
// sequences that are not recognised are dropped. A lone escape byte is
// returned as KeyEsc.
func Decode(p []byte) []Key {
	keys := make([]Key, 0, len(p))

	for i := 0; i < len(p); i++ {
		if p[i] != esc {
			keys = append(keys, Key(p[i]))
			continue
		}

		if i+1 >= len(p) || (p[i+1] != csi && p[i+1] != ss3) {
			keys = append(keys, KeyEsc)
			continue
		}

		// the sequence ends with the first byte in the range 0x40 to 0x7e
		j := i + 2
		for j < len(p) && j-i < maxSequence && (p[j] < 0x40 || p[j] > 0x7e) {
			j++
		}
		if j >= len(p) {
			return keys
		}

		if k, ok := cursorKeys[p[j]]; ok {
			keys = append(keys, k)
		}
		i = j
	}

	return keys
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyReturn, KeyLineFeed:
		return "return"
	case KeyEsc:
		return "esc"
	case KeyBackspace, KeyDelete:
		return "delete"
	}
	if k < 0x20 {
		return "ctrl-" + string(rune(k)+'@')
	}
	return string(rune(k))
}
