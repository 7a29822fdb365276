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

// Package keymap translates keypresses in a terminal to taps on the ZX81
// keyboard.
//
// Letters, digits, space, full stop and return map to the key of the same
// name. Punctuation printed on the ZX81 keyboard in red maps to SHIFT and the
// key it is printed on. The cursor keys map to the shifted 5 to 8 keys and
// delete maps to RUBOUT.
package keymap

import (
	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/terminal/easyterm"
)

var digits = [10]keyboard.Key{
	keyboard.Num0, keyboard.Num1, keyboard.Num2, keyboard.Num3, keyboard.Num4,
	keyboard.Num5, keyboard.Num6, keyboard.Num7, keyboard.Num8, keyboard.Num9,
}

var letters = [26]keyboard.Key{
	keyboard.A, keyboard.B, keyboard.C, keyboard.D, keyboard.E, keyboard.F,
	keyboard.G, keyboard.H, keyboard.I, keyboard.J, keyboard.K, keyboard.L,
	keyboard.M, keyboard.N, keyboard.O, keyboard.P, keyboard.Q, keyboard.R,
	keyboard.S, keyboard.T, keyboard.U, keyboard.V, keyboard.W, keyboard.X,
	keyboard.Y, keyboard.Z,
}

var shifted = map[easyterm.Key]keyboard.Key{
	'"': keyboard.P,
	'$': keyboard.U,
	'(': keyboard.I,
	')': keyboard.O,
	'-': keyboard.J,
	'+': keyboard.K,
	'=': keyboard.L,
	':': keyboard.Z,
	';': keyboard.X,
	'?': keyboard.C,
	'/': keyboard.V,
	'*': keyboard.B,
	'<': keyboard.N,
	'>': keyboard.M,
	',': keyboard.Period,

	easyterm.KeyLeft:      keyboard.Num5,
	easyterm.KeyDown:      keyboard.Num6,
	easyterm.KeyUp:        keyboard.Num7,
	easyterm.KeyRight:     keyboard.Num8,
	easyterm.KeyDelete:    keyboard.Num0,
	easyterm.KeyBackspace: keyboard.Num0,
}

// Tap returns the tap for the terminal key. The boolean is false if the key
// has no equivalent on the ZX81.
func Tap(k easyterm.Key) (input.Tap, bool) {
	switch {
	case k >= 'a' && k <= 'z':
		return input.Tap{letters[k-'a']}, true
	case k >= 'A' && k <= 'Z':
		return input.Tap{letters[k-'A']}, true
	case k >= '0' && k <= '9':
		return input.Tap{digits[k-'0']}, true
	}

	switch k {
	case ' ':
		return input.Tap{keyboard.Space}, true
	case '.':
		return input.Tap{keyboard.Period}, true
	case easyterm.KeyReturn, easyterm.KeyLineFeed:
		return input.Tap{keyboard.Newline}, true
	}

	if s, ok := shifted[k]; ok {
		return input.Tap{keyboard.Shift, s}, true
	}

	return nil, false
}
