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

// Package keyboard implements the key matrix of the ZX81.
//
// The forty keys are wired as eight rows of five columns. A row is selected
// by holding one of the upper address lines (A8 to A15) low during an IN
// instruction. The columns of the selected rows appear on data lines D0 to D4,
// low for a pressed key.
//
// Key state can be changed from any goroutine. Reads happen on the goroutine
// running the emulation.
package keyboard

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NumRows and NumColumns are the dimensions of the key matrix.
const (
	NumRows    = 8
	NumColumns = 5
)

// Position of a key in the matrix.
type Position struct {
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("row %d, column %d", p.Row, p.Column)
}

// Key identifies one of the keys of the ZX81. The value of a Key is its
// position in the matrix, row major.
type Key int

// List of valid Key values.
const (
	Shift Key = iota
	Z
	X
	C
	V

	A
	S
	D
	F
	G

	Q
	W
	E
	R
	T

	Num1
	Num2
	Num3
	Num4
	Num5

	Num0
	Num9
	Num8
	Num7
	Num6

	P
	O
	I
	U
	Y

	Newline
	L
	K
	J
	H

	Space
	Period
	M
	N
	B

	NumKeys
)

var keyNames = [NumKeys]string{
	"SHIFT", "Z", "X", "C", "V",
	"A", "S", "D", "F", "G",
	"Q", "W", "E", "R", "T",
	"1", "2", "3", "4", "5",
	"0", "9", "8", "7", "6",
	"P", "O", "I", "U", "Y",
	"NEWLINE", "L", "K", "J", "H",
	"SPACE", ".", "M", "N", "B",
}

func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "unknown key"
	}
	return keyNames[k]
}

// ParseKey returns the Key with the name returned by the String() function.
// The comparison is case insensitive.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k), nil
		}
	}
	return NumKeys, fmt.Errorf("keyboard: unknown key name (%s)", name)
}

// Position returns the position of the key in the matrix.
func (k Key) Position() Position {
	return Position{Row: int(k) / NumColumns, Column: int(k) % NumColumns}
}

// Keyboard is the key matrix. It implements the ports.Reader interface.
type Keyboard struct {
	// one word per row. a set bit is a pressed key
	rows [NumRows]atomic.Uint32
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (kb *Keyboard) String() string {
	s := make([]byte, 0, NumKeys)
	for r := range kb.rows {
		v := kb.rows[r].Load()
		for c := 0; c < NumColumns; c++ {
			if v&(1<<c) != 0 {
				s = append(s, '*')
			} else {
				s = append(s, '.')
			}
		}
		if r < NumRows-1 {
			s = append(s, ' ')
		}
	}
	return string(s)
}

// SetKeyState presses or releases the key.
func (kb *Keyboard) SetKeyState(key Key, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return fmt.Errorf("keyboard: unknown key (%d)", key)
	}
	return kb.SetPosition(key.Position(), pressed)
}

// SetPosition presses or releases the key at the matrix position.
func (kb *Keyboard) SetPosition(pos Position, pressed bool) error {
	if pos.Row < 0 || pos.Row >= NumRows || pos.Column < 0 || pos.Column >= NumColumns {
		return fmt.Errorf("keyboard: no key at %s", pos)
	}

	bit := uint32(1) << pos.Column
	row := &kb.rows[pos.Row]
	for {
		old := row.Load()
		nw := old &^ bit
		if pressed {
			nw = old | bit
		}
		if row.CompareAndSwap(old, nw) {
			return nil
		}
	}
}

// IsPressed returns true if the key is currently held.
func (kb *Keyboard) IsPressed(key Key) bool {
	if key < 0 || key >= NumKeys {
		return false
	}
	pos := key.Position()
	return kb.rows[pos.Row].Load()&(1<<pos.Column) != 0
}

// ReleaseAll keys.
func (kb *Keyboard) ReleaseAll() {
	for r := range kb.rows {
		kb.rows[r].Store(0)
	}
}

// ReadPort implements the ports.Reader interface. The keyboard drives D0 to D4
// only.
func (kb *Keyboard) ReadPort(port uint16) (uint8, uint8) {
	var pressed uint32
	sel := port >> 8
	for r := range kb.rows {
		if sel&(1<<r) == 0 {
			pressed |= kb.rows[r].Load()
		}
	}
	return ^uint8(pressed) & 0x1f, 0x1f
}
