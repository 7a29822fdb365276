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

package keyboard_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/test"
)

func TestPositions(t *testing.T) {
	test.ExpectEquality(t, keyboard.Shift.Position(), keyboard.Position{Row: 0, Column: 0})
	test.ExpectEquality(t, keyboard.G.Position(), keyboard.Position{Row: 1, Column: 4})
	test.ExpectEquality(t, keyboard.Num0.Position(), keyboard.Position{Row: 4, Column: 0})
	test.ExpectEquality(t, keyboard.Num6.Position(), keyboard.Position{Row: 4, Column: 4})
	test.ExpectEquality(t, keyboard.Newline.Position(), keyboard.Position{Row: 6, Column: 0})
	test.ExpectEquality(t, keyboard.B.Position(), keyboard.Position{Row: 7, Column: 4})
	test.ExpectEquality(t, keyboard.Period.String(), ".")
}

func TestRead(t *testing.T) {
	kb := keyboard.NewKeyboard()

	v, driven := kb.ReadPort(0xfefe)
	test.ExpectEquality(t, driven, 0x1f)
	test.ExpectEquality(t, v, 0x1f)

	test.DemandSuccess(t, kb.SetKeyState(keyboard.X, true))

	// row 0 selected with A8 low
	v, _ = kb.ReadPort(0xfefe)
	test.ExpectEquality(t, v, 0x1b)

	// any other row is unaffected
	v, _ = kb.ReadPort(0xfdfe)
	test.ExpectEquality(t, v, 0x1f)

	// selecting every row sees the key
	v, _ = kb.ReadPort(0x00fe)
	test.ExpectEquality(t, v, 0x1b)

	test.DemandSuccess(t, kb.SetKeyState(keyboard.Space, true))
	v, _ = kb.ReadPort(0x7efe)
	test.ExpectEquality(t, v, 0x1a)

	test.DemandSuccess(t, kb.SetKeyState(keyboard.X, false))
	v, _ = kb.ReadPort(0x7efe)
	test.ExpectEquality(t, v, 0x1e)

	kb.ReleaseAll()
	v, _ = kb.ReadPort(0x00fe)
	test.ExpectEquality(t, v, 0x1f)
}

func TestBadKeys(t *testing.T) {
	kb := keyboard.NewKeyboard()
	test.ExpectFailure(t, kb.SetKeyState(keyboard.NumKeys, true))
	test.ExpectFailure(t, kb.SetPosition(keyboard.Position{Row: 8}, true))
	test.ExpectFailure(t, kb.SetPosition(keyboard.Position{Column: 5}, true))
}

func TestConcurrentKeys(t *testing.T) {
	kb := keyboard.NewKeyboard()

	// keys on the same row pressed from different goroutines must not tear
	var wg sync.WaitGroup
	for _, k := range []keyboard.Key{keyboard.A, keyboard.S, keyboard.D, keyboard.F, keyboard.G} {
		wg.Add(1)
		go func(k keyboard.Key) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = kb.SetKeyState(k, i%2 == 0)
			}
			_ = kb.SetKeyState(k, true)
		}(k)
	}
	wg.Wait()

	v, _ := kb.ReadPort(0xfdfe)
	test.ExpectEquality(t, v, 0x00)
	test.ExpectEquality(t, kb.String(), "..... ***** ..... ..... ..... ..... ..... .....")
}

func TestParseKey(t *testing.T) {
	k, err := keyboard.ParseKey("newline")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, keyboard.Newline)

	k, err = keyboard.ParseKey(".")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, keyboard.Period)

	for k := keyboard.Shift; k < keyboard.NumKeys; k++ {
		p, err := keyboard.ParseKey(k.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, k)
	}

	_, err = keyboard.ParseKey("ESC")
	test.ExpectFailure(t, err)
}
